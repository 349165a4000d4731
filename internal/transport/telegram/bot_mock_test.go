package telegram

import (
	"context"
	"sync"
)

var _ bot = &botMock{}

type botMock struct {
	SendMessageFunc  func(ctx context.Context, chatID int64, text string) error
	DownloadFileFunc func(ctx context.Context, fileID string) ([]byte, string, error)

	calls struct {
		SendMessage []struct {
			Ctx    context.Context
			ChatID int64
			Text   string
		}
		DownloadFile []struct {
			Ctx    context.Context
			FileID string
		}
	}
	lockSendMessage  sync.RWMutex
	lockDownloadFile sync.RWMutex
}

func (mock *botMock) SendMessage(ctx context.Context, chatID int64, text string) error {
	if mock.SendMessageFunc == nil {
		panic("botMock.SendMessageFunc: method is nil but bot.SendMessage was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ChatID int64
		Text   string
	}{
		Ctx:    ctx,
		ChatID: chatID,
		Text:   text,
	}
	mock.lockSendMessage.Lock()
	mock.calls.SendMessage = append(mock.calls.SendMessage, callInfo)
	mock.lockSendMessage.Unlock()
	return mock.SendMessageFunc(ctx, chatID, text)
}

func (mock *botMock) SendMessageCalls() []struct {
	Ctx    context.Context
	ChatID int64
	Text   string
} {
	var calls []struct {
		Ctx    context.Context
		ChatID int64
		Text   string
	}
	mock.lockSendMessage.RLock()
	calls = mock.calls.SendMessage
	mock.lockSendMessage.RUnlock()
	return calls
}

func (mock *botMock) DownloadFile(ctx context.Context, fileID string) ([]byte, string, error) {
	if mock.DownloadFileFunc == nil {
		panic("botMock.DownloadFileFunc: method is nil but bot.DownloadFile was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FileID string
	}{
		Ctx:    ctx,
		FileID: fileID,
	}
	mock.lockDownloadFile.Lock()
	mock.calls.DownloadFile = append(mock.calls.DownloadFile, callInfo)
	mock.lockDownloadFile.Unlock()
	return mock.DownloadFileFunc(ctx, fileID)
}

func (mock *botMock) DownloadFileCalls() []struct {
	Ctx    context.Context
	FileID string
} {
	var calls []struct {
		Ctx    context.Context
		FileID string
	}
	mock.lockDownloadFile.RLock()
	calls = mock.calls.DownloadFile
	mock.lockDownloadFile.RUnlock()
	return calls
}
