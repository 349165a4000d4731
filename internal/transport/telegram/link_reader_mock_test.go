package telegram

import (
	"context"
	"sync"

	"github.com/sthacker-ai/NexusLog/internal/adapter/linkmeta"
)

var _ linkReader = &linkReaderMock{}

type linkReaderMock struct {
	ExtractFunc func(ctx context.Context, pageURL string) (*linkmeta.Metadata, error)

	calls struct {
		Extract []struct {
			Ctx     context.Context
			PageURL string
		}
	}
	lockExtract sync.RWMutex
}

func (mock *linkReaderMock) Extract(ctx context.Context, pageURL string) (*linkmeta.Metadata, error) {
	if mock.ExtractFunc == nil {
		panic("linkReaderMock.ExtractFunc: method is nil but linkReader.Extract was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PageURL string
	}{
		Ctx:     ctx,
		PageURL: pageURL,
	}
	mock.lockExtract.Lock()
	mock.calls.Extract = append(mock.calls.Extract, callInfo)
	mock.lockExtract.Unlock()
	return mock.ExtractFunc(ctx, pageURL)
}

func (mock *linkReaderMock) ExtractCalls() []struct {
	Ctx     context.Context
	PageURL string
} {
	var calls []struct {
		Ctx     context.Context
		PageURL string
	}
	mock.lockExtract.RLock()
	calls = mock.calls.Extract
	mock.lockExtract.RUnlock()
	return calls
}
