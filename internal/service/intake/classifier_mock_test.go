package intake

import (
	"context"
	"sync"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

var _ classifier = &classifierMock{}

type classifierMock struct {
	ClassifyFunc           func(ctx context.Context, text string, categories []string) (domain.Classification, error)
	GenerateIdeaPromptFunc func(ctx context.Context, idea string) (string, error)

	calls struct {
		Classify []struct {
			Ctx        context.Context
			Text       string
			Categories []string
		}
		GenerateIdeaPrompt []struct {
			Ctx  context.Context
			Idea string
		}
	}
	lockClassify           sync.RWMutex
	lockGenerateIdeaPrompt sync.RWMutex
}

func (mock *classifierMock) Classify(ctx context.Context, text string, categories []string) (domain.Classification, error) {
	if mock.ClassifyFunc == nil {
		panic("classifierMock.ClassifyFunc: method is nil but classifier.Classify was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Text       string
		Categories []string
	}{
		Ctx:        ctx,
		Text:       text,
		Categories: categories,
	}
	mock.lockClassify.Lock()
	mock.calls.Classify = append(mock.calls.Classify, callInfo)
	mock.lockClassify.Unlock()
	return mock.ClassifyFunc(ctx, text, categories)
}

func (mock *classifierMock) ClassifyCalls() []struct {
	Ctx        context.Context
	Text       string
	Categories []string
} {
	var calls []struct {
		Ctx        context.Context
		Text       string
		Categories []string
	}
	mock.lockClassify.RLock()
	calls = mock.calls.Classify
	mock.lockClassify.RUnlock()
	return calls
}

func (mock *classifierMock) GenerateIdeaPrompt(ctx context.Context, idea string) (string, error) {
	if mock.GenerateIdeaPromptFunc == nil {
		panic("classifierMock.GenerateIdeaPromptFunc: method is nil but classifier.GenerateIdeaPrompt was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Idea string
	}{
		Ctx:  ctx,
		Idea: idea,
	}
	mock.lockGenerateIdeaPrompt.Lock()
	mock.calls.GenerateIdeaPrompt = append(mock.calls.GenerateIdeaPrompt, callInfo)
	mock.lockGenerateIdeaPrompt.Unlock()
	return mock.GenerateIdeaPromptFunc(ctx, idea)
}

func (mock *classifierMock) GenerateIdeaPromptCalls() []struct {
	Ctx  context.Context
	Idea string
} {
	var calls []struct {
		Ctx  context.Context
		Idea string
	}
	mock.lockGenerateIdeaPrompt.RLock()
	calls = mock.calls.GenerateIdeaPrompt
	mock.lockGenerateIdeaPrompt.RUnlock()
	return calls
}
