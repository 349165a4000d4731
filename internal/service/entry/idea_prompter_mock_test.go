package entry

import (
	"context"
	"sync"
)

var _ ideaPrompter = &ideaPrompterMock{}

type ideaPrompterMock struct {
	GenerateIdeaPromptFunc func(ctx context.Context, idea string) (string, error)

	calls struct {
		GenerateIdeaPrompt []struct {
			Ctx  context.Context
			Idea string
		}
	}
	lockGenerateIdeaPrompt sync.RWMutex
}

func (mock *ideaPrompterMock) GenerateIdeaPrompt(ctx context.Context, idea string) (string, error) {
	if mock.GenerateIdeaPromptFunc == nil {
		panic("ideaPrompterMock.GenerateIdeaPromptFunc: method is nil but ideaPrompter.GenerateIdeaPrompt was just called")
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

func (mock *ideaPrompterMock) GenerateIdeaPromptCalls() []struct {
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
