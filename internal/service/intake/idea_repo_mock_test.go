package intake

import (
	"context"
	"sync"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

var _ ideaRepo = &ideaRepoMock{}

type ideaRepoMock struct {
	CreateFunc func(ctx context.Context, idea *domain.ContentIdea) (*domain.ContentIdea, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Idea *domain.ContentIdea
		}
	}
	lockCreate sync.RWMutex
}

func (mock *ideaRepoMock) Create(ctx context.Context, idea *domain.ContentIdea) (*domain.ContentIdea, error) {
	if mock.CreateFunc == nil {
		panic("ideaRepoMock.CreateFunc: method is nil but ideaRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Idea *domain.ContentIdea
	}{
		Ctx:  ctx,
		Idea: idea,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, idea)
}

func (mock *ideaRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Idea *domain.ContentIdea
} {
	var calls []struct {
		Ctx  context.Context
		Idea *domain.ContentIdea
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
