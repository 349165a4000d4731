package intake

import (
	"context"
	"sync"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	CreateFunc func(ctx context.Context, e *domain.Entry) (*domain.Entry, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.Entry
		}
	}
	lockCreate sync.RWMutex
}

func (mock *entryRepoMock) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Entry
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.Entry
} {
	var calls []struct {
		Ctx context.Context
		E   *domain.Entry
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
