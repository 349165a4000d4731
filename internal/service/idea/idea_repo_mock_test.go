package idea

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sthacker-ai/NexusLog/internal/domain"
)

var _ ideaRepo = &ideaRepoMock{}

type ideaRepoMock struct {
	ListFunc   func(ctx context.Context, filter domain.IdeaFilter) ([]domain.ContentIdea, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, params domain.IdeaUpdateParams) (*domain.ContentIdea, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.IdeaFilter
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.IdeaUpdateParams
		}
	}
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *ideaRepoMock) List(ctx context.Context, filter domain.IdeaFilter) ([]domain.ContentIdea, error) {
	if mock.ListFunc == nil {
		panic("ideaRepoMock.ListFunc: method is nil but ideaRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.IdeaFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *ideaRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.IdeaFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.IdeaFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *ideaRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.IdeaUpdateParams) (*domain.ContentIdea, error) {
	if mock.UpdateFunc == nil {
		panic("ideaRepoMock.UpdateFunc: method is nil but ideaRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.IdeaUpdateParams
	}{
		Ctx:    ctx,
		ID:     id,
		Params: params,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *ideaRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.IdeaUpdateParams
} {
	var calls []struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.IdeaUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
