package rest

import (
	"context"
	"sync"

	"github.com/sthacker-ai/NexusLog/internal/domain"
	"github.com/sthacker-ai/NexusLog/internal/service/idea"
)

var _ ideaService = &ideaServiceMock{}

type ideaServiceMock struct {
	ListFunc   func(ctx context.Context, filter domain.IdeaFilter) ([]domain.ContentIdea, error)
	UpdateFunc func(ctx context.Context, input idea.UpdateInput) (*domain.ContentIdea, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.IdeaFilter
		}
		Update []struct {
			Ctx   context.Context
			Input idea.UpdateInput
		}
	}
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *ideaServiceMock) List(ctx context.Context, filter domain.IdeaFilter) ([]domain.ContentIdea, error) {
	if mock.ListFunc == nil {
		panic("ideaServiceMock.ListFunc: method is nil but ideaService.List was just called")
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

func (mock *ideaServiceMock) ListCalls() []struct {
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

func (mock *ideaServiceMock) Update(ctx context.Context, input idea.UpdateInput) (*domain.ContentIdea, error) {
	if mock.UpdateFunc == nil {
		panic("ideaServiceMock.UpdateFunc: method is nil but ideaService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input idea.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *ideaServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input idea.UpdateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input idea.UpdateInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
