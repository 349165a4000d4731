package rest

import (
	"context"
	"sync"

	"github.com/sthacker-ai/NexusLog/internal/domain"
	"github.com/sthacker-ai/NexusLog/internal/service/project"
)

var _ projectService = &projectServiceMock{}

type projectServiceMock struct {
	ListFunc   func(ctx context.Context) ([]domain.Project, error)
	CreateFunc func(ctx context.Context, input project.CreateInput) (*domain.Project, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx   context.Context
			Input project.CreateInput
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
}

func (mock *projectServiceMock) List(ctx context.Context) ([]domain.Project, error) {
	if mock.ListFunc == nil {
		panic("projectServiceMock.ListFunc: method is nil but projectService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *projectServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *projectServiceMock) Create(ctx context.Context, input project.CreateInput) (*domain.Project, error) {
	if mock.CreateFunc == nil {
		panic("projectServiceMock.CreateFunc: method is nil but projectService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input project.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *projectServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input project.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input project.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
