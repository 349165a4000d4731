package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sthacker-ai/NexusLog/internal/domain"
	"github.com/sthacker-ai/NexusLog/internal/service/category"
)

var _ categoryService = &categoryServiceMock{}

type categoryServiceMock struct {
	ListFunc              func(ctx context.Context) ([]domain.Category, error)
	ListSubcategoriesFunc func(ctx context.Context, parentID uuid.UUID) ([]domain.Category, error)
	CreateFunc            func(ctx context.Context, input category.CreateInput) (*domain.Category, error)
	UpdateFunc            func(ctx context.Context, input category.UpdateInput) (*domain.Category, error)
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		ListSubcategories []struct {
			Ctx      context.Context
			ParentID uuid.UUID
		}
		Create []struct {
			Ctx   context.Context
			Input category.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			Input category.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList              sync.RWMutex
	lockListSubcategories sync.RWMutex
	lockCreate            sync.RWMutex
	lockUpdate            sync.RWMutex
	lockDelete            sync.RWMutex
}

func (mock *categoryServiceMock) List(ctx context.Context) ([]domain.Category, error) {
	if mock.ListFunc == nil {
		panic("categoryServiceMock.ListFunc: method is nil but categoryService.List was just called")
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

func (mock *categoryServiceMock) ListCalls() []struct {
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

func (mock *categoryServiceMock) ListSubcategories(ctx context.Context, parentID uuid.UUID) ([]domain.Category, error) {
	if mock.ListSubcategoriesFunc == nil {
		panic("categoryServiceMock.ListSubcategoriesFunc: method is nil but categoryService.ListSubcategories was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ParentID uuid.UUID
	}{
		Ctx:      ctx,
		ParentID: parentID,
	}
	mock.lockListSubcategories.Lock()
	mock.calls.ListSubcategories = append(mock.calls.ListSubcategories, callInfo)
	mock.lockListSubcategories.Unlock()
	return mock.ListSubcategoriesFunc(ctx, parentID)
}

func (mock *categoryServiceMock) ListSubcategoriesCalls() []struct {
	Ctx      context.Context
	ParentID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		ParentID uuid.UUID
	}
	mock.lockListSubcategories.RLock()
	calls = mock.calls.ListSubcategories
	mock.lockListSubcategories.RUnlock()
	return calls
}

func (mock *categoryServiceMock) Create(ctx context.Context, input category.CreateInput) (*domain.Category, error) {
	if mock.CreateFunc == nil {
		panic("categoryServiceMock.CreateFunc: method is nil but categoryService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input category.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *categoryServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input category.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input category.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *categoryServiceMock) Update(ctx context.Context, input category.UpdateInput) (*domain.Category, error) {
	if mock.UpdateFunc == nil {
		panic("categoryServiceMock.UpdateFunc: method is nil but categoryService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input category.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *categoryServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input category.UpdateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input category.UpdateInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *categoryServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("categoryServiceMock.DeleteFunc: method is nil but categoryService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *categoryServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
