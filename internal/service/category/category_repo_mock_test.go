package category

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sthacker-ai/NexusLog/internal/domain"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	GetByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	FindTopLevelByNameFunc    func(ctx context.Context, name string) (*domain.Category, error)
	FindSubcategoryByNameFunc func(ctx context.Context, name string) (*domain.Category, error)
	FindSubcategoryFunc       func(ctx context.Context, parentID uuid.UUID, name string) (*domain.Category, error)
	CountTopLevelFunc         func(ctx context.Context) (int, error)
	ListTopLevelFunc          func(ctx context.Context) ([]domain.Category, error)
	ListSubcategoriesFunc     func(ctx context.Context, parentID uuid.UUID) ([]domain.Category, error)
	CreateFunc                func(ctx context.Context, c *domain.Category) (*domain.Category, error)
	UpdateFunc                func(ctx context.Context, id uuid.UUID, params domain.CategoryUpdateParams) (*domain.Category, error)
	DeleteFunc                func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		FindTopLevelByName []struct {
			Ctx  context.Context
			Name string
		}
		FindSubcategoryByName []struct {
			Ctx  context.Context
			Name string
		}
		FindSubcategory []struct {
			Ctx      context.Context
			ParentID uuid.UUID
			Name     string
		}
		CountTopLevel []struct {
			Ctx context.Context
		}
		ListTopLevel []struct {
			Ctx context.Context
		}
		ListSubcategories []struct {
			Ctx      context.Context
			ParentID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Category
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.CategoryUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID               sync.RWMutex
	lockFindTopLevelByName    sync.RWMutex
	lockFindSubcategoryByName sync.RWMutex
	lockFindSubcategory       sync.RWMutex
	lockCountTopLevel         sync.RWMutex
	lockListTopLevel          sync.RWMutex
	lockListSubcategories     sync.RWMutex
	lockCreate                sync.RWMutex
	lockUpdate                sync.RWMutex
	lockDelete                sync.RWMutex
}

func (mock *categoryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if mock.GetByIDFunc == nil {
		panic("categoryRepoMock.GetByIDFunc: method is nil but categoryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *categoryRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *categoryRepoMock) FindTopLevelByName(ctx context.Context, name string) (*domain.Category, error) {
	if mock.FindTopLevelByNameFunc == nil {
		panic("categoryRepoMock.FindTopLevelByNameFunc: method is nil but categoryRepo.FindTopLevelByName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockFindTopLevelByName.Lock()
	mock.calls.FindTopLevelByName = append(mock.calls.FindTopLevelByName, callInfo)
	mock.lockFindTopLevelByName.Unlock()
	return mock.FindTopLevelByNameFunc(ctx, name)
}

func (mock *categoryRepoMock) FindTopLevelByNameCalls() []struct {
	Ctx  context.Context
	Name string
} {
	var calls []struct {
		Ctx  context.Context
		Name string
	}
	mock.lockFindTopLevelByName.RLock()
	calls = mock.calls.FindTopLevelByName
	mock.lockFindTopLevelByName.RUnlock()
	return calls
}

func (mock *categoryRepoMock) FindSubcategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	if mock.FindSubcategoryByNameFunc == nil {
		panic("categoryRepoMock.FindSubcategoryByNameFunc: method is nil but categoryRepo.FindSubcategoryByName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockFindSubcategoryByName.Lock()
	mock.calls.FindSubcategoryByName = append(mock.calls.FindSubcategoryByName, callInfo)
	mock.lockFindSubcategoryByName.Unlock()
	return mock.FindSubcategoryByNameFunc(ctx, name)
}

func (mock *categoryRepoMock) FindSubcategoryByNameCalls() []struct {
	Ctx  context.Context
	Name string
} {
	var calls []struct {
		Ctx  context.Context
		Name string
	}
	mock.lockFindSubcategoryByName.RLock()
	calls = mock.calls.FindSubcategoryByName
	mock.lockFindSubcategoryByName.RUnlock()
	return calls
}

func (mock *categoryRepoMock) FindSubcategory(ctx context.Context, parentID uuid.UUID, name string) (*domain.Category, error) {
	if mock.FindSubcategoryFunc == nil {
		panic("categoryRepoMock.FindSubcategoryFunc: method is nil but categoryRepo.FindSubcategory was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ParentID uuid.UUID
		Name     string
	}{
		Ctx:      ctx,
		ParentID: parentID,
		Name:     name,
	}
	mock.lockFindSubcategory.Lock()
	mock.calls.FindSubcategory = append(mock.calls.FindSubcategory, callInfo)
	mock.lockFindSubcategory.Unlock()
	return mock.FindSubcategoryFunc(ctx, parentID, name)
}

func (mock *categoryRepoMock) FindSubcategoryCalls() []struct {
	Ctx      context.Context
	ParentID uuid.UUID
	Name     string
} {
	var calls []struct {
		Ctx      context.Context
		ParentID uuid.UUID
		Name     string
	}
	mock.lockFindSubcategory.RLock()
	calls = mock.calls.FindSubcategory
	mock.lockFindSubcategory.RUnlock()
	return calls
}

func (mock *categoryRepoMock) CountTopLevel(ctx context.Context) (int, error) {
	if mock.CountTopLevelFunc == nil {
		panic("categoryRepoMock.CountTopLevelFunc: method is nil but categoryRepo.CountTopLevel was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCountTopLevel.Lock()
	mock.calls.CountTopLevel = append(mock.calls.CountTopLevel, callInfo)
	mock.lockCountTopLevel.Unlock()
	return mock.CountTopLevelFunc(ctx)
}

func (mock *categoryRepoMock) CountTopLevelCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCountTopLevel.RLock()
	calls = mock.calls.CountTopLevel
	mock.lockCountTopLevel.RUnlock()
	return calls
}

func (mock *categoryRepoMock) ListTopLevel(ctx context.Context) ([]domain.Category, error) {
	if mock.ListTopLevelFunc == nil {
		panic("categoryRepoMock.ListTopLevelFunc: method is nil but categoryRepo.ListTopLevel was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListTopLevel.Lock()
	mock.calls.ListTopLevel = append(mock.calls.ListTopLevel, callInfo)
	mock.lockListTopLevel.Unlock()
	return mock.ListTopLevelFunc(ctx)
}

func (mock *categoryRepoMock) ListTopLevelCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListTopLevel.RLock()
	calls = mock.calls.ListTopLevel
	mock.lockListTopLevel.RUnlock()
	return calls
}

func (mock *categoryRepoMock) ListSubcategories(ctx context.Context, parentID uuid.UUID) ([]domain.Category, error) {
	if mock.ListSubcategoriesFunc == nil {
		panic("categoryRepoMock.ListSubcategoriesFunc: method is nil but categoryRepo.ListSubcategories was just called")
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

func (mock *categoryRepoMock) ListSubcategoriesCalls() []struct {
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

func (mock *categoryRepoMock) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	if mock.CreateFunc == nil {
		panic("categoryRepoMock.CreateFunc: method is nil but categoryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Category
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *categoryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Category
} {
	var calls []struct {
		Ctx context.Context
		C   *domain.Category
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.CategoryUpdateParams) (*domain.Category, error) {
	if mock.UpdateFunc == nil {
		panic("categoryRepoMock.UpdateFunc: method is nil but categoryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.CategoryUpdateParams
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

func (mock *categoryRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.CategoryUpdateParams
} {
	var calls []struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.CategoryUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("categoryRepoMock.DeleteFunc: method is nil but categoryRepo.Delete was just called")
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

func (mock *categoryRepoMock) DeleteCalls() []struct {
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
