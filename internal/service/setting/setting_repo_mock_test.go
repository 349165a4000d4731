package setting

import (
	"context"
	"sync"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

var _ settingRepo = &settingRepoMock{}

type settingRepoMock struct {
	ListFunc   func(ctx context.Context) ([]domain.Setting, error)
	UpsertFunc func(ctx context.Context, key string, value []byte) (*domain.Setting, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Upsert []struct {
			Ctx   context.Context
			Key   string
			Value []byte
		}
	}
	lockList   sync.RWMutex
	lockUpsert sync.RWMutex
}

func (mock *settingRepoMock) List(ctx context.Context) ([]domain.Setting, error) {
	if mock.ListFunc == nil {
		panic("settingRepoMock.ListFunc: method is nil but settingRepo.List was just called")
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

func (mock *settingRepoMock) ListCalls() []struct {
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

func (mock *settingRepoMock) Upsert(ctx context.Context, key string, value []byte) (*domain.Setting, error) {
	if mock.UpsertFunc == nil {
		panic("settingRepoMock.UpsertFunc: method is nil but settingRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Key   string
		Value []byte
	}{
		Ctx:   ctx,
		Key:   key,
		Value: value,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, key, value)
}

func (mock *settingRepoMock) UpsertCalls() []struct {
	Ctx   context.Context
	Key   string
	Value []byte
} {
	var calls []struct {
		Ctx   context.Context
		Key   string
		Value []byte
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
