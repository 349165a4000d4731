package rest

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

var _ settingService = &settingServiceMock{}

type settingServiceMock struct {
	ListFunc func(ctx context.Context) (map[string]json.RawMessage, error)
	PutFunc  func(ctx context.Context, key string, value json.RawMessage) (*domain.Setting, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Put []struct {
			Ctx   context.Context
			Key   string
			Value json.RawMessage
		}
	}
	lockList sync.RWMutex
	lockPut  sync.RWMutex
}

func (mock *settingServiceMock) List(ctx context.Context) (map[string]json.RawMessage, error) {
	if mock.ListFunc == nil {
		panic("settingServiceMock.ListFunc: method is nil but settingService.List was just called")
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

func (mock *settingServiceMock) ListCalls() []struct {
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

func (mock *settingServiceMock) Put(ctx context.Context, key string, value json.RawMessage) (*domain.Setting, error) {
	if mock.PutFunc == nil {
		panic("settingServiceMock.PutFunc: method is nil but settingService.Put was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Key   string
		Value json.RawMessage
	}{
		Ctx:   ctx,
		Key:   key,
		Value: value,
	}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, value)
}

func (mock *settingServiceMock) PutCalls() []struct {
	Ctx   context.Context
	Key   string
	Value json.RawMessage
} {
	var calls []struct {
		Ctx   context.Context
		Key   string
		Value json.RawMessage
	}
	mock.lockPut.RLock()
	calls = mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}
