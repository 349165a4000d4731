package entry

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sthacker-ai/NexusLog/internal/domain"
)

var _ ideaRepo = &ideaRepoMock{}

type ideaRepoMock struct {
	ListByEntryIDsFunc func(ctx context.Context, entryIDs []uuid.UUID) ([]domain.ContentIdea, error)
	CreateFunc         func(ctx context.Context, idea *domain.ContentIdea) (*domain.ContentIdea, error)

	calls struct {
		ListByEntryIDs []struct {
			Ctx      context.Context
			EntryIDs []uuid.UUID
		}
		Create []struct {
			Ctx  context.Context
			Idea *domain.ContentIdea
		}
	}
	lockListByEntryIDs sync.RWMutex
	lockCreate         sync.RWMutex
}

func (mock *ideaRepoMock) ListByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]domain.ContentIdea, error) {
	if mock.ListByEntryIDsFunc == nil {
		panic("ideaRepoMock.ListByEntryIDsFunc: method is nil but ideaRepo.ListByEntryIDs was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		EntryIDs []uuid.UUID
	}{
		Ctx:      ctx,
		EntryIDs: entryIDs,
	}
	mock.lockListByEntryIDs.Lock()
	mock.calls.ListByEntryIDs = append(mock.calls.ListByEntryIDs, callInfo)
	mock.lockListByEntryIDs.Unlock()
	return mock.ListByEntryIDsFunc(ctx, entryIDs)
}

func (mock *ideaRepoMock) ListByEntryIDsCalls() []struct {
	Ctx      context.Context
	EntryIDs []uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		EntryIDs []uuid.UUID
	}
	mock.lockListByEntryIDs.RLock()
	calls = mock.calls.ListByEntryIDs
	mock.lockListByEntryIDs.RUnlock()
	return calls
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
