package telegram

import (
	"context"
	"sync"

	"github.com/sthacker-ai/NexusLog/internal/domain"
	"github.com/sthacker-ai/NexusLog/internal/service/intake"
)

var _ ingester = &ingesterMock{}

type ingesterMock struct {
	IngestFunc func(ctx context.Context, input intake.IngestInput) (*domain.IngestResult, error)

	calls struct {
		Ingest []struct {
			Ctx   context.Context
			Input intake.IngestInput
		}
	}
	lockIngest sync.RWMutex
}

func (mock *ingesterMock) Ingest(ctx context.Context, input intake.IngestInput) (*domain.IngestResult, error) {
	if mock.IngestFunc == nil {
		panic("ingesterMock.IngestFunc: method is nil but ingester.Ingest was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input intake.IngestInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockIngest.Lock()
	mock.calls.Ingest = append(mock.calls.Ingest, callInfo)
	mock.lockIngest.Unlock()
	return mock.IngestFunc(ctx, input)
}

func (mock *ingesterMock) IngestCalls() []struct {
	Ctx   context.Context
	Input intake.IngestInput
} {
	var calls []struct {
		Ctx   context.Context
		Input intake.IngestInput
	}
	mock.lockIngest.RLock()
	calls = mock.calls.Ingest
	mock.lockIngest.RUnlock()
	return calls
}
