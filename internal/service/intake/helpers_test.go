package intake

import (
	"context"
	"io"
	"log/slog"

	"github.com/sthacker-ai/NexusLog/internal/service/category"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type failingResolver struct {
	err error
}

func (r *failingResolver) TopLevelNames(context.Context) ([]string, error) {
	return nil, r.err
}

func (r *failingResolver) Resolve(context.Context, string, string) (*category.Resolution, error) {
	return nil, r.err
}
