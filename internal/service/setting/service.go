package setting

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

const maxKeyLength = 100

type settingRepo interface {
	List(ctx context.Context) ([]domain.Setting, error)
	Upsert(ctx context.Context, key string, value []byte) (*domain.Setting, error)
}

// Service reads and writes key/value settings.
type Service struct {
	settings settingRepo
	log      *slog.Logger
}

// NewService creates a new Setting service.
func NewService(log *slog.Logger, settings settingRepo) *Service {
	return &Service{
		settings: settings,
		log:      log.With("service", "setting"),
	}
}

// List returns every setting keyed by name.
func (s *Service) List(ctx context.Context) (map[string]json.RawMessage, error) {
	list, err := s.settings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}

	out := make(map[string]json.RawMessage, len(list))
	for _, st := range list {
		out[st.Key] = st.Value
	}
	return out, nil
}

// Put stores value under key, replacing any previous value.
func (s *Service) Put(ctx context.Context, key string, value json.RawMessage) (*domain.Setting, error) {
	key = strings.TrimSpace(key)

	var errs []domain.FieldError
	if key == "" {
		errs = append(errs, domain.FieldError{Field: "key", Message: "required"})
	}
	if utf8.RuneCountInString(key) > maxKeyLength {
		errs = append(errs, domain.FieldError{Field: "key", Message: "max 100 characters"})
	}
	if len(value) == 0 || !json.Valid(value) {
		errs = append(errs, domain.FieldError{Field: "value", Message: "must be valid JSON"})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	st, err := s.settings.Upsert(ctx, key, value)
	if err != nil {
		return nil, fmt.Errorf("put setting: %w", err)
	}

	s.log.InfoContext(ctx, "setting updated", slog.String("key", key))
	return st, nil
}
