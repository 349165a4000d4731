package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

// SQLSTATE codes mapped onto domain sentinels.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"22001": domain.ErrValidation,    // string_data_right_truncation
}

// MapError wraps err with "<entity> <key>: " and translates pgx errors into
// domain sentinels. Context errors and unknown codes keep their original
// cause.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	cause := err
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
	case errors.Is(err, pgx.ErrNoRows):
		cause = domain.ErrNotFound
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if mapped, ok := pgCodeErrors[pgErr.Code]; ok {
				cause = mapped
			}
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, cause)
}
