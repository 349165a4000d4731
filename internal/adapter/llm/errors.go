package llm

import (
	"errors"
	"fmt"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("llm client disabled: no api key")

// ClassificationError reports a failed classification. Op names the stage
// that failed: "call" for the provider request, "parse" for the response.
type ClassificationError struct {
	Op  string
	Err error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classification %s: %v", e.Op, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, domain.ErrClassification) hold for every
// ClassificationError.
func (e *ClassificationError) Is(target error) bool {
	return target == domain.ErrClassification
}

func callError(err error) error {
	return &ClassificationError{Op: "call", Err: err}
}

func parseError(format string, args ...any) error {
	return &ClassificationError{Op: "parse", Err: fmt.Errorf(format, args...)}
}
