package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/scout-market/internal/platform/dberr"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrConflict              = errors.New("conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// wrapStoreError translates constraint violations raised by repositories into
// use case sentinels and wraps everything else with op.
func wrapStoreError(op string, err error) error {
	switch {
	case errors.Is(err, dberr.ErrUniqueViolation):
		return fmt.Errorf("%w: %s: %v", ErrConflict, op, err)
	case errors.Is(err, dberr.ErrForeignKeyViolation):
		return fmt.Errorf("%w: %s: %v", ErrInvalidInput, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
