// Package dberr holds storage-agnostic constraint errors shared by every
// repository implementation.
package dberr

import (
	"errors"
	"fmt"
)

var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// Unique marks err as a unique constraint violation on constraint.
func Unique(constraint string, err error) error {
	return fmt.Errorf("constraint %s: %w: %w", constraint, ErrUniqueViolation, err)
}

// ForeignKey marks err as a foreign key violation on constraint.
func ForeignKey(constraint string, err error) error {
	return fmt.Errorf("constraint %s: %w: %w", constraint, ErrForeignKeyViolation, err)
}
