package dberr

import (
	"errors"
	"fmt"
	"testing"
)

func TestMarkers(t *testing.T) {
	base := fmt.Errorf("duplicate key")

	err := Unique("users_email_key", base)
	if !errors.Is(err, ErrUniqueViolation) {
		t.Fatalf("expected unique marker, got %v", err)
	}
	if errors.Is(err, ErrForeignKeyViolation) {
		t.Fatalf("unexpected foreign key marker")
	}

	fk := ForeignKey("offers_advertisement_fk", base)
	if !errors.Is(fmt.Errorf("insert: %w", fk), ErrForeignKeyViolation) {
		t.Fatalf("expected foreign key marker through wrapping")
	}
}
