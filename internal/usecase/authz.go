package usecase

import (
	"fmt"

	"github.com/riskibarqy/scout-market/internal/domain/user"
)

func requireActor(actor user.Principal) error {
	if actor.UserID == "" {
		return fmt.Errorf("%w: missing principal", ErrUnauthorized)
	}
	return nil
}

func requireAdmin(actor user.Principal) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: admin role required", ErrForbidden)
	}
	return nil
}

// requireOwnerOrAdmin allows admins and the user owning the resource.
func requireOwnerOrAdmin(actor user.Principal, ownerID, resource string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if actor.IsAdmin() || actor.UserID == ownerID {
		return nil
	}
	return fmt.Errorf("%w: %s belongs to another user", ErrForbidden, resource)
}
