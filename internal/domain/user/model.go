package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Role is the coarse authorization role carried by access tokens.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is a marketplace account profile. Credentials live with the identity provider.
type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	PhoneNumber  string
	Location     string
	Role         Role
	IsBlocked    bool
	CreationDate time.Time
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("user email is required")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return fmt.Errorf("user email is invalid: %s", u.Email)
	}
	if !u.Role.Valid() {
		return fmt.Errorf("invalid user role: %s", u.Role)
	}

	return nil
}

// Principal is the authenticated caller resolved from a bearer token.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
