package offer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusOffered  Status = "offered"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Statuses lists every status in lifecycle order.
func Statuses() []Status {
	return []Status{StatusOffered, StatusAccepted, StatusRejected}
}

func (s Status) Valid() bool {
	switch s {
	case StatusOffered, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("invalid offer status: %s", raw)
	}
	return s, nil
}

// ClubOffer is a club's response to a player advertisement.
type ClubOffer struct {
	ID                    string
	PlayerAdvertisementID string
	ClubMemberID          string
	Status                Status
	PlayerPositionID      int64
	ClubName              string
	League                string
	Region                string
	Salary                decimal.Decimal
	AdditionalInformation string
	CreationDate          time.Time
}

func (o ClubOffer) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("offer id is required")
	}
	if o.PlayerAdvertisementID == "" {
		return fmt.Errorf("offer player advertisement id is required")
	}
	if o.ClubMemberID == "" {
		return fmt.Errorf("offer club member id is required")
	}
	if !o.Status.Valid() {
		return fmt.Errorf("invalid offer status: %s", o.Status)
	}
	if o.PlayerPositionID <= 0 {
		return fmt.Errorf("offer player position is required")
	}
	if strings.TrimSpace(o.ClubName) == "" {
		return fmt.Errorf("offer club name is required")
	}
	if strings.TrimSpace(o.League) == "" || strings.TrimSpace(o.Region) == "" {
		return fmt.Errorf("offer league and region are required")
	}
	if o.Salary.IsNegative() {
		return fmt.Errorf("offer salary must be >= 0")
	}

	return nil
}

// PlayerOffer is a player's response to a club advertisement.
type PlayerOffer struct {
	ID                    string
	ClubAdvertisementID   string
	PlayerID              string
	Status                Status
	Age                   int
	Height                int
	PlayerFootID          int64
	Salary                decimal.Decimal
	AdditionalInformation string
	CreationDate          time.Time
}

func (o PlayerOffer) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("offer id is required")
	}
	if o.ClubAdvertisementID == "" {
		return fmt.Errorf("offer club advertisement id is required")
	}
	if o.PlayerID == "" {
		return fmt.Errorf("offer player id is required")
	}
	if !o.Status.Valid() {
		return fmt.Errorf("invalid offer status: %s", o.Status)
	}
	if o.Age <= 0 || o.Height <= 0 {
		return fmt.Errorf("offer age and height must be greater than zero")
	}
	if o.PlayerFootID <= 0 {
		return fmt.Errorf("offer player foot is required")
	}
	if o.Salary.IsNegative() {
		return fmt.Errorf("offer salary must be >= 0")
	}

	return nil
}

// Filter narrows list and count queries. Empty fields match everything.
// ReceiverID selects offers made on advertisements owned by that user.
type Filter struct {
	Status     Status
	MakerID    string
	ReceiverID string
}
