package advertisement

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SalaryRange is stored as a JSON value column on both advertisement tables.
type SalaryRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

func (r SalaryRange) Validate() error {
	if r.Min.IsNegative() {
		return fmt.Errorf("salary range min must be >= 0")
	}
	if r.Max.LessThan(r.Min) {
		return fmt.Errorf("salary range max must be >= min")
	}
	return nil
}

// Contains reports whether amount falls inside the range, bounds included.
func (r SalaryRange) Contains(amount decimal.Decimal) bool {
	return !amount.LessThan(r.Min) && !amount.GreaterThan(r.Max)
}

// PlayerAdvertisement is posted by a player looking for a club.
type PlayerAdvertisement struct {
	ID               string
	PlayerID         string
	PlayerPositionID int64
	League           string
	Region           string
	Age              int
	Height           int
	PlayerFootID     int64
	SalaryRange      SalaryRange
	CreationDate     time.Time
	EndDate          time.Time
}

func (a PlayerAdvertisement) IsActive(now time.Time) bool {
	return !a.EndDate.Before(now)
}

func (a PlayerAdvertisement) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("advertisement id is required")
	}
	if a.PlayerID == "" {
		return fmt.Errorf("advertisement player id is required")
	}
	if a.PlayerPositionID <= 0 {
		return fmt.Errorf("advertisement player position is required")
	}
	if a.PlayerFootID <= 0 {
		return fmt.Errorf("advertisement player foot is required")
	}
	if strings.TrimSpace(a.League) == "" {
		return fmt.Errorf("advertisement league is required")
	}
	if strings.TrimSpace(a.Region) == "" {
		return fmt.Errorf("advertisement region is required")
	}
	if a.Age <= 0 {
		return fmt.Errorf("advertisement age must be greater than zero")
	}
	if a.Height <= 0 {
		return fmt.Errorf("advertisement height must be greater than zero")
	}
	if err := a.SalaryRange.Validate(); err != nil {
		return err
	}
	if !a.EndDate.After(a.CreationDate) {
		return fmt.Errorf("advertisement end date must be after creation date")
	}

	return nil
}

// ClubAdvertisement is posted by a club member looking for a player.
type ClubAdvertisement struct {
	ID               string
	ClubMemberID     string
	PlayerPositionID int64
	ClubName         string
	League           string
	Region           string
	SalaryRange      SalaryRange
	CreationDate     time.Time
	EndDate          time.Time
}

func (a ClubAdvertisement) IsActive(now time.Time) bool {
	return !a.EndDate.Before(now)
}

func (a ClubAdvertisement) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("advertisement id is required")
	}
	if a.ClubMemberID == "" {
		return fmt.Errorf("advertisement club member id is required")
	}
	if a.PlayerPositionID <= 0 {
		return fmt.Errorf("advertisement player position is required")
	}
	if strings.TrimSpace(a.ClubName) == "" {
		return fmt.Errorf("advertisement club name is required")
	}
	if strings.TrimSpace(a.League) == "" {
		return fmt.Errorf("advertisement league is required")
	}
	if strings.TrimSpace(a.Region) == "" {
		return fmt.Errorf("advertisement region is required")
	}
	if err := a.SalaryRange.Validate(); err != nil {
		return err
	}
	if !a.EndDate.After(a.CreationDate) {
		return fmt.Errorf("advertisement end date must be after creation date")
	}

	return nil
}

type State string

const (
	StateAll      State = ""
	StateActive   State = "active"
	StateInactive State = "inactive"
)

func ParseState(raw string) (State, error) {
	switch State(strings.ToLower(strings.TrimSpace(raw))) {
	case StateAll, "all":
		return StateAll, nil
	case StateActive:
		return StateActive, nil
	case StateInactive:
		return StateInactive, nil
	default:
		return StateAll, fmt.Errorf("invalid advertisement state: %s", raw)
	}
}

// Filter narrows list and count queries. Now is the reference time for State.
type Filter struct {
	State   State
	OwnerID string
	Now     time.Time
}
