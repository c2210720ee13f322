package clubhistory

import (
	"fmt"
	"strings"
	"time"
)

// Achievements is stored as a JSON value column.
type Achievements struct {
	NumberOfMatches        int    `json:"numberOfMatches"`
	Goals                  int    `json:"goals"`
	Assists                int    `json:"assists"`
	AdditionalAchievements string `json:"additionalAchievements"`
}

func (a Achievements) Validate() error {
	if a.NumberOfMatches < 0 || a.Goals < 0 || a.Assists < 0 {
		return fmt.Errorf("achievement counters must be >= 0")
	}
	return nil
}

type ClubHistory struct {
	ID               string
	PlayerID         string
	ClubName         string
	League           string
	Region           string
	PlayerPositionID int64
	Achievements     Achievements
	StartDate        time.Time
	EndDate          time.Time
}

func (h ClubHistory) Validate() error {
	if h.ID == "" {
		return fmt.Errorf("club history id is required")
	}
	if h.PlayerID == "" {
		return fmt.Errorf("club history player id is required")
	}
	if strings.TrimSpace(h.ClubName) == "" {
		return fmt.Errorf("club history club name is required")
	}
	if strings.TrimSpace(h.League) == "" || strings.TrimSpace(h.Region) == "" {
		return fmt.Errorf("club history league and region are required")
	}
	if h.PlayerPositionID <= 0 {
		return fmt.Errorf("club history player position is required")
	}
	if h.StartDate.IsZero() || h.EndDate.IsZero() {
		return fmt.Errorf("club history start and end dates are required")
	}
	if h.EndDate.Before(h.StartDate) {
		return fmt.Errorf("club history end date must not be before start date")
	}
	return h.Achievements.Validate()
}
