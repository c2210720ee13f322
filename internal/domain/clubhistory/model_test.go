package clubhistory

import (
	"testing"
	"time"
)

func TestClubHistory_Validate(t *testing.T) {
	start := time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC)
	item := ClubHistory{
		ID:               "h-1",
		PlayerID:         "user-1",
		ClubName:         "Lech",
		League:           "Ekstraklasa",
		Region:           "Wielkopolskie",
		PlayerPositionID: 9,
		Achievements:     Achievements{NumberOfMatches: 34, Goals: 12, Assists: 4},
		StartDate:        start,
		EndDate:          start,
	}
	if err := item.Validate(); err != nil {
		t.Fatalf("same-day start and end should be valid: %v", err)
	}

	item.EndDate = start.AddDate(0, 0, -1)
	if err := item.Validate(); err == nil {
		t.Fatalf("expected end-before-start error")
	}

	item.EndDate = start.AddDate(1, 0, 0)
	item.Achievements.Goals = -1
	if err := item.Validate(); err == nil {
		t.Fatalf("expected negative counter error")
	}
}
