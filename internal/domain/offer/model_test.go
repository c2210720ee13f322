package offer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseStatus(t *testing.T) {
	got, err := ParseStatus(" Accepted ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != StatusAccepted {
		t.Fatalf("unexpected status: %s", got)
	}

	if _, err := ParseStatus("pending"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestClubOffer_Validate(t *testing.T) {
	item := ClubOffer{
		ID:                    "offer-1",
		PlayerAdvertisementID: "ad-1",
		ClubMemberID:          "user-2",
		Status:                StatusOffered,
		PlayerPositionID:      3,
		ClubName:              "Legia",
		League:                "Ekstraklasa",
		Region:                "Mazowieckie",
		Salary:                decimal.RequireFromString("7500.50"),
		CreationDate:          time.Now(),
	}
	if err := item.Validate(); err != nil {
		t.Fatalf("expected valid offer, got %v", err)
	}

	item.Status = "pending"
	if err := item.Validate(); err == nil {
		t.Fatalf("expected invalid status error")
	}
}

func TestPlayerOffer_Validate_NegativeSalary(t *testing.T) {
	item := PlayerOffer{
		ID:                  "offer-1",
		ClubAdvertisementID: "ad-1",
		PlayerID:            "user-1",
		Status:              StatusOffered,
		Age:                 20,
		Height:              180,
		PlayerFootID:        1,
		Salary:              decimal.NewFromInt(-5),
	}
	if err := item.Validate(); err == nil {
		t.Fatalf("expected negative salary error")
	}
}
