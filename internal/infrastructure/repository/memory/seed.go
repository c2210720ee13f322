package memory

import "github.com/riskibarqy/scout-market/internal/domain/lookup"

// SeedPositions lists the lookup rows shared by every storage driver.
func SeedPositions() []lookup.Position {
	return []lookup.Position{
		{ID: 1, Name: "Goalkeeper"},
		{ID: 2, Name: "Center Back"},
		{ID: 3, Name: "Left Back"},
		{ID: 4, Name: "Right Back"},
		{ID: 5, Name: "Defensive Midfielder"},
		{ID: 6, Name: "Central Midfielder"},
		{ID: 7, Name: "Attacking Midfielder"},
		{ID: 8, Name: "Left Winger"},
		{ID: 9, Name: "Right Winger"},
		{ID: 10, Name: "Striker"},
	}
}

func SeedFeet() []lookup.Foot {
	return []lookup.Foot{
		{ID: 1, Name: "Left"},
		{ID: 2, Name: "Right"},
		{ID: 3, Name: "Both"},
	}
}
