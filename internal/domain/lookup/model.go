package lookup

// Position is a playing position listed on advertisements and offers.
type Position struct {
	ID   int64
	Name string
}

// Foot is a player's preferred foot.
type Foot struct {
	ID   int64
	Name string
}
