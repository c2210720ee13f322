package favorite

import "fmt"

type Kind string

const (
	KindPlayerAdvertisement Kind = "player"
	KindClubAdvertisement   Kind = "club"
)

func (k Kind) Valid() bool {
	return k == KindPlayerAdvertisement || k == KindClubAdvertisement
}

// Favorite marks an advertisement of the given kind as saved by a user.
type Favorite struct {
	ID              string
	Kind            Kind
	UserID          string
	AdvertisementID string
}

func (f Favorite) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("favorite id is required")
	}
	if !f.Kind.Valid() {
		return fmt.Errorf("invalid favorite kind: %s", f.Kind)
	}
	if f.UserID == "" {
		return fmt.Errorf("favorite user id is required")
	}
	if f.AdvertisementID == "" {
		return fmt.Errorf("favorite advertisement id is required")
	}
	return nil
}
