package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/scout-market/internal/domain/offer"
	"github.com/riskibarqy/scout-market/internal/platform/dberr"
)

type ClubOfferRepository struct {
	db *Database
}

func NewClubOfferRepository(db *Database) *ClubOfferRepository {
	return &ClubOfferRepository{db: db}
}

func (r *ClubOfferRepository) Create(_ context.Context, item offer.ClubOffer) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if err := r.checkRefs(item); err != nil {
		return err
	}
	r.db.clubOffers.insert(item.ID, item)
	return nil
}

func (r *ClubOfferRepository) Update(_ context.Context, item offer.ClubOffer) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if err := r.checkRefs(item); err != nil {
		return err
	}
	if !r.db.clubOffers.replace(item.ID, item) {
		return fmt.Errorf("club offer not found: %s", item.ID)
	}
	return nil
}

func (r *ClubOfferRepository) UpdateStatus(_ context.Context, id string, status offer.Status) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	item, ok := r.db.clubOffers.get(id)
	if !ok {
		return false, nil
	}
	item.Status = status
	return r.db.clubOffers.replace(id, item), nil
}

func (r *ClubOfferRepository) Delete(_ context.Context, id string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	return r.db.clubOffers.remove(id), nil
}

func (r *ClubOfferRepository) GetByID(_ context.Context, id string) (offer.ClubOffer, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.clubOffers.get(id)
	return item, ok, nil
}

func (r *ClubOfferRepository) List(_ context.Context, filter offer.Filter) ([]offer.ClubOffer, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.db.clubOffers.list(r.matcher(filter)), nil
}

func (r *ClubOfferRepository) Count(_ context.Context, filter offer.Filter) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.db.clubOffers.count(r.matcher(filter)), nil
}

func (r *ClubOfferRepository) matcher(filter offer.Filter) func(offer.ClubOffer) bool {
	return func(o offer.ClubOffer) bool {
		if filter.Status != "" && o.Status != filter.Status {
			return false
		}
		if filter.MakerID != "" && o.ClubMemberID != filter.MakerID {
			return false
		}
		if filter.ReceiverID != "" {
			ad, ok := r.db.playerAds.get(o.PlayerAdvertisementID)
			if !ok || ad.PlayerID != filter.ReceiverID {
				return false
			}
		}
		return true
	}
}

func (r *ClubOfferRepository) checkRefs(item offer.ClubOffer) error {
	if _, ok := r.db.playerAds.get(item.PlayerAdvertisementID); !ok {
		return dberr.ForeignKey("club_offers_player_advertisement_id_fkey", fmt.Errorf("player advertisement %s does not exist", item.PlayerAdvertisementID))
	}
	if err := r.db.requireUser("club_offers_club_member_id_fkey", item.ClubMemberID); err != nil {
		return err
	}
	return r.db.requirePosition("club_offers_player_position_id_fkey", item.PlayerPositionID)
}

type PlayerOfferRepository struct {
	db *Database
}

func NewPlayerOfferRepository(db *Database) *PlayerOfferRepository {
	return &PlayerOfferRepository{db: db}
}

func (r *PlayerOfferRepository) Create(_ context.Context, item offer.PlayerOffer) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if err := r.checkRefs(item); err != nil {
		return err
	}
	r.db.playerOffers.insert(item.ID, item)
	return nil
}

func (r *PlayerOfferRepository) Update(_ context.Context, item offer.PlayerOffer) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if err := r.checkRefs(item); err != nil {
		return err
	}
	if !r.db.playerOffers.replace(item.ID, item) {
		return fmt.Errorf("player offer not found: %s", item.ID)
	}
	return nil
}

func (r *PlayerOfferRepository) UpdateStatus(_ context.Context, id string, status offer.Status) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	item, ok := r.db.playerOffers.get(id)
	if !ok {
		return false, nil
	}
	item.Status = status
	return r.db.playerOffers.replace(id, item), nil
}

func (r *PlayerOfferRepository) Delete(_ context.Context, id string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	return r.db.playerOffers.remove(id), nil
}

func (r *PlayerOfferRepository) GetByID(_ context.Context, id string) (offer.PlayerOffer, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	item, ok := r.db.playerOffers.get(id)
	return item, ok, nil
}

func (r *PlayerOfferRepository) List(_ context.Context, filter offer.Filter) ([]offer.PlayerOffer, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.db.playerOffers.list(r.matcher(filter)), nil
}

func (r *PlayerOfferRepository) Count(_ context.Context, filter offer.Filter) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.db.playerOffers.count(r.matcher(filter)), nil
}

func (r *PlayerOfferRepository) matcher(filter offer.Filter) func(offer.PlayerOffer) bool {
	return func(o offer.PlayerOffer) bool {
		if filter.Status != "" && o.Status != filter.Status {
			return false
		}
		if filter.MakerID != "" && o.PlayerID != filter.MakerID {
			return false
		}
		if filter.ReceiverID != "" {
			ad, ok := r.db.clubAds.get(o.ClubAdvertisementID)
			if !ok || ad.ClubMemberID != filter.ReceiverID {
				return false
			}
		}
		return true
	}
}

func (r *PlayerOfferRepository) checkRefs(item offer.PlayerOffer) error {
	if _, ok := r.db.clubAds.get(item.ClubAdvertisementID); !ok {
		return dberr.ForeignKey("player_offers_club_advertisement_id_fkey", fmt.Errorf("club advertisement %s does not exist", item.ClubAdvertisementID))
	}
	if err := r.db.requireUser("player_offers_player_id_fkey", item.PlayerID); err != nil {
		return err
	}
	return r.db.requireFoot("player_offers_player_foot_id_fkey", item.PlayerFootID)
}
