package memory

import (
	"fmt"
	"sync"

	"github.com/riskibarqy/scout-market/internal/domain/advertisement"
	"github.com/riskibarqy/scout-market/internal/domain/chat"
	"github.com/riskibarqy/scout-market/internal/domain/clubhistory"
	"github.com/riskibarqy/scout-market/internal/domain/favorite"
	"github.com/riskibarqy/scout-market/internal/domain/lookup"
	"github.com/riskibarqy/scout-market/internal/domain/offer"
	"github.com/riskibarqy/scout-market/internal/domain/problem"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	"github.com/riskibarqy/scout-market/internal/platform/dberr"
)

// table keeps rows in insertion order.
type table[T any] struct {
	items  map[string]T
	orders []string
}

func newTable[T any]() *table[T] {
	return &table[T]{items: make(map[string]T)}
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.items[id]
	return v, ok
}

func (t *table[T]) insert(id string, v T) {
	if _, ok := t.items[id]; !ok {
		t.orders = append(t.orders, id)
	}
	t.items[id] = v
}

// replace updates an existing row and reports whether it existed.
func (t *table[T]) replace(id string, v T) bool {
	if _, ok := t.items[id]; !ok {
		return false
	}
	t.items[id] = v
	return true
}

func (t *table[T]) remove(id string) bool {
	if _, ok := t.items[id]; !ok {
		return false
	}
	delete(t.items, id)
	for i, existing := range t.orders {
		if existing == id {
			t.orders = append(t.orders[:i], t.orders[i+1:]...)
			break
		}
	}
	return true
}

// removeWhere deletes every row matching fn and returns their ids.
func (t *table[T]) removeWhere(fn func(T) bool) []string {
	var removed []string
	kept := t.orders[:0]
	for _, id := range t.orders {
		if fn(t.items[id]) {
			delete(t.items, id)
			removed = append(removed, id)
			continue
		}
		kept = append(kept, id)
	}
	t.orders = kept
	return removed
}

func (t *table[T]) list(fn func(T) bool) []T {
	out := make([]T, 0, len(t.orders))
	for _, id := range t.orders {
		v := t.items[id]
		if fn == nil || fn(v) {
			out = append(out, v)
		}
	}
	return out
}

func (t *table[T]) count(fn func(T) bool) int {
	if fn == nil {
		return len(t.items)
	}
	n := 0
	for _, v := range t.items {
		if fn(v) {
			n++
		}
	}
	return n
}

// Database is an in-process store that applies the same unique, foreign key
// and cascade rules as the SQL schema. Repositories share one lock.
type Database struct {
	mu sync.RWMutex

	users           *table[user.User]
	playerAds       *table[advertisement.PlayerAdvertisement]
	clubAds         *table[advertisement.ClubAdvertisement]
	clubOffers      *table[offer.ClubOffer]
	playerOffers    *table[offer.PlayerOffer]
	histories       *table[clubhistory.ClubHistory]
	chats           *table[chat.Chat]
	messages        *table[chat.Message]
	playerFavorites *table[favorite.Favorite]
	clubFavorites   *table[favorite.Favorite]
	problems        *table[problem.Problem]
	positions       []lookup.Position
	feet            []lookup.Foot
}

func NewDatabase() *Database {
	return &Database{
		users:           newTable[user.User](),
		playerAds:       newTable[advertisement.PlayerAdvertisement](),
		clubAds:         newTable[advertisement.ClubAdvertisement](),
		clubOffers:      newTable[offer.ClubOffer](),
		playerOffers:    newTable[offer.PlayerOffer](),
		histories:       newTable[clubhistory.ClubHistory](),
		chats:           newTable[chat.Chat](),
		messages:        newTable[chat.Message](),
		playerFavorites: newTable[favorite.Favorite](),
		clubFavorites:   newTable[favorite.Favorite](),
		problems:        newTable[problem.Problem](),
		positions:       SeedPositions(),
		feet:            SeedFeet(),
	}
}

func (db *Database) favorites(kind favorite.Kind) (*table[favorite.Favorite], error) {
	switch kind {
	case favorite.KindPlayerAdvertisement:
		return db.playerFavorites, nil
	case favorite.KindClubAdvertisement:
		return db.clubFavorites, nil
	default:
		return nil, fmt.Errorf("unknown favorite kind: %s", kind)
	}
}

func (db *Database) hasPosition(id int64) bool {
	for _, p := range db.positions {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (db *Database) hasFoot(id int64) bool {
	for _, f := range db.feet {
		if f.ID == id {
			return true
		}
	}
	return false
}

// requireUser fails like a foreign key violation when userID is unknown.
// Callers must hold the lock.
func (db *Database) requireUser(constraint, userID string) error {
	if _, ok := db.users.get(userID); !ok {
		return dberr.ForeignKey(constraint, fmt.Errorf("user %s does not exist", userID))
	}
	return nil
}

func (db *Database) requirePosition(constraint string, id int64) error {
	if !db.hasPosition(id) {
		return dberr.ForeignKey(constraint, fmt.Errorf("player position %d does not exist", id))
	}
	return nil
}

func (db *Database) requireFoot(constraint string, id int64) error {
	if !db.hasFoot(id) {
		return dberr.ForeignKey(constraint, fmt.Errorf("player foot %d does not exist", id))
	}
	return nil
}

// The delete* helpers below cascade like ON DELETE CASCADE and expect the
// write lock to be held.

func (db *Database) deleteUser(userID string) bool {
	if !db.users.remove(userID) {
		return false
	}

	for _, id := range db.playerAds.removeWhere(func(a advertisement.PlayerAdvertisement) bool { return a.PlayerID == userID }) {
		db.cascadePlayerAdvertisement(id)
	}
	for _, id := range db.clubAds.removeWhere(func(a advertisement.ClubAdvertisement) bool { return a.ClubMemberID == userID }) {
		db.cascadeClubAdvertisement(id)
	}
	db.clubOffers.removeWhere(func(o offer.ClubOffer) bool { return o.ClubMemberID == userID })
	db.playerOffers.removeWhere(func(o offer.PlayerOffer) bool { return o.PlayerID == userID })
	db.histories.removeWhere(func(h clubhistory.ClubHistory) bool { return h.PlayerID == userID })
	db.playerFavorites.removeWhere(func(f favorite.Favorite) bool { return f.UserID == userID })
	db.clubFavorites.removeWhere(func(f favorite.Favorite) bool { return f.UserID == userID })
	db.problems.removeWhere(func(p problem.Problem) bool { return p.RequesterID == userID })
	for _, id := range db.chats.removeWhere(func(c chat.Chat) bool { return c.HasParticipant(userID) }) {
		db.cascadeChat(id)
	}

	return true
}

func (db *Database) cascadePlayerAdvertisement(adID string) {
	db.clubOffers.removeWhere(func(o offer.ClubOffer) bool { return o.PlayerAdvertisementID == adID })
	db.playerFavorites.removeWhere(func(f favorite.Favorite) bool { return f.AdvertisementID == adID })
}

func (db *Database) cascadeClubAdvertisement(adID string) {
	db.playerOffers.removeWhere(func(o offer.PlayerOffer) bool { return o.ClubAdvertisementID == adID })
	db.clubFavorites.removeWhere(func(f favorite.Favorite) bool { return f.AdvertisementID == adID })
}

func (db *Database) cascadeChat(chatID string) {
	db.messages.removeWhere(func(m chat.Message) bool { return m.ChatID == chatID })
}
