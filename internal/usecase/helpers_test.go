package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/scout-market/internal/domain/user"
	"github.com/riskibarqy/scout-market/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/scout-market/internal/platform/logging"
)

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type sequenceIDs struct {
	prefix string
	next   int
}

func (g *sequenceIDs) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next), nil
}

type failingIDs struct{}

func (failingIDs) NewID() (string, error) { return "", fmt.Errorf("entropy exhausted") }

// marketplace wires every service against one in-memory database.
type marketplace struct {
	db           *memory.Database
	users        *UserService
	lookups      *LookupService
	playerAds    *PlayerAdvertisementService
	clubAds      *ClubAdvertisementService
	clubOffers   *ClubOfferService
	playerOffers *PlayerOfferService
	histories    *ClubHistoryService
	chats        *ChatService
	favorites    *FavoriteService
	problems     *ProblemService
	summary      *SummaryService
}

func newMarketplace(t *testing.T) *marketplace {
	t.Helper()

	db := memory.NewDatabase()
	ids := &sequenceIDs{prefix: "id"}
	logger := logging.NewNop()

	userRepo := memory.NewUserRepository(db)
	lookupRepo := memory.NewLookupRepository(db)
	playerAdRepo := memory.NewPlayerAdvertisementRepository(db)
	clubAdRepo := memory.NewClubAdvertisementRepository(db)

	m := &marketplace{
		db:           db,
		users:        NewUserService(userRepo, logger),
		lookups:      NewLookupService(lookupRepo),
		playerAds:    NewPlayerAdvertisementService(playerAdRepo, lookupRepo, ids),
		clubAds:      NewClubAdvertisementService(clubAdRepo, lookupRepo, ids),
		clubOffers:   NewClubOfferService(memory.NewClubOfferRepository(db), playerAdRepo, lookupRepo, ids),
		playerOffers: NewPlayerOfferService(memory.NewPlayerOfferRepository(db), clubAdRepo, lookupRepo, ids),
		histories:    NewClubHistoryService(memory.NewClubHistoryRepository(db), lookupRepo, ids),
		chats:        NewChatService(memory.NewChatRepository(db), memory.NewMessageRepository(db), userRepo, ids, logger),
		favorites:    NewFavoriteService(memory.NewFavoriteRepository(db), playerAdRepo, clubAdRepo, ids),
		problems:     NewProblemService(memory.NewProblemRepository(db), ids),
	}
	m.summary = NewSummaryService(m.users, m.playerAds, m.clubAds, m.clubOffers, m.playerOffers, m.histories, m.chats, m.problems, m.favorites)

	m.users.now = fixedClock
	m.playerAds.now = fixedClock
	m.clubAds.now = fixedClock
	m.clubOffers.now = fixedClock
	m.playerOffers.now = fixedClock
	m.chats.now = fixedClock
	m.problems.now = fixedClock
	m.summary.now = fixedClock

	return m
}

// signUp provisions a stored user the way the first authenticated request does.
func (m *marketplace) signUp(t *testing.T, id string, role user.Role) user.Principal {
	t.Helper()
	principal := user.Principal{UserID: id, Email: id + "@example.com", Role: role}
	if _, err := m.users.Me(t.Context(), principal); err != nil {
		t.Fatalf("provision user %s: %v", id, err)
	}
	return principal
}
