package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/scout-market/internal/domain/advertisement"
	"github.com/riskibarqy/scout-market/internal/domain/favorite"
	"github.com/riskibarqy/scout-market/internal/domain/offer"
	"github.com/riskibarqy/scout-market/internal/domain/problem"
	"github.com/riskibarqy/scout-market/internal/platform/dberr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateGetUpdate(t *testing.T) {
	f := newFixtures(t)
	repo := NewUserRepository(f.db)
	item := f.user()

	got, exists, err := repo.GetByID(t.Context(), item.ID)
	require.NoError(t, err)
	require.True(t, exists)
	if diff := cmp.Diff(item, got); diff != "" {
		t.Fatalf("user mismatch (-want +got):\n%s", diff)
	}

	item.Location = "Gdansk"
	require.NoError(t, repo.Update(t.Context(), item))
	got, _, err = repo.GetByID(t.Context(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gdansk", got.Location)
	assert.Equal(t, item.Email, got.Email)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	f := newFixtures(t)
	first := f.user()

	second := first
	second.ID = f.faker.UUID()
	err := NewUserRepository(f.db).Create(t.Context(), second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dberr.ErrUniqueViolation))
}

func TestPlayerAdvertisementRepository_UnknownOwner(t *testing.T) {
	f := newFixtures(t)
	item := advertisement.PlayerAdvertisement{
		ID:               "ad-1",
		PlayerID:         "missing-user",
		PlayerPositionID: 1,
		PlayerFootID:     1,
	}

	err := NewPlayerAdvertisementRepository(f.db).Create(t.Context(), item)
	assert.True(t, errors.Is(err, dberr.ErrForeignKeyViolation), "got %v", err)
}

func TestPlayerAdvertisementRepository_StateFilters(t *testing.T) {
	f := newFixtures(t)
	owner := f.user()
	active := f.playerAd(owner.ID, fixtureNow.AddDate(0, 0, 7))
	_ = f.playerAd(owner.ID, fixtureNow.AddDate(0, 0, -1))
	onEndDate := f.playerAd(owner.ID, fixtureNow)

	repo := NewPlayerAdvertisementRepository(f.db)

	all, err := repo.List(t.Context(), advertisement.Filter{Now: fixtureNow})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	activeItems, err := repo.List(t.Context(), advertisement.Filter{State: advertisement.StateActive, Now: fixtureNow})
	require.NoError(t, err)
	require.Len(t, activeItems, 2)
	assert.Equal(t, active.ID, activeItems[0].ID)
	assert.Equal(t, onEndDate.ID, activeItems[1].ID)

	inactive, err := repo.Count(t.Context(), advertisement.Filter{State: advertisement.StateInactive, Now: fixtureNow})
	require.NoError(t, err)
	assert.Equal(t, 1, inactive)
}

func TestClubOfferRepository_ReceiverAndStatus(t *testing.T) {
	f := newFixtures(t)
	player := f.user()
	club := f.user()
	ad := f.playerAd(player.ID, fixtureNow.AddDate(0, 1, 0))
	o1 := f.clubOffer(ad.ID, club.ID)
	_ = f.clubOffer(ad.ID, club.ID)

	repo := NewClubOfferRepository(f.db)
	updated, err := repo.UpdateStatus(t.Context(), o1.ID, offer.StatusAccepted)
	require.NoError(t, err)
	require.True(t, updated)

	received, err := repo.List(t.Context(), offer.Filter{ReceiverID: player.ID})
	require.NoError(t, err)
	assert.Len(t, received, 2)

	accepted, err := repo.Count(t.Context(), offer.Filter{Status: offer.StatusAccepted})
	require.NoError(t, err)
	assert.Equal(t, 1, accepted)

	made, err := repo.List(t.Context(), offer.Filter{MakerID: player.ID})
	require.NoError(t, err)
	assert.Empty(t, made)

	missing, err := repo.UpdateStatus(t.Context(), "missing", offer.StatusRejected)
	require.NoError(t, err)
	assert.False(t, missing)
}

func TestDeleteAdvertisement_CascadesOffersAndFavorites(t *testing.T) {
	f := newFixtures(t)
	player := f.user()
	club := f.user()
	ad := f.playerAd(player.ID, fixtureNow.AddDate(0, 1, 0))
	_ = f.clubOffer(ad.ID, club.ID)

	favRepo := NewFavoriteRepository(f.db)
	require.NoError(t, favRepo.Create(t.Context(), favorite.Favorite{
		ID: "fav-1", Kind: favorite.KindPlayerAdvertisement, UserID: club.ID, AdvertisementID: ad.ID,
	}))

	deleted, err := NewPlayerAdvertisementRepository(f.db).Delete(t.Context(), ad.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	offers, err := NewClubOfferRepository(f.db).Count(t.Context(), offer.Filter{})
	require.NoError(t, err)
	assert.Zero(t, offers)

	favs, err := favRepo.Count(t.Context(), favorite.KindPlayerAdvertisement)
	require.NoError(t, err)
	assert.Zero(t, favs)
}

func TestDeleteUser_CascadesOwnedRows(t *testing.T) {
	f := newFixtures(t)
	player := f.user()
	club := f.user()
	bystander := f.user()

	ad := f.playerAd(player.ID, fixtureNow.AddDate(0, 1, 0))
	_ = f.clubOffer(ad.ID, club.ID)
	c := f.chat(player.ID, club.ID)
	_ = f.message(c, player.ID, fixtureNow)
	keep := f.chat(club.ID, bystander.ID)

	require.NoError(t, NewProblemRepository(f.db).Create(t.Context(), problem.Problem{
		ID: "p-1", Title: "Broken", Description: "Cannot upload", RequesterID: player.ID, CreationDate: fixtureNow,
	}))

	deleted, err := NewUserRepository(f.db).Delete(t.Context(), player.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	ads, _ := NewPlayerAdvertisementRepository(f.db).Count(t.Context(), advertisement.Filter{Now: fixtureNow})
	offers, _ := NewClubOfferRepository(f.db).Count(t.Context(), offer.Filter{})
	messages, _ := NewMessageRepository(f.db).Count(t.Context())
	problems, _ := NewProblemRepository(f.db).Count(t.Context(), problem.StateAll)
	chats, _ := NewChatRepository(f.db).ListByUser(t.Context(), "")

	assert.Zero(t, ads)
	assert.Zero(t, offers)
	assert.Zero(t, messages)
	assert.Zero(t, problems)
	require.Len(t, chats, 1)
	assert.Equal(t, keep.ID, chats[0].ID)

	again, err := NewUserRepository(f.db).Delete(t.Context(), player.ID)
	require.NoError(t, err)
	assert.False(t, again)
}

func TestChatRepository_GetOrCreateIsIdempotent(t *testing.T) {
	f := newFixtures(t)
	a := f.user()
	b := f.user()

	first := f.chat(a.ID, b.ID)
	second := f.chat(b.ID, a.ID)

	assert.Equal(t, first.ID, second.ID)
	n, err := NewChatRepository(f.db).Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMessageRepository_ListByChatOrdersByTimestamp(t *testing.T) {
	f := newFixtures(t)
	a := f.user()
	b := f.user()
	c := f.chat(a.ID, b.ID)

	late := f.message(c, a.ID, fixtureNow.Add(time.Minute))
	early := f.message(c, b.ID, fixtureNow)

	got, err := NewMessageRepository(f.db).ListByChat(t.Context(), c.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, early.ID, got[0].ID)
	assert.Equal(t, late.ID, got[1].ID)
}

func TestFavoriteRepository_DuplicatePair(t *testing.T) {
	f := newFixtures(t)
	owner := f.user()
	fan := f.user()
	ad := f.playerAd(owner.ID, fixtureNow.AddDate(0, 1, 0))

	repo := NewFavoriteRepository(f.db)
	require.NoError(t, repo.Create(t.Context(), favorite.Favorite{ID: "fav-1", Kind: favorite.KindPlayerAdvertisement, UserID: fan.ID, AdvertisementID: ad.ID}))

	err := repo.Create(t.Context(), favorite.Favorite{ID: "fav-2", Kind: favorite.KindPlayerAdvertisement, UserID: fan.ID, AdvertisementID: ad.ID})
	assert.True(t, errors.Is(err, dberr.ErrUniqueViolation), "got %v", err)

	err = repo.Create(t.Context(), favorite.Favorite{ID: "fav-3", Kind: favorite.KindClubAdvertisement, UserID: fan.ID, AdvertisementID: ad.ID})
	assert.True(t, errors.Is(err, dberr.ErrForeignKeyViolation), "club favorite must reference a club advertisement, got %v", err)
}

func TestProblemRepository_StateCounts(t *testing.T) {
	f := newFixtures(t)
	requester := f.user()
	repo := NewProblemRepository(f.db)

	for i, solved := range []bool{true, false, false} {
		item := problem.Problem{
			ID:           f.faker.UUID(),
			Title:        f.faker.Sentence(3),
			Description:  f.faker.Sentence(10),
			CreationDate: fixtureNow.Add(time.Duration(i) * time.Hour),
			IsSolved:     solved,
			RequesterID:  requester.ID,
		}
		require.NoError(t, repo.Create(t.Context(), item))
	}

	solved, err := repo.Count(t.Context(), problem.StateSolved)
	require.NoError(t, err)
	unsolved, err := repo.List(t.Context(), problem.StateUnsolved)
	require.NoError(t, err)
	all, err := repo.Count(t.Context(), problem.StateAll)
	require.NoError(t, err)

	assert.Equal(t, 1, solved)
	assert.Len(t, unsolved, 2)
	assert.Equal(t, all, solved+len(unsolved))
}
