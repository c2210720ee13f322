package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/scout-market/internal/domain/advertisement"
	"github.com/riskibarqy/scout-market/internal/domain/favorite"
	"github.com/riskibarqy/scout-market/internal/domain/offer"
	"github.com/riskibarqy/scout-market/internal/domain/problem"
	"github.com/sourcegraph/conc/pool"
)

// Summary is the admin overview of stored resources.
type Summary struct {
	Users                        int
	PlayerAdvertisements         int
	ActivePlayerAdvertisements   int
	ClubAdvertisements           int
	ActiveClubAdvertisements     int
	ClubOffers                   int
	PendingClubOffers            int
	PlayerOffers                 int
	PendingPlayerOffers          int
	ClubHistories                int
	Chats                        int
	Messages                     int
	Problems                     int
	UnsolvedProblems             int
	FavoritePlayerAdvertisements int
	FavoriteClubAdvertisements   int
	GeneratedAt                  time.Time
}

const summaryMaxConcurrency = 4

type SummaryService struct {
	users        *UserService
	playerAds    *PlayerAdvertisementService
	clubAds      *ClubAdvertisementService
	clubOffers   *ClubOfferService
	playerOffers *PlayerOfferService
	histories    *ClubHistoryService
	chats        *ChatService
	problems     *ProblemService
	favorites    *FavoriteService
	now          func() time.Time
}

func NewSummaryService(
	users *UserService,
	playerAds *PlayerAdvertisementService,
	clubAds *ClubAdvertisementService,
	clubOffers *ClubOfferService,
	playerOffers *PlayerOfferService,
	histories *ClubHistoryService,
	chats *ChatService,
	problems *ProblemService,
	favorites *FavoriteService,
) *SummaryService {
	return &SummaryService{
		users:        users,
		playerAds:    playerAds,
		clubAds:      clubAds,
		clubOffers:   clubOffers,
		playerOffers: playerOffers,
		histories:    histories,
		chats:        chats,
		problems:     problems,
		favorites:    favorites,
		now:          time.Now,
	}
}

// Get runs every count concurrently; the first failure cancels the rest.
func (s *SummaryService) Get(ctx context.Context) (Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummaryService.Get")
	defer span.End()

	var out Summary
	counters := []struct {
		name  string
		dst   *int
		count func(context.Context) (int, error)
	}{
		{"users", &out.Users, s.users.Count},
		{"player advertisements", &out.PlayerAdvertisements, func(ctx context.Context) (int, error) {
			return s.playerAds.Count(ctx, advertisement.StateAll)
		}},
		{"active player advertisements", &out.ActivePlayerAdvertisements, func(ctx context.Context) (int, error) {
			return s.playerAds.Count(ctx, advertisement.StateActive)
		}},
		{"club advertisements", &out.ClubAdvertisements, func(ctx context.Context) (int, error) {
			return s.clubAds.Count(ctx, advertisement.StateAll)
		}},
		{"active club advertisements", &out.ActiveClubAdvertisements, func(ctx context.Context) (int, error) {
			return s.clubAds.Count(ctx, advertisement.StateActive)
		}},
		{"club offers", &out.ClubOffers, func(ctx context.Context) (int, error) {
			return s.clubOffers.Count(ctx, "")
		}},
		{"pending club offers", &out.PendingClubOffers, func(ctx context.Context) (int, error) {
			return s.clubOffers.Count(ctx, offer.StatusOffered)
		}},
		{"player offers", &out.PlayerOffers, func(ctx context.Context) (int, error) {
			return s.playerOffers.Count(ctx, "")
		}},
		{"pending player offers", &out.PendingPlayerOffers, func(ctx context.Context) (int, error) {
			return s.playerOffers.Count(ctx, offer.StatusOffered)
		}},
		{"club histories", &out.ClubHistories, s.histories.Count},
		{"chats", &out.Chats, s.chats.Count},
		{"messages", &out.Messages, s.chats.CountMessages},
		{"problems", &out.Problems, func(ctx context.Context) (int, error) {
			return s.problems.Count(ctx, problem.StateAll)
		}},
		{"unsolved problems", &out.UnsolvedProblems, func(ctx context.Context) (int, error) {
			return s.problems.Count(ctx, problem.StateUnsolved)
		}},
		{"favorite player advertisements", &out.FavoritePlayerAdvertisements, func(ctx context.Context) (int, error) {
			return s.favorites.Count(ctx, favorite.KindPlayerAdvertisement)
		}},
		{"favorite club advertisements", &out.FavoriteClubAdvertisements, func(ctx context.Context) (int, error) {
			return s.favorites.Count(ctx, favorite.KindClubAdvertisement)
		}},
	}

	p := pool.New().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(summaryMaxConcurrency)
	for _, c := range counters {
		p.Go(func(ctx context.Context) error {
			n, err := c.count(ctx)
			if err != nil {
				return fmt.Errorf("summary %s: %w", c.name, err)
			}
			*c.dst = n
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return Summary{}, err
	}

	out.GeneratedAt = s.now().UTC()
	return out, nil
}
