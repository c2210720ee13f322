package memory

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/riskibarqy/scout-market/internal/domain/advertisement"
	"github.com/riskibarqy/scout-market/internal/domain/chat"
	"github.com/riskibarqy/scout-market/internal/domain/offer"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	"github.com/shopspring/decimal"
)

var fixtureNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

type fixtures struct {
	t     *testing.T
	faker *gofakeit.Faker
	db    *Database
}

func newFixtures(t *testing.T) *fixtures {
	t.Helper()
	return &fixtures{t: t, faker: gofakeit.New(42), db: NewDatabase()}
}

func (f *fixtures) user() user.User {
	f.t.Helper()
	item := user.User{
		ID:           f.faker.UUID(),
		Email:        f.faker.Email(),
		FirstName:    f.faker.FirstName(),
		LastName:     f.faker.LastName(),
		PhoneNumber:  f.faker.Phone(),
		Location:     f.faker.City(),
		Role:         user.RoleUser,
		CreationDate: fixtureNow,
	}
	if err := NewUserRepository(f.db).Create(f.t.Context(), item); err != nil {
		f.t.Fatalf("create user: %v", err)
	}
	return item
}

func (f *fixtures) playerAd(ownerID string, endDate time.Time) advertisement.PlayerAdvertisement {
	f.t.Helper()
	item := advertisement.PlayerAdvertisement{
		ID:               f.faker.UUID(),
		PlayerID:         ownerID,
		PlayerPositionID: int64(f.faker.Number(1, 10)),
		League:           f.faker.Company(),
		Region:           f.faker.City(),
		Age:              f.faker.Number(16, 38),
		Height:           f.faker.Number(160, 200),
		PlayerFootID:     int64(f.faker.Number(1, 3)),
		SalaryRange:      advertisement.SalaryRange{Min: decimal.NewFromInt(1000), Max: decimal.NewFromInt(5000)},
		CreationDate:     fixtureNow.AddDate(0, -1, 0),
		EndDate:          endDate,
	}
	if err := NewPlayerAdvertisementRepository(f.db).Create(f.t.Context(), item); err != nil {
		f.t.Fatalf("create player advertisement: %v", err)
	}
	return item
}

func (f *fixtures) clubOffer(adID, makerID string) offer.ClubOffer {
	f.t.Helper()
	item := offer.ClubOffer{
		ID:                    f.faker.UUID(),
		PlayerAdvertisementID: adID,
		ClubMemberID:          makerID,
		Status:                offer.StatusOffered,
		PlayerPositionID:      int64(f.faker.Number(1, 10)),
		ClubName:              f.faker.Company(),
		League:                f.faker.Company(),
		Region:                f.faker.City(),
		Salary:                decimal.NewFromInt(int64(f.faker.Number(1000, 5000))),
		AdditionalInformation: f.faker.Sentence(f.faker.Number(3, 8)),
		CreationDate:          fixtureNow,
	}
	if err := NewClubOfferRepository(f.db).Create(f.t.Context(), item); err != nil {
		f.t.Fatalf("create club offer: %v", err)
	}
	return item
}

func (f *fixtures) chat(a, b string) chat.Chat {
	f.t.Helper()
	user1, user2 := chat.OrderedPair(a, b)
	item, _, err := NewChatRepository(f.db).GetOrCreate(f.t.Context(), chat.Chat{ID: f.faker.UUID(), User1ID: user1, User2ID: user2})
	if err != nil {
		f.t.Fatalf("create chat: %v", err)
	}
	return item
}

func (f *fixtures) message(c chat.Chat, senderID string, at time.Time) chat.Message {
	f.t.Helper()
	item := chat.Message{
		ID:         f.faker.UUID(),
		ChatID:     c.ID,
		SenderID:   senderID,
		ReceiverID: c.Other(senderID),
		Content:    f.faker.Sentence(5),
		Timestamp:  at,
	}
	if err := NewMessageRepository(f.db).Create(f.t.Context(), item); err != nil {
		f.t.Fatalf("create message: %v", err)
	}
	return item
}
