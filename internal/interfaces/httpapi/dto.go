package httpapi

import (
	"time"

	"github.com/riskibarqy/scout-market/internal/domain/advertisement"
	"github.com/riskibarqy/scout-market/internal/domain/chat"
	"github.com/riskibarqy/scout-market/internal/domain/clubhistory"
	"github.com/riskibarqy/scout-market/internal/domain/favorite"
	"github.com/riskibarqy/scout-market/internal/domain/lookup"
	"github.com/riskibarqy/scout-market/internal/domain/offer"
	"github.com/riskibarqy/scout-market/internal/domain/problem"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	"github.com/riskibarqy/scout-market/internal/usecase"
	"github.com/shopspring/decimal"
)

type salaryRangeDTO struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

type achievementsDTO struct {
	NumberOfMatches        int    `json:"numberOfMatches" validate:"gte=0"`
	Goals                  int    `json:"goals" validate:"gte=0"`
	Assists                int    `json:"assists" validate:"gte=0"`
	AdditionalAchievements string `json:"additionalAchievements" validate:"max=2000"`
}

type updateUserRequest struct {
	FirstName   string `json:"firstName" validate:"max=100"`
	LastName    string `json:"lastName" validate:"max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=32"`
	Location    string `json:"location" validate:"max=200"`
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

type playerAdvertisementRequest struct {
	PlayerPositionID int64          `json:"playerPositionId" validate:"required,gt=0"`
	League           string         `json:"league" validate:"required,max=100"`
	Region           string         `json:"region" validate:"required,max=100"`
	Age              int            `json:"age" validate:"required,gt=0,lt=100"`
	Height           int            `json:"height" validate:"required,gt=0,lt=300"`
	PlayerFootID     int64          `json:"playerFootId" validate:"required,gt=0"`
	SalaryRange      salaryRangeDTO `json:"salaryRange"`
	EndDate          time.Time      `json:"endDate" validate:"required"`
}

type clubAdvertisementRequest struct {
	PlayerPositionID int64          `json:"playerPositionId" validate:"required,gt=0"`
	ClubName         string         `json:"clubName" validate:"required,max=100"`
	League           string         `json:"league" validate:"required,max=100"`
	Region           string         `json:"region" validate:"required,max=100"`
	SalaryRange      salaryRangeDTO `json:"salaryRange"`
	EndDate          time.Time      `json:"endDate" validate:"required"`
}

type clubOfferRequest struct {
	PlayerAdvertisementID string          `json:"playerAdvertisementId" validate:"required"`
	PlayerPositionID      int64           `json:"playerPositionId" validate:"required,gt=0"`
	ClubName              string          `json:"clubName" validate:"required,max=100"`
	League                string          `json:"league" validate:"required,max=100"`
	Region                string          `json:"region" validate:"required,max=100"`
	Salary                decimal.Decimal `json:"salary"`
	AdditionalInformation string          `json:"additionalInformation" validate:"max=2000"`
}

type playerOfferRequest struct {
	ClubAdvertisementID   string          `json:"clubAdvertisementId" validate:"required"`
	Age                   int             `json:"age" validate:"required,gt=0,lt=100"`
	Height                int             `json:"height" validate:"required,gt=0,lt=300"`
	PlayerFootID          int64           `json:"playerFootId" validate:"required,gt=0"`
	Salary                decimal.Decimal `json:"salary"`
	AdditionalInformation string          `json:"additionalInformation" validate:"max=2000"`
}

type clubHistoryRequest struct {
	ClubName         string          `json:"clubName" validate:"required,max=100"`
	League           string          `json:"league" validate:"required,max=100"`
	Region           string          `json:"region" validate:"required,max=100"`
	PlayerPositionID int64           `json:"playerPositionId" validate:"required,gt=0"`
	Achievements     achievementsDTO `json:"achievements"`
	StartDate        time.Time       `json:"startDate" validate:"required"`
	EndDate          time.Time       `json:"endDate" validate:"required"`
}

type openChatRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type sendMessageRequest struct {
	ChatID  string `json:"chatId" validate:"required"`
	Content string `json:"content" validate:"required,max=4000"`
}

type favoriteRequest struct {
	AdvertisementID string `json:"advertisementId" validate:"required"`
}

type problemRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=4000"`
}

type userDTO struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PhoneNumber  string    `json:"phoneNumber"`
	Location     string    `json:"location"`
	Role         string    `json:"role"`
	IsBlocked    bool      `json:"isBlocked"`
	CreationDate time.Time `json:"creationDate"`
}

type playerAdvertisementDTO struct {
	ID               string         `json:"id"`
	PlayerID         string         `json:"playerId"`
	PlayerPositionID int64          `json:"playerPositionId"`
	League           string         `json:"league"`
	Region           string         `json:"region"`
	Age              int            `json:"age"`
	Height           int            `json:"height"`
	PlayerFootID     int64          `json:"playerFootId"`
	SalaryRange      salaryRangeDTO `json:"salaryRange"`
	CreationDate     time.Time      `json:"creationDate"`
	EndDate          time.Time      `json:"endDate"`
}

type clubAdvertisementDTO struct {
	ID               string         `json:"id"`
	ClubMemberID     string         `json:"clubMemberId"`
	PlayerPositionID int64          `json:"playerPositionId"`
	ClubName         string         `json:"clubName"`
	League           string         `json:"league"`
	Region           string         `json:"region"`
	SalaryRange      salaryRangeDTO `json:"salaryRange"`
	CreationDate     time.Time      `json:"creationDate"`
	EndDate          time.Time      `json:"endDate"`
}

type clubOfferDTO struct {
	ID                    string          `json:"id"`
	PlayerAdvertisementID string          `json:"playerAdvertisementId"`
	ClubMemberID          string          `json:"clubMemberId"`
	OfferStatus           string          `json:"offerStatus"`
	PlayerPositionID      int64           `json:"playerPositionId"`
	ClubName              string          `json:"clubName"`
	League                string          `json:"league"`
	Region                string          `json:"region"`
	Salary                decimal.Decimal `json:"salary"`
	AdditionalInformation string          `json:"additionalInformation"`
	CreationDate          time.Time       `json:"creationDate"`
}

type playerOfferDTO struct {
	ID                    string          `json:"id"`
	ClubAdvertisementID   string          `json:"clubAdvertisementId"`
	PlayerID              string          `json:"playerId"`
	OfferStatus           string          `json:"offerStatus"`
	Age                   int             `json:"age"`
	Height                int             `json:"height"`
	PlayerFootID          int64           `json:"playerFootId"`
	Salary                decimal.Decimal `json:"salary"`
	AdditionalInformation string          `json:"additionalInformation"`
	CreationDate          time.Time       `json:"creationDate"`
}

type clubHistoryDTO struct {
	ID               string          `json:"id"`
	PlayerID         string          `json:"playerId"`
	ClubName         string          `json:"clubName"`
	League           string          `json:"league"`
	Region           string          `json:"region"`
	PlayerPositionID int64           `json:"playerPositionId"`
	Achievements     achievementsDTO `json:"achievements"`
	StartDate        time.Time       `json:"startDate"`
	EndDate          time.Time       `json:"endDate"`
}

type chatDTO struct {
	ID      string `json:"id"`
	User1ID string `json:"user1Id"`
	User2ID string `json:"user2Id"`
}

type messageDTO struct {
	ID         string    `json:"id"`
	ChatID     string    `json:"chatId"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

type favoriteDTO struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	AdvertisementID string `json:"advertisementId"`
}

type problemDTO struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CreationDate time.Time `json:"creationDate"`
	IsSolved     bool      `json:"isSolved"`
	RequesterID  string    `json:"requesterId"`
}

type lookupDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type summaryDTO struct {
	Users                        int       `json:"users"`
	PlayerAdvertisements         int       `json:"playerAdvertisements"`
	ActivePlayerAdvertisements   int       `json:"activePlayerAdvertisements"`
	ClubAdvertisements           int       `json:"clubAdvertisements"`
	ActiveClubAdvertisements     int       `json:"activeClubAdvertisements"`
	ClubOffers                   int       `json:"clubOffers"`
	PendingClubOffers            int       `json:"pendingClubOffers"`
	PlayerOffers                 int       `json:"playerOffers"`
	PendingPlayerOffers          int       `json:"pendingPlayerOffers"`
	ClubHistories                int       `json:"clubHistories"`
	Chats                        int       `json:"chats"`
	Messages                     int       `json:"messages"`
	Problems                     int       `json:"problems"`
	UnsolvedProblems             int       `json:"unsolvedProblems"`
	FavoritePlayerAdvertisements int       `json:"favoritePlayerAdvertisements"`
	FavoriteClubAdvertisements   int       `json:"favoriteClubAdvertisements"`
	GeneratedAt                  time.Time `json:"generatedAt"`
}

func (r playerAdvertisementRequest) input() usecase.PlayerAdvertisementInput {
	return usecase.PlayerAdvertisementInput{
		PlayerPositionID: r.PlayerPositionID,
		League:           r.League,
		Region:           r.Region,
		Age:              r.Age,
		Height:           r.Height,
		PlayerFootID:     r.PlayerFootID,
		SalaryRange:      advertisement.SalaryRange(r.SalaryRange),
		EndDate:          r.EndDate,
	}
}

func (r clubAdvertisementRequest) input() usecase.ClubAdvertisementInput {
	return usecase.ClubAdvertisementInput{
		PlayerPositionID: r.PlayerPositionID,
		ClubName:         r.ClubName,
		League:           r.League,
		Region:           r.Region,
		SalaryRange:      advertisement.SalaryRange(r.SalaryRange),
		EndDate:          r.EndDate,
	}
}

func (r clubOfferRequest) input() usecase.ClubOfferInput {
	return usecase.ClubOfferInput{
		PlayerAdvertisementID: r.PlayerAdvertisementID,
		PlayerPositionID:      r.PlayerPositionID,
		ClubName:              r.ClubName,
		League:                r.League,
		Region:                r.Region,
		Salary:                r.Salary,
		AdditionalInformation: r.AdditionalInformation,
	}
}

func (r playerOfferRequest) input() usecase.PlayerOfferInput {
	return usecase.PlayerOfferInput{
		ClubAdvertisementID:   r.ClubAdvertisementID,
		Age:                   r.Age,
		Height:                r.Height,
		PlayerFootID:          r.PlayerFootID,
		Salary:                r.Salary,
		AdditionalInformation: r.AdditionalInformation,
	}
}

func (r clubHistoryRequest) input() usecase.ClubHistoryInput {
	return usecase.ClubHistoryInput{
		ClubName:         r.ClubName,
		League:           r.League,
		Region:           r.Region,
		PlayerPositionID: r.PlayerPositionID,
		Achievements:     clubhistory.Achievements(r.Achievements),
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
	}
}

func userToDTO(v user.User) userDTO {
	return userDTO{
		ID:           v.ID,
		Email:        v.Email,
		FirstName:    v.FirstName,
		LastName:     v.LastName,
		PhoneNumber:  v.PhoneNumber,
		Location:     v.Location,
		Role:         string(v.Role),
		IsBlocked:    v.IsBlocked,
		CreationDate: v.CreationDate,
	}
}

func playerAdvertisementToDTO(v advertisement.PlayerAdvertisement) playerAdvertisementDTO {
	return playerAdvertisementDTO{
		ID:               v.ID,
		PlayerID:         v.PlayerID,
		PlayerPositionID: v.PlayerPositionID,
		League:           v.League,
		Region:           v.Region,
		Age:              v.Age,
		Height:           v.Height,
		PlayerFootID:     v.PlayerFootID,
		SalaryRange:      salaryRangeDTO(v.SalaryRange),
		CreationDate:     v.CreationDate,
		EndDate:          v.EndDate,
	}
}

func clubAdvertisementToDTO(v advertisement.ClubAdvertisement) clubAdvertisementDTO {
	return clubAdvertisementDTO{
		ID:               v.ID,
		ClubMemberID:     v.ClubMemberID,
		PlayerPositionID: v.PlayerPositionID,
		ClubName:         v.ClubName,
		League:           v.League,
		Region:           v.Region,
		SalaryRange:      salaryRangeDTO(v.SalaryRange),
		CreationDate:     v.CreationDate,
		EndDate:          v.EndDate,
	}
}

func clubOfferToDTO(v offer.ClubOffer) clubOfferDTO {
	return clubOfferDTO{
		ID:                    v.ID,
		PlayerAdvertisementID: v.PlayerAdvertisementID,
		ClubMemberID:          v.ClubMemberID,
		OfferStatus:           string(v.Status),
		PlayerPositionID:      v.PlayerPositionID,
		ClubName:              v.ClubName,
		League:                v.League,
		Region:                v.Region,
		Salary:                v.Salary,
		AdditionalInformation: v.AdditionalInformation,
		CreationDate:          v.CreationDate,
	}
}

func playerOfferToDTO(v offer.PlayerOffer) playerOfferDTO {
	return playerOfferDTO{
		ID:                    v.ID,
		ClubAdvertisementID:   v.ClubAdvertisementID,
		PlayerID:              v.PlayerID,
		OfferStatus:           string(v.Status),
		Age:                   v.Age,
		Height:                v.Height,
		PlayerFootID:          v.PlayerFootID,
		Salary:                v.Salary,
		AdditionalInformation: v.AdditionalInformation,
		CreationDate:          v.CreationDate,
	}
}

func clubHistoryToDTO(v clubhistory.ClubHistory) clubHistoryDTO {
	return clubHistoryDTO{
		ID:               v.ID,
		PlayerID:         v.PlayerID,
		ClubName:         v.ClubName,
		League:           v.League,
		Region:           v.Region,
		PlayerPositionID: v.PlayerPositionID,
		Achievements:     achievementsDTO(v.Achievements),
		StartDate:        v.StartDate,
		EndDate:          v.EndDate,
	}
}

func chatToDTO(v chat.Chat) chatDTO {
	return chatDTO{ID: v.ID, User1ID: v.User1ID, User2ID: v.User2ID}
}

func messageToDTO(v chat.Message) messageDTO {
	return messageDTO{
		ID:         v.ID,
		ChatID:     v.ChatID,
		SenderID:   v.SenderID,
		ReceiverID: v.ReceiverID,
		Content:    v.Content,
		Timestamp:  v.Timestamp,
	}
}

func favoriteToDTO(v favorite.Favorite) favoriteDTO {
	return favoriteDTO{ID: v.ID, UserID: v.UserID, AdvertisementID: v.AdvertisementID}
}

func problemToDTO(v problem.Problem) problemDTO {
	return problemDTO{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		CreationDate: v.CreationDate,
		IsSolved:     v.IsSolved,
		RequesterID:  v.RequesterID,
	}
}

func positionToDTO(v lookup.Position) lookupDTO {
	return lookupDTO{ID: v.ID, Name: v.Name}
}

func footToDTO(v lookup.Foot) lookupDTO {
	return lookupDTO{ID: v.ID, Name: v.Name}
}

func summaryToDTO(v usecase.Summary) summaryDTO {
	return summaryDTO(v)
}

// mapSlice converts items with fn and never returns nil, so empty lists
// encode as [].
func mapSlice[T, D any](items []T, fn func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
