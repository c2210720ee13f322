package postgres

import (
	"time"

	"github.com/riskibarqy/scout-market/internal/domain/advertisement"
	"github.com/riskibarqy/scout-market/internal/domain/chat"
	"github.com/riskibarqy/scout-market/internal/domain/clubhistory"
	"github.com/riskibarqy/scout-market/internal/domain/favorite"
	"github.com/riskibarqy/scout-market/internal/domain/offer"
	"github.com/riskibarqy/scout-market/internal/domain/problem"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	"github.com/shopspring/decimal"
)

type userTableModel struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	PhoneNumber  string    `db:"phone_number"`
	Location     string    `db:"location"`
	Role         string    `db:"role"`
	IsBlocked    bool      `db:"is_blocked"`
	CreationDate time.Time `db:"creation_date"`
}

func userToRow(item user.User) userTableModel {
	return userTableModel{
		ID:           item.ID,
		Email:        item.Email,
		FirstName:    item.FirstName,
		LastName:     item.LastName,
		PhoneNumber:  item.PhoneNumber,
		Location:     item.Location,
		Role:         string(item.Role),
		IsBlocked:    item.IsBlocked,
		CreationDate: item.CreationDate,
	}
}

func userFromRow(row userTableModel) user.User {
	return user.User{
		ID:           row.ID,
		Email:        row.Email,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		PhoneNumber:  row.PhoneNumber,
		Location:     row.Location,
		Role:         user.Role(row.Role),
		IsBlocked:    row.IsBlocked,
		CreationDate: row.CreationDate.UTC(),
	}
}

type playerAdvertisementTableModel struct {
	ID               string                                `db:"id"`
	PlayerID         string                                `db:"player_id"`
	PlayerPositionID int64                                 `db:"player_position_id"`
	League           string                                `db:"league"`
	Region           string                                `db:"region"`
	Age              int                                   `db:"age"`
	Height           int                                   `db:"height"`
	PlayerFootID     int64                                 `db:"player_foot_id"`
	SalaryRange      jsonColumn[advertisement.SalaryRange] `db:"salary_range"`
	CreationDate     time.Time                             `db:"creation_date"`
	EndDate          time.Time                             `db:"end_date"`
}

func playerAdvertisementToRow(item advertisement.PlayerAdvertisement) playerAdvertisementTableModel {
	return playerAdvertisementTableModel{
		ID:               item.ID,
		PlayerID:         item.PlayerID,
		PlayerPositionID: item.PlayerPositionID,
		League:           item.League,
		Region:           item.Region,
		Age:              item.Age,
		Height:           item.Height,
		PlayerFootID:     item.PlayerFootID,
		SalaryRange:      jsonColumn[advertisement.SalaryRange]{V: item.SalaryRange},
		CreationDate:     item.CreationDate,
		EndDate:          item.EndDate,
	}
}

func playerAdvertisementFromRow(row playerAdvertisementTableModel) advertisement.PlayerAdvertisement {
	return advertisement.PlayerAdvertisement{
		ID:               row.ID,
		PlayerID:         row.PlayerID,
		PlayerPositionID: row.PlayerPositionID,
		League:           row.League,
		Region:           row.Region,
		Age:              row.Age,
		Height:           row.Height,
		PlayerFootID:     row.PlayerFootID,
		SalaryRange:      row.SalaryRange.V,
		CreationDate:     row.CreationDate.UTC(),
		EndDate:          row.EndDate.UTC(),
	}
}

type clubAdvertisementTableModel struct {
	ID               string                                `db:"id"`
	ClubMemberID     string                                `db:"club_member_id"`
	PlayerPositionID int64                                 `db:"player_position_id"`
	ClubName         string                                `db:"club_name"`
	League           string                                `db:"league"`
	Region           string                                `db:"region"`
	SalaryRange      jsonColumn[advertisement.SalaryRange] `db:"salary_range"`
	CreationDate     time.Time                             `db:"creation_date"`
	EndDate          time.Time                             `db:"end_date"`
}

func clubAdvertisementToRow(item advertisement.ClubAdvertisement) clubAdvertisementTableModel {
	return clubAdvertisementTableModel{
		ID:               item.ID,
		ClubMemberID:     item.ClubMemberID,
		PlayerPositionID: item.PlayerPositionID,
		ClubName:         item.ClubName,
		League:           item.League,
		Region:           item.Region,
		SalaryRange:      jsonColumn[advertisement.SalaryRange]{V: item.SalaryRange},
		CreationDate:     item.CreationDate,
		EndDate:          item.EndDate,
	}
}

func clubAdvertisementFromRow(row clubAdvertisementTableModel) advertisement.ClubAdvertisement {
	return advertisement.ClubAdvertisement{
		ID:               row.ID,
		ClubMemberID:     row.ClubMemberID,
		PlayerPositionID: row.PlayerPositionID,
		ClubName:         row.ClubName,
		League:           row.League,
		Region:           row.Region,
		SalaryRange:      row.SalaryRange.V,
		CreationDate:     row.CreationDate.UTC(),
		EndDate:          row.EndDate.UTC(),
	}
}

type clubOfferTableModel struct {
	ID                    string          `db:"id"`
	PlayerAdvertisementID string          `db:"player_advertisement_id"`
	ClubMemberID          string          `db:"club_member_id"`
	OfferStatus           string          `db:"offer_status"`
	PlayerPositionID      int64           `db:"player_position_id"`
	ClubName              string          `db:"club_name"`
	League                string          `db:"league"`
	Region                string          `db:"region"`
	Salary                decimal.Decimal `db:"salary"`
	AdditionalInformation string          `db:"additional_information"`
	CreationDate          time.Time       `db:"creation_date"`
}

func clubOfferToRow(item offer.ClubOffer) clubOfferTableModel {
	return clubOfferTableModel{
		ID:                    item.ID,
		PlayerAdvertisementID: item.PlayerAdvertisementID,
		ClubMemberID:          item.ClubMemberID,
		OfferStatus:           string(item.Status),
		PlayerPositionID:      item.PlayerPositionID,
		ClubName:              item.ClubName,
		League:                item.League,
		Region:                item.Region,
		Salary:                item.Salary,
		AdditionalInformation: item.AdditionalInformation,
		CreationDate:          item.CreationDate,
	}
}

func clubOfferFromRow(row clubOfferTableModel) offer.ClubOffer {
	return offer.ClubOffer{
		ID:                    row.ID,
		PlayerAdvertisementID: row.PlayerAdvertisementID,
		ClubMemberID:          row.ClubMemberID,
		Status:                offer.Status(row.OfferStatus),
		PlayerPositionID:      row.PlayerPositionID,
		ClubName:              row.ClubName,
		League:                row.League,
		Region:                row.Region,
		Salary:                row.Salary,
		AdditionalInformation: row.AdditionalInformation,
		CreationDate:          row.CreationDate.UTC(),
	}
}

type playerOfferTableModel struct {
	ID                    string          `db:"id"`
	ClubAdvertisementID   string          `db:"club_advertisement_id"`
	PlayerID              string          `db:"player_id"`
	OfferStatus           string          `db:"offer_status"`
	Age                   int             `db:"age"`
	Height                int             `db:"height"`
	PlayerFootID          int64           `db:"player_foot_id"`
	Salary                decimal.Decimal `db:"salary"`
	AdditionalInformation string          `db:"additional_information"`
	CreationDate          time.Time       `db:"creation_date"`
}

func playerOfferToRow(item offer.PlayerOffer) playerOfferTableModel {
	return playerOfferTableModel{
		ID:                    item.ID,
		ClubAdvertisementID:   item.ClubAdvertisementID,
		PlayerID:              item.PlayerID,
		OfferStatus:           string(item.Status),
		Age:                   item.Age,
		Height:                item.Height,
		PlayerFootID:          item.PlayerFootID,
		Salary:                item.Salary,
		AdditionalInformation: item.AdditionalInformation,
		CreationDate:          item.CreationDate,
	}
}

func playerOfferFromRow(row playerOfferTableModel) offer.PlayerOffer {
	return offer.PlayerOffer{
		ID:                    row.ID,
		ClubAdvertisementID:   row.ClubAdvertisementID,
		PlayerID:              row.PlayerID,
		Status:                offer.Status(row.OfferStatus),
		Age:                   row.Age,
		Height:                row.Height,
		PlayerFootID:          row.PlayerFootID,
		Salary:                row.Salary,
		AdditionalInformation: row.AdditionalInformation,
		CreationDate:          row.CreationDate.UTC(),
	}
}

type clubHistoryTableModel struct {
	ID               string                               `db:"id"`
	PlayerID         string                               `db:"player_id"`
	ClubName         string                               `db:"club_name"`
	League           string                               `db:"league"`
	Region           string                               `db:"region"`
	PlayerPositionID int64                                `db:"player_position_id"`
	Achievements     jsonColumn[clubhistory.Achievements] `db:"achievements"`
	StartDate        time.Time                            `db:"start_date"`
	EndDate          time.Time                            `db:"end_date"`
}

func clubHistoryToRow(item clubhistory.ClubHistory) clubHistoryTableModel {
	return clubHistoryTableModel{
		ID:               item.ID,
		PlayerID:         item.PlayerID,
		ClubName:         item.ClubName,
		League:           item.League,
		Region:           item.Region,
		PlayerPositionID: item.PlayerPositionID,
		Achievements:     jsonColumn[clubhistory.Achievements]{V: item.Achievements},
		StartDate:        item.StartDate,
		EndDate:          item.EndDate,
	}
}

func clubHistoryFromRow(row clubHistoryTableModel) clubhistory.ClubHistory {
	return clubhistory.ClubHistory{
		ID:               row.ID,
		PlayerID:         row.PlayerID,
		ClubName:         row.ClubName,
		League:           row.League,
		Region:           row.Region,
		PlayerPositionID: row.PlayerPositionID,
		Achievements:     row.Achievements.V,
		StartDate:        row.StartDate.UTC(),
		EndDate:          row.EndDate.UTC(),
	}
}

type chatTableModel struct {
	ID      string `db:"id"`
	User1ID string `db:"user1_id"`
	User2ID string `db:"user2_id"`
}

func chatFromRow(row chatTableModel) chat.Chat {
	return chat.Chat{ID: row.ID, User1ID: row.User1ID, User2ID: row.User2ID}
}

type messageTableModel struct {
	ID         string    `db:"id"`
	ChatID     string    `db:"chat_id"`
	SenderID   string    `db:"sender_id"`
	ReceiverID string    `db:"receiver_id"`
	Content    string    `db:"content"`
	Timestamp  time.Time `db:"sent_at"`
}

func messageFromRow(row messageTableModel) chat.Message {
	return chat.Message{
		ID:         row.ID,
		ChatID:     row.ChatID,
		SenderID:   row.SenderID,
		ReceiverID: row.ReceiverID,
		Content:    row.Content,
		Timestamp:  row.Timestamp.UTC(),
	}
}

type favoriteTableModel struct {
	ID              string `db:"id"`
	UserID          string `db:"user_id"`
	AdvertisementID string `db:"advertisement_id"`
}

func favoriteFromRow(kind favorite.Kind, row favoriteTableModel) favorite.Favorite {
	return favorite.Favorite{
		ID:              row.ID,
		Kind:            kind,
		UserID:          row.UserID,
		AdvertisementID: row.AdvertisementID,
	}
}

type problemTableModel struct {
	ID           string    `db:"id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	CreationDate time.Time `db:"creation_date"`
	IsSolved     bool      `db:"is_solved"`
	RequesterID  string    `db:"requester_id"`
}

func problemToRow(item problem.Problem) problemTableModel {
	return problemTableModel{
		ID:           item.ID,
		Title:        item.Title,
		Description:  item.Description,
		CreationDate: item.CreationDate,
		IsSolved:     item.IsSolved,
		RequesterID:  item.RequesterID,
	}
}

func problemFromRow(row problemTableModel) problem.Problem {
	return problem.Problem{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		CreationDate: row.CreationDate.UTC(),
		IsSolved:     row.IsSolved,
		RequesterID:  row.RequesterID,
	}
}
