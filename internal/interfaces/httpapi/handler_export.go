package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/riskibarqy/scout-market/internal/domain/advertisement"
	"github.com/riskibarqy/scout-market/internal/domain/clubhistory"
	"github.com/riskibarqy/scout-market/internal/domain/offer"
	"github.com/riskibarqy/scout-market/internal/domain/problem"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	"github.com/riskibarqy/scout-market/internal/infrastructure/export"
	"github.com/riskibarqy/scout-market/internal/usecase"
)

// writeExport renders table in the ?format= requested (CSV by default).
func (h *Handler) writeExport(ctx context.Context, w http.ResponseWriter, r *http.Request, table export.Table) {
	format, err := export.ParseFormat(queryValue(r, "format"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	body, err := export.Render(format, table)
	if err != nil {
		h.fail(ctx, w, "render export failed", err, "table", table.Name, "format", format)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename(table.Name)))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func exportTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func exportDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.DateOnly)
}

func usersTable(items []user.User) export.Table {
	table := export.Table{
		Name:   "users",
		Header: []string{"id", "email", "first_name", "last_name", "phone_number", "location", "role", "is_blocked", "creation_date"},
	}
	for _, v := range items {
		table.Append(v.ID, v.Email, v.FirstName, v.LastName, v.PhoneNumber, v.Location,
			string(v.Role), strconv.FormatBool(v.IsBlocked), exportTime(v.CreationDate))
	}
	return table
}

func playerAdvertisementsTable(items []advertisement.PlayerAdvertisement) export.Table {
	table := export.Table{
		Name: "player-advertisements",
		Header: []string{"id", "player_id", "player_position_id", "league", "region", "age", "height",
			"player_foot_id", "salary_min", "salary_max", "creation_date", "end_date"},
	}
	for _, v := range items {
		table.Append(v.ID, v.PlayerID, strconv.FormatInt(v.PlayerPositionID, 10), v.League, v.Region,
			strconv.Itoa(v.Age), strconv.Itoa(v.Height), strconv.FormatInt(v.PlayerFootID, 10),
			v.SalaryRange.Min.String(), v.SalaryRange.Max.String(), exportTime(v.CreationDate), exportTime(v.EndDate))
	}
	return table
}

func clubAdvertisementsTable(items []advertisement.ClubAdvertisement) export.Table {
	table := export.Table{
		Name: "club-advertisements",
		Header: []string{"id", "club_member_id", "player_position_id", "club_name", "league", "region",
			"salary_min", "salary_max", "creation_date", "end_date"},
	}
	for _, v := range items {
		table.Append(v.ID, v.ClubMemberID, strconv.FormatInt(v.PlayerPositionID, 10), v.ClubName, v.League, v.Region,
			v.SalaryRange.Min.String(), v.SalaryRange.Max.String(), exportTime(v.CreationDate), exportTime(v.EndDate))
	}
	return table
}

func clubOffersTable(items []offer.ClubOffer) export.Table {
	table := export.Table{
		Name: "club-offers",
		Header: []string{"id", "player_advertisement_id", "club_member_id", "offer_status", "player_position_id",
			"club_name", "league", "region", "salary", "additional_information", "creation_date"},
	}
	for _, v := range items {
		table.Append(v.ID, v.PlayerAdvertisementID, v.ClubMemberID, string(v.Status), strconv.FormatInt(v.PlayerPositionID, 10),
			v.ClubName, v.League, v.Region, v.Salary.String(), v.AdditionalInformation, exportTime(v.CreationDate))
	}
	return table
}

func playerOffersTable(items []offer.PlayerOffer) export.Table {
	table := export.Table{
		Name: "player-offers",
		Header: []string{"id", "club_advertisement_id", "player_id", "offer_status", "age", "height",
			"player_foot_id", "salary", "additional_information", "creation_date"},
	}
	for _, v := range items {
		table.Append(v.ID, v.ClubAdvertisementID, v.PlayerID, string(v.Status), strconv.Itoa(v.Age), strconv.Itoa(v.Height),
			strconv.FormatInt(v.PlayerFootID, 10), v.Salary.String(), v.AdditionalInformation, exportTime(v.CreationDate))
	}
	return table
}

func clubHistoriesTable(items []clubhistory.ClubHistory) export.Table {
	table := export.Table{
		Name: "club-histories",
		Header: []string{"id", "player_id", "club_name", "league", "region", "player_position_id",
			"number_of_matches", "goals", "assists", "additional_achievements", "start_date", "end_date"},
	}
	for _, v := range items {
		table.Append(v.ID, v.PlayerID, v.ClubName, v.League, v.Region, strconv.FormatInt(v.PlayerPositionID, 10),
			strconv.Itoa(v.Achievements.NumberOfMatches), strconv.Itoa(v.Achievements.Goals), strconv.Itoa(v.Achievements.Assists),
			v.Achievements.AdditionalAchievements, exportDate(v.StartDate), exportDate(v.EndDate))
	}
	return table
}

func problemsTable(items []problem.Problem) export.Table {
	table := export.Table{
		Name:   "problems",
		Header: []string{"id", "title", "description", "creation_date", "is_solved", "requester_id"},
	}
	for _, v := range items {
		table.Append(v.ID, v.Title, v.Description, exportTime(v.CreationDate), strconv.FormatBool(v.IsSolved), v.RequesterID)
	}
	return table
}
