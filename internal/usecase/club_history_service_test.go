package usecase

import (
	"testing"

	"github.com/riskibarqy/scout-market/internal/domain/clubhistory"
	"github.com/riskibarqy/scout-market/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClubHistoryInput() ClubHistoryInput {
	return ClubHistoryInput{
		ClubName:         "Vitoria SC",
		League:           "Liga Portugal",
		Region:           "Guimaraes",
		PlayerPositionID: 7,
		Achievements: clubhistory.Achievements{
			NumberOfMatches:        64,
			Goals:                  18,
			Assists:                11,
			AdditionalAchievements: " Young player of the season ",
		},
		StartDate: testNow.AddDate(-3, 0, 0),
		EndDate:   testNow.AddDate(-1, 0, 0),
	}
}

func TestClubHistoryService_Flow(t *testing.T) {
	t.Parallel()

	m := newMarketplace(t)
	player := m.signUp(t, "player", user.RoleUser)
	other := m.signUp(t, "other", user.RoleUser)

	created, err := m.histories.Create(t.Context(), player, validClubHistoryInput())
	require.NoError(t, err)
	assert.Equal(t, player.UserID, created.PlayerID)
	assert.Equal(t, "Young player of the season", created.Achievements.AdditionalAchievements)

	t.Run("end before start", func(t *testing.T) {
		input := validClubHistoryInput()
		input.EndDate = input.StartDate.AddDate(0, 0, -1)
		_, err := m.histories.Create(t.Context(), player, input)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("same day spell is allowed", func(t *testing.T) {
		input := validClubHistoryInput()
		input.EndDate = input.StartDate
		_, err := m.histories.Create(t.Context(), other, input)
		require.NoError(t, err)
	})

	t.Run("negative counters", func(t *testing.T) {
		input := validClubHistoryInput()
		input.Achievements.Goals = -1
		_, err := m.histories.Create(t.Context(), player, input)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown position", func(t *testing.T) {
		input := validClubHistoryInput()
		input.PlayerPositionID = 42
		_, err := m.histories.Create(t.Context(), player, input)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("only owner edits", func(t *testing.T) {
		input := validClubHistoryInput()
		input.Achievements.Goals = 19
		_, err := m.histories.Update(t.Context(), other, created.ID, input)
		assert.ErrorIs(t, err, ErrForbidden)

		updated, err := m.histories.Update(t.Context(), player, created.ID, input)
		require.NoError(t, err)
		assert.Equal(t, 19, updated.Achievements.Goals)
	})

	mine, err := m.histories.List(t.Context(), player.UserID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := m.histories.List(t.Context(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, m.histories.Delete(t.Context(), player, created.ID))
	n, err := m.histories.Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
