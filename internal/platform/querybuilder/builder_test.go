package querybuilder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBuilder(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	query, args, err := Select("id", "league").
		From("player_advertisements").
		Where(Eq("player_id", "u1"), Gte("end_date", now)).
		OrderBy("creation_date DESC", "id").
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, league FROM player_advertisements WHERE player_id = $1 AND end_date >= $2 ORDER BY creation_date DESC, id", query)
	assert.Equal(t, []any{"u1", now}, args)
}

func TestSelectBuilder_OrAndExpr(t *testing.T) {
	t.Parallel()

	query, args, err := Select("COUNT(*)").
		From("club_offers").
		Where(
			Or(Eq("club_member_id", "u1"), Lt("creation_date", "2026-01-01")),
			Expr("player_advertisement_id IN (SELECT id FROM player_advertisements WHERE player_id = ?)", "u2"),
		).
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT COUNT(*) FROM club_offers WHERE (club_member_id = $1 OR creation_date < $2) AND player_advertisement_id IN (SELECT id FROM player_advertisements WHERE player_id = $3)",
		query)
	assert.Equal(t, []any{"u1", "2026-01-01", "u2"}, args)
}

func TestSelectBuilder_EmptyOrNeverMatches(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").From("chats").Where(Or()).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM chats WHERE 1=0", query)
	assert.Empty(t, args)
}

func TestExpr_SurplusMarkersKept(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").From("problems").Where(Expr("title = ? OR title = ?", "a")).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM problems WHERE title = $1 OR title = ?", query)
	assert.Equal(t, []any{"a"}, args)
}

func TestInsertBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("player_positions").
		Columns("id", "name").
		Values(int64(1), "Goalkeeper").
		Values(int64(2), "Center Back").
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO player_positions (id, name) VALUES ($1, $2), ($3, $4) ON CONFLICT (id) DO NOTHING", query)
	assert.Equal(t, []any{int64(1), "Goalkeeper", int64(2), "Center Back"}, args)
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	t.Parallel()

	_, _, err := InsertInto("player_feet").Columns("id", "name").Values(int64(1)).ToSQL()
	require.Error(t, err)
}

func TestUpdateBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Update("club_offers").
		Set("offer_status", "accepted").
		Where(Eq("id", "o1")).
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE club_offers SET offer_status = $1 WHERE id = $2", query)
	assert.Equal(t, []any{"accepted", "o1"}, args)
}

func TestBuilders_RejectUnboundedWrites(t *testing.T) {
	t.Parallel()

	_, _, err := Update("problems").Set("is_solved", true).ToSQL()
	require.Error(t, err)

	_, _, err = DeleteFrom("problems").ToSQL()
	require.Error(t, err)
}

func TestDeleteBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := DeleteFrom("problems").Where(Eq("id", "p1")).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM problems WHERE id = $1", query)
	assert.Equal(t, []any{"p1"}, args)
}

type problemRow struct {
	ID       string `db:"id"`
	Title    string `db:"title"`
	IsSolved bool   `db:"is_solved"`
	Skipped  string `db:"-"`
	internal string
}

func TestInsertModel(t *testing.T) {
	t.Parallel()

	query, args, err := InsertModel("problems", &problemRow{ID: "p1", Title: "broken", Skipped: "x", internal: "y"}, "")
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO problems (id, title, is_solved) VALUES ($1, $2, $3)", query)
	assert.Equal(t, []any{"p1", "broken", false}, args)
}

func TestUpdateModel(t *testing.T) {
	t.Parallel()

	query, args, err := UpdateModel("problems", problemRow{ID: "p-1", Title: "broken", IsSolved: true}, "id")
	require.NoError(t, err)

	assert.Equal(t, "UPDATE problems SET title = $1, is_solved = $2 WHERE id = $3", query)
	assert.Equal(t, []any{"broken", true, "p-1"}, args)

	_, _, err = UpdateModel("problems", problemRow{}, "public_id")
	require.Error(t, err)
}

func TestModelColumns_RejectsNonStructs(t *testing.T) {
	t.Parallel()

	var nilRow *problemRow
	_, _, err := InsertModel("problems", nilRow, "")
	require.Error(t, err)

	_, _, err = InsertModel("problems", "not a row", "")
	require.Error(t, err)

	_, _, err = InsertModel("problems", struct{ Name string }{Name: "x"}, "")
	require.Error(t, err)
}
