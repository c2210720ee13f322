package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
	"github.com/riskibarqy/scout-market/internal/domain/advertisement"
	"github.com/riskibarqy/scout-market/internal/domain/clubhistory"
	"github.com/riskibarqy/scout-market/internal/platform/dberr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapWriteError(t *testing.T) {
	t.Run("unique violation", func(t *testing.T) {
		err := mapWriteError(&pq.Error{Code: pqUniqueViolation, Constraint: "users_email_key"})
		if !errors.Is(err, dberr.ErrUniqueViolation) {
			t.Fatalf("expected unique violation, got %v", err)
		}
	})

	t.Run("foreign key violation behind wrap", func(t *testing.T) {
		wrapped := errors.Wrap(&pq.Error{Code: pqForeignKeyViolation, Constraint: "messages_chat_id_fkey"}, "insert message")
		err := mapWriteError(wrapped)
		if !errors.Is(err, dberr.ErrForeignKeyViolation) {
			t.Fatalf("expected foreign key violation, got %v", err)
		}
	})

	t.Run("other pq errors pass through", func(t *testing.T) {
		src := &pq.Error{Code: "42P01"}
		err := mapWriteError(src)
		if errors.Is(err, dberr.ErrUniqueViolation) || errors.Is(err, dberr.ErrForeignKeyViolation) {
			t.Fatalf("unexpected constraint mapping for %v", err)
		}
	})

	t.Run("nil stays nil", func(t *testing.T) {
		if err := mapWriteError(nil); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(errors.Wrap(sql.ErrNoRows, "get user")) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(errors.New("boom")) {
		t.Fatalf("expected unrelated error to be found")
	}
}

func TestJSONColumn_RoundTrip(t *testing.T) {
	in := jsonColumn[advertisement.SalaryRange]{V: advertisement.SalaryRange{
		Min: decimal.RequireFromString("1500.50"),
		Max: decimal.RequireFromString("3000"),
	}}

	raw, err := in.Value()
	require.NoError(t, err)
	text, ok := raw.(string)
	require.True(t, ok, "expected string driver value, got %T", raw)

	var fromText jsonColumn[advertisement.SalaryRange]
	require.NoError(t, fromText.Scan(text))
	assert.True(t, in.V.Min.Equal(fromText.V.Min))
	assert.True(t, in.V.Max.Equal(fromText.V.Max))

	var fromBytes jsonColumn[advertisement.SalaryRange]
	require.NoError(t, fromBytes.Scan([]byte(text)))
	assert.True(t, in.V.Max.Equal(fromBytes.V.Max))
}

func TestJSONColumn_Scan(t *testing.T) {
	t.Run("nil resets value", func(t *testing.T) {
		c := jsonColumn[clubhistory.Achievements]{V: clubhistory.Achievements{Goals: 3}}
		require.NoError(t, c.Scan(nil))
		assert.Equal(t, clubhistory.Achievements{}, c.V)
	})

	t.Run("camel case keys", func(t *testing.T) {
		var c jsonColumn[clubhistory.Achievements]
		require.NoError(t, c.Scan(`{"numberOfMatches":30,"goals":12,"assists":4,"additionalAchievements":"top scorer"}`))
		assert.Equal(t, clubhistory.Achievements{
			NumberOfMatches:        30,
			Goals:                  12,
			Assists:                4,
			AdditionalAchievements: "top scorer",
		}, c.V)
	})

	t.Run("rejects unsupported source", func(t *testing.T) {
		var c jsonColumn[clubhistory.Achievements]
		assert.Error(t, c.Scan(42))
	})
}

func TestAdvertisementConditions(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name   string
		filter advertisement.Filter
		want   int
	}{
		{name: "all", filter: advertisement.Filter{Now: now}, want: 0},
		{name: "active", filter: advertisement.Filter{State: advertisement.StateActive, Now: now}, want: 1},
		{name: "inactive owned", filter: advertisement.Filter{State: advertisement.StateInactive, OwnerID: "u1", Now: now}, want: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, advertisementConditions("player_id", tc.filter), tc.want)
		})
	}
}
