package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scout-market/internal/domain/favorite"
	qb "github.com/riskibarqy/scout-market/internal/platform/querybuilder"
)

type favoriteTable struct {
	name     string
	adColumn string
}

var favoriteTables = map[favorite.Kind]favoriteTable{
	favorite.KindPlayerAdvertisement: {name: "favorite_player_advertisements", adColumn: "player_advertisement_id"},
	favorite.KindClubAdvertisement:   {name: "favorite_club_advertisements", adColumn: "club_advertisement_id"},
}

type FavoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Create(ctx context.Context, item favorite.Favorite) error {
	t, err := tableForKind(item.Kind)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertInto(t.name).
		Columns("id", "user_id", t.adColumn).
		Values(item.ID, item.UserID, item.AdvertisementID).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build insert favorite query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(mapWriteError(err), "insert favorite")
	}
	return nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, kind favorite.Kind, id string) (bool, error) {
	t, err := tableForKind(kind)
	if err != nil {
		return false, err
	}
	return deleteByID(ctx, r.db, t.name, id)
}

func (r *FavoriteRepository) GetByID(ctx context.Context, kind favorite.Kind, id string) (favorite.Favorite, bool, error) {
	t, err := tableForKind(kind)
	if err != nil {
		return favorite.Favorite{}, false, err
	}

	query, args, err := t.selectBuilder().Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return favorite.Favorite{}, false, errors.Wrap(err, "build get favorite query")
	}

	var row favoriteTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return favorite.Favorite{}, false, nil
		}
		return favorite.Favorite{}, false, errors.Wrap(err, "get favorite")
	}
	return favoriteFromRow(kind, row), true, nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, kind favorite.Kind, userID string) ([]favorite.Favorite, error) {
	t, err := tableForKind(kind)
	if err != nil {
		return nil, err
	}

	query, args, err := t.selectBuilder().Where(qb.Eq("user_id", userID)).OrderBy("id").ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list favorites query")
	}

	var rows []favoriteTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select favorites")
	}

	out := make([]favorite.Favorite, 0, len(rows))
	for _, row := range rows {
		out = append(out, favoriteFromRow(kind, row))
	}
	return out, nil
}

func (r *FavoriteRepository) Count(ctx context.Context, kind favorite.Kind) (int, error) {
	t, err := tableForKind(kind)
	if err != nil {
		return 0, err
	}
	return count(ctx, r.db, t.name)
}

func (t favoriteTable) selectBuilder() *qb.SelectBuilder {
	return qb.Select("id", "user_id", t.adColumn+" AS advertisement_id").From(t.name)
}

func tableForKind(kind favorite.Kind) (favoriteTable, error) {
	t, ok := favoriteTables[kind]
	if !ok {
		return favoriteTable{}, errors.Newf("unknown favorite kind: %s", kind)
	}
	return t, nil
}
