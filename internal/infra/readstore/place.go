package readstore

import (
	"context"
	"errors"

	"tourbook/internal/infra"
	"tourbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const placeColumns = `
	id, name, description, history, ticket_price,
	open_time, close_time, image, gallery, created_at`

type PlaceReadStore struct {
	db *pgxpool.Pool
}

func NewPlaceReadStore(db *pgxpool.Pool) *PlaceReadStore {
	return &PlaceReadStore{db: db}
}

func (r *PlaceReadStore) FindAll(ctx context.Context) ([]*queries.PlaceView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+placeColumns+` FROM places ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list places", err)
	}
	defer rows.Close()

	views := make([]*queries.PlaceView, 0)
	for rows.Next() {
		view, err := scanPlaceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan place row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read place rows", err)
	}
	return views, nil
}

func (r *PlaceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PlaceView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+placeColumns+` FROM places WHERE id = $1`, id)

	view, err := scanPlaceView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("place not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find place by ID", err)
	}
	return view, nil
}

func scanPlaceView(row pgx.Row) (*queries.PlaceView, error) {
	var v queries.PlaceView
	err := row.Scan(
		&v.ID, &v.Name, &v.Description, &v.History, &v.TicketPrice,
		&v.OpenTime, &v.CloseTime, &v.Image, &v.Gallery, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if v.Gallery == nil {
		v.Gallery = []string{}
	}
	return &v, nil
}
