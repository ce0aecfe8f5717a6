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

const guideColumns = `
	id, name, email, phone, experience, rate,
	languages, bio, location, place_id, place_name,
	image, status, joined`

type GuideReadStore struct {
	db *pgxpool.Pool
}

func NewGuideReadStore(db *pgxpool.Pool) *GuideReadStore {
	return &GuideReadStore{db: db}
}

func (r *GuideReadStore) FindAll(ctx context.Context) ([]*queries.GuideView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+guideColumns+` FROM guides ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guides", err)
	}
	defer rows.Close()

	return collectGuideViews(rows)
}

func (r *GuideReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GuideView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+guideColumns+` FROM guides WHERE id = $1`, id)

	view, err := scanGuideView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("guide not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guide by ID", err)
	}
	return view, nil
}

func (r *GuideReadStore) FindByPlaceID(ctx context.Context, placeID uuid.UUID) ([]*queries.GuideView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+guideColumns+` FROM guides WHERE place_id = $1 ORDER BY name`, placeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guides by place", err)
	}
	defer rows.Close()

	return collectGuideViews(rows)
}

func scanGuideView(row pgx.Row) (*queries.GuideView, error) {
	var v queries.GuideView
	err := row.Scan(
		&v.ID, &v.Name, &v.Email, &v.Phone, &v.Experience, &v.Rate,
		&v.Languages, &v.Bio, &v.Location, &v.PlaceID, &v.PlaceName,
		&v.Image, &v.Status, &v.Joined,
	)
	if err != nil {
		return nil, err
	}
	if v.Languages == nil {
		v.Languages = []string{}
	}
	return &v, nil
}

func collectGuideViews(rows pgx.Rows) ([]*queries.GuideView, error) {
	views := make([]*queries.GuideView, 0)
	for rows.Next() {
		view, err := scanGuideView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan guide row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read guide rows", err)
	}
	return views, nil
}
