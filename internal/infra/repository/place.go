package repository

import (
	"context"
	"fmt"
	"strings"

	"tourbook/internal/domain/place"
	"tourbook/internal/infra"
	"tourbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlaceRepository struct {
	db *pgxpool.Pool
}

func NewPlaceRepository(db *pgxpool.Pool) *PlaceRepository {
	return &PlaceRepository{db: db}
}

func (r *PlaceRepository) Create(ctx context.Context, p *place.Place) error {
	const query = `
		INSERT INTO places (
			id, name, description, history, ticket_price,
			open_time, close_time, image, gallery, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		p.ID(), p.Name(), p.Description(), p.History(), p.TicketPrice(),
		p.OpenTime(), p.CloseTime(), p.Image(), p.Gallery(), p.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create place", err, pgErrKind(err))
	}
	return nil
}

func (r *PlaceRepository) Update(ctx context.Context, id uuid.UUID, update commands.PlaceUpdate) error {
	set := make([]string, 0, 8)
	args := make([]any, 0, 9)
	args = append(args, id)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		add("name", *update.Name)
	}
	if update.Description != nil {
		add("description", *update.Description)
	}
	if update.History != nil {
		add("history", *update.History)
	}
	if update.TicketPrice != nil {
		add("ticket_price", *update.TicketPrice)
	}
	if update.OpenTime != nil {
		add("open_time", *update.OpenTime)
	}
	if update.CloseTime != nil {
		add("close_time", *update.CloseTime)
	}
	if update.Image != nil {
		add("image", *update.Image)
	}
	if update.Gallery != nil {
		add("gallery", update.Gallery)
	}

	if len(set) == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM places WHERE id = $1)`, id).Scan(&exists); err != nil {
			return infra.WrapRepoErr("failed to check place", err)
		}
		if !exists {
			return infra.WrapRepoErr("place not found", nil, infra.KindNotFound)
		}
		return nil
	}

	query := fmt.Sprintf(`UPDATE places SET %s WHERE id = $1`, strings.Join(set, ", "))
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update place", err, pgErrKind(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("place not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PlaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM places WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete place", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("place not found", nil, infra.KindNotFound)
	}
	return nil
}
