package repository

import (
	"context"
	"fmt"
	"strings"

	"tourbook/internal/domain/guide"
	"tourbook/internal/infra"
	"tourbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GuideRepository struct {
	db *pgxpool.Pool
}

func NewGuideRepository(db *pgxpool.Pool) *GuideRepository {
	return &GuideRepository{db: db}
}

func (r *GuideRepository) Create(ctx context.Context, g *guide.Guide) error {
	const query = `
		INSERT INTO guides (
			id, name, email, phone, experience, rate,
			languages, bio, location, place_id, place_name,
			image, status, joined
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.Exec(ctx, query,
		g.ID(), g.Name(), g.Email(), g.Phone(), g.Experience(), g.Rate(),
		g.Languages(), g.Bio(), g.Location(), g.PlaceID(), g.PlaceName(),
		g.Image(), g.Status(), g.Joined(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create guide", err, pgErrKind(err))
	}
	return nil
}

// Update builds the SET list from non-nil fields only, so partial edits
// never clobber columns the caller didn't touch.
func (r *GuideRepository) Update(ctx context.Context, id uuid.UUID, update commands.GuideUpdate) error {
	set := make([]string, 0, 11)
	args := make([]any, 0, 12)
	args = append(args, id)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		add("name", *update.Name)
	}
	if update.Phone != nil {
		add("phone", *update.Phone)
	}
	if update.Experience != nil {
		add("experience", *update.Experience)
	}
	if update.Rate != nil {
		add("rate", *update.Rate)
	}
	if update.Languages != nil {
		add("languages", update.Languages)
	}
	if update.Bio != nil {
		add("bio", *update.Bio)
	}
	if update.Location != nil {
		add("location", *update.Location)
	}
	if update.PlaceID != nil {
		add("place_id", *update.PlaceID)
	}
	if update.PlaceName != nil {
		add("place_name", *update.PlaceName)
	}
	if update.Image != nil {
		add("image", *update.Image)
	}
	if update.Status != nil {
		add("status", *update.Status)
	}

	if len(set) == 0 {
		// Nothing to change, but the row must still exist.
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM guides WHERE id = $1)`, id).Scan(&exists); err != nil {
			return infra.WrapRepoErr("failed to check guide", err)
		}
		if !exists {
			return infra.WrapRepoErr("guide not found", nil, infra.KindNotFound)
		}
		return nil
	}

	query := fmt.Sprintf(`UPDATE guides SET %s WHERE id = $1`, strings.Join(set, ", "))
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update guide", err, pgErrKind(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guide not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *GuideRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM guides WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete guide", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guide not found", nil, infra.KindNotFound)
	}
	return nil
}
