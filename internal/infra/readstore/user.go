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

type UserReadStore struct {
	db *pgxpool.Pool
}

func NewUserReadStore(db *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, email, display_name, role, photo_url, created_at
		FROM users
		WHERE id = $1`

	var v queries.UserView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Email, &v.DisplayName, &v.Role, &v.PhotoURL, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

// FindProfileByID reads the profile shape off the users record for roles
// that have no guides row.
func (r *UserReadStore) FindProfileByID(ctx context.Context, id uuid.UUID) (*queries.ProfileView, error) {
	const query = `
		SELECT id, display_name, email, phone, languages, bio, location, photo_url, role
		FROM users
		WHERE id = $1`

	var (
		v        queries.ProfileView
		photoURL *string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Email, &v.Phone, &v.Languages, &v.Bio, &v.Location, &photoURL, &v.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user profile", err)
	}
	if v.Languages == nil {
		v.Languages = []string{}
	}
	if photoURL != nil {
		v.Image = *photoURL
	}
	return &v, nil
}
