package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tourbook/internal/domain/user"
	"tourbook/internal/infra"
	"tourbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, email, password_hash, display_name, role, photo_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.DisplayName().Value(),
		u.Role().String(), u.PhotoURL(), u.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err, pgErrKind(err))
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	const query = `
		SELECT id, email, password_hash, display_name, role, photo_url, created_at
		FROM users
		WHERE email = $1`

	var (
		id                              uuid.UUID
		emailValue, hash, name, roleStr string
		photoURL                        *string
		createdAt                       time.Time
	)
	err := r.db.QueryRow(ctx, query, email.Value()).Scan(
		&id, &emailValue, &hash, &name, &roleStr, &photoURL, &createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	// Stored rows passed validation on write, so failures here mean the
	// data itself is corrupt.
	emailVO, err := user.NewEmail(emailValue)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user email", err)
	}
	nameVO, err := user.NewDisplayName(name)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user display name", err)
	}
	role, err := user.NewRole(roleStr)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user role", err)
	}

	return user.ReconstructUser(id, emailVO, hash, nameVO, role, photoURL, createdAt), nil
}

// SaveProfile writes the profile fields kept on the users record. Non-guide
// roles have no guides row, so this is their primary profile write; the SET
// list is built from non-nil fields only.
func (r *UserRepository) SaveProfile(ctx context.Context, id uuid.UUID, update commands.ProfileUpdate) error {
	set := make([]string, 0, 6)
	args := make([]any, 0, 7)
	args = append(args, id)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		add("display_name", *update.Name)
	}
	if update.Phone != nil {
		add("phone", *update.Phone)
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
	if update.Image != nil {
		add("photo_url", *update.Image)
	}

	if len(set) == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists); err != nil {
			return infra.WrapRepoErr("failed to check user", err)
		}
		if !exists {
			return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
		}
		return nil
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $1`, strings.Join(set, ", "))
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to save profile", err, pgErrKind(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

// MirrorProfile refreshes the denormalized display name and photo kept on
// the auth record after a profile save.
func (r *UserRepository) MirrorProfile(ctx context.Context, id uuid.UUID, displayName string, photoURL *string) error {
	const query = `UPDATE users SET display_name = $2, photo_url = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, displayName, photoURL)
	if err != nil {
		return infra.WrapRepoErr("failed to mirror profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
