package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Role is fixed at signup; there is no escalation flow.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	displayName  DisplayName
	role         Role
	photoURL     *string
	createdAt    time.Time
}

func NewUser(email Email, passwordHash string, displayName DisplayName, role Role, createdAt time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         role,
		createdAt:    createdAt,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash string,
	displayName DisplayName,
	role Role,
	photoURL *string,
	createdAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         role,
		photoURL:     photoURL,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID            { return u.id }
func (u *User) Email() Email             { return u.email }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) DisplayName() DisplayName { return u.displayName }
func (u *User) Role() Role               { return u.role }
func (u *User) PhotoURL() *string        { return u.photoURL }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
