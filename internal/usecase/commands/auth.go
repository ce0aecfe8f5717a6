package commands

import (
	"context"

	"tourbook/internal/domain/guide"
	"tourbook/internal/domain/user"
	"tourbook/internal/infra"
	"tourbook/internal/pkg/clock"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/pkg/jwt"
	"tourbook/internal/pkg/password"
	"tourbook/internal/usecase/queries"
)

type SignUpInput struct {
	Email       string
	Password    string
	DisplayName string
	Role        string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult carries the signed token alongside the authenticated user so
// handlers can set the cookie and render the session in one pass.
type AuthResult struct {
	Token string
	User  *queries.UserView
}

type AuthCommands interface {
	SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
}

type authCommandsImpl struct {
	users  UserRepository
	guides GuideRepository
	tokens *jwt.Service
	clock  clock.Clock
}

func NewAuthCommands(users UserRepository, guides GuideRepository, tokens *jwt.Service, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{users: users, guides: guides, tokens: tokens, clock: clock}
}

func (c *authCommandsImpl) SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error) {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}
	pw, err := user.NewPassword(input.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}
	name, err := user.NewDisplayName(input.DisplayName)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}
	role, err := user.NewRole(input.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}
	if role == user.RoleAdmin {
		// Admin accounts are provisioned out of band, never via signup.
		return nil, errs.Mark(errs.New("admin signup not allowed"), errs.ErrValidationFailed)
	}

	hash, err := password.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	u := user.NewUser(email, hash, name, role, c.clock.Now())
	if err := c.users.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailTaken)
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	if role == user.RoleGuide {
		// A guide signup seeds a directory entry under the same id so the
		// profile editor and listings find it immediately.
		g, err := guide.NewGuide(guide.Draft{
			ID:    u.ID(),
			Name:  name.Value(),
			Email: email.Value(),
		}, c.clock.Now())
		if err != nil {
			return nil, errs.Mark(err, errs.ErrValidationFailed)
		}
		if err := c.guides.Create(ctx, g); err != nil {
			return nil, errs.Mark(err, errs.ErrStoreUnavailable)
		}
	}

	token, err := c.tokens.GenerateToken(u.ID(), role)
	if err != nil {
		return nil, errs.Wrap(err, "generate token")
	}

	return &AuthResult{Token: token, User: toUserView(u)}, nil
}

func (c *authCommandsImpl) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	u, err := c.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	if err := password.Verify(u.PasswordHash(), input.Password); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	token, err := c.tokens.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Wrap(err, "generate token")
	}

	return &AuthResult{Token: token, User: toUserView(u)}, nil
}

func toUserView(u *user.User) *queries.UserView {
	return &queries.UserView{
		ID:          u.ID(),
		Email:       u.Email().Value(),
		DisplayName: u.DisplayName().Value(),
		Role:        u.Role().String(),
		PhotoURL:    u.PhotoURL(),
		CreatedAt:   u.CreatedAt(),
	}
}
