package usecase

import (
	"tourbook/internal/domain/user"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves a raw token into the caller's identity. Kept as
// an interface so middleware tests can stub authentication.
type TokenValidator interface {
	Validate(token string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwt: jwtService}
}

func (v *tokenValidatorImpl) Validate(token string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwt.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, errs.ErrUnauthorized)
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, errs.ErrUnauthorized)
	}
	return claims.UserID, role, nil
}
