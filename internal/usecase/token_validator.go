package usecase

import (
	"bookhaven/internal/domain/user"
	"bookhaven/internal/pkg/errs"
	"bookhaven/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves a bearer token to a verified caller identity.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidator{jwt: jwtService}
}

func (t *tokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwt.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", errs.Wrap(err, "token validation failed")
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Wrap(err, "token carries unknown role")
	}

	return claims.UserID, role, nil
}
