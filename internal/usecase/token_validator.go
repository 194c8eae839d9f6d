package usecase

import (
	"time"

	"paintball-booking/internal/domain/user"
	"paintball-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Principal is the back-office account behind a request.
type Principal struct {
	UserID    uuid.UUID
	Role      user.Role
	ExpiresAt time.Time
}

// TokenValidator resolves an access token into a Principal.
type TokenValidator interface {
	Authenticate(token string) (Principal, error)
}

type jwtTokenValidator struct {
	tokens *jwt.Service
}

func NewTokenValidator(tokens *jwt.Service) TokenValidator {
	return &jwtTokenValidator{tokens: tokens}
}

func (v *jwtTokenValidator) Authenticate(token string) (Principal, error) {
	claims, err := v.tokens.ValidateToken(token)
	if err != nil {
		return Principal{}, err
	}

	// tokens minted for a role that no longer exists are rejected outright
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Principal{}, jwt.ErrInvalidToken
	}

	p := Principal{UserID: claims.UserID, Role: role}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Time
	}
	return p, nil
}
