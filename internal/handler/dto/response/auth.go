package response

import (
	"time"

	"paintball-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

func FromUserView(v *queries.AuthorizedUserView) UserResponse {
	return UserResponse{ID: v.ID, Email: v.Email, Role: v.Role, LastLoginAt: v.LastLoginAt}
}
