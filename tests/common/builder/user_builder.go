//go:build unit || e2e

package builder

import (
	"time"

	"paintball-booking/internal/domain/user"
	reqdto "paintball-booking/internal/handler/dto/request"
	"paintball-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	Password     string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLogin    *time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "staff@example.com",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Role:         string(user.RoleStaff),
		IsActive:     true,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.Role = string(user.RoleAdmin)
	return b
}

func (b *UserBuilder) AsInactive() *UserBuilder {
	b.IsActive = false
	return b
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(b.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(b.ID, email, b.PasswordHash, role, b.LastLogin, b.IsActive), nil
}

func (b *UserBuilder) BuildCredentials() (user.Credentials, error) {
	return user.NewCredentials(b.Email, b.Password)
}

func (b *UserBuilder) BuildView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          b.ID,
		Email:       b.Email,
		Role:        b.Role,
		IsActive:    b.IsActive,
		LastLoginAt: b.LastLogin,
	}
}

func (b *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: b.Email, Password: b.Password}
}
