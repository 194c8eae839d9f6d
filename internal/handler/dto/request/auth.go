package request

import (
	"paintball-booking/internal/domain/user"
)

// LoginRequest is the back-office sign-in body. bcrypt ignores bytes past 72.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=254" example:"desk@paintball.example"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"correct-horse"`
}

func (r LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}
