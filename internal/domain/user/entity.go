package user

import (
	"errors"
	"time"

	"paintball-booking/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrAccountInactive  = errors.New("account inactive")
	ErrPasswordMismatch = errors.New("password mismatch")
)

// User is a back-office account (venue staff or administrator).
// Customers never sign in; they only leave contact details on bookings.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
}

func ReconstructUser(id uuid.UUID, email Email, passwordHash string, role Role, lastLogin *time.Time, isActive bool) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
	}
}

// Authenticate checks that the account may open a back-office session with pw.
// A deactivated account is refused before the hash is compared.
func (u *User) Authenticate(pw Password) error {
	if !u.isActive {
		return ErrAccountInactive
	}
	if err := password.ComparePassword(u.passwordHash, pw.Value()); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

func (u *User) RecordLogin(at time.Time) {
	u.lastLogin = &at
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
