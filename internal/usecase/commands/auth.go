package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"paintball-booking/internal/domain/user"
	reqdto "paintball-booking/internal/handler/dto/request"
	"paintball-booking/internal/pkg/clock"
	"paintball-booking/internal/pkg/errs"
	"paintball-booking/internal/pkg/jwt"
	"paintball-booking/internal/usecase/queries"
	"paintball-booking/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	User        *queries.AuthorizedUserView
	AccessToken string
	ExpiresAt   time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clock,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	account, view, err := a.authenticate(ctx, credentials)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := a.jwtService.GenerateToken(account.ID(), account.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	now := a.clock.Now()
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, account.ID(), now)
	})
	if err != nil {
		// the token is already issued
		slog.Warn("failed to update last login", "user_id", account.ID(), "error", err.Error())
	} else {
		account.RecordLogin(now)
	}
	view.LastLoginAt = account.LastLogin()

	return &LoginResult{
		User:        view,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// authenticate answers ErrInvalidCredentials for both an unknown email and a
// wrong password so the endpoint cannot be used to enumerate staff accounts.
func (a *authCommandsImpl) authenticate(ctx context.Context, credentials user.Credentials) (*user.User, *queries.AuthorizedUserView, error) {
	view, hash, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil || view == nil {
		return nil, nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	account := user.ReconstructUser(view.ID, credentials.Email(), hash, role, view.LastLoginAt, view.IsActive)

	switch err := account.Authenticate(credentials.Password()); {
	case errors.Is(err, user.ErrAccountInactive):
		return nil, nil, queries.ErrUserInactive
	case err != nil:
		return nil, nil, ErrInvalidCredentials
	}
	return account, view, nil
}
