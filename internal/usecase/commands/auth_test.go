//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"paintball-booking/internal/infra"
	"paintball-booking/internal/pkg/clock"
	"paintball-booking/internal/pkg/errs"
	"paintball-booking/internal/pkg/jwt"
	"paintball-booking/internal/pkg/password"
	"paintball-booking/internal/usecase/commands"
	"paintball-booking/internal/usecase/queries"
	"paintball-booking/internal/usecase/shared"
	"paintball-booking/tests/common/builder"
	queriesmock "paintball-booking/tests/mock/queries"
	sharedmock "paintball-booking/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	users     *sharedmock.MockUserRepository
	readStore *queriesmock.MockUserReadStore
	clock     *clock.MockClock
	jwt       *jwt.Service
	hash      string
	commands  commands.AuthCommands
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) SetupSuite() {
	hash, err := password.HashPassword("password123")
	s.Require().NoError(err)
	s.hash = hash
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.users = sharedmock.NewMockUserRepository(s.ctrl)
	s.readStore = queriesmock.NewMockUserReadStore(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, time.June, 1, 8, 30, 0, 0, time.UTC))
	s.jwt = jwt.NewService("test-secret", time.Hour, s.clock)
	s.tx.EXPECT().Users().Return(s.users).AnyTimes()
	s.commands = commands.NewAuthCommands(s.uow, s.readStore, s.jwt, s.clock)
}

func (s *AuthCommandsTestSuite) within() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	s.Run("success: issues a token and records the login", func() {
		b := builder.NewUserBuilder()
		s.readStore.EXPECT().FindByEmail(gomock.Any(), b.Email).Return(b.BuildView(), s.hash, nil)
		s.within()
		s.users.EXPECT().UpdateLastLogin(gomock.Any(), b.ID, s.clock.Now()).Return(nil)

		result, err := s.commands.Login(context.Background(), b.BuildLoginDTO())

		s.Require().NoError(err)
		s.Equal(b.ID, result.User.ID)
		s.Equal(s.clock.Now().Add(time.Hour), result.ExpiresAt)
		s.Require().NotNil(result.User.LastLoginAt)
		s.Equal(s.clock.Now(), *result.User.LastLoginAt)

		claims, err := s.jwt.ValidateToken(result.AccessToken)
		s.Require().NoError(err)
		s.Equal(b.ID, claims.UserID)
	})

	s.Run("success: last login failure does not block the login", func() {
		b := builder.NewUserBuilder().AsAdmin()
		s.readStore.EXPECT().FindByEmail(gomock.Any(), b.Email).Return(b.BuildView(), s.hash, nil)
		s.within()
		s.users.EXPECT().UpdateLastLogin(gomock.Any(), b.ID, gomock.Any()).Return(errors.New("deadlock"))

		result, err := s.commands.Login(context.Background(), b.BuildLoginDTO())

		s.Require().NoError(err)
		s.NotEmpty(result.AccessToken)
		s.Nil(result.User.LastLoginAt)
	})

	s.Run("error: credential failures", func() {
		cases := []struct {
			name   string
			mutate func(*builder.UserBuilder)
			setup  func(b *builder.UserBuilder)
			errIs  error
		}{
			{
				name:   "wrong password",
				mutate: func(b *builder.UserBuilder) { b.Password = "not-the-password" },
				setup: func(b *builder.UserBuilder) {
					s.readStore.EXPECT().FindByEmail(gomock.Any(), b.Email).Return(b.BuildView(), s.hash, nil)
				},
				errIs: commands.ErrInvalidCredentials,
			},
			{
				name:   "unknown email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("ghost@example.com") },
				setup: func(b *builder.UserBuilder) {
					s.readStore.EXPECT().FindByEmail(gomock.Any(), b.Email).
						Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))
				},
				errIs: commands.ErrInvalidCredentials,
			},
			{
				name:   "inactive account",
				mutate: func(b *builder.UserBuilder) { b.AsInactive() },
				setup: func(b *builder.UserBuilder) {
					s.readStore.EXPECT().FindByEmail(gomock.Any(), b.Email).Return(b.BuildView(), s.hash, nil)
				},
				errIs: queries.ErrUserInactive,
			},
			{
				name:   "malformed email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("not-an-email") },
				setup:  func(*builder.UserBuilder) {},
				errIs:  commands.ErrAuthenticationFailed,
			},
			{
				name:   "unknown role in store",
				mutate: func(b *builder.UserBuilder) { b.WithRole("viewer") },
				setup: func(b *builder.UserBuilder) {
					s.readStore.EXPECT().FindByEmail(gomock.Any(), b.Email).Return(b.BuildView(), s.hash, nil)
				},
				errIs: commands.ErrAuthenticationFailed,
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				b := builder.NewUserBuilder().With(tc.mutate)
				tc.setup(b)

				_, err := s.commands.Login(context.Background(), b.BuildLoginDTO())

				s.True(errs.Is(err, tc.errIs), "got %v", err)
			})
		}
	})
}
