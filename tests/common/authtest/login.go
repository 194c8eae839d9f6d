//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"paintball-booking/internal/domain/user"
	"paintball-booking/internal/handler/dto/request"
	"paintball-booking/internal/pkg/cookie"
	"paintball-booking/tests/common/dbtest"
	"paintball-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser signs in through the API and returns the access token from the cookie.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, c, "login did not set %s", cookie.AccessTokenCookieName)
	require.NotEmpty(t, c.Value)
	return c.Value
}

// StaffSession seeds a back-office account for role and logs it in.
func StaffSession(t *testing.T, db dbtest.DBLike, router *gin.Engine, role user.Role) string {
	t.Helper()
	email := role.String() + "@paintball.example"
	dbtest.CreateTestUser(t, db, email, role.String())
	return LoginUser(t, router, email, dbtest.TestPassword)
}
