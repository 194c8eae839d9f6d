//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"paintball-booking/internal/handler/httperr"
	"paintball-booking/internal/handler/middleware"
	"paintball-booking/internal/pkg/errs"
	"paintball-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/panic", func(*gin.Context) { panic("marker exploded") })
	r.GET("/conflict", func(c *gin.Context) {
		httperr.AbortWithDomainError(c, errs.Wrap(errs.ErrBookingConflict, "insert booking"))
	})
	r.GET("/silent", func(c *gin.Context) {
		_ = c.Error(gin.Error{
			Err:  errs.New("quota"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.NewResponse(http.StatusTooManyRequests, "Slow down", nil),
		})
	})
	r.GET("/private", func(c *gin.Context) { _ = c.Error(errs.New("hidden")) })
	return r
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()

	t.Run("panic answers the 500 envelope", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("domain error keeps its mapped status", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/conflict", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Slot is already booked")
	})

	t.Run("unwritten public error is rendered from its meta", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/silent", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusTooManyRequests, "Slow down")
	})

	t.Run("private error never leaks its message", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, w.Body.String(), "hidden")
	})
}
