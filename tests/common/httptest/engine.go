//go:build unit || e2e

package httptest

import (
	"testing"

	"paintball-booking/internal/handler/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

// NewEngine returns a bare test engine whose binding validator knows the custom tags.
func NewEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok, "unexpected binding engine")
	require.NoError(t, validation.Register(v))

	return gin.New()
}
