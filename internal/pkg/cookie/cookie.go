package cookie

import (
	"net/http"
	"time"

	"paintball-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// AccessTokenCookieName carries the back-office JWT for browser clients.
const AccessTokenCookieName = "access_token"

const cookiePath = "/api"

var sameSiteModes = map[string]http.SameSite{
	"Strict": http.SameSiteStrictMode,
	"Lax":    http.SameSiteLaxMode,
	"None":   http.SameSiteNoneMode,
}

func SetAccessToken(c *gin.Context, cfg config.CookieConfig, token string, ttl time.Duration) {
	write(c, cfg, token, int(ttl.Seconds()))
}

func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}

func write(c *gin.Context, cfg config.CookieConfig, value string, maxAge int) {
	mode, ok := sameSiteModes[cfg.SameSite]
	if !ok {
		mode = http.SameSiteLaxMode
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     AccessTokenCookieName,
		Value:    value,
		Path:     cookiePath,
		Domain:   cfg.Domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		// browsers drop SameSite=None cookies that are not Secure
		Secure:   cfg.Secure || mode == http.SameSiteNoneMode,
		SameSite: mode,
	})
}
