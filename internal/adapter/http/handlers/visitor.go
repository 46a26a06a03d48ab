package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	VisitorKeyHeader = "X-Visitor-Key"
	VisitorKeyCookie = "visitor_key"

	visitorKeyContextKey = "visitor_key"
	visitorKeyMaxLength  = 128
	visitorCookieMaxAge  = 30 * 24 * 60 * 60
)

// VisitorKeyMiddleware resolves the opaque key that scopes custom options.
//
// The header wins over the cookie. A visitor without either gets a fresh
// uuid, returned as a cookie and in the response header.
func VisitorKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(VisitorKeyHeader))
		if key == "" {
			if cookie, err := c.Cookie(VisitorKeyCookie); err == nil {
				key = strings.TrimSpace(cookie)
			}
		}
		if key == "" || len(key) > visitorKeyMaxLength {
			key = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(VisitorKeyCookie, key, visitorCookieMaxAge, "/", "", false, true)
		}
		c.Header(VisitorKeyHeader, key)
		c.Set(visitorKeyContextKey, key)
		c.Next()
	}
}

// VisitorKey returns the key resolved by VisitorKeyMiddleware, or "" when
// the middleware did not run.
func VisitorKey(c *gin.Context) string {
	return c.GetString(visitorKeyContextKey)
}
