package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// IdentityCookieName carries the anonymous per-browser identity that
	// scopes likes and favorites.
	IdentityCookieName = "user_uuid"

	identityCookieMaxAge = 365 * 24 * 60 * 60
	identityContextKey   = "__user_identity"
)

// Identity ensures every request carries an anonymous identity. A request
// without the cookie gets a freshly generated one set on the response; a
// request with the cookie keeps it and no new cookie is written.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(IdentityCookieName)
		if err != nil || strings.TrimSpace(id) == "" {
			id = uuid.NewString()

			http.SetCookie(c.Writer, &http.Cookie{
				Name:     IdentityCookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				Secure:   c.Request.TLS != nil,
				MaxAge:   identityCookieMaxAge,
				Expires:  time.Now().Add(365 * 24 * time.Hour),
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(identityContextKey, id)
		c.Next()
	}
}

// CallerIdentity returns the request's anonymous identity. The value covers
// the current request even when the cookie was only just issued.
func CallerIdentity(c *gin.Context) string {
	if id, exists := c.Get(identityContextKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
