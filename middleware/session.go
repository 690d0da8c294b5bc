package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"farewise/config"
)

const (
	// SessionCookieName is the anonymous conversation session cookie.
	SessionCookieName = "fw_session"

	// SessionIDKey is where the session id lands in the gin context.
	SessionIDKey = "sessionID"
	// SessionNewKey is true when the cookie was issued on this request,
	// meaning no prior conversation state can exist.
	SessionNewKey = "sessionNew"
)

// SessionMiddleware assigns every client an anonymous session id via an
// httpOnly cookie. No accounts, no auth: the cookie only keys conversation
// state in the session store.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		isNew := err != nil || sessionID == ""
		if isNew {
			sessionID = uuid.NewString()
			maxAge := config.AppConfig.SessionTTLHours * 3600
			c.SetCookie(SessionCookieName, sessionID, maxAge, "/", "", config.IsProduction(), true)
		}

		c.Set(SessionIDKey, sessionID)
		c.Set(SessionNewKey, isNew)
		c.Next()
	}
}
