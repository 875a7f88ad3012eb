package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/menubook/backend/internal/session"
)

// SessionIDKey is the gin context key under which the session
// identifier is stored for handlers.
const SessionIDKey = "session_id"

// Session ensures every request carries a valid session identifier,
// minting and setting a signed cookie when none is present. Minting is
// unconditional and never fails the request.
func Session(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Request.Cookie(session.CookieName); err == nil {
			if sid, err := manager.Parse(cookie.Value); err == nil {
				c.Set(SessionIDKey, sid)
				c.Next()
				return
			}
		}

		sid := manager.Mint()
		if signed, err := manager.Sign(sid); err == nil {
			c.Writer.Header().Add("Set-Cookie", session.Cookie(signed).String())
		}
		c.Set(SessionIDKey, sid)
		c.Next()
	}
}

// SessionID returns the request's session identifier
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
