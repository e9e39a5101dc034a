package middlewares

import (
	"errors"

	"github.com/Ayush29kumar/Restraunt-SaaS/pkg/resp"
	"github.com/Ayush29kumar/Restraunt-SaaS/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "session_id"

// SessionMiddleware issues the browsing-session cookie and loads any
// existing session into the gin context. Expired or absent sessions leave
// the context without one; table entry starts a fresh session.
func SessionMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(sessionCookie, id, int(store.TTL.Seconds()), "/", "", false, true)
		}
		c.Set("sessionId", id)

		sess, err := store.Get(c.Request.Context(), id)
		if err != nil && !errors.Is(err, session.ErrNotFound) {
			resp.ServerError(c, err)
			c.Abort()
			return
		}
		if sess != nil {
			c.Set("session", sess)
		}

		c.Next()
	}
}

// CurrentSession pulls the loaded session out of the gin context.
func CurrentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get("session"); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return nil
}

// SessionID returns the cookie-issued session id for this request.
func SessionID(c *gin.Context) string {
	if v, ok := c.Get("sessionId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
