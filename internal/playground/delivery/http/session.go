package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "playground_session"

// sessionID returns the browser session id from the cookie. When create is set
// and the cookie is absent or malformed, a new id is issued.
func (h *handler) sessionID(c *gin.Context, create bool) string {
	if id, err := c.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	if !create {
		return ""
	}

	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, int(h.sessionTTL.Seconds()), "/", "", false, true)
	return id
}
