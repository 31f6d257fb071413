package rest

import (
	"strings"

	"github.com/gin-gonic/gin"

	accountsdomain "github.com/enayetchefonline/partner-gateway/internal/domains/accounts/domain"
	accountsports "github.com/enayetchefonline/partner-gateway/internal/domains/accounts/ports"
	apierrors "github.com/enayetchefonline/partner-gateway/internal/shared/errors"
)

const sessionContextKey = "partner-gateway/session"

// RequireSession authenticates requests via the Authorization bearer token
// and stores the resolved session in the gin context.
func RequireSession(accounts accountsports.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			apierrors.Unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}
		session, err := accounts.Authorize(c.Request.Context(), token)
		if err != nil {
			apierrors.Unauthorized(c, "invalid or expired session")
			c.Abort()
			return
		}
		c.Set(sessionContextKey, *session)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// currentSession returns the session stored by RequireSession.
func currentSession(c *gin.Context) (accountsdomain.Session, bool) {
	value, ok := c.Get(sessionContextKey)
	if !ok {
		return accountsdomain.Session{}, false
	}
	session, ok := value.(accountsdomain.Session)
	return session, ok
}
