package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const userKey = "auth_user"

// Authenticate resolves the bearer token of the request into a User.
// Requests without a valid token continue as anonymous visitors; the
// endpoints decide whether that is enough.
func Authenticate(tm TokenManager, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := User{}

		header := c.GetHeader("Authorization")
		if token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")); header != "" && token != "" {
			parsed, err := tm.Parse(token)
			if err != nil {
				log.Debugw("auth", "status", "rejected token", "ERROR", err)
			} else {
				user = parsed
			}
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// FromContext returns the User resolved by Authenticate, or an anonymous one.
func FromContext(c *gin.Context) User {
	if v, ok := c.Get(userKey); ok {
		if user, ok := v.(User); ok {
			return user
		}
	}
	return User{}
}
