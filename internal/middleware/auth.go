package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
)

const (
	UserIDKey               = "user_id"
	authorizationHeaderKey  = "Authorization"
	authorizationTypeBearer = "Bearer"
)

type TokenParser interface {
	Parse(token string) (string, error)
}

// Auth verifies the Bearer token and stores the authenticated user id in the
// request context for handlers.
func Auth(tokens TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader(authorizationHeaderKey)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authorization header is required"})
			return
		}

		fields := strings.Fields(header)
		if len(fields) != 2 || !strings.EqualFold(fields[0], authorizationTypeBearer) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authorization header must be 'Bearer <token>'"})
			return
		}

		userID, err := tokens.Parse(fields[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "token is invalid or expired"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
