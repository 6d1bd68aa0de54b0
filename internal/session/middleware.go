package session

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// Middleware attaches the operator named by a bearer token to the request
// context. Requests without a token pass through anonymously; requests with
// an invalid token are rejected.
func Middleware(tokens *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c, "authorization header must use the Bearer scheme")
			return
		}

		operator, err := tokens.Parse(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			slog.DebugContext(c.Request.Context(), "rejected session token",
				slog.String("error", err.Error()),
			)
			abortUnauthorized(c, err.Error())
			return
		}

		c.Request = c.Request.WithContext(WithOperator(c.Request.Context(), operator))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   "unauthorized",
		"message": message,
	})
}
