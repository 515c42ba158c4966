package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/worklink-app/worklink/internal/metrics"
)

const (
	errUnauthorized = "Unauthorized"

	accountIDKey    = "accountID"
	sessionTokenKey = "sessionToken"
)

// sessionVerifier is the subset of AuthUsecase the middleware needs.
type sessionVerifier interface {
	Verify(ctx context.Context, rawToken string) (string, error)
}

// Auth validates an opaque bearer token against the session store and sets
// the resolved account id in the gin context. Every failure is the same
// 401; the response never says whether the token was absent, garbled, or
// expired.
func Auth(verifier sessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			metrics.SessionChecksTotal.WithLabelValues("invalid").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		rawToken := strings.TrimPrefix(header, "Bearer ")

		accountID, err := verifier.Verify(c.Request.Context(), rawToken)
		if err != nil {
			metrics.SessionChecksTotal.WithLabelValues("invalid").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		metrics.SessionChecksTotal.WithLabelValues("valid").Inc()
		c.Set(accountIDKey, accountID)
		c.Set(sessionTokenKey, rawToken)
		c.Next()
	}
}

// AccountID returns the account id set by Auth. Empty outside a protected
// route.
func AccountID(c *gin.Context) string {
	return c.GetString(accountIDKey)
}

// SessionToken returns the raw bearer token set by Auth.
func SessionToken(c *gin.Context) string {
	return c.GetString(sessionTokenKey)
}
