package auth

import (
	"context"
	"net/http"
	"strings"

	dom "github.com/kokafor1/capstone-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

const contextKeyUser = "current_user"

// Authenticator resolves credentials to users. Implemented by
// service.UserService.
type Authenticator interface {
	ValidateCredentials(ctx context.Context, username, password string) (dom.User, error)
	Authenticate(ctx context.Context, token string) (dom.User, error)
}

// CurrentUser returns the user set by RequireBasic or RequireToken.
func CurrentUser(c *gin.Context) (dom.User, bool) {
	v, ok := c.Get(contextKeyUser)
	if !ok {
		return dom.User{}, false
	}
	u, ok := v.(dom.User)
	return u, ok
}

// RequireBasic returns a middleware that checks HTTP Basic credentials and
// sets the current user in context. If missing or invalid, responds with 401.
func RequireBasic(users Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="token"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		u, err := users.ValidateCredentials(c.Request.Context(), username, password)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		c.Set(contextKeyUser, u)
		c.Next()
	}
}

// RequireToken returns a middleware that checks for a valid bearer token
// and sets the current user in context. If missing or invalid, responds with 401.
func RequireToken(users Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		u, err := users.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(contextKeyUser, u)
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
