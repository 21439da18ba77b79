package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	userEntity "github.com/Bishopxxx/Bishop-blog/internal/core/user"
)

const currentUserKey = "currentUser"

// SessionResolver maps a session token to its user, nil for anonymous.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*userEntity.User, error)
}

// LoadUser resolves the session cookie on every request and, when it maps to
// a live session, puts the user into the request context. It never blocks a
// request: resolution failures just leave the request anonymous.
func LoadUser(sessions SessionResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil {
			c.Next()
			return
		}

		u, err := sessions.Resolve(c.Request.Context(), token)
		if err == nil && u != nil {
			c.Set(currentUserKey, u)
		}
		c.Next()
	}
}

// RequireAuth guards mutating routes: anonymous requests are redirected to
// the login form and the handler never runs.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(c *gin.Context) *userEntity.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*userEntity.User)
	return u
}
