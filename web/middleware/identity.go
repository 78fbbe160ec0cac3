package middleware

import (
	"github.com/vaiicko/cafe-web/web/session"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey is where the resolved identity lives in the gin context.
const CurrentUserKey = "currentUser"

// ResolveIdentity reads the session once per request and places the logged-in
// user (when any) into the context, so handlers and templates work from one
// explicit identity instead of re-reading ambient session state.
func ResolveIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := session.GetLoginUser(c); user != nil {
			c.Set(CurrentUserKey, user)
		}
		c.Next()
	}
}
