package service

import (
	"strings"

	"github.com/vaiicko/cafe-web/config"
	"github.com/vaiicko/cafe-web/database/model"
	"github.com/vaiicko/cafe-web/logger"
	"github.com/vaiicko/cafe-web/util/crypto"
	"github.com/vaiicko/cafe-web/web/session"

	"github.com/gin-gonic/gin"
)

// AuthService owns the login flow: credential verification plus the session
// side of "who is logged in".
type AuthService struct {
	userService UserService
}

// Login attempts to authenticate and, on success, stores the identity in the
// request's session. When both arguments are empty the credentials are read
// from the request's form or query values, so controllers may call it with no
// explicit arguments and defer to the incoming request.
//
// Either the session ends up holding exactly the authenticated identity, or
// it is left untouched.
func (s *AuthService) Login(c *gin.Context, username, password string) bool {
	if username == "" && password == "" {
		username = requestValue(c, "username")
		password = requestValue(c, "password")
	}

	user := s.Authenticate(username, password)
	if user == nil {
		return false
	}

	if err := session.SetMaxAge(c, config.GetSessionMaxAge()*60); err != nil {
		logger.Warning("unable to set session max age:", err)
	}
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
		return false
	}
	logger.Infof("%s logged in", user.Username)
	return true
}

// Authenticate checks the credential pair against the user store. It returns
// nil for every failure cause: an unknown identifier and a wrong password are
// indistinguishable to the caller.
func (s *AuthService) Authenticate(username, password string) *model.User {
	identifier := strings.TrimSpace(username)
	if identifier == "" {
		return nil
	}

	user, err := s.userService.FindByUsernameOrEmail(identifier)
	if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}
	if user == nil {
		return nil
	}

	if !crypto.VerifyPassword(password, user.Password) {
		return nil
	}
	return user
}

// Logout drops the session identity. Idempotent.
func (s *AuthService) Logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
}

func requestValue(c *gin.Context, name string) string {
	if v, ok := c.GetPostForm(name); ok {
		return v
	}
	return c.Query(name)
}
