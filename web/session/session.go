package session

import (
	"encoding/gob"

	"github.com/vaiicko/cafe-web/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUser = "LOGIN_USER"

// SessionName is the cookie carrying the session id.
const SessionName = "cafe-web"

func init() {
	gob.Register(model.User{})
}

func SetLoginUser(c *gin.Context, user *model.User) error {
	s := sessions.Default(c)
	s.Set(loginUser, *user)
	return s.Save()
}

func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

func GetLoginUser(c *gin.Context) *model.User {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if user, ok := obj.(model.User); ok {
			return &user
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

// ClearSession drops the stored identity. Safe to call when not logged in.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	if err := s.Save(); err != nil {
		return err
	}
	c.SetCookie(SessionName, "", -1, "/", "", false, true)
	return nil
}
