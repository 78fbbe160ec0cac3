package service

import (
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/vaiicko/cafe-web/database"
	"github.com/vaiicko/cafe-web/database/model"
	"github.com/vaiicko/cafe-web/web/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAuthenticate(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	_, err := userService.Register("bob", "bob@x.com", "secret123", "secret123")
	assert.NoError(t, err)

	authService := AuthService{}

	user := authService.Authenticate("bob", "secret123")
	if assert.NotNil(t, user) {
		assert.Equal(t, "bob", user.Username)
	}

	// email works as identifier, case-insensitively
	assert.NotNil(t, authService.Authenticate("BOB@X.COM", "secret123"))

	// wrong password and unknown user collapse to the same result
	assert.Nil(t, authService.Authenticate("bob", "wrong"))
	assert.Nil(t, authService.Authenticate("nobody", "secret123"))
	assert.Nil(t, authService.Authenticate("", "secret123"))
	assert.Nil(t, authService.Authenticate("   ", "secret123"))
}

func TestAuthenticateLegacyPlaintextRow(t *testing.T) {
	setup()
	defer teardown()

	// simulate a row carried over from before the hash migration
	legacy := &model.User{
		Username: "olduser",
		Email:    "old@x.com",
		Password: "oldpassword",
		Role:     model.RoleUser,
	}
	assert.NoError(t, database.GetDB().Create(legacy).Error)

	authService := AuthService{}
	assert.NotNil(t, authService.Authenticate("olduser", "oldpassword"))
	assert.Nil(t, authService.Authenticate("olduser", "oldpassword1"))
}

func loginTestEngine(authService *AuthService, username, password string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	engine.Use(sessions.Sessions(session.SessionName, store))
	engine.POST("/login", func(c *gin.Context) {
		c.String(200, strconv.FormatBool(authService.Login(c, username, password)))
	})
	engine.GET("/whoami", func(c *gin.Context) {
		if user := session.GetLoginUser(c); user != nil {
			c.String(200, user.Username)
			return
		}
		c.String(200, "-")
	})
	return engine
}

func postForm(engine *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestLoginFallsBackToRequestValues(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	_, err := userService.Register("bob", "bob@x.com", "secret123", "secret123")
	assert.NoError(t, err)

	authService := AuthService{}

	// both arguments empty: credentials come from the form
	engine := loginTestEngine(&authService, "", "")
	w := postForm(engine, "/login", url.Values{"username": {"bob"}, "password": {"secret123"}})
	assert.Equal(t, "true", w.Body.String())

	w = postForm(engine, "/login", url.Values{"username": {"bob"}, "password": {"wrong"}})
	assert.Equal(t, "false", w.Body.String())
}

func TestLoginNoFallbackWhenUsernameGiven(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	_, err := userService.Register("bob", "bob@x.com", "secret123", "secret123")
	assert.NoError(t, err)

	authService := AuthService{}

	// one explicit argument set: the form value must NOT fill in the password
	engine := loginTestEngine(&authService, "bob", "")
	w := postForm(engine, "/login", url.Values{"username": {"bob"}, "password": {"secret123"}})
	assert.Equal(t, "false", w.Body.String())
}

func TestLoginStoresIdentityInSession(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	_, err := userService.Register("bob", "bob@x.com", "secret123", "secret123")
	assert.NoError(t, err)

	authService := AuthService{}
	engine := loginTestEngine(&authService, "", "")

	w := postForm(engine, "/login", url.Values{"username": {"bob"}, "password": {"secret123"}})
	assert.Equal(t, "true", w.Body.String())
	cookies := w.Result().Cookies()
	assert.NotEmpty(t, cookies)

	req := httptest.NewRequest("GET", "/whoami", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w2 := httptest.NewRecorder()
	engine.ServeHTTP(w2, req)
	assert.Equal(t, "bob", w2.Body.String())
}

func TestFailedLoginLeavesSessionUntouched(t *testing.T) {
	setup()
	defer teardown()

	authService := AuthService{}
	engine := loginTestEngine(&authService, "", "")

	w := postForm(engine, "/login", url.Values{"username": {"ghost"}, "password": {"nope"}})
	assert.Equal(t, "false", w.Body.String())

	req := httptest.NewRequest("GET", "/whoami", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	w2 := httptest.NewRecorder()
	engine.ServeHTTP(w2, req)
	assert.Equal(t, "-", w2.Body.String())
}
