package controller

import (
	"net/http"

	"github.com/vaiicko/cafe-web/web/service"
	"github.com/vaiicko/cafe-web/web/session"

	"github.com/gin-gonic/gin"
)

// AuthController handles login, logout and registration.
type AuthController struct {
	BaseController

	authService service.AuthService
	userService service.UserService
}

func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.GET("/login", a.loginForm)
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
	g.GET("/register", a.registerForm)
	g.POST("/register", a.register)
}

func (a *AuthController) loginForm(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	data := gin.H{}
	if c.Query("registered") == "1" {
		data["message"] = "Registration successful — please log in."
	}
	html(c, "login.html", "Login", data)
}

// login authenticates the posted credentials. The empty arguments make the
// authenticator fall back to the request's own form values.
func (a *AuthController) login(c *gin.Context) {
	if a.authService.Login(c, "", "") {
		c.Redirect(http.StatusFound, "/")
		return
	}
	html(c, "login.html", "Login", gin.H{
		"message": "Bad username or password",
		"old":     gin.H{"username": c.PostForm("username")},
	})
}

func (a *AuthController) logout(c *gin.Context) {
	a.authService.Logout(c)
	c.Redirect(http.StatusFound, "/")
}

func (a *AuthController) registerForm(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	html(c, "register.html", "Register", gin.H{
		"old": gin.H{"username": "", "email": ""},
	})
}

// register validates and creates the account, then redirects to the login
// page with the confirmation flag (PRG). On failure the form is re-rendered
// with the message and the entered username/email, never the passwords.
func (a *AuthController) register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")
	passwordConfirm := c.PostForm("password_confirm")

	_, err := a.userService.Register(username, email, password, passwordConfirm)
	if err != nil {
		html(c, "register.html", "Register", gin.H{
			"message": err.Error(),
			"old":     gin.H{"username": username, "email": email},
		})
		return
	}
	c.Redirect(http.StatusFound, "/login?registered=1")
}
