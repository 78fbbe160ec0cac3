// Package controller provides the HTTP handlers for the café site: the
// public pages, the login/registration flow and the admin CRUD screens.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BaseController provides shared behavior for all controllers.
type BaseController struct{}

// denied ends the request for a visitor the policy rejected. AJAX callers get
// a JSON 401, everyone else is sent to the login page.
func (a *BaseController) denied(c *gin.Context) {
	if isAjax(c) {
		pureJsonMsg(c, http.StatusUnauthorized, false, "please log in")
	} else {
		c.Redirect(http.StatusFound, "/login")
	}
	c.Abort()
}

// notFound renders the 404 page.
func (a *BaseController) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"title":   "Not found",
		"message": "The requested page does not exist.",
	})
	c.Abort()
}
