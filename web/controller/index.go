package controller

import (
	"github.com/gin-gonic/gin"
)

// IndexController serves the public pages.
type IndexController struct {
	BaseController
}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/contact", a.contact)
}

func (a *IndexController) index(c *gin.Context) {
	html(c, "home.html", "Welcome", nil)
}

func (a *IndexController) contact(c *gin.Context) {
	html(c, "contact.html", "Contact", nil)
}
