package controller

import (
	"net/http"

	"github.com/vaiicko/cafe-web/database/model"
	"github.com/vaiicko/cafe-web/logger"
	"github.com/vaiicko/cafe-web/web/policy"
	"github.com/vaiicko/cafe-web/web/service"

	"github.com/gin-gonic/gin"
)

// DrinkController handles the drinks card, the same flow as the menu.
type DrinkController struct {
	BaseController

	drinkService  service.DrinkService
	uploadService service.UploadService
}

func NewDrinkController(g *gin.RouterGroup) *DrinkController {
	a := &DrinkController{}
	a.initRouter(g)
	return a
}

func (a *DrinkController) initRouter(g *gin.RouterGroup) {
	r := g.Group("/drinks")
	r.GET("/", a.index)
	r.GET("/add", a.add)
	r.POST("/add", a.add)
	r.GET("/edit", a.edit)
	r.POST("/edit", a.edit)
	r.GET("/delete", a.delete)
	r.POST("/delete", a.delete)
}

func (a *DrinkController) index(c *gin.Context) {
	drinks, err := a.drinkService.GetAll()
	if err != nil {
		logger.Warning("list drinks failed:", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"title": "Error", "message": "Could not load the drinks.",
		})
		return
	}
	html(c, "drink_index.html", "Drinks", gin.H{"drinks": drinks})
}

func (a *DrinkController) add(c *gin.Context) {
	if !policy.AllowCatalog(loggedUser(c), policy.ActionAdd) {
		a.denied(c)
		return
	}

	drink := &model.Drink{}
	if c.Request.Method == http.MethodPost {
		drink.Title = c.PostForm("title")
		drink.Text = c.PostForm("text")
		a.applyPicture(c, drink)
		if err := a.drinkService.Save(drink); err != nil {
			logger.Warning("save drink failed:", err)
			html(c, "drink_form.html", "Add drink", gin.H{
				"drink": drink, "message": "Could not save the drink.",
			})
			return
		}
		c.Redirect(http.StatusFound, "/drinks/")
		return
	}
	html(c, "drink_form.html", "Add drink", gin.H{"drink": drink})
}

func (a *DrinkController) edit(c *gin.Context) {
	if !policy.AllowCatalog(loggedUser(c), policy.ActionEdit) {
		a.denied(c)
		return
	}

	drink, err := a.drinkService.GetOne(requestId(c))
	if err != nil {
		logger.Warning("load drink failed:", err)
	}
	if drink == nil {
		a.notFound(c)
		return
	}

	if c.Request.Method == http.MethodPost {
		drink.Title = c.PostForm("title")
		drink.Text = c.PostForm("text")
		a.applyPicture(c, drink)
		if err := a.drinkService.Save(drink); err != nil {
			logger.Warning("save drink failed:", err)
			html(c, "drink_form.html", "Edit drink", gin.H{
				"drink": drink, "message": "Could not save the drink.",
			})
			return
		}
		c.Redirect(http.StatusFound, "/drinks/")
		return
	}
	html(c, "drink_form.html", "Edit drink", gin.H{"drink": drink})
}

func (a *DrinkController) delete(c *gin.Context) {
	if !policy.AllowCatalog(loggedUser(c), policy.ActionDelete) {
		a.denied(c)
		return
	}

	drink, err := a.drinkService.GetOne(requestId(c))
	if err != nil {
		logger.Warning("load drink failed:", err)
	}
	if drink == nil {
		a.notFound(c)
		return
	}

	if c.Request.Method == http.MethodPost && c.PostForm("confirm") != "" {
		if err := a.drinkService.Delete(drink); err != nil {
			logger.Warning("delete drink failed:", err)
			html(c, "drink_delete.html", "Delete drink", gin.H{
				"drink": drink, "message": "Could not delete the drink.",
			})
			return
		}
		c.Redirect(http.StatusFound, "/drinks/")
		return
	}
	html(c, "drink_delete.html", "Delete drink", gin.H{"drink": drink})
}

func (a *DrinkController) applyPicture(c *gin.Context, drink *model.Drink) {
	file, err := c.FormFile("picture")
	if err != nil || file == nil {
		return
	}
	path, err := a.uploadService.Store(c, file)
	if err != nil {
		logger.Warning("store upload failed:", err)
		return
	}
	drink.Picture = &path
}
