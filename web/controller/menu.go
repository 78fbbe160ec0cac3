package controller

import (
	"net/http"

	"github.com/vaiicko/cafe-web/database/model"
	"github.com/vaiicko/cafe-web/logger"
	"github.com/vaiicko/cafe-web/web/policy"
	"github.com/vaiicko/cafe-web/web/service"

	"github.com/gin-gonic/gin"
)

// MenuController handles the public menu listing and the admin-only CRUD for
// menu items.
type MenuController struct {
	BaseController

	menuService   service.MenuService
	uploadService service.UploadService
}

func NewMenuController(g *gin.RouterGroup) *MenuController {
	a := &MenuController{}
	a.initRouter(g)
	return a
}

func (a *MenuController) initRouter(g *gin.RouterGroup) {
	r := g.Group("/menu")
	r.GET("/", a.index)
	r.GET("/add", a.add)
	r.POST("/add", a.add)
	r.GET("/edit", a.edit)
	r.POST("/edit", a.edit)
	r.GET("/delete", a.delete)
	r.POST("/delete", a.delete)
}

func (a *MenuController) index(c *gin.Context) {
	items, err := a.menuService.GetAll()
	if err != nil {
		logger.Warning("list menu items failed:", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"title": "Error", "message": "Could not load the menu.",
		})
		return
	}
	html(c, "menu_index.html", "Menu", gin.H{"items": items})
}

func (a *MenuController) add(c *gin.Context) {
	if !policy.AllowCatalog(loggedUser(c), policy.ActionAdd) {
		a.denied(c)
		return
	}

	item := &model.MenuItem{}
	if c.Request.Method == http.MethodPost {
		item.Title = c.PostForm("title")
		item.Text = c.PostForm("text")
		a.applyPicture(c, item)
		if err := a.menuService.Save(item); err != nil {
			logger.Warning("save menu item failed:", err)
			html(c, "menu_form.html", "Add menu item", gin.H{
				"item": item, "message": "Could not save the menu item.",
			})
			return
		}
		c.Redirect(http.StatusFound, "/menu/")
		return
	}
	html(c, "menu_form.html", "Add menu item", gin.H{"item": item})
}

func (a *MenuController) edit(c *gin.Context) {
	if !policy.AllowCatalog(loggedUser(c), policy.ActionEdit) {
		a.denied(c)
		return
	}

	item, err := a.menuService.GetOne(requestId(c))
	if err != nil {
		logger.Warning("load menu item failed:", err)
	}
	if item == nil {
		a.notFound(c)
		return
	}

	if c.Request.Method == http.MethodPost {
		item.Title = c.PostForm("title")
		item.Text = c.PostForm("text")
		a.applyPicture(c, item)
		if err := a.menuService.Save(item); err != nil {
			logger.Warning("save menu item failed:", err)
			html(c, "menu_form.html", "Edit menu item", gin.H{
				"item": item, "message": "Could not save the menu item.",
			})
			return
		}
		c.Redirect(http.StatusFound, "/menu/")
		return
	}
	html(c, "menu_form.html", "Edit menu item", gin.H{"item": item})
}

// delete shows a confirmation page and removes the item when the submitted
// form confirms it.
func (a *MenuController) delete(c *gin.Context) {
	if !policy.AllowCatalog(loggedUser(c), policy.ActionDelete) {
		a.denied(c)
		return
	}

	item, err := a.menuService.GetOne(requestId(c))
	if err != nil {
		logger.Warning("load menu item failed:", err)
	}
	if item == nil {
		a.notFound(c)
		return
	}

	if c.Request.Method == http.MethodPost && c.PostForm("confirm") != "" {
		if err := a.menuService.Delete(item); err != nil {
			logger.Warning("delete menu item failed:", err)
			html(c, "menu_delete.html", "Delete menu item", gin.H{
				"item": item, "message": "Could not delete the menu item.",
			})
			return
		}
		c.Redirect(http.StatusFound, "/menu/")
		return
	}
	html(c, "menu_delete.html", "Delete menu item", gin.H{"item": item})
}

// applyPicture stores a newly uploaded picture and points the item at it.
// Without a new upload the existing picture stays untouched.
func (a *MenuController) applyPicture(c *gin.Context, item *model.MenuItem) {
	file, err := c.FormFile("picture")
	if err != nil || file == nil {
		return
	}
	path, err := a.uploadService.Store(c, file)
	if err != nil {
		logger.Warning("store upload failed:", err)
		return
	}
	item.Picture = &path
}
