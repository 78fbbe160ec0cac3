package controller

import (
	"net/http"
	"strconv"

	"github.com/vaiicko/cafe-web/config"
	"github.com/vaiicko/cafe-web/database/model"
	"github.com/vaiicko/cafe-web/web/entity"
	"github.com/vaiicko/cafe-web/web/middleware"

	"github.com/gin-gonic/gin"
)

// loggedUser returns the identity resolved for this request, nil when the
// visitor is anonymous.
func loggedUser(c *gin.Context) *model.User {
	if obj, ok := c.Get(middleware.CurrentUserKey); ok {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return nil
}

// requestId parses the id value from the route query, 0 when absent or
// malformed.
func requestId(c *gin.Context) int {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// pureJsonMsg sends a JSON message response with a custom status code.
func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: success,
		Msg:     msg,
	})
}

// html renders a template, always carrying the page title, the current
// identity and the site name.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["user"] = loggedUser(c)
	data["site"] = config.GetName()
	c.HTML(http.StatusOK, name, data)
}

// isAjax checks if the request is an AJAX request.
func isAjax(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}
