package controller

import (
	"net/http"
	"strconv"

	"github.com/vaiicko/cafe-web/database/model"
	"github.com/vaiicko/cafe-web/logger"
	"github.com/vaiicko/cafe-web/web/policy"
	"github.com/vaiicko/cafe-web/web/service"

	"github.com/gin-gonic/gin"
)

// ReviewController handles the public reviews listing, adding reviews as a
// logged-in user, and editing/deleting as the author or the administrator.
type ReviewController struct {
	BaseController

	reviewService service.ReviewService
}

func NewReviewController(g *gin.RouterGroup) *ReviewController {
	a := &ReviewController{}
	a.initRouter(g)
	return a
}

func (a *ReviewController) initRouter(g *gin.RouterGroup) {
	r := g.Group("/reviews")
	r.GET("/", a.index)
	r.GET("/add", a.add)
	r.POST("/add", a.add)
	r.GET("/edit", a.edit)
	r.POST("/edit", a.edit)
	r.GET("/delete", a.delete)
	r.POST("/delete", a.delete)
}

func (a *ReviewController) index(c *gin.Context) {
	sort := service.NormalizeSort(c.Query("sort"))
	reviews, err := a.reviewService.GetAll(sort)
	if err != nil {
		logger.Warning("list reviews failed:", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"title": "Error", "message": "Could not load the reviews.",
		})
		return
	}
	html(c, "review_index.html", "Reviews", gin.H{"reviews": reviews, "sort": sort})
}

// add creates a review for the logged-in user. The author is always the
// acting identity, never a submitted value.
func (a *ReviewController) add(c *gin.Context) {
	user := loggedUser(c)
	if !policy.AllowReview(user, policy.ActionAdd, nil) {
		a.denied(c)
		return
	}

	review := &model.Review{}
	if c.Request.Method == http.MethodPost {
		a.applyForm(c, review)
		review.UserId = user.Id
		if err := a.reviewService.Save(review); err != nil {
			logger.Warning("save review failed:", err)
			html(c, "review_form.html", "Add review", gin.H{
				"review": review, "message": "Could not save the review.",
			})
			return
		}
		c.Redirect(http.StatusFound, "/reviews/")
		return
	}
	html(c, "review_form.html", "Add review", gin.H{"review": review})
}

func (a *ReviewController) edit(c *gin.Context) {
	review, err := a.reviewService.GetOne(requestId(c))
	if err != nil {
		logger.Warning("load review failed:", err)
	}
	if !policy.AllowReview(loggedUser(c), policy.ActionEdit, review) {
		a.denied(c)
		return
	}
	if review == nil {
		a.notFound(c)
		return
	}

	if c.Request.Method == http.MethodPost {
		a.applyForm(c, review)
		if err := a.reviewService.Save(review); err != nil {
			logger.Warning("save review failed:", err)
			html(c, "review_form.html", "Edit review", gin.H{
				"review": review, "message": "Could not save the review.",
			})
			return
		}
		c.Redirect(http.StatusFound, "/reviews/")
		return
	}
	html(c, "review_form.html", "Edit review", gin.H{"review": review})
}

func (a *ReviewController) delete(c *gin.Context) {
	review, err := a.reviewService.GetOne(requestId(c))
	if err != nil {
		logger.Warning("load review failed:", err)
	}
	if !policy.AllowReview(loggedUser(c), policy.ActionDelete, review) {
		a.denied(c)
		return
	}
	if review == nil {
		a.notFound(c)
		return
	}

	if c.Request.Method == http.MethodPost && c.PostForm("confirm") != "" {
		if err := a.reviewService.Delete(review); err != nil {
			logger.Warning("delete review failed:", err)
			html(c, "review_delete.html", "Delete review", gin.H{
				"review": review, "message": "Could not delete the review.",
			})
			return
		}
		c.Redirect(http.StatusFound, "/reviews/")
		return
	}
	html(c, "review_delete.html", "Delete review", gin.H{"review": review})
}

func (a *ReviewController) applyForm(c *gin.Context, review *model.Review) {
	text := c.PostForm("text")
	review.Text = &text

	if ratingVal, ok := c.GetPostForm("rating"); ok && ratingVal != "" {
		if rating, err := strconv.Atoi(ratingVal); err == nil {
			review.SetRating(&rating)
		}
	}
}
