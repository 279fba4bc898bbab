package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/Pooja123-meshram/talentsprout-project/internal/model"
	"github.com/Pooja123-meshram/talentsprout-project/internal/service"
	"github.com/Pooja123-meshram/talentsprout-project/internal/util"

	"github.com/gin-gonic/gin"
)

type BlogController struct {
	BlogService *service.BlogService
}

func NewBlogController(blogService *service.BlogService) *BlogController {
	return &BlogController{BlogService: blogService}
}

// ListPublished godoc
// @Summary Published posts
// @Tags blog
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/blog/posts [get]
func (c *BlogController) ListPublished(ctx *gin.Context) {
	page, limit := pagination(ctx)
	posts, total, err := c.BlogService.ListPublished(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: posts, Total: total, Page: page, Limit: limit})
}

// ListMine godoc
// @Summary Caller's posts in any status
// @Tags blog
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/blog/posts/mine [get]
func (c *BlogController) ListMine(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	posts, err := c.BlogService.ListMine(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, posts)
}

// CreatePost godoc
// @Summary Create a draft post
// @Tags blog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body service.BlogPostRequest true "Post"
// @Success 201 {object} util.Response
// @Router /api/blog/posts [post]
func (c *BlogController) CreatePost(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	var req service.BlogPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	post, err := c.BlogService.CreatePost(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, post)
}

// UpdatePost godoc
// @Summary Update an own post
// @Tags blog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param body body service.BlogPostRequest true "Post"
// @Success 200 {object} util.Response
// @Router /api/blog/posts/{id} [put]
func (c *BlogController) UpdatePost(ctx *gin.Context) {
	user, postID, ok := c.postRequest(ctx)
	if !ok {
		return
	}
	var req service.BlogPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	post, err := c.BlogService.UpdatePost(user.UserID, postID, req)
	if err != nil {
		c.renderBlogError(ctx, err)
		return
	}
	util.Success(ctx, post)
}

// SubmitForReview godoc
// @Summary Submit a draft for review
// @Tags blog
// @Security BearerAuth
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} util.Response
// @Router /api/blog/posts/{id}/submit [post]
func (c *BlogController) SubmitForReview(ctx *gin.Context) {
	user, postID, ok := c.postRequest(ctx)
	if !ok {
		return
	}
	post, err := c.BlogService.SubmitForReview(user.UserID, postID)
	if err != nil {
		c.renderBlogError(ctx, err)
		return
	}
	util.Success(ctx, post)
}

// DeletePost godoc
// @Summary Delete an own post
// @Tags blog
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} util.Response
// @Router /api/blog/posts/{id} [delete]
func (c *BlogController) DeletePost(ctx *gin.Context) {
	user, postID, ok := c.postRequest(ctx)
	if !ok {
		return
	}
	if err := c.BlogService.DeletePost(user.UserID, postID); err != nil {
		c.renderBlogError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

type PreferenceRequest struct {
	ServiceTitle string  `json:"serviceTitle" binding:"required"`
	Description  string  `json:"description"`
	DeliveryTime string  `json:"deliveryTime"`
	Revisions    string  `json:"revisions"`
	Price        float64 `json:"price"`
}

// SetPreference godoc
// @Summary Attach a service offering to an own post
// @Tags blog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param body body PreferenceRequest true "Offering"
// @Success 200 {object} util.Response
// @Router /api/blog/posts/{id}/preference [put]
func (c *BlogController) SetPreference(ctx *gin.Context) {
	user, postID, ok := c.postRequest(ctx)
	if !ok {
		return
	}
	var req PreferenceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	pref := &model.CandidatePreference{
		ServiceTitle: req.ServiceTitle,
		Description:  req.Description,
		DeliveryTime: req.DeliveryTime,
		Revisions:    req.Revisions,
		Price:        req.Price,
	}
	if err := c.BlogService.SetPreference(user.UserID, postID, pref); err != nil {
		c.renderBlogError(ctx, err)
		return
	}
	util.Success(ctx, pref)
}

// ListPending godoc
// @Summary Posts waiting for review
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/admin/blog/pending [get]
func (c *BlogController) ListPending(ctx *gin.Context) {
	page, limit := pagination(ctx)
	posts, total, err := c.BlogService.ListPending(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: posts, Total: total, Page: page, Limit: limit})
}

type PublishRequest struct {
	ScheduledAt *time.Time `json:"scheduledAt"`
}

// Publish godoc
// @Summary Publish a pending post, now or at a scheduled time
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param body body PublishRequest false "Optional schedule"
// @Success 200 {object} util.Response
// @Router /api/admin/blog/{id}/publish [post]
func (c *BlogController) Publish(ctx *gin.Context) {
	postID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid post id")
		return
	}
	var req PublishRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		util.BadRequest(ctx, err.Error())
		return
	}
	post, err := c.BlogService.Publish(uint(postID), req.ScheduledAt)
	if err != nil {
		c.renderBlogError(ctx, err)
		return
	}
	util.Success(ctx, post)
}

func (c *BlogController) postRequest(ctx *gin.Context) (*util.Claims, uint, bool) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return nil, 0, false
	}
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid post id")
		return nil, 0, false
	}
	return user, uint(id), true
}

func (c *BlogController) renderBlogError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrPostNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrInvalidTransition):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

func pagination(ctx *gin.Context) (int, int) {
	page := 1
	limit := 20
	if p := ctx.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if l := ctx.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	return page, limit
}
