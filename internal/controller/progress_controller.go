package controller

import (
	"errors"
	"strconv"

	"github.com/Pooja123-meshram/talentsprout-project/internal/service"
	"github.com/Pooja123-meshram/talentsprout-project/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// CreateProject godoc
// @Summary Create a tracked project for a candidate
// @Tags progress
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body service.ProjectCreateRequest true "Project"
// @Success 201 {object} util.Response
// @Router /api/progress/projects [post]
func (c *ProgressController) CreateProject(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	var req service.ProjectCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	project, err := c.ProgressService.CreateProject(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, project)
}

// ListProjects godoc
// @Summary Projects the caller participates in
// @Tags progress
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/progress/projects [get]
func (c *ProgressController) ListProjects(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	projects, err := c.ProgressService.ListProjects(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, projects)
}

// GetProject godoc
// @Summary Project detail with stage progress and per-stage cost
// @Tags progress
// @Security BearerAuth
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} util.Response
// @Router /api/progress/projects/{id} [get]
func (c *ProgressController) GetProject(ctx *gin.Context) {
	user, projectID, ok := c.projectRequest(ctx)
	if !ok {
		return
	}
	project, err := c.ProgressService.GetProject(user.UserID, projectID)
	if err != nil {
		c.renderProgressError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"project":      project,
		"stages":       project.StageList(),
		"costPerStage": project.CostPerStage(),
		"progresses":   project.Progresses,
	})
}

// UpdateStage godoc
// @Summary Mark a stage complete or update its status note
// @Tags progress
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param body body service.StageUpdateRequest true "Stage update"
// @Success 200 {object} util.Response
// @Router /api/progress/projects/{id}/stages [put]
func (c *ProgressController) UpdateStage(ctx *gin.Context) {
	user, projectID, ok := c.projectRequest(ctx)
	if !ok {
		return
	}
	var req service.StageUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	progress, err := c.ProgressService.UpdateStage(user.UserID, projectID, req)
	if err != nil {
		c.renderProgressError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

type StageConfirmRequest struct {
	Stage string `json:"stage" binding:"required"`
}

// ConfirmStage godoc
// @Summary Confirm a candidate's completed stage on the client's behalf
// @Tags progress
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param body body StageConfirmRequest true "Stage"
// @Success 200 {object} util.Response
// @Router /api/progress/projects/{id}/confirm [post]
func (c *ProgressController) ConfirmStage(ctx *gin.Context) {
	user, projectID, ok := c.projectRequest(ctx)
	if !ok {
		return
	}
	var req StageConfirmRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	progress, err := c.ProgressService.ConfirmStage(user.UserID, projectID, req.Stage)
	if err != nil {
		c.renderProgressError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// AssignProject godoc
// @Summary Offer a project assignment to a candidate
// @Tags progress
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body service.AssignmentRequest true "Assignment"
// @Success 201 {object} util.Response
// @Router /api/progress/assignments [post]
func (c *ProgressController) AssignProject(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	var req service.AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	details, err := c.ProgressService.AssignProject(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, details)
}

// ListAssignments godoc
// @Summary Assignments offered to the caller
// @Tags progress
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/progress/assignments [get]
func (c *ProgressController) ListAssignments(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	assignments, err := c.ProgressService.ListAssignments(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

type AssignmentResponseRequest struct {
	Accept bool `json:"accept"`
}

// RespondToAssignment godoc
// @Summary Accept or reject a pending assignment
// @Tags progress
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Param body body AssignmentResponseRequest true "Decision"
// @Success 200 {object} util.Response
// @Router /api/progress/assignments/{id}/respond [post]
func (c *ProgressController) RespondToAssignment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid assignment id")
		return
	}
	var req AssignmentResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	details, err := c.ProgressService.RespondToAssignment(user.UserID, uint(id), req.Accept)
	if err != nil {
		c.renderProgressError(ctx, err)
		return
	}
	util.Success(ctx, details)
}

func (c *ProgressController) projectRequest(ctx *gin.Context) (*util.Claims, uint, bool) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return nil, 0, false
	}
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid project id")
		return nil, 0, false
	}
	return user, uint(id), true
}

func (c *ProgressController) renderProgressError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrProjectNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrInvalidTransition):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
