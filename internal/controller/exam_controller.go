package controller

import (
	"errors"
	"strconv"

	"github.com/Pooja123-meshram/talentsprout-project/internal/model"
	"github.com/Pooja123-meshram/talentsprout-project/internal/service"
	"github.com/Pooja123-meshram/talentsprout-project/internal/util"
	"github.com/Pooja123-meshram/talentsprout-project/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	ExamService *service.ExamService
}

func NewExamController(examService *service.ExamService) *ExamController {
	return &ExamController{ExamService: examService}
}

// ListRules godoc
// @Summary Exam rules and regulations
// @Tags exam
// @Produce json
// @Success 200 {object} util.Response{data=[]model.ExamRule}
// @Router /api/exam/rules [get]
func (c *ExamController) ListRules(ctx *gin.Context) {
	rules, err := c.ExamService.ListRules()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rules)
}

// ListSkills godoc
// @Summary Skills available for examination
// @Tags exam
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Skill}
// @Router /api/exam/skills [get]
func (c *ExamController) ListSkills(ctx *gin.Context) {
	skills, err := c.ExamService.ListSkills()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, skills)
}

// StartAttempt godoc
// @Summary Start or resume a skill exam attempt
// @Description Runs the retry policy for the caller and skill. Either
// @Description returns the attempt to take, or a block with one of the
// @Description reasons processing, cooldown (with nextAttemptAt) or
// @Description exhausted.
// @Tags exam
// @Security BearerAuth
// @Produce json
// @Param skillId path int true "Skill ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/exam/skills/{skillId}/start [post]
func (c *ExamController) StartAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	skillID, err := strconv.Atoi(ctx.Param("skillId"))
	if err != nil {
		util.BadRequest(ctx, "invalid skill id")
		return
	}

	outcome, err := c.ExamService.StartAttempt(user.UserID, uint(skillID))
	if err != nil {
		if errors.Is(err, util.ErrSkillNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	if outcome.Blocked {
		monitoring.AttemptStartCounter.WithLabelValues(string(outcome.Reason)).Inc()
		util.Success(ctx, gin.H{
			"blocked":       true,
			"reason":        outcome.Reason,
			"nextAttemptAt": outcome.NextAttemptAt,
		})
		return
	}

	if outcome.Resumed {
		monitoring.AttemptStartCounter.WithLabelValues("resumed").Inc()
	} else {
		monitoring.AttemptStartCounter.WithLabelValues("started").Inc()
	}
	util.Success(ctx, gin.H{
		"blocked":   false,
		"attemptId": outcome.Attempt.ID,
		"resumed":   outcome.Resumed,
	})
}

// attemptQuestionView hides the stored correct answer from takers.
type attemptQuestionView struct {
	ID       uint   `json:"id"`
	Type     string `json:"type"`
	Text     string `json:"text"`
	Options  string `json:"options"`
	Position int    `json:"position"`
}

func attemptView(attempt *model.Attempt) gin.H {
	questions := make([]attemptQuestionView, 0, len(attempt.Questions))
	for _, aq := range attempt.Questions {
		questions = append(questions, attemptQuestionView{
			ID:       aq.QuestionID,
			Type:     aq.Question.Type,
			Text:     aq.Question.Text,
			Options:  aq.Question.Options,
			Position: aq.Position,
		})
	}
	answers := make(map[uint]string, len(attempt.Answers))
	for _, a := range attempt.Answers {
		answers[a.QuestionID] = a.Answer
	}
	return gin.H{
		"attemptId":     attempt.ID,
		"skillId":       attempt.SkillID,
		"secondAttempt": attempt.SecondAttempt,
		"completed":     attempt.Completed,
		"questions":     questions,
		"answers":       answers,
	}
}

// GetAttempt godoc
// @Summary Take-step view of an open attempt
// @Tags exam
// @Security BearerAuth
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/exam/attempts/{id} [get]
func (c *ExamController) GetAttempt(ctx *gin.Context) {
	user, attemptID, ok := c.attemptRequest(ctx)
	if !ok {
		return
	}

	attempt, err := c.ExamService.GetAttempt(user.UserID, attemptID)
	if err != nil {
		c.renderAttemptError(ctx, err)
		return
	}
	util.Success(ctx, attemptView(attempt))
}

type SubmitRequest struct {
	Answers map[uint]string `json:"answers" binding:"required"`
}

// SubmitAttempt godoc
// @Summary Submit answers for an open attempt
// @Description All assigned questions must carry a non-empty answer;
// @Description otherwise the submission fails validation and the
// @Description attempt stays open with entered answers preserved.
// @Tags exam
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Attempt ID"
// @Param body body SubmitRequest true "question id to answer text"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/exam/attempts/{id}/submit [post]
func (c *ExamController) SubmitAttempt(ctx *gin.Context) {
	user, attemptID, ok := c.attemptRequest(ctx)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.ExamService.SubmitAttempt(user.UserID, attemptID, req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrIncompleteSubmission) {
			// form re-render: echo what was kept so far
			kept, verr := c.ExamService.GetAttempt(user.UserID, attemptID)
			payload := gin.H{"error": err.Error()}
			if verr == nil {
				payload["attempt"] = attemptView(kept)
			}
			ctx.JSON(400, util.Response{Code: 400, Message: err.Error(), Data: payload})
			return
		}
		if errors.Is(err, util.ErrAttemptSubmitted) {
			util.Error(ctx, 409, err.Error())
			return
		}
		c.renderAttemptError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"attemptId":   attempt.ID,
		"completed":   attempt.Completed,
		"completedAt": attempt.CompletedAt,
	})
}

// GetResult godoc
// @Summary Completion summary of a finished attempt
// @Tags exam
// @Security BearerAuth
// @Produce json
// @Param id path int true "Attempt ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/exam/attempts/{id}/result [get]
func (c *ExamController) GetResult(ctx *gin.Context) {
	user, attemptID, ok := c.attemptRequest(ctx)
	if !ok {
		return
	}

	attempt, err := c.ExamService.GetResult(user.UserID, attemptID)
	if err != nil {
		if errors.Is(err, util.ErrAttemptNotCompleted) {
			util.BadRequest(ctx, err.Error())
			return
		}
		c.renderAttemptError(ctx, err)
		return
	}

	var scoreStatus string
	if attempt.Score == nil {
		scoreStatus = "processing"
	} else {
		scoreStatus = "scored"
	}
	util.Success(ctx, gin.H{
		"attemptId":     attempt.ID,
		"skillId":       attempt.SkillID,
		"secondAttempt": attempt.SecondAttempt,
		"completedAt":   attempt.CompletedAt,
		"score":         attempt.Score,
		"scoreStatus":   scoreStatus,
	})
}

type ScoreRequest struct {
	Score int `json:"score" binding:"min=0,max=100"`
}

// RecordScore godoc
// @Summary Record the reviewed score of a completed attempt
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Attempt ID"
// @Param body body ScoreRequest true "Score"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/attempts/{id}/score [post]
func (c *ExamController) RecordScore(ctx *gin.Context) {
	attemptID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid attempt id")
		return
	}

	var req ScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.ExamService.RecordScore(uint(attemptID), req.Score)
	if err != nil {
		if errors.Is(err, util.ErrAttemptNotCompleted) {
			util.BadRequest(ctx, err.Error())
			return
		}
		c.renderAttemptError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"attemptId": attempt.ID,
		"score":     attempt.Score,
		"passed":    *attempt.Score >= service.PassThreshold,
	})
}

func (c *ExamController) attemptRequest(ctx *gin.Context) (*util.Claims, uint, bool) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return nil, 0, false
	}
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid attempt id")
		return nil, 0, false
	}
	return user, uint(id), true
}

func (c *ExamController) renderAttemptError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrAttemptNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
