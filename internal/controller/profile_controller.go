package controller

import (
	"errors"
	"strconv"

	"github.com/Pooja123-meshram/talentsprout-project/internal/model"
	"github.com/Pooja123-meshram/talentsprout-project/internal/service"
	"github.com/Pooja123-meshram/talentsprout-project/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// GetProfile godoc
// @Summary Full profile with bank, education and social-link details
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response{data=service.ProfileView}
// @Router /api/profile/me [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	view, err := c.ProfileService.GetProfile(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// UpdateProfile godoc
// @Summary Update headline, bio and contact details
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body service.ProfileUpdateRequest true "Profile fields"
// @Success 200 {object} util.Response{data=model.UserProfile}
// @Router /api/profile/me [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	var req service.ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	profile, err := c.ProfileService.UpdateProfile(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

type BankDetailRequest struct {
	AccountHolder string `json:"accountHolder" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	BankName      string `json:"bankName" binding:"required"`
	IFSCCode      string `json:"ifscCode"`
}

// UpdateBankDetail godoc
// @Summary Create or replace the payout account
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body BankDetailRequest true "Bank detail"
// @Success 200 {object} util.Response
// @Router /api/profile/bank [put]
func (c *ProfileController) UpdateBankDetail(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	var req BankDetailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	detail := &model.BankDetail{
		AccountHolder: req.AccountHolder,
		AccountNumber: req.AccountNumber,
		BankName:      req.BankName,
		IFSCCode:      req.IFSCCode,
	}
	if err := c.ProfileService.UpdateBankDetail(user.UserID, detail); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

type EducationRequest struct {
	Institution string `json:"institution" binding:"required"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartYear   int    `json:"startYear"`
	EndYear     int    `json:"endYear"`
}

// AddEducation godoc
// @Summary Add an education entry
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body EducationRequest true "Education"
// @Success 201 {object} util.Response
// @Router /api/profile/educations [post]
func (c *ProfileController) AddEducation(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	var req EducationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	education := &model.Education{
		Institution: req.Institution,
		Degree:      req.Degree,
		Field:       req.Field,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
	}
	if err := c.ProfileService.AddEducation(user.UserID, education); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, education)
}

// RemoveEducation godoc
// @Summary Delete an education entry
// @Tags profile
// @Security BearerAuth
// @Param id path int true "Education ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/profile/educations/{id} [delete]
func (c *ProfileController) RemoveEducation(ctx *gin.Context) {
	c.removeOwned(ctx, c.ProfileService.RemoveEducation)
}

type SocialLinkRequest struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required,url"`
}

// AddSocialLink godoc
// @Summary Add a social link
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body SocialLinkRequest true "Social link"
// @Success 201 {object} util.Response
// @Router /api/profile/social-links [post]
func (c *ProfileController) AddSocialLink(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	var req SocialLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	link := &model.SocialLink{Platform: req.Platform, URL: req.URL}
	if err := c.ProfileService.AddSocialLink(user.UserID, link); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, link)
}

// RemoveSocialLink godoc
// @Summary Delete a social link
// @Tags profile
// @Security BearerAuth
// @Param id path int true "Social link ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/profile/social-links/{id} [delete]
func (c *ProfileController) RemoveSocialLink(ctx *gin.Context) {
	c.removeOwned(ctx, c.ProfileService.RemoveSocialLink)
}

func (c *ProfileController) removeOwned(ctx *gin.Context, remove func(userID, id uint) error) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}
	if err := remove(user.UserID, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
