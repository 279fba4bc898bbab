package service

import (
	"errors"
	"strings"
	"time"

	"github.com/Pooja123-meshram/talentsprout-project/internal/model"
	"github.com/Pooja123-meshram/talentsprout-project/internal/repository"
	"github.com/Pooja123-meshram/talentsprout-project/internal/util"

	"gorm.io/gorm"
)

type ProgressService struct {
	ProjectRepo *repository.ProjectRepository

	now func() time.Time
}

func NewProgressService(projectRepo *repository.ProjectRepository) *ProgressService {
	return &ProgressService{
		ProjectRepo: projectRepo,
		now:         time.Now,
	}
}

type ProjectCreateRequest struct {
	CandidateID uint     `json:"candidateId" binding:"required"`
	ProjectName string   `json:"projectName" binding:"required"`
	ClientName  string   `json:"clientName"`
	Stages      []string `json:"stages" binding:"required,min=1"`
	Costing     *float64 `json:"costing"`
}

// CreateProject opens a tracked project with one pending progress row
// per stage for the candidate.
func (s *ProgressService) CreateProject(recruiterID uint, req ProjectCreateRequest) (*model.Project, error) {
	project := &model.Project{
		Code:        model.GenerateUUID(),
		RecruiterID: recruiterID,
		CandidateID: req.CandidateID,
		ProjectName: req.ProjectName,
		ClientName:  req.ClientName,
		Stages:      strings.Join(req.Stages, ","),
		Status:      model.ProjectStatusActive,
		Costing:     req.Costing,
	}
	if err := s.ProjectRepo.Create(project); err != nil {
		return nil, err
	}

	progresses := make([]model.Progress, 0, len(req.Stages))
	for _, stage := range req.Stages {
		progresses = append(progresses, model.Progress{
			ProjectID: project.ID,
			UserID:    req.CandidateID,
			Stage:     strings.TrimSpace(stage),
			Role:      string(model.Candidate),
		})
	}
	if err := s.ProjectRepo.CreateProgresses(progresses); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProgressService) ListProjects(userID uint) ([]model.Project, error) {
	return s.ProjectRepo.ListForUser(userID)
}

func (s *ProgressService) GetProject(userID, projectID uint) (*model.Project, error) {
	project, err := s.ProjectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProjectNotFound
		}
		return nil, err
	}
	if project.RecruiterID != userID && project.CandidateID != userID {
		return nil, util.ErrPermissionDenied
	}
	return project, nil
}

type StageUpdateRequest struct {
	Stage       string `json:"stage" binding:"required"`
	IsCompleted bool   `json:"isCompleted"`
	Status      string `json:"status"`
}

// UpdateStage records a candidate's completion mark on one stage.
func (s *ProgressService) UpdateStage(userID, projectID uint, req StageUpdateRequest) (*model.Progress, error) {
	project, err := s.GetProject(userID, projectID)
	if err != nil {
		return nil, err
	}
	if project.CandidateID != userID {
		return nil, util.ErrPermissionDenied
	}

	progress, err := s.ProjectRepo.FindProgress(projectID, req.Stage, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProjectNotFound
		}
		return nil, err
	}
	progress.IsCompleted = req.IsCompleted
	progress.Status = req.Status
	if err := s.ProjectRepo.UpdateProgress(progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// ConfirmStage records the recruiter-side client confirmation of a
// candidate's completed stage.
func (s *ProgressService) ConfirmStage(recruiterID, projectID uint, stage string) (*model.Progress, error) {
	project, err := s.GetProject(recruiterID, projectID)
	if err != nil {
		return nil, err
	}
	if project.RecruiterID != recruiterID {
		return nil, util.ErrPermissionDenied
	}

	progress, err := s.ProjectRepo.FindProgress(projectID, stage, project.CandidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProjectNotFound
		}
		return nil, err
	}
	progress.ClientConfirmation = true
	if err := s.ProjectRepo.UpdateProgress(progress); err != nil {
		return nil, err
	}
	return progress, nil
}

type AssignmentRequest struct {
	CandidateID uint   `json:"candidateId" binding:"required"`
	ProjectName string `json:"projectName" binding:"required"`
	Description string `json:"description"`
	TechStack   string `json:"techStack"`
	Remarks     string `json:"remarks"`
}

func (s *ProgressService) AssignProject(recruiterID uint, req AssignmentRequest) (*model.ProjectDetails, error) {
	details := &model.ProjectDetails{
		RecruiterID: recruiterID,
		CandidateID: req.CandidateID,
		ProjectName: req.ProjectName,
		Description: req.Description,
		TechStack:   req.TechStack,
		Remarks:     req.Remarks,
	}
	if err := s.ProjectRepo.CreateAssignment(details); err != nil {
		return nil, err
	}
	return details, nil
}

func (s *ProgressService) ListAssignments(candidateID uint) ([]model.ProjectDetails, error) {
	return s.ProjectRepo.ListAssignmentsForCandidate(candidateID)
}

// RespondToAssignment lets the assigned candidate accept or reject a
// pending assignment; a decided assignment cannot be re-decided.
func (s *ProgressService) RespondToAssignment(candidateID, assignmentID uint, accept bool) (*model.ProjectDetails, error) {
	details, err := s.ProjectRepo.FindAssignment(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProjectNotFound
		}
		return nil, err
	}
	if details.CandidateID != candidateID {
		return nil, util.ErrPermissionDenied
	}
	if details.CandidateStatus != model.AssignmentPending {
		return nil, util.ErrInvalidTransition
	}

	if accept {
		details.CandidateStatus = model.AssignmentAccepted
	} else {
		details.CandidateStatus = model.AssignmentRejected
	}
	now := s.now()
	details.RespondedAt = &now

	if err := s.ProjectRepo.UpdateAssignment(details); err != nil {
		return nil, err
	}
	return details, nil
}
