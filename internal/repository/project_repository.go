package repository

import (
	"github.com/Pooja123-meshram/talentsprout-project/internal/model"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	DB *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

func (r *ProjectRepository) Create(project *model.Project) error {
	return r.DB.Create(project).Error
}

func (r *ProjectRepository) Update(project *model.Project) error {
	return r.DB.Save(project).Error
}

func (r *ProjectRepository) FindByID(id uint) (*model.Project, error) {
	var project model.Project
	err := r.DB.Preload("Progresses").First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) ListForUser(userID uint) ([]model.Project, error) {
	var projects []model.Project
	err := r.DB.
		Where("recruiter_id = ? OR candidate_id = ?", userID, userID).
		Order("created_at desc").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) CreateProgresses(progresses []model.Progress) error {
	if len(progresses) == 0 {
		return nil
	}
	return r.DB.Create(&progresses).Error
}

func (r *ProjectRepository) FindProgress(projectID uint, stage string, userID uint) (*model.Progress, error) {
	var progress model.Progress
	err := r.DB.
		Where("project_id = ? AND stage = ? AND user_id = ?", projectID, stage, userID).
		First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProjectRepository) UpdateProgress(progress *model.Progress) error {
	return r.DB.Save(progress).Error
}

func (r *ProjectRepository) CreateAssignment(details *model.ProjectDetails) error {
	return r.DB.Create(details).Error
}

func (r *ProjectRepository) FindAssignment(id uint) (*model.ProjectDetails, error) {
	var details model.ProjectDetails
	err := r.DB.First(&details, id).Error
	if err != nil {
		return nil, err
	}
	return &details, nil
}

func (r *ProjectRepository) UpdateAssignment(details *model.ProjectDetails) error {
	return r.DB.Save(details).Error
}

func (r *ProjectRepository) ListAssignmentsForCandidate(candidateID uint) ([]model.ProjectDetails, error) {
	var assignments []model.ProjectDetails
	err := r.DB.
		Where("candidate_id = ?", candidateID).
		Order("assigned_at desc").
		Find(&assignments).Error
	return assignments, err
}
