package model

import (
	"strings"
	"time"
)

const (
	ProjectStatusActive     = "active"
	ProjectStatusTerminated = "terminated"
)

// swagger:model Project
type Project struct {
	BaseModel

	// Reference code shared with the client, generated at creation.
	Code string `gorm:"size:36;uniqueIndex" json:"code"`

	RecruiterID uint   `gorm:"index;type:bigint unsigned;not null" json:"recruiterId"`
	CandidateID uint   `gorm:"index;type:bigint unsigned;not null" json:"candidateId"`
	ProjectName string `gorm:"size:100;not null" json:"projectName"`
	ClientName  string `gorm:"size:100" json:"clientName"`
	// Comma-separated ordered stage names, e.g. "design,build,review".
	Stages  string   `gorm:"type:text" json:"stages"`
	Status  string   `gorm:"type:enum('active','terminated');default:'active'" json:"status"`
	Costing *float64 `gorm:"type:decimal(10,2)" json:"costing,omitempty"`

	Progresses []Progress `gorm:"foreignKey:ProjectID" json:"-"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) StageList() []string {
	if strings.TrimSpace(p.Stages) == "" {
		return nil
	}
	parts := strings.Split(p.Stages, ",")
	stages := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			stages = append(stages, s)
		}
	}
	return stages
}

// CostPerStage splits the total costing evenly across stages; zero when
// either side is missing.
func (p *Project) CostPerStage() float64 {
	stages := p.StageList()
	if len(stages) == 0 || p.Costing == nil {
		return 0
	}
	return *p.Costing / float64(len(stages))
}

// Progress tracks completion of one project stage by one party.
type Progress struct {
	BaseModel

	ProjectID          uint   `gorm:"index;type:bigint unsigned;not null" json:"projectId"`
	UserID             uint   `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Stage              string `gorm:"size:100;not null" json:"stage"`
	Role               string `gorm:"type:enum('candidate','recruiter');default:'candidate'" json:"role"`
	IsCompleted        bool   `gorm:"default:false" json:"isCompleted"`
	Status             string `gorm:"size:255" json:"status"`
	ClientConfirmation bool   `gorm:"default:false" json:"clientConfirmation"`
}

func (Progress) TableName() string {
	return "progresses"
}

const (
	AssignmentPending  = "pending"
	AssignmentAccepted = "accepted"
	AssignmentRejected = "rejected"
)

// ProjectDetails is a recruiter's project assignment offered to a
// candidate, who accepts or rejects it.
type ProjectDetails struct {
	BaseModel

	RecruiterID     uint       `gorm:"index;type:bigint unsigned;not null" json:"recruiterId"`
	CandidateID     uint       `gorm:"index;type:bigint unsigned;not null" json:"candidateId"`
	ProjectName     string     `gorm:"size:255;not null" json:"projectName"`
	Description     string     `gorm:"type:text" json:"description"`
	TechStack       string     `gorm:"size:255" json:"techStack"`
	Remarks         string     `gorm:"type:text" json:"remarks"`
	CandidateStatus string     `gorm:"type:enum('pending','accepted','rejected');default:'pending'" json:"candidateStatus"`
	AssignedAt      time.Time  `gorm:"autoCreateTime" json:"assignedAt"`
	RespondedAt     *time.Time `json:"respondedAt,omitempty"`
}

func (ProjectDetails) TableName() string {
	return "project_details"
}
