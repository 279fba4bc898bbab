package model

import "time"

const (
	PostStatusDraft     = "draft"
	PostStatusPending   = "pending"
	PostStatusPublished = "published"
	PostStatusScheduled = "scheduled"
)

// swagger:model BlogPost
type BlogPost struct {
	BaseModel

	UserID      uint       `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Author      string     `gorm:"size:100" json:"author"`
	Content     string     `gorm:"type:text" json:"content"`
	Status      string     `gorm:"type:enum('draft','pending','published','scheduled');default:'draft';index" json:"status"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`

	Preference *CandidatePreference `gorm:"foreignKey:BlogPostID" json:"preference,omitempty"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

// CandidatePreference is the service offering a candidate attaches to a
// portfolio post.
type CandidatePreference struct {
	BaseModel

	BlogPostID   uint    `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"blogPostId"`
	ServiceTitle string  `gorm:"size:200;not null" json:"serviceTitle"`
	Description  string  `gorm:"type:text" json:"description"`
	DeliveryTime string  `gorm:"size:100" json:"deliveryTime"`
	Revisions    string  `gorm:"size:100" json:"revisions"`
	Price        float64 `gorm:"type:decimal(10,2)" json:"price"`
}

func (CandidatePreference) TableName() string {
	return "candidate_preferences"
}
