package model

// ExamRule is static display content for the rules-and-regulations step.
type ExamRule struct {
	BaseModel

	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Order       int    `gorm:"default:0" json:"order"`
}

func (ExamRule) TableName() string {
	return "exam_rules"
}
