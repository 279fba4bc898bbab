package model

const QuestionTypeMCQ = "MCQ"

// swagger:model Question
type Question struct {
	BaseModel

	SkillID       uint   `gorm:"index;type:bigint unsigned;not null" json:"skillId"`
	Type          string `gorm:"size:20;default:'MCQ'" json:"type"`
	Text          string `gorm:"type:text;not null" json:"text"`
	Options       string `gorm:"type:json" json:"options"` // MCQ choices (JSON array)
	CorrectAnswer string `gorm:"size:255;not null" json:"-"`
	// Partitions the skill's bank into the first-attempt and the
	// retry pools.
	IsSecondAttempt bool `gorm:"default:false" json:"isSecondAttempt"`
}

func (Question) TableName() string {
	return "questions"
}
