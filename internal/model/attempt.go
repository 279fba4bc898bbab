package model

import "time"

// Attempt is one in-progress-or-completed instance of a user taking a
// skill exam. The composite unique index over (user_id, skill_id, open)
// is what keeps at most one open attempt per user and skill: Open is 1
// while the attempt is in progress and NULL once completed, and MySQL
// exempts NULL rows from uniqueness.
//
// swagger:model Attempt
type Attempt struct {
	BaseModel

	UserID  uint `gorm:"type:bigint unsigned;not null;uniqueIndex:idx_open_attempt,priority:1" json:"userId"`
	SkillID uint `gorm:"type:bigint unsigned;not null;uniqueIndex:idx_open_attempt,priority:2" json:"skillId"`
	Open    *bool `gorm:"uniqueIndex:idx_open_attempt,priority:3" json:"-"`

	// Pool choice recorded once at creation; the question set never
	// changes afterwards.
	SecondAttempt bool `gorm:"default:false" json:"secondAttempt"`

	Completed   bool       `gorm:"default:false;index" json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	// NULL until an external reviewer records the result.
	Score *int `json:"score,omitempty"`

	Questions []AttemptQuestion `gorm:"foreignKey:AttemptID" json:"-"`
	Answers   []Answer          `gorm:"foreignKey:AttemptID" json:"-"`
}

func (Attempt) TableName() string {
	return "attempts"
}

// AttemptQuestion pins one question to an attempt at a fixed position.
type AttemptQuestion struct {
	BaseModel

	AttemptID  uint `gorm:"type:bigint unsigned;not null;uniqueIndex:idx_attempt_question,priority:1" json:"attemptId"`
	QuestionID uint `gorm:"type:bigint unsigned;not null;uniqueIndex:idx_attempt_question,priority:2" json:"questionId"`
	Position   int  `gorm:"not null" json:"position"`

	Question Question `gorm:"foreignKey:QuestionID" json:"question"`
}

func (AttemptQuestion) TableName() string {
	return "attempt_questions"
}
