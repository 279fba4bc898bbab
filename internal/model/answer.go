package model

// Answer holds the submitted text for one question of one attempt.
// Resubmitting the same question within an attempt overwrites the row.
type Answer struct {
	BaseModel

	AttemptID  uint   `gorm:"type:bigint unsigned;not null;uniqueIndex:idx_answer_attempt_question,priority:1" json:"attemptId"`
	QuestionID uint   `gorm:"type:bigint unsigned;not null;uniqueIndex:idx_answer_attempt_question,priority:2" json:"questionId"`
	Answer     string `gorm:"type:text" json:"answer"`
	IsCorrect  bool   `gorm:"default:false" json:"isCorrect"`
}

func (Answer) TableName() string {
	return "answers"
}
