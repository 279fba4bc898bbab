package repository

import (
	"github.com/Pooja123-meshram/talentsprout-project/internal/model"

	"gorm.io/gorm"
)

// QuestionRepository is the question bank: skill-tagged questions
// partitioned into the first-attempt and second-attempt pools.
type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	if err := r.DB.First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// ForSkillPool returns the pool for one skill in ascending-id order.
// An empty result is a valid state, not an error.
func (r *QuestionRepository) ForSkillPool(skillID uint, secondAttempt bool) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.
		Where("skill_id = ? AND is_second_attempt = ?", skillID, secondAttempt).
		Order("id asc").
		Find(&questions).Error
	return questions, err
}
