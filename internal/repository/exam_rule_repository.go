package repository

import (
	"github.com/Pooja123-meshram/talentsprout-project/internal/model"

	"gorm.io/gorm"
)

type ExamRuleRepository struct {
	DB *gorm.DB
}

func NewExamRuleRepository(db *gorm.DB) *ExamRuleRepository {
	return &ExamRuleRepository{DB: db}
}

func (r *ExamRuleRepository) ListAll() ([]model.ExamRule, error) {
	var rules []model.ExamRule
	err := r.DB.Order("`order` asc").Find(&rules).Error
	return rules, err
}
