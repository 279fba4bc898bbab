package repository

import (
	"github.com/Pooja123-meshram/talentsprout-project/internal/model"

	"gorm.io/gorm"
)

type SkillRepository struct {
	DB *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{DB: db}
}

func (r *SkillRepository) Create(skill *model.Skill) error {
	return r.DB.Create(skill).Error
}

func (r *SkillRepository) FindByID(id uint) (*model.Skill, error) {
	var skill model.Skill
	if err := r.DB.First(&skill, id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepository) ListAll() ([]model.Skill, error) {
	var skills []model.Skill
	err := r.DB.Order("name asc").Find(&skills).Error
	return skills, err
}
