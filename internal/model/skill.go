package model

// Skill is immutable reference data owning the question bank for one
// examinable skill.
//
// swagger:model Skill
type Skill struct {
	BaseModel

	Name        string `gorm:"size:100;unique;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	Questions []Question `gorm:"foreignKey:SkillID" json:"-"`
}

func (Skill) TableName() string {
	return "skills"
}
