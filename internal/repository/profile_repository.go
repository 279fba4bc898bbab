package repository

import (
	"errors"

	"github.com/Pooja123-meshram/talentsprout-project/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

// GetOrCreate returns the user's profile, creating an empty one on
// first access.
func (r *ProfileRepository) GetOrCreate(userID uint) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = model.UserProfile{UserID: userID}
		if err := r.DB.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Update(profile *model.UserProfile) error {
	return r.DB.Save(profile).Error
}

func (r *ProfileRepository) GetBankDetail(userID uint) (*model.BankDetail, error) {
	var detail model.BankDetail
	err := r.DB.Where("user_id = ?", userID).First(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// UpsertBankDetail keeps one payout account per user.
func (r *ProfileRepository) UpsertBankDetail(detail *model.BankDetail) error {
	var existing model.BankDetail
	err := r.DB.Where("user_id = ?", detail.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(detail).Error
	}
	if err != nil {
		return err
	}
	detail.ID = existing.ID
	detail.CreatedAt = existing.CreatedAt
	return r.DB.Save(detail).Error
}

func (r *ProfileRepository) ListEducations(userID uint) ([]model.Education, error) {
	var educations []model.Education
	err := r.DB.Where("user_id = ?", userID).Order("start_year desc").Find(&educations).Error
	return educations, err
}

func (r *ProfileRepository) CreateEducation(education *model.Education) error {
	return r.DB.Create(education).Error
}

func (r *ProfileRepository) DeleteEducation(userID, id uint) error {
	res := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Education{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProfileRepository) ListSocialLinks(userID uint) ([]model.SocialLink, error) {
	var links []model.SocialLink
	err := r.DB.Where("user_id = ?", userID).Order("platform asc").Find(&links).Error
	return links, err
}

func (r *ProfileRepository) CreateSocialLink(link *model.SocialLink) error {
	return r.DB.Create(link).Error
}

func (r *ProfileRepository) DeleteSocialLink(userID, id uint) error {
	res := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.SocialLink{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
