package repository

import (
	"time"

	"github.com/Pooja123-meshram/talentsprout-project/internal/model"

	"gorm.io/gorm"
)

type BlogRepository struct {
	DB *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{DB: db}
}

func (r *BlogRepository) Create(post *model.BlogPost) error {
	return r.DB.Create(post).Error
}

func (r *BlogRepository) Update(post *model.BlogPost) error {
	return r.DB.Save(post).Error
}

func (r *BlogRepository) FindByID(id uint) (*model.BlogPost, error) {
	var post model.BlogPost
	err := r.DB.Preload("Preference").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepository) ListByUser(userID uint) ([]model.BlogPost, error) {
	var posts []model.BlogPost
	err := r.DB.Preload("Preference").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&posts).Error
	return posts, err
}

func (r *BlogRepository) ListByStatus(status string, page, limit int) ([]model.BlogPost, int64, error) {
	var posts []model.BlogPost
	var total int64
	query := r.DB.Model(&model.BlogPost{}).Where("status = ?", status)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("Preference").
		Order("published_at desc").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

// ListScheduledDue returns scheduled posts whose publish time has come.
func (r *BlogRepository) ListScheduledDue(now time.Time) ([]model.BlogPost, error) {
	var posts []model.BlogPost
	err := r.DB.
		Where("status = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?", model.PostStatusScheduled, now).
		Find(&posts).Error
	return posts, err
}

func (r *BlogRepository) Delete(id uint) error {
	return r.DB.Delete(&model.BlogPost{}, id).Error
}

func (r *BlogRepository) UpsertPreference(pref *model.CandidatePreference) error {
	var existing model.CandidatePreference
	err := r.DB.Where("blog_post_id = ?", pref.BlogPostID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(pref).Error
	}
	if err != nil {
		return err
	}
	pref.ID = existing.ID
	pref.CreatedAt = existing.CreatedAt
	return r.DB.Save(pref).Error
}
