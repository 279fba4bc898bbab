package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Pooja123-meshram/talentsprout-project/internal/model"
	"github.com/Pooja123-meshram/talentsprout-project/internal/repository"
	"github.com/Pooja123-meshram/talentsprout-project/internal/util"
	"github.com/Pooja123-meshram/talentsprout-project/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	publishedCacheKey = "blog:published:first"
	publishedCacheTTL = 5 * time.Minute
)

type BlogService struct {
	BlogRepo *repository.BlogRepository
	Redis    *redis.Client

	now func() time.Time
}

func NewBlogService(blogRepo *repository.BlogRepository, rdb *redis.Client) *BlogService {
	return &BlogService{
		BlogRepo: blogRepo,
		Redis:    rdb,
		now:      time.Now,
	}
}

type BlogPostRequest struct {
	Title       string     `json:"title" binding:"required"`
	Author      string     `json:"author"`
	Content     string     `json:"content"`
	ScheduledAt *time.Time `json:"scheduledAt"`
}

func (s *BlogService) CreatePost(userID uint, req BlogPostRequest) (*model.BlogPost, error) {
	post := &model.BlogPost{
		UserID:  userID,
		Title:   req.Title,
		Author:  req.Author,
		Content: req.Content,
		Status:  model.PostStatusDraft,
	}
	if err := s.BlogRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogService) UpdatePost(userID, postID uint, req BlogPostRequest) (*model.BlogPost, error) {
	post, err := s.ownedPost(userID, postID)
	if err != nil {
		return nil, err
	}
	post.Title = req.Title
	post.Author = req.Author
	post.Content = req.Content
	if err := s.BlogRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// SubmitForReview moves a draft into the review queue.
func (s *BlogService) SubmitForReview(userID, postID uint) (*model.BlogPost, error) {
	post, err := s.ownedPost(userID, postID)
	if err != nil {
		return nil, err
	}
	if !canTransition(post.Status, model.PostStatusPending) {
		return nil, util.ErrInvalidTransition
	}
	post.Status = model.PostStatusPending
	if err := s.BlogRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Publish makes a pending post live immediately, or schedules it when
// scheduledAt is in the future.
func (s *BlogService) Publish(postID uint, scheduledAt *time.Time) (*model.BlogPost, error) {
	post, err := s.BlogRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPostNotFound
		}
		return nil, err
	}

	now := s.now()
	if scheduledAt != nil && scheduledAt.After(now) {
		if !canTransition(post.Status, model.PostStatusScheduled) {
			return nil, util.ErrInvalidTransition
		}
		post.Status = model.PostStatusScheduled
		post.ScheduledAt = scheduledAt
	} else {
		if !canTransition(post.Status, model.PostStatusPublished) {
			return nil, util.ErrInvalidTransition
		}
		post.Status = model.PostStatusPublished
		post.PublishedAt = &now
	}

	if err := s.BlogRepo.Update(post); err != nil {
		return nil, err
	}
	s.invalidatePublishedCache()
	return post, nil
}

// canTransition encodes the publishing pipeline:
// draft -> pending -> published|scheduled -> published.
func canTransition(from, to string) bool {
	switch to {
	case model.PostStatusPending:
		return from == model.PostStatusDraft
	case model.PostStatusScheduled:
		return from == model.PostStatusPending
	case model.PostStatusPublished:
		return from == model.PostStatusPending || from == model.PostStatusScheduled
	default:
		return false
	}
}

func (s *BlogService) ListMine(userID uint) ([]model.BlogPost, error) {
	return s.BlogRepo.ListByUser(userID)
}

func (s *BlogService) ListPending(page, limit int) ([]model.BlogPost, int64, error) {
	return s.BlogRepo.ListByStatus(model.PostStatusPending, page, limit)
}

// ListPublished serves the first page from redis when possible; deeper
// pages always hit the database.
func (s *BlogService) ListPublished(page, limit int) ([]model.BlogPost, int64, error) {
	type cached struct {
		Posts []model.BlogPost `json:"posts"`
		Total int64            `json:"total"`
	}

	ctx := context.Background()
	cacheable := s.Redis != nil && page == 1

	if cacheable {
		if raw, err := s.Redis.Get(ctx, publishedCacheKey).Result(); err == nil {
			var c cached
			if json.Unmarshal([]byte(raw), &c) == nil && len(c.Posts) <= limit {
				return c.Posts, c.Total, nil
			}
		}
	}

	posts, total, err := s.BlogRepo.ListByStatus(model.PostStatusPublished, page, limit)
	if err != nil {
		return nil, 0, err
	}

	if cacheable {
		if raw, err := json.Marshal(cached{Posts: posts, Total: total}); err == nil {
			s.Redis.Set(ctx, publishedCacheKey, raw, publishedCacheTTL)
		}
	}
	return posts, total, nil
}

func (s *BlogService) DeletePost(userID, postID uint) error {
	if _, err := s.ownedPost(userID, postID); err != nil {
		return err
	}
	return s.BlogRepo.Delete(postID)
}

func (s *BlogService) SetPreference(userID, postID uint, pref *model.CandidatePreference) error {
	post, err := s.ownedPost(userID, postID)
	if err != nil {
		return err
	}
	pref.BlogPostID = post.ID
	return s.BlogRepo.UpsertPreference(pref)
}

// ProcessScheduledPublishes flips scheduled posts whose time has come to
// published. Run from the app's background ticker.
func (s *BlogService) ProcessScheduledPublishes() error {
	now := s.now()
	due, err := s.BlogRepo.ListScheduledDue(now)
	if err != nil {
		return err
	}
	for i := range due {
		post := &due[i]
		post.Status = model.PostStatusPublished
		post.PublishedAt = &now
		if err := s.BlogRepo.Update(post); err != nil {
			return err
		}
		logger.Log.Info("scheduled post published",
			zap.Uint("postId", post.ID),
			zap.Time("scheduledAt", *post.ScheduledAt))
	}
	if len(due) > 0 {
		s.invalidatePublishedCache()
	}
	return nil
}

func (s *BlogService) invalidatePublishedCache() {
	if s.Redis == nil {
		return
	}
	s.Redis.Del(context.Background(), publishedCacheKey)
}

func (s *BlogService) ownedPost(userID, postID uint) (*model.BlogPost, error) {
	post, err := s.BlogRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPostNotFound
		}
		return nil, err
	}
	if post.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return post, nil
}
