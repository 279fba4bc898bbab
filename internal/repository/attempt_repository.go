package repository

import (
	"errors"
	"time"

	"github.com/Pooja123-meshram/talentsprout-project/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttemptRepository is the attempt store. The at-most-one-open-attempt
// invariant per (user, skill) is enforced here by the idx_open_attempt
// unique index, not by caller discipline: concurrent creates race on the
// index and the loser fetches the winner's row.
type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) FindOpen(userID, skillID uint) (*model.Attempt, error) {
	var a model.Attempt
	err := r.DB.
		Where("user_id = ? AND skill_id = ? AND completed = ?", userID, skillID, false).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateOpenWithQuestions atomically creates the open attempt for
// (user, skill) and pins its question set. The attempt row and its
// assignment rows commit together, so a store failure never leaves an
// attempt half-created. Returns created=false with the existing row when
// another request won the race or an open attempt already exists.
func (r *AttemptRepository) CreateOpenWithQuestions(userID, skillID uint, secondAttempt bool, questionIDs []uint) (*model.Attempt, bool, error) {
	if existing, err := r.FindOpen(userID, skillID); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	open := true
	attempt := &model.Attempt{
		UserID:        userID,
		SkillID:       skillID,
		SecondAttempt: secondAttempt,
		Open:          &open,
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}
		if len(questionIDs) == 0 {
			return nil
		}
		assignments := make([]model.AttemptQuestion, 0, len(questionIDs))
		for i, qid := range questionIDs {
			assignments = append(assignments, model.AttemptQuestion{
				AttemptID:  attempt.ID,
				QuestionID: qid,
				Position:   i + 1,
			})
		}
		return tx.Create(&assignments).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race; the winner's row is the open attempt.
			winner, ferr := r.FindOpen(userID, skillID)
			if ferr != nil {
				return nil, false, ferr
			}
			return winner, false, nil
		}
		return nil, false, err
	}

	return attempt, true, nil
}

func (r *AttemptRepository) FindByID(id uint) (*model.Attempt, error) {
	var a model.Attempt
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Questions.Question").
		Preload("Answers").
		First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListCompleted returns all completed attempts for (user, skill) ordered
// by completion time ascending.
func (r *AttemptRepository) ListCompleted(userID, skillID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.DB.
		Where("user_id = ? AND skill_id = ? AND completed = ?", userID, skillID, true).
		Order("completed_at asc").
		Find(&attempts).Error
	return attempts, err
}

// UpsertAnswer creates or overwrites the answer keyed by
// (attempt, question).
func (r *AttemptRepository) UpsertAnswer(answer *model.Answer) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "attempt_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answer", "is_correct", "updated_at"}),
	}).Create(answer).Error
}

// MarkCompleted flips the attempt to completed and frees the open slot.
// Score stays NULL until a reviewer records it.
func (r *AttemptRepository) MarkCompleted(attemptID uint, completedAt time.Time) error {
	return r.DB.Model(&model.Attempt{}).
		Where("id = ?", attemptID).
		Updates(map[string]interface{}{
			"completed":    true,
			"completed_at": completedAt,
			"open":         nil,
		}).Error
}

func (r *AttemptRepository) RecordScore(attemptID uint, score int) error {
	return r.DB.Model(&model.Attempt{}).
		Where("id = ?", attemptID).
		Update("score", score).Error
}
