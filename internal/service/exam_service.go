package service

import (
	"errors"
	"strings"
	"time"

	"github.com/Pooja123-meshram/talentsprout-project/internal/model"
	"github.com/Pooja123-meshram/talentsprout-project/internal/repository"
	"github.com/Pooja123-meshram/talentsprout-project/internal/util"

	"gorm.io/gorm"
)

const (
	// PassThreshold is the lowest passing score.
	PassThreshold = 60
	// RetryCooldown is how long a completed attempt blocks the next one.
	RetryCooldown = 5 * 24 * time.Hour
	// maxCompletedAttempts caps failed tries per skill.
	maxCompletedAttempts = 2
)

type BlockReason string

const (
	BlockProcessing BlockReason = "processing"
	BlockCooldown   BlockReason = "cooldown"
	BlockExhausted  BlockReason = "exhausted"
)

// StartOutcome is the result of a start-attempt request. Blocked
// outcomes are normal terminal branches, not errors; the three reasons
// stay distinguishable for the caller.
type StartOutcome struct {
	Attempt       *model.Attempt
	Resumed       bool
	Blocked       bool
	Reason        BlockReason
	NextAttemptAt *time.Time
}

type ExamService struct {
	SkillRepo    *repository.SkillRepository
	QuestionRepo *repository.QuestionRepository
	AttemptRepo  *repository.AttemptRepository
	RuleRepo     *repository.ExamRuleRepository

	// injected so tests can simulate elapsed cooldowns
	now func() time.Time
}

func NewExamService(
	skillRepo *repository.SkillRepository,
	questionRepo *repository.QuestionRepository,
	attemptRepo *repository.AttemptRepository,
	ruleRepo *repository.ExamRuleRepository,
) *ExamService {
	return &ExamService{
		SkillRepo:    skillRepo,
		QuestionRepo: questionRepo,
		AttemptRepo:  attemptRepo,
		RuleRepo:     ruleRepo,
		now:          time.Now,
	}
}

func (s *ExamService) ListSkills() ([]model.Skill, error) {
	return s.SkillRepo.ListAll()
}

func (s *ExamService) ListRules() ([]model.ExamRule, error) {
	return s.RuleRepo.ListAll()
}

// StartAttempt runs the eligibility state machine for (user, skill) and,
// when eligible, creates the open attempt with its question pool
// assigned once. An existing open attempt is resumed as-is without
// re-deriving eligibility or reassigning questions.
func (s *ExamService) StartAttempt(userID, skillID uint) (*StartOutcome, error) {
	if _, err := s.SkillRepo.FindByID(skillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSkillNotFound
		}
		return nil, err
	}

	if open, err := s.AttemptRepo.FindOpen(userID, skillID); err == nil {
		return &StartOutcome{Attempt: open, Resumed: true}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	completed, err := s.AttemptRepo.ListCompleted(userID, skillID)
	if err != nil {
		return nil, err
	}

	decision := decideRetry(completed, s.now())
	if !decision.eligible {
		return &StartOutcome{
			Blocked:       true,
			Reason:        decision.reason,
			NextAttemptAt: decision.nextAttemptAt,
		}, nil
	}

	pool, err := s.QuestionRepo.ForSkillPool(skillID, decision.secondAttempt)
	if err != nil {
		return nil, err
	}
	questionIDs := make([]uint, 0, len(pool))
	for _, q := range pool {
		questionIDs = append(questionIDs, q.ID)
	}

	attempt, created, err := s.AttemptRepo.CreateOpenWithQuestions(userID, skillID, decision.secondAttempt, questionIDs)
	if err != nil {
		return nil, err
	}
	return &StartOutcome{Attempt: attempt, Resumed: !created}, nil
}

type retryDecision struct {
	eligible      bool
	secondAttempt bool
	reason        BlockReason
	nextAttemptAt *time.Time
}

// decideRetry maps the completed-attempt history onto the retry policy:
// no history starts a first attempt; an unscored latest attempt blocks
// until scoring lands; a scored latest attempt blocks for the cooldown
// window and then permits one second-attempt cycle, unless two failed
// completions have exhausted the skill.
func decideRetry(completed []model.Attempt, now time.Time) retryDecision {
	if len(completed) == 0 {
		return retryDecision{eligible: true}
	}

	latest := completed[len(completed)-1]
	if latest.Score == nil || latest.CompletedAt == nil {
		return retryDecision{reason: BlockProcessing}
	}

	passed := *latest.Score >= PassThreshold
	elapsed := now.Sub(*latest.CompletedAt)

	if !passed && len(completed) >= maxCompletedAttempts {
		return retryDecision{reason: BlockExhausted}
	}

	if elapsed < RetryCooldown {
		next := latest.CompletedAt.Add(RetryCooldown)
		return retryDecision{reason: BlockCooldown, nextAttemptAt: &next}
	}

	return retryDecision{eligible: true, secondAttempt: true}
}

// GetAttempt loads an attempt with its assigned questions and any
// answers entered so far. Only the owner may see it.
func (s *ExamService) GetAttempt(userID, attemptID uint) (*model.Attempt, error) {
	attempt, err := s.AttemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	if attempt.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return attempt, nil
}

// SubmitAttempt grades a full submission against the attempt's assigned
// questions in position order. Every question needs a non-empty answer;
// the first missing one aborts the submission, though answers already
// upserted in this request stay written (resubmission overwrites them).
// Completion is marked only after every per-question upsert.
func (s *ExamService) SubmitAttempt(userID, attemptID uint, answers map[uint]string) (*model.Attempt, error) {
	attempt, err := s.GetAttempt(userID, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.Completed {
		return nil, util.ErrAttemptSubmitted
	}

	for _, aq := range attempt.Questions {
		submitted, ok := answers[aq.QuestionID]
		if !ok || strings.TrimSpace(submitted) == "" {
			return nil, util.ErrIncompleteSubmission
		}

		answer := &model.Answer{
			AttemptID:  attempt.ID,
			QuestionID: aq.QuestionID,
			Answer:     submitted,
			IsCorrect:  answerIsCorrect(submitted, aq.Question.CorrectAnswer),
		}
		if err := s.AttemptRepo.UpsertAnswer(answer); err != nil {
			return nil, err
		}
	}

	if err := s.AttemptRepo.MarkCompleted(attempt.ID, s.now()); err != nil {
		return nil, err
	}

	return s.AttemptRepo.FindByID(attempt.ID)
}

// answerIsCorrect compares submitted and stored answers after trimming
// whitespace, ignoring case.
func answerIsCorrect(submitted, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correct))
}

// GetResult returns the read-only completion summary for the owner.
func (s *ExamService) GetResult(userID, attemptID uint) (*model.Attempt, error) {
	attempt, err := s.GetAttempt(userID, attemptID)
	if err != nil {
		return nil, err
	}
	if !attempt.Completed {
		return nil, util.ErrAttemptNotCompleted
	}
	return attempt, nil
}

// RecordScore is the reviewer-side hook that eventually sets the score
// of a completed attempt. Until it runs, the attempt reads as
// "processing" to the retry policy.
func (s *ExamService) RecordScore(attemptID uint, score int) (*model.Attempt, error) {
	attempt, err := s.AttemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	if !attempt.Completed {
		return nil, util.ErrAttemptNotCompleted
	}
	if err := s.AttemptRepo.RecordScore(attemptID, score); err != nil {
		return nil, err
	}
	attempt.Score = &score
	return attempt, nil
}
