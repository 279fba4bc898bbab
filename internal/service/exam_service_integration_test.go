package service

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/Pooja123-meshram/talentsprout-project/internal/config"
	"github.com/Pooja123-meshram/talentsprout-project/internal/model"
	"github.com/Pooja123-meshram/talentsprout-project/internal/repository"
	"github.com/Pooja123-meshram/talentsprout-project/internal/util"
	"github.com/Pooja123-meshram/talentsprout-project/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Requires a running MySQL; gated behind TALENTSPROUT_INTEGRATION=1.
func integrationExamService(t *testing.T) (*ExamService, *gorm.DB) {
	t.Helper()
	if os.Getenv("TALENTSPROUT_INTEGRATION") != "1" {
		t.Skip("set TALENTSPROUT_INTEGRATION=1 to run integration tests")
	}

	host := os.Getenv("TALENTSPROUT_TEST_DB_HOST")
	if host == "" {
		host = "127.0.0.1"
	}
	cfg := &config.DatabaseConfig{
		Host:      host,
		Port:      3306,
		User:      "root",
		Password:  "root",
		DBName:    "talentsprout_test",
		Charset:   "utf8mb4",
		ParseTime: true,
	}

	db, err := database.InitDB(cfg)
	require.NoError(t, err)

	svc := NewExamService(
		repository.NewSkillRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewAttemptRepository(db),
		repository.NewExamRuleRepository(db),
	)
	return svc, db
}

func seedExamFixture(t *testing.T, db *gorm.DB) (uint, uint, []model.Question, []model.Question) {
	t.Helper()
	suffix := time.Now().UnixNano()

	user := model.User{
		Name:     "Integration Candidate",
		Email:    fmt.Sprintf("svc_itest_%d@example.test", suffix),
		Password: "dummy-hash",
		Role:     model.Candidate,
	}
	require.NoError(t, db.Create(&user).Error)

	skill := model.Skill{Name: fmt.Sprintf("SVC ITEST Skill %d", suffix)}
	require.NoError(t, db.Create(&skill).Error)

	firstPool := []model.Question{
		{SkillID: skill.ID, Type: model.QuestionTypeMCQ, Text: "f1", Options: `["a","b"]`, CorrectAnswer: "a"},
		{SkillID: skill.ID, Type: model.QuestionTypeMCQ, Text: "f2", Options: `["a","b"]`, CorrectAnswer: "b"},
	}
	require.NoError(t, db.Create(&firstPool).Error)

	retryPool := []model.Question{
		{SkillID: skill.ID, Type: model.QuestionTypeMCQ, Text: "r1", Options: `["a","b"]`, CorrectAnswer: "a", IsSecondAttempt: true},
	}
	require.NoError(t, db.Create(&retryPool).Error)

	return user.ID, skill.ID, firstPool, retryPool
}

func TestStartAttemptAssignsFirstPoolInOrder(t *testing.T) {
	svc, db := integrationExamService(t)
	userID, skillID, firstPool, _ := seedExamFixture(t, db)

	outcome, err := svc.StartAttempt(userID, skillID)
	require.NoError(t, err)
	require.False(t, outcome.Blocked)
	require.False(t, outcome.Resumed)

	attempt, err := svc.GetAttempt(userID, outcome.Attempt.ID)
	require.NoError(t, err)
	require.Len(t, attempt.Questions, len(firstPool))
	for i, aq := range attempt.Questions {
		assert.Equal(t, firstPool[i].ID, aq.QuestionID, "ascending-id assignment")
		assert.Equal(t, i+1, aq.Position)
		assert.False(t, aq.Question.IsSecondAttempt)
	}

	// A second start resumes the same attempt untouched.
	resumed, err := svc.StartAttempt(userID, skillID)
	require.NoError(t, err)
	assert.True(t, resumed.Resumed)
	assert.Equal(t, attempt.ID, resumed.Attempt.ID)
}

func TestSubmitAttemptIncompleteAbortsButKeepsAnswers(t *testing.T) {
	svc, db := integrationExamService(t)
	userID, skillID, firstPool, _ := seedExamFixture(t, db)

	outcome, err := svc.StartAttempt(userID, skillID)
	require.NoError(t, err)

	// Second question unanswered: submission must fail validation.
	_, err = svc.SubmitAttempt(userID, outcome.Attempt.ID, map[uint]string{
		firstPool[0].ID: "a",
	})
	require.ErrorIs(t, err, util.ErrIncompleteSubmission)

	attempt, err := svc.GetAttempt(userID, outcome.Attempt.ID)
	require.NoError(t, err)
	assert.False(t, attempt.Completed, "aborted submission leaves the attempt open")
	require.Len(t, attempt.Answers, 1, "the answer entered before the abort stays written")
	assert.Equal(t, "a", attempt.Answers[0].Answer)

	// Full resubmission overwrites and completes.
	done, err := svc.SubmitAttempt(userID, outcome.Attempt.ID, map[uint]string{
		firstPool[0].ID: " A ",
		firstPool[1].ID: "b",
	})
	require.NoError(t, err)
	assert.True(t, done.Completed)
	assert.Nil(t, done.Score, "completion never sets a score")

	_, err = svc.SubmitAttempt(userID, outcome.Attempt.ID, map[uint]string{
		firstPool[0].ID: "a",
		firstPool[1].ID: "b",
	})
	assert.ErrorIs(t, err, util.ErrAttemptSubmitted)
}

func TestRetryCycleUsesSecondPool(t *testing.T) {
	svc, db := integrationExamService(t)
	userID, skillID, firstPool, retryPool := seedExamFixture(t, db)

	outcome, err := svc.StartAttempt(userID, skillID)
	require.NoError(t, err)
	_, err = svc.SubmitAttempt(userID, outcome.Attempt.ID, map[uint]string{
		firstPool[0].ID: "a",
		firstPool[1].ID: "a",
	})
	require.NoError(t, err)

	// Unscored: blocked as processing.
	blocked, err := svc.StartAttempt(userID, skillID)
	require.NoError(t, err)
	require.True(t, blocked.Blocked)
	assert.Equal(t, BlockProcessing, blocked.Reason)

	_, err = svc.RecordScore(outcome.Attempt.ID, 40)
	require.NoError(t, err)

	// Scored but inside the cooldown window.
	blocked, err = svc.StartAttempt(userID, skillID)
	require.NoError(t, err)
	require.True(t, blocked.Blocked)
	assert.Equal(t, BlockCooldown, blocked.Reason)
	require.NotNil(t, blocked.NextAttemptAt)

	// Jump the clock past the cooldown.
	svc.now = func() time.Time { return time.Now().Add(RetryCooldown + time.Hour) }

	retry, err := svc.StartAttempt(userID, skillID)
	require.NoError(t, err)
	require.False(t, retry.Blocked)
	assert.True(t, retry.Attempt.SecondAttempt)

	attempt, err := svc.GetAttempt(userID, retry.Attempt.ID)
	require.NoError(t, err)
	require.Len(t, attempt.Questions, len(retryPool))
	assert.Equal(t, retryPool[0].ID, attempt.Questions[0].QuestionID)
}
