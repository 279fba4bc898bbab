package repository

import (
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/Pooja123-meshram/talentsprout-project/internal/config"
	"github.com/Pooja123-meshram/talentsprout-project/internal/model"
	"github.com/Pooja123-meshram/talentsprout-project/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Requires a running MySQL; gated behind TALENTSPROUT_INTEGRATION=1.
func integrationDB(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("TALENTSPROUT_INTEGRATION") != "1" {
		t.Skip("set TALENTSPROUT_INTEGRATION=1 to run integration tests")
	}

	cfg := &config.DatabaseConfig{
		Host:      envOr("TALENTSPROUT_TEST_DB_HOST", "127.0.0.1"),
		Port:      3306,
		User:      envOr("TALENTSPROUT_TEST_DB_USER", "root"),
		Password:  envOr("TALENTSPROUT_TEST_DB_PASSWORD", "root"),
		DBName:    envOr("TALENTSPROUT_TEST_DB_NAME", "talentsprout_test"),
		Charset:   "utf8mb4",
		ParseTime: true,
	}

	db, err := database.InitDB(cfg)
	require.NoError(t, err)
	return db
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func seedUserAndSkill(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()
	suffix := time.Now().UnixNano()

	user := model.User{
		Name:     "Integration Candidate",
		Email:    fmt.Sprintf("itest_%d@example.test", suffix),
		Password: "dummy-hash",
		Role:     model.Candidate,
	}
	require.NoError(t, db.Create(&user).Error)

	skill := model.Skill{Name: fmt.Sprintf("ITEST Skill %d", suffix)}
	require.NoError(t, db.Create(&skill).Error)

	questions := []model.Question{
		{SkillID: skill.ID, Type: model.QuestionTypeMCQ, Text: "q1", Options: `["a","b"]`, CorrectAnswer: "a"},
		{SkillID: skill.ID, Type: model.QuestionTypeMCQ, Text: "q2", Options: `["a","b"]`, CorrectAnswer: "b"},
	}
	require.NoError(t, db.Create(&questions).Error)

	return user.ID, skill.ID
}

func TestCreateOpenWithQuestionsConcurrentRace(t *testing.T) {
	db := integrationDB(t)
	repo := NewAttemptRepository(db)
	userID, skillID := seedUserAndSkill(t, db)

	questions, err := NewQuestionRepository(db).ForSkillPool(skillID, false)
	require.NoError(t, err)
	ids := make([]uint, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}

	const racers = 8
	type result struct {
		attempt *model.Attempt
		created bool
		err     error
	}
	results := make([]result, racers)

	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, created, err := repo.CreateOpenWithQuestions(userID, skillID, false, ids)
			results[i] = result{attempt: a, created: created, err: err}
		}(i)
	}
	wg.Wait()

	createdCount := 0
	var firstID uint
	for _, r := range results {
		require.NoError(t, r.err)
		require.NotNil(t, r.attempt)
		if r.created {
			createdCount++
		}
		if firstID == 0 {
			firstID = r.attempt.ID
		} else {
			assert.Equal(t, firstID, r.attempt.ID, "all racers must converge on one attempt")
		}
	}
	assert.Equal(t, 1, createdCount, "exactly one racer creates the open attempt")
}

func TestAttemptLifecycle(t *testing.T) {
	db := integrationDB(t)
	repo := NewAttemptRepository(db)
	userID, skillID := seedUserAndSkill(t, db)

	attempt, created, err := repo.CreateOpenWithQuestions(userID, skillID, false, nil)
	require.NoError(t, err)
	require.True(t, created)

	// Open attempt is findable and blocks a second create.
	open, err := repo.FindOpen(userID, skillID)
	require.NoError(t, err)
	assert.Equal(t, attempt.ID, open.ID)

	again, created, err := repo.CreateOpenWithQuestions(userID, skillID, false, nil)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, attempt.ID, again.ID)

	// Completing frees the open slot for a later attempt.
	completedAt := time.Now().Truncate(time.Second)
	require.NoError(t, repo.MarkCompleted(attempt.ID, completedAt))

	_, err = repo.FindOpen(userID, skillID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	completed, err := repo.ListCompleted(userID, skillID)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Nil(t, completed[0].Score, "score stays NULL until recorded")

	require.NoError(t, repo.RecordScore(attempt.ID, 75))
	completed, err = repo.ListCompleted(userID, skillID)
	require.NoError(t, err)
	require.NotNil(t, completed[0].Score)
	assert.Equal(t, 75, *completed[0].Score)

	next, created, err := repo.CreateOpenWithQuestions(userID, skillID, true, nil)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, attempt.ID, next.ID)
	assert.True(t, next.SecondAttempt)
}

func TestUpsertAnswerOverwrites(t *testing.T) {
	db := integrationDB(t)
	repo := NewAttemptRepository(db)
	userID, skillID := seedUserAndSkill(t, db)

	questions, err := NewQuestionRepository(db).ForSkillPool(skillID, false)
	require.NoError(t, err)
	require.NotEmpty(t, questions)
	qid := questions[0].ID

	attempt, _, err := repo.CreateOpenWithQuestions(userID, skillID, false, []uint{qid})
	require.NoError(t, err)

	require.NoError(t, repo.UpsertAnswer(&model.Answer{
		AttemptID: attempt.ID, QuestionID: qid, Answer: "b", IsCorrect: false,
	}))
	require.NoError(t, repo.UpsertAnswer(&model.Answer{
		AttemptID: attempt.ID, QuestionID: qid, Answer: "a", IsCorrect: true,
	}))

	loaded, err := repo.FindByID(attempt.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Answers, 1, "resubmission overwrites, never duplicates")
	assert.Equal(t, "a", loaded.Answers[0].Answer)
	assert.True(t, loaded.Answers[0].IsCorrect)
}
