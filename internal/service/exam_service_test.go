package service

import (
	"testing"
	"time"

	"github.com/Pooja123-meshram/talentsprout-project/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func completedAttempt(score *int, completedAt *time.Time) model.Attempt {
	return model.Attempt{
		Completed:   true,
		Score:       score,
		CompletedAt: completedAt,
	}
}

func TestDecideRetryNoHistory(t *testing.T) {
	d := decideRetry(nil, time.Now())

	assert.True(t, d.eligible)
	assert.False(t, d.secondAttempt)
	assert.Nil(t, d.nextAttemptAt)
}

func TestDecideRetryUnscoredBlocksAsProcessing(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	done := now.Add(-30 * 24 * time.Hour)

	// No score yet, even though the attempt completed weeks ago.
	d := decideRetry([]model.Attempt{completedAttempt(nil, &done)}, now)

	assert.False(t, d.eligible)
	assert.Equal(t, BlockProcessing, d.reason)
	assert.Nil(t, d.nextAttemptAt)
}

func TestDecideRetryCooldown(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		score    int
		elapsed  time.Duration
		eligible bool
		reason   BlockReason
	}{
		{"passed inside cooldown", 80, 2 * 24 * time.Hour, false, BlockCooldown},
		{"failed inside cooldown", 40, 2 * 24 * time.Hour, false, BlockCooldown},
		{"passed at boundary", 80, RetryCooldown, true, ""},
		{"failed at boundary", 40, RetryCooldown, true, ""},
		{"just under boundary", 80, RetryCooldown - time.Second, false, BlockCooldown},
		{"well past cooldown", 59, 10 * 24 * time.Hour, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := now.Add(-tt.elapsed)
			d := decideRetry([]model.Attempt{completedAttempt(intPtr(tt.score), &done)}, now)

			assert.Equal(t, tt.eligible, d.eligible)
			if tt.eligible {
				assert.True(t, d.secondAttempt, "a retry after history must use the second pool")
			} else {
				assert.Equal(t, tt.reason, d.reason)
				require.NotNil(t, d.nextAttemptAt)
				assert.Equal(t, done.Add(RetryCooldown), *d.nextAttemptAt)
			}
		})
	}
}

func TestDecideRetryExhaustedAfterTwoFailures(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	first := now.Add(-20 * 24 * time.Hour)
	second := now.Add(-10 * 24 * time.Hour)

	history := []model.Attempt{
		completedAttempt(intPtr(30), &first),
		completedAttempt(intPtr(55), &second),
	}

	d := decideRetry(history, now)

	assert.False(t, d.eligible)
	assert.Equal(t, BlockExhausted, d.reason)
	assert.Nil(t, d.nextAttemptAt, "exhaustion is permanent, no retry date")
}

func TestDecideRetryExhaustionWinsOverCooldown(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	first := now.Add(-6 * 24 * time.Hour)
	second := now.Add(-1 * 24 * time.Hour)

	history := []model.Attempt{
		completedAttempt(intPtr(10), &first),
		completedAttempt(intPtr(20), &second),
	}

	d := decideRetry(history, now)

	assert.Equal(t, BlockExhausted, d.reason)
}

func TestDecideRetryPassedSecondAttemptNotExhausted(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	first := now.Add(-20 * 24 * time.Hour)
	second := now.Add(-10 * 24 * time.Hour)

	// Latest attempt passed: the two-failure cap does not apply.
	history := []model.Attempt{
		completedAttempt(intPtr(30), &first),
		completedAttempt(intPtr(90), &second),
	}

	d := decideRetry(history, now)

	assert.True(t, d.eligible)
	assert.True(t, d.secondAttempt)
}

func TestDecideRetryPassThresholdBoundary(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	first := now.Add(-20 * 24 * time.Hour)
	second := now.Add(-10 * 24 * time.Hour)

	// 60 passes, 59 fails.
	pass := []model.Attempt{
		completedAttempt(intPtr(59), &first),
		completedAttempt(intPtr(PassThreshold), &second),
	}
	assert.True(t, decideRetry(pass, now).eligible)

	fail := []model.Attempt{
		completedAttempt(intPtr(59), &first),
		completedAttempt(intPtr(PassThreshold-1), &second),
	}
	assert.Equal(t, BlockExhausted, decideRetry(fail, now).reason)
}

func TestDecideRetryLatestUnscoredAfterScoredHistory(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	first := now.Add(-20 * 24 * time.Hour)
	second := now.Add(-10 * 24 * time.Hour)

	history := []model.Attempt{
		completedAttempt(intPtr(30), &first),
		completedAttempt(nil, &second),
	}

	d := decideRetry(history, now)

	assert.Equal(t, BlockProcessing, d.reason)
}

func TestAnswerIsCorrect(t *testing.T) {
	tests := []struct {
		submitted string
		correct   string
		want      bool
	}{
		{"go", "go", true},
		{"GO", "go", true},
		{"  go  ", "go", true},
		{"go", "  Go ", true},
		{"rust", "go", false},
		{"", "go", false},
		{"g o", "go", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, answerIsCorrect(tt.submitted, tt.correct),
			"submitted=%q correct=%q", tt.submitted, tt.correct)
	}
}
