package util

import (
	"testing"
	"time"

	"github.com/Pooja123-meshram/talentsprout-project/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789abcdef"

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{
		Email: "candidate@example.com",
		Role:  model.Candidate,
	}
	user.ID = 42

	token, err := GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.Candidate, claims.Role)
	assert.Equal(t, "candidate@example.com", claims.Email)
}

func TestParseJWTWrongSecret(t *testing.T) {
	user := &model.User{Email: "x@example.com", Role: model.Recruiter}
	user.ID = 7

	token, err := GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "some-other-secret")
	assert.Error(t, err)
}

func TestParseJWTExpired(t *testing.T) {
	user := &model.User{Email: "x@example.com", Role: model.Candidate}
	user.ID = 7

	token, err := GenerateJWT(user, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, testSecret)
	assert.Error(t, err)
}

func TestParseJWTGarbage(t *testing.T) {
	_, err := ParseJWT("not-a-token", testSecret)
	assert.Error(t, err)
}
