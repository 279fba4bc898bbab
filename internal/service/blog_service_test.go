package service

import (
	"testing"

	"github.com/Pooja123-meshram/talentsprout-project/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{model.PostStatusDraft, model.PostStatusPending, true},
		{model.PostStatusPending, model.PostStatusPublished, true},
		{model.PostStatusPending, model.PostStatusScheduled, true},
		{model.PostStatusScheduled, model.PostStatusPublished, true},

		{model.PostStatusDraft, model.PostStatusPublished, false},
		{model.PostStatusDraft, model.PostStatusScheduled, false},
		{model.PostStatusPublished, model.PostStatusPending, false},
		{model.PostStatusPublished, model.PostStatusPublished, false},
		{model.PostStatusScheduled, model.PostStatusPending, false},
		{model.PostStatusPending, model.PostStatusDraft, false},
		{model.PostStatusPublished, "bogus", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, canTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}
