package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestStageList(t *testing.T) {
	tests := []struct {
		stages string
		want   []string
	}{
		{"design,build,review", []string{"design", "build", "review"}},
		{" design , build ", []string{"design", "build"}},
		{"design", []string{"design"}},
		{"design,,review", []string{"design", "review"}},
		{"", nil},
		{"   ", nil},
	}

	for _, tt := range tests {
		p := Project{Stages: tt.stages}
		assert.Equal(t, tt.want, p.StageList(), "stages=%q", tt.stages)
	}
}

func TestCostPerStage(t *testing.T) {
	p := Project{Stages: "design,build,review,deliver", Costing: floatPtr(1000)}
	assert.InDelta(t, 250.0, p.CostPerStage(), 0.001)

	noCost := Project{Stages: "design,build"}
	assert.Zero(t, noCost.CostPerStage())

	noStages := Project{Costing: floatPtr(500)}
	assert.Zero(t, noStages.CostPerStage())
}
