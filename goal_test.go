package divistack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGoalProgress(t *testing.T) {
	g := NewGoalProgress(500, 125, 1500)
	assert.True(t, g.Progress.Equal(25))
	assert.InDelta(t, 375, g.MonthlyRemaining, 1e-9)
	assert.InDelta(t, 6000, g.AnnualGoal, 1e-9)
	assert.InDelta(t, 4500, g.AnnualRemaining, 1e-9)
	assert.False(t, g.Reached())

	g = NewGoalProgress(500, 600, 7200)
	assert.True(t, g.Reached())
	assert.Zero(t, g.MonthlyRemaining)
	assert.Zero(t, g.AnnualRemaining)

	assert.Zero(t, NewGoalProgress(0, 100, 1200).Progress)
}
