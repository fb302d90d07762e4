package level_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyhive/community-core/internal/level"
)

func testLevels() []level.Definition {
	return []level.Definition{
		{Name: "Newcomer", MinScore: 0},
		{Name: "Contributor", MinScore: 50},
		{Name: "Regular", MinScore: 250},
		{Name: "Mentor", MinScore: 1000},
	}
}

func TestCalculator_ForScore(t *testing.T) {
	t.Parallel()

	calc := level.NewCalculator(testLevels())

	tests := []struct {
		name        string
		score       int64
		wantName    string
		wantOrdinal int
	}{
		{name: "zero score", score: 0, wantName: "Newcomer", wantOrdinal: 0},
		{name: "just below threshold", score: 49, wantName: "Newcomer", wantOrdinal: 0},
		{name: "exactly at threshold", score: 50, wantName: "Contributor", wantOrdinal: 1},
		{name: "between thresholds", score: 700, wantName: "Regular", wantOrdinal: 2},
		{name: "top level", score: 1000, wantName: "Mentor", wantOrdinal: 3},
		{name: "far above top level", score: 99999, wantName: "Mentor", wantOrdinal: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			def, ordinal := calc.ForScore(tt.score)
			assert.Equal(t, tt.wantName, def.Name)
			assert.Equal(t, tt.wantOrdinal, ordinal)
		})
	}
}

func TestCalculator_Next(t *testing.T) {
	t.Parallel()

	calc := level.NewCalculator(testLevels())

	next := calc.Next(0)
	require.NotNil(t, next)
	assert.Equal(t, "Contributor", next.Name)

	assert.Nil(t, calc.Next(3), "top ordinal has no next level")
	assert.Nil(t, calc.Next(99))
}

func TestCalculator_Progress(t *testing.T) {
	t.Parallel()

	calc := level.NewCalculator(testLevels())

	progress, known := calc.Progress(25)
	require.True(t, known)
	assert.InDelta(t, 0.5, progress, 0.001)

	progress, known = calc.Progress(50)
	require.True(t, known)
	assert.InDelta(t, 0.0, progress, 0.001)

	_, known = calc.Progress(5000)
	assert.False(t, known, "progress is undefined at the top level")
}

func TestNewCalculator_UnsortedInput(t *testing.T) {
	t.Parallel()

	calc := level.NewCalculator([]level.Definition{
		{Name: "Regular", MinScore: 250},
		{Name: "Newcomer", MinScore: 0},
		{Name: "Contributor", MinScore: 50},
	})

	def, ordinal := calc.ForScore(100)
	assert.Equal(t, "Contributor", def.Name)
	assert.Equal(t, 1, ordinal)
}

func TestNewCalculator_EmptyTable(t *testing.T) {
	t.Parallel()

	calc := level.NewCalculator(nil)

	def, ordinal := calc.ForScore(1234)
	assert.Equal(t, 0, ordinal)
	assert.NotEmpty(t, def.Name)
}
