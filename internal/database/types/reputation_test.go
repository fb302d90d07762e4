package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyhive/community-core/internal/database/types"
	"github.com/studyhive/community-core/internal/database/types/enum"
	"github.com/studyhive/community-core/internal/setup/config"
)

func testLimits() *config.Reputation {
	return &config.Reputation{
		MaxDailyGain: 200,
		MaxDailyLoss: 100,
		MaxDailyNet:  300,
	}
}

func TestApplyFloor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		oldScore    int64
		delta       int64
		wantScore   int64
		wantApplied int64
	}{
		{name: "positive delta", oldScore: 10, delta: 5, wantScore: 15, wantApplied: 5},
		{name: "negative delta above floor", oldScore: 10, delta: -4, wantScore: 6, wantApplied: -4},
		{name: "delta clamped at floor", oldScore: 1, delta: -5, wantScore: 0, wantApplied: -1},
		{name: "at floor already", oldScore: 0, delta: -2, wantScore: 0, wantApplied: 0},
		{name: "zero delta", oldScore: 7, delta: 0, wantScore: 7, wantApplied: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			newScore, applied := types.ApplyFloor(tt.oldScore, tt.delta)
			assert.Equal(t, tt.wantScore, newScore)
			assert.Equal(t, tt.wantApplied, applied)
		})
	}
}

func TestWindowTotals_Check(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		totals   types.WindowTotals
		delta    int64
		wantKind *enum.DailyLimitKind
	}{
		{
			name:   "well under all limits",
			totals: types.WindowTotals{Gained: 10, Lost: 10, Net: 0},
			delta:  20,
		},
		{
			name:   "reaches gain ceiling exactly",
			totals: types.WindowTotals{Gained: 190, Net: 190},
			delta:  10,
		},
		{
			name:     "exceeds gain ceiling",
			totals:   types.WindowTotals{Gained: 195, Net: 195},
			delta:    10,
			wantKind: ptr(enum.DailyLimitKindGain),
		},
		{
			name:     "exceeds loss ceiling",
			totals:   types.WindowTotals{Lost: 95, Net: -95},
			delta:    -10,
			wantKind: ptr(enum.DailyLimitKindLoss),
		},
		{
			name:     "exceeds net ceiling despite gain headroom",
			totals:   types.WindowTotals{Gained: 150, Lost: 0, Net: 295},
			delta:    10,
			wantKind: ptr(enum.DailyLimitKindNet),
		},
		{
			name:     "exceeds negative net ceiling",
			totals:   types.WindowTotals{Lost: 50, Net: -295},
			delta:    -10,
			wantKind: ptr(enum.DailyLimitKindNet),
		},
		{
			name:   "negative delta never counts against gain",
			totals: types.WindowTotals{Gained: 200, Net: 200},
			delta:  -5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.totals.Check(tt.delta, testLimits())
			if tt.wantKind == nil {
				assert.Nil(t, err)
				return
			}

			require.NotNil(t, err)
			assert.Equal(t, *tt.wantKind, err.Kind)
			assert.NotEmpty(t, err.Error())
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
