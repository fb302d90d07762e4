package audit_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/studyhive/community-core/internal/audit"
	"github.com/studyhive/community-core/internal/database/types"
)

func ledger(deltas ...int64) []*types.ReputationEvent {
	events := make([]*types.ReputationEvent, len(deltas))
	for i, d := range deltas {
		events[i] = &types.ReputationEvent{Delta: d}
	}
	return events
}

func TestReplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		deltas         []int64
		wantSum        int64
		wantNegativeAt int
	}{
		{name: "empty ledger", deltas: nil, wantSum: 0, wantNegativeAt: -1},
		{name: "all positive", deltas: []int64{10, 1, 15}, wantSum: 26, wantNegativeAt: -1},
		{name: "clamped ledger stays at zero", deltas: []int64{10, -10, 0, 5}, wantSum: 5, wantNegativeAt: -1},
		{name: "dips negative mid history", deltas: []int64{5, -10, 20}, wantSum: 15, wantNegativeAt: 1},
		{name: "negative at first event", deltas: []int64{-2}, wantSum: -2, wantNegativeAt: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sum, negativeAt := audit.Replay(ledger(tt.deltas...))
			assert.Equal(t, tt.wantSum, sum)
			assert.Equal(t, tt.wantNegativeAt, negativeAt)
		})
	}
}

func TestPseudonymizeID(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	first := audit.PseudonymizeID(id, "salt", 1, 8)
	second := audit.PseudonymizeID(id, "salt", 1, 8)
	assert.Equal(t, first, second, "same input must produce the same pseudonym")
	assert.Len(t, first, 64)

	differentSalt := audit.PseudonymizeID(id, "other-salt", 1, 8)
	assert.NotEqual(t, first, differentSalt)

	differentID := audit.PseudonymizeID(uuid.New(), "salt", 1, 8)
	assert.NotEqual(t, first, differentID)
}
