package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studyhive/community-core/internal/database/types/enum"
	"github.com/studyhive/community-core/internal/level"
	"github.com/studyhive/community-core/internal/setup/config"
)

var (
	ErrDeltaTooLarge = errors.New("reputation delta exceeds the single-event cap")

	// ErrLedgerInconsistency indicates the score write and the event append
	// fell out of sync. This fault breaks the audit-sum invariant and must
	// be escalated, never swallowed.
	ErrLedgerInconsistency = errors.New("ledger score and event log are inconsistent")
)

// DailyLimitError reports which rolling 24-hour ceiling a requested delta
// would exceed.
type DailyLimitError struct {
	Kind      enum.DailyLimitKind
	Current   int64 // Window total already accumulated
	Requested int64 // Delta that was being applied
	Ceiling   int64 // Configured limit for this sub-limit
}

func (e *DailyLimitError) Error() string {
	return fmt.Sprintf("daily %s limit exceeded: %d accumulated, %d requested, ceiling %d",
		e.Kind, e.Current, e.Requested, e.Ceiling)
}

// ReputationEvent is one append-only ledger entry. Delta is the value
// actually applied after the zero floor, not the requested delta, so the
// cumulative clamped sum of an actor's events always equals their score.
type ReputationEvent struct {
	ID        uuid.UUID             `bun:",pk,type:uuid"`
	ActorID   uuid.UUID             `bun:",notnull,type:uuid"`
	Delta     int64                 `bun:",notnull"`
	Action    enum.ReputationAction `bun:",notnull"`
	ContentID uuid.UUID             `bun:",type:uuid,nullzero"` // Related content, if any
	Details   map[string]any        `bun:"type:jsonb"`
	CreatedAt time.Time             `bun:",notnull"`
}

// WindowTotals are the rolling 24-hour sums used for daily-cap checks.
type WindowTotals struct {
	Gained int64 // Sum of positive deltas in the window
	Lost   int64 // Absolute sum of negative deltas in the window
	Net    int64 // Sum of all deltas in the window
}

// Check returns a DailyLimitError if applying delta on top of the window
// totals would push any configured ceiling past its limit, nil otherwise.
// Rejection happens at the point of excess, never before.
func (w *WindowTotals) Check(delta int64, limits *config.Reputation) *DailyLimitError {
	if delta > 0 && w.Gained+delta > limits.MaxDailyGain {
		return &DailyLimitError{
			Kind:      enum.DailyLimitKindGain,
			Current:   w.Gained,
			Requested: delta,
			Ceiling:   limits.MaxDailyGain,
		}
	}

	if delta < 0 && w.Lost-delta > limits.MaxDailyLoss {
		return &DailyLimitError{
			Kind:      enum.DailyLimitKindLoss,
			Current:   w.Lost,
			Requested: delta,
			Ceiling:   limits.MaxDailyLoss,
		}
	}

	if net := w.Net + delta; net > limits.MaxDailyNet || net < -limits.MaxDailyNet {
		return &DailyLimitError{
			Kind:      enum.DailyLimitKindNet,
			Current:   w.Net,
			Requested: delta,
			Ceiling:   limits.MaxDailyNet,
		}
	}

	return nil
}

// ApplyFloor computes the new score under the zero floor and the delta
// that must actually be recorded in the ledger to keep the audit-sum
// invariant true. The applied delta may be smaller in magnitude than the
// requested one when the floor clamps.
func ApplyFloor(oldScore, delta int64) (newScore, applied int64) {
	newScore = oldScore + delta
	if newScore < 0 {
		newScore = 0
	}
	return newScore, newScore - oldScore
}

// LevelUp describes an ordinal level transition caused by a delta.
type LevelUp struct {
	From        level.Definition
	FromOrdinal int
	To          level.Definition
	ToOrdinal   int
}

// DeltaResult is the outcome of one ledger application.
type DeltaResult struct {
	OldScore int64
	NewScore int64
	Applied  int64 // Recorded delta after the zero floor, may differ from the request
	Event    *ReputationEvent
	LevelUp  *LevelUp // Non-nil when the level ordinal increased
}

// DailyRemaining is the headroom left under each rolling sub-limit.
type DailyRemaining struct {
	Gain int64
	Loss int64
	Net  int64
}

// ReputationSummary is the caller-facing view of an actor's standing.
type ReputationSummary struct {
	ActorID        uuid.UUID
	Score          int64
	Level          level.Definition
	LevelOrdinal   int
	NextLevel      *level.Definition // Nil at the ceiling
	Progress       float64           // Fraction toward the next level
	ProgressKnown  bool              // False at the ceiling
	DailyRemaining DailyRemaining
}

// LeaderboardEntry is one row of the reputation leaderboard.
type LeaderboardEntry struct {
	ActorID uuid.UUID `bun:"actor_id"`
	Score   int64     `bun:"score"`
	Rank    int       `bun:"rank"`
}
