package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyhive/community-core/internal/database/service"
	"github.com/studyhive/community-core/internal/database/types"
	"github.com/studyhive/community-core/internal/database/types/enum"
	"github.com/studyhive/community-core/internal/events"
	"github.com/studyhive/community-core/internal/level"
	"github.com/uptrace/bun"
	"go.uber.org/zap/zaptest"
)

// stubTxRunner satisfies the transaction seam without a database. The
// stores behind the service are stubs that never touch the handle.
type stubTxRunner struct{}

func (stubTxRunner) RunInTx(ctx context.Context, _ *sql.TxOptions, fn func(context.Context, bun.Tx) error) error {
	return fn(ctx, bun.Tx{})
}

type stubActors struct {
	lockedScore int64 // score observed under the row lock
	scoreReads  int   // unlocked Score calls
	updated     []int64
}

func (s *stubActors) EnsureExists(context.Context, bun.IDB, uuid.UUID) error { return nil }

func (s *stubActors) ScoreForUpdate(context.Context, bun.Tx, uuid.UUID) (int64, error) {
	return s.lockedScore, nil
}

func (s *stubActors) UpdateScore(_ context.Context, _ bun.Tx, _ uuid.UUID, newScore int64) error {
	s.updated = append(s.updated, newScore)
	s.lockedScore = newScore
	return nil
}

func (s *stubActors) Score(context.Context, uuid.UUID) (int64, error) {
	s.scoreReads++
	return s.lockedScore, nil
}

func (s *stubActors) TopByScore(context.Context, int) ([]*types.LeaderboardEntry, error) {
	return nil, nil
}

type stubLedger struct {
	totals      types.WindowTotals
	windowCalls int
	appended    []*types.ReputationEvent
}

func (s *stubLedger) WindowTotals(context.Context, bun.IDB, uuid.UUID, time.Time) (*types.WindowTotals, error) {
	s.windowCalls++
	totals := s.totals
	return &totals, nil
}

func (s *stubLedger) AppendEvent(_ context.Context, _ bun.IDB, event *types.ReputationEvent) error {
	s.appended = append(s.appended, event)
	return nil
}

func (s *stubLedger) GetEvents(context.Context, uuid.UUID, int, int) ([]*types.ReputationEvent, error) {
	return nil, nil
}

func newReputationService(
	t *testing.T, actors *stubActors, ledger *stubLedger, emitter *recordingEmitter,
) *service.ReputationService {
	t.Helper()

	calculator := level.NewCalculator([]level.Definition{
		{Name: "Newcomer", MinScore: 0},
		{Name: "Contributor", MinScore: 50},
		{Name: "Regular", MinScore: 250},
	})
	return service.NewReputation(
		stubTxRunner{}, actors, ledger, calculator, testPoints(), emitter, zaptest.NewLogger(t))
}

// An admin adjustment targets a score, not a delta. The recorded delta
// must derive from the score read under the row lock, so the write lands
// exactly on the target even when a concurrent delta committed between
// the caller forming its intent and the lock being taken.
func TestAdjustReputation_TargetsLockedScore(t *testing.T) {
	t.Parallel()

	actors := &stubActors{lockedScore: 50}
	ledger := &stubLedger{}
	svc := newReputationService(t, actors, ledger, &recordingEmitter{})

	adminID := uuid.New()
	result, err := svc.AdjustReputation(context.Background(), uuid.New(), 100, adminID, "migration correction")
	require.NoError(t, err)

	assert.Equal(t, int64(50), result.OldScore)
	assert.Equal(t, int64(100), result.NewScore)
	assert.Equal(t, int64(50), result.Applied)
	assert.Equal(t, []int64{100}, actors.updated)
	assert.Zero(t, actors.scoreReads, "must not consult the unlocked score")

	require.Len(t, ledger.appended, 1)
	event := ledger.appended[0]
	assert.Equal(t, int64(50), event.Delta)
	assert.Equal(t, enum.ReputationActionAdminAdjustment, event.Action)
	assert.Equal(t, adminID.String(), event.Details["adjusted_by"])
	assert.Equal(t, "migration correction", event.Details["reason"])
}

// Adjustments bypass the rolling caps entirely; the window is never even
// summed on the administrative path.
func TestAdjustReputation_SkipsDailyCaps(t *testing.T) {
	t.Parallel()

	actors := &stubActors{lockedScore: 10}
	ledger := &stubLedger{totals: types.WindowTotals{Gained: 200, Net: 300}}
	svc := newReputationService(t, actors, ledger, &recordingEmitter{})

	result, err := svc.AdjustReputation(context.Background(), uuid.New(), 400, uuid.New(), "restore")
	require.NoError(t, err)

	assert.Equal(t, int64(400), result.NewScore)
	assert.Zero(t, ledger.windowCalls)
}

func TestApplyDelta_FloorClampsRecordedDelta(t *testing.T) {
	t.Parallel()

	t.Run("partial clamp", func(t *testing.T) {
		t.Parallel()

		actors := &stubActors{lockedScore: 5}
		ledger := &stubLedger{}
		svc := newReputationService(t, actors, ledger, &recordingEmitter{})

		result, err := svc.ApplyDelta(context.Background(), uuid.New(), -20,
			enum.ReputationActionDownvoteReceived, uuid.Nil, nil, false)
		require.NoError(t, err)

		assert.Equal(t, int64(0), result.NewScore)
		assert.Equal(t, int64(-5), result.Applied)
		require.Len(t, ledger.appended, 1)
		assert.Equal(t, int64(-5), ledger.appended[0].Delta)
	})

	t.Run("full clamp still ledgered", func(t *testing.T) {
		t.Parallel()

		actors := &stubActors{lockedScore: 0}
		ledger := &stubLedger{}
		svc := newReputationService(t, actors, ledger, &recordingEmitter{})

		result, err := svc.ApplyDelta(context.Background(), uuid.New(), -5,
			enum.ReputationActionDownvoteGiven, uuid.Nil, nil, false)
		require.NoError(t, err)

		assert.Equal(t, int64(0), result.Applied)
		assert.Empty(t, actors.updated, "unchanged score must not be rewritten")
		require.Len(t, ledger.appended, 1)
		assert.Equal(t, int64(0), ledger.appended[0].Delta)
	})
}

func TestApplyDelta_DailyLimitRejected(t *testing.T) {
	t.Parallel()

	actors := &stubActors{lockedScore: 40}
	ledger := &stubLedger{totals: types.WindowTotals{Gained: 195, Net: 195}}
	svc := newReputationService(t, actors, ledger, &recordingEmitter{})

	_, err := svc.ApplyDelta(context.Background(), uuid.New(), 10,
		enum.ReputationActionUpvoteReceived, uuid.Nil, nil, false)

	var limitErr *types.DailyLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, enum.DailyLimitKindGain, limitErr.Kind)
	assert.Empty(t, actors.updated)
	assert.Empty(t, ledger.appended)
}

func TestApplyDelta_EventCapRejected(t *testing.T) {
	t.Parallel()

	actors := &stubActors{}
	ledger := &stubLedger{}
	svc := newReputationService(t, actors, ledger, &recordingEmitter{})

	_, err := svc.ApplyDelta(context.Background(), uuid.New(), 101,
		enum.ReputationActionUpvoteReceived, uuid.Nil, nil, false)
	require.ErrorIs(t, err, types.ErrDeltaTooLarge)
	assert.Empty(t, ledger.appended)
}

// Crossing a level threshold appends the zero-point marker in the same
// transaction and publishes a level_up event afterwards.
func TestApplyDelta_LevelUpAppendsMarker(t *testing.T) {
	t.Parallel()

	actors := &stubActors{lockedScore: 45}
	ledger := &stubLedger{}
	emitter := &recordingEmitter{}
	svc := newReputationService(t, actors, ledger, emitter)

	result, err := svc.ApplyDelta(context.Background(), uuid.New(), 10,
		enum.ReputationActionUpvoteReceived, uuid.Nil, nil, false)
	require.NoError(t, err)

	require.NotNil(t, result.LevelUp)
	assert.Equal(t, "Newcomer", result.LevelUp.From.Name)
	assert.Equal(t, "Contributor", result.LevelUp.To.Name)

	require.Len(t, ledger.appended, 2)
	marker := ledger.appended[1]
	assert.Equal(t, int64(0), marker.Delta)
	assert.Equal(t, enum.ReputationActionLevelUp, marker.Action)

	assert.Len(t, emitter.byKind(events.KindLevelUp), 1)
}
