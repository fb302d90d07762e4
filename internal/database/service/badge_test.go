package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyhive/community-core/internal/database/service"
	"github.com/studyhive/community-core/internal/database/types"
	"github.com/studyhive/community-core/internal/events"
	"github.com/studyhive/community-core/internal/setup/config"
	"go.uber.org/zap/zaptest"
)

type stubGrants struct {
	awarded   map[string]struct{}
	inserted  []*types.AwardedBadge
	rejectAll bool // simulate a concurrent evaluation winning every insert
}

func (s *stubGrants) AwardedIDs(context.Context, uuid.UUID) (map[string]struct{}, error) {
	if s.awarded == nil {
		return map[string]struct{}{}, nil
	}
	return s.awarded, nil
}

func (s *stubGrants) Insert(_ context.Context, badge *types.AwardedBadge) (bool, error) {
	if s.rejectAll {
		return false, nil
	}
	s.inserted = append(s.inserted, badge)
	return true, nil
}

func (s *stubGrants) GetActorBadges(context.Context, uuid.UUID) ([]*types.AwardedBadge, error) {
	return nil, nil
}

type stubStats types.ActorStatistics

func (s *stubStats) GetActorStatistics(context.Context, uuid.UUID) (*types.ActorStatistics, error) {
	stats := types.ActorStatistics(*s)
	return &stats, nil
}

func testCatalog() []config.Badge {
	return []config.Badge{
		{ID: "prolific", Name: "Prolific", Rarity: "rare", Criterion: "total_posts", Threshold: 100},
		{ID: "problem_solver", Name: "Problem Solver", Rarity: "epic", Criterion: "best_answer_count", Threshold: 25},
		{ID: "respected", Name: "Respected", Rarity: "epic", Criterion: "reputation_score", Threshold: 1000},
		{ID: "community_pillar", Name: "Community Pillar", Rarity: "legendary", Criterion: "manual_only"},
	}
}

func newBadgeService(
	t *testing.T, grants *stubGrants, stats *stubStats, emitter *recordingEmitter,
) *service.BadgeService {
	t.Helper()

	svc, err := service.NewBadge(grants, stats, testCatalog(), emitter, zaptest.NewLogger(t))
	require.NoError(t, err)
	return svc
}

// Progress covers unsatisfied automatic badges only: awarded badges,
// manual-only badges, and badges whose criterion is already met are all
// excluded.
func TestBadgeProgress_OnlyUnsatisfiedBadges(t *testing.T) {
	t.Parallel()

	grants := &stubGrants{awarded: map[string]struct{}{"respected": {}}}
	stats := &stubStats{
		QuestionCount:   80,
		AnswerCount:     70, // total 150, prolific already satisfied
		BestAnswerCount: 10,
		ReputationScore: 2000,
	}
	svc := newBadgeService(t, grants, stats, &recordingEmitter{})

	progress, err := svc.Progress(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.NotContains(t, progress, "prolific", "satisfied badge has no progress entry")
	assert.NotContains(t, progress, "respected", "awarded badge has no progress entry")
	assert.NotContains(t, progress, "community_pillar", "manual badge has no progress entry")

	require.Contains(t, progress, "problem_solver")
	entry := progress["problem_solver"]
	assert.Equal(t, int64(10), entry.Current)
	assert.Equal(t, int64(25), entry.Required)
	assert.InDelta(t, 0.4, entry.Percentage, 1e-9)
}

func TestEvaluate_GrantsNewlySatisfied(t *testing.T) {
	t.Parallel()

	grants := &stubGrants{}
	stats := &stubStats{QuestionCount: 80, AnswerCount: 70, BestAnswerCount: 10}
	emitter := &recordingEmitter{}
	svc := newBadgeService(t, grants, stats, emitter)

	actorID := uuid.New()
	granted, err := svc.Evaluate(context.Background(), actorID)
	require.NoError(t, err)

	require.Len(t, granted, 1)
	assert.Equal(t, "prolific", granted[0].BadgeID)
	assert.Equal(t, actorID, granted[0].ActorID)
	assert.Len(t, emitter.byKind(events.KindBadgeAwarded), 1)
}

// When a concurrent evaluation wins the conditional insert, the badge is
// neither reported as granted nor announced again.
func TestEvaluate_ConcurrentWinnerNotDuplicated(t *testing.T) {
	t.Parallel()

	grants := &stubGrants{rejectAll: true}
	stats := &stubStats{QuestionCount: 80, AnswerCount: 70}
	emitter := &recordingEmitter{}
	svc := newBadgeService(t, grants, stats, emitter)

	granted, err := svc.Evaluate(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, granted)
	assert.Empty(t, emitter.events)
}
