package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studyhive/community-core/internal/database/dbretry"
	"github.com/studyhive/community-core/internal/database/types"
	"github.com/studyhive/community-core/internal/database/types/enum"
	"github.com/studyhive/community-core/internal/events"
	"github.com/studyhive/community-core/internal/level"
	"github.com/studyhive/community-core/internal/setup/config"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// limitWindow is the rolling window over which daily caps are summed.
const limitWindow = 24 * time.Hour

// The ledger service depends on narrow views of the storage models so its
// transactional decisions can be exercised without a database.
type (
	scoreStore interface {
		EnsureExists(ctx context.Context, tx bun.IDB, actorID uuid.UUID) error
		ScoreForUpdate(ctx context.Context, tx bun.Tx, actorID uuid.UUID) (int64, error)
		UpdateScore(ctx context.Context, tx bun.Tx, actorID uuid.UUID, newScore int64) error
		Score(ctx context.Context, actorID uuid.UUID) (int64, error)
		TopByScore(ctx context.Context, limit int) ([]*types.LeaderboardEntry, error)
	}

	ledgerStore interface {
		WindowTotals(ctx context.Context, tx bun.IDB, actorID uuid.UUID, since time.Time) (*types.WindowTotals, error)
		AppendEvent(ctx context.Context, tx bun.IDB, event *types.ReputationEvent) error
		GetEvents(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]*types.ReputationEvent, error)
	}
)

// ReputationService owns the reputation ledger. Every score change in the
// system flows through one locked transaction so the limits, the zero
// floor, and the event append observe a consistent state.
type ReputationService struct {
	db         dbretry.TxRunner
	actors     scoreStore
	reputation ledgerStore
	levels     *level.Calculator
	limits     *config.Reputation
	emitter    events.Emitter
	logger     *zap.Logger
}

// NewReputation creates a reputation service.
func NewReputation(
	db dbretry.TxRunner,
	actors scoreStore,
	reputation ledgerStore,
	levels *level.Calculator,
	limits *config.Reputation,
	emitter events.Emitter,
	logger *zap.Logger,
) *ReputationService {
	return &ReputationService{
		db:         db,
		actors:     actors,
		reputation: reputation,
		levels:     levels,
		limits:     limits,
		emitter:    emitter,
		logger:     logger.Named("reputation_service"),
	}
}

// ApplyDelta applies one reputation change to an actor. The actor's score
// row is locked for the duration so window sums, the floor, and the score
// write observe a consistent state. skipLimits bypasses both the daily
// caps and the single-event magnitude cap and exists for the
// administrative path only.
//
// The returned result carries the delta actually recorded, which is
// smaller in magnitude than the request when the zero floor clamps.
func (s *ReputationService) ApplyDelta(
	ctx context.Context,
	actorID uuid.UUID,
	delta int64,
	action enum.ReputationAction,
	contentID uuid.UUID,
	details map[string]any,
	skipLimits bool,
) (*types.DeltaResult, error) {
	if !skipLimits && (delta > s.limits.MaxEventDelta || delta < -s.limits.MaxEventDelta) {
		return nil, fmt.Errorf("%w: delta %d, cap %d", types.ErrDeltaTooLarge, delta, s.limits.MaxEventDelta)
	}

	return s.apply(ctx, actorID, func(int64) int64 { return delta }, action, contentID, details, skipLimits)
}

// AdjustReputation sets an actor's score to a target value outside the
// daily caps, recording the difference as one attributed ledger event.
// The difference is computed against the score read under the row lock,
// so the write lands exactly on the target even when a concurrent delta
// committed just before it.
func (s *ReputationService) AdjustReputation(
	ctx context.Context, actorID uuid.UUID, newScore int64, adjustedBy uuid.UUID, reason string,
) (*types.DeltaResult, error) {
	return s.apply(ctx, actorID,
		func(current int64) int64 { return newScore - current },
		enum.ReputationActionAdminAdjustment, uuid.Nil,
		map[string]any{
			"adjusted_by": adjustedBy.String(),
			"reason":      reason,
		}, true)
}

// apply runs one locked ledger application. deltaFor receives the score
// read under the row lock and returns the delta to apply against it.
func (s *ReputationService) apply(
	ctx context.Context,
	actorID uuid.UUID,
	deltaFor func(oldScore int64) int64,
	action enum.ReputationAction,
	contentID uuid.UUID,
	details map[string]any,
	skipLimits bool,
) (*types.DeltaResult, error) {
	var result types.DeltaResult

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		if err := s.actors.EnsureExists(ctx, tx, actorID); err != nil {
			return err
		}

		oldScore, err := s.actors.ScoreForUpdate(ctx, tx, actorID)
		if err != nil {
			return err
		}
		delta := deltaFor(oldScore)

		if !skipLimits {
			totals, err := s.reputation.WindowTotals(ctx, tx, actorID, time.Now().Add(-limitWindow))
			if err != nil {
				return err
			}
			if limitErr := totals.Check(delta, s.limits); limitErr != nil {
				return limitErr
			}
		}

		newScore, applied := types.ApplyFloor(oldScore, delta)
		if newScore != oldScore {
			if err := s.actors.UpdateScore(ctx, tx, actorID, newScore); err != nil {
				return err
			}
		}

		event := &types.ReputationEvent{
			ActorID:   actorID,
			Delta:     applied,
			Action:    action,
			ContentID: contentID,
			Details:   details,
		}
		if err := s.reputation.AppendEvent(ctx, tx, event); err != nil {
			return err
		}

		result = types.DeltaResult{
			OldScore: oldScore,
			NewScore: newScore,
			Applied:  applied,
			Event:    event,
		}

		oldLevel, oldOrdinal := s.levels.ForScore(oldScore)
		newLevel, newOrdinal := s.levels.ForScore(newScore)
		if newOrdinal > oldOrdinal {
			result.LevelUp = &types.LevelUp{
				From:        oldLevel,
				FromOrdinal: oldOrdinal,
				To:          newLevel,
				ToOrdinal:   newOrdinal,
			}

			// Zero-point marker so level transitions are visible in the
			// ledger without affecting the audit sum.
			marker := &types.ReputationEvent{
				ActorID: actorID,
				Delta:   0,
				Action:  enum.ReputationActionLevelUp,
				Details: map[string]any{
					"from": oldLevel.Name,
					"to":   newLevel.Name,
				},
			}
			if err := s.reputation.AppendEvent(ctx, tx, marker); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.LevelUp != nil {
		s.emitter.Emit(ctx, &events.Event{
			Kind:    events.KindLevelUp,
			ActorID: actorID,
			Payload: map[string]any{
				"from":  result.LevelUp.From.Name,
				"to":    result.LevelUp.To.Name,
				"score": result.NewScore,
			},
		})
		s.logger.Info("Actor leveled up",
			zap.String("actorID", actorID.String()),
			zap.String("from", result.LevelUp.From.Name),
			zap.String("to", result.LevelUp.To.Name),
			zap.Int64("score", result.NewScore))
	}

	return &result, nil
}

// GetReputation returns the actor's score, level standing, and remaining
// daily headroom. Unknown actors read as score zero at the lowest level.
func (s *ReputationService) GetReputation(ctx context.Context, actorID uuid.UUID) (*types.ReputationSummary, error) {
	score, err := s.actors.Score(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	def, ordinal := s.levels.ForScore(score)
	progress, known := s.levels.Progress(score)

	totals, err := s.reputation.WindowTotals(ctx, nil, actorID, time.Now().Add(-limitWindow))
	if err != nil {
		return nil, err
	}

	net := totals.Net
	if net < 0 {
		net = -net
	}

	return &types.ReputationSummary{
		ActorID:       actorID,
		Score:         score,
		Level:         def,
		LevelOrdinal:  ordinal,
		NextLevel:     s.levels.Next(ordinal),
		Progress:      progress,
		ProgressKnown: known,
		DailyRemaining: types.DailyRemaining{
			Gain: max(0, s.limits.MaxDailyGain-totals.Gained),
			Loss: max(0, s.limits.MaxDailyLoss-totals.Lost),
			Net:  max(0, s.limits.MaxDailyNet-net),
		},
	}, nil
}

// GetHistory returns the actor's ledger entries, newest first.
func (s *ReputationService) GetHistory(
	ctx context.Context, actorID uuid.UUID, limit, offset int,
) ([]*types.ReputationEvent, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.ReputationEvent, error) {
		return s.reputation.GetEvents(ctx, actorID, limit, offset)
	})
}

// GetLeaderboard returns the top actors by score with dense ranks.
func (s *ReputationService) GetLeaderboard(ctx context.Context, limit int) ([]*types.LeaderboardEntry, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.LeaderboardEntry, error) {
		return s.actors.TopByScore(ctx, limit)
	})
}
