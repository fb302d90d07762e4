package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studyhive/community-core/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ReputationModel handles database operations for the reputation ledger.
type ReputationModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewReputation creates a ReputationModel.
func NewReputation(db *bun.DB, logger *zap.Logger) *ReputationModel {
	return &ReputationModel{
		db:     db,
		logger: logger.Named("db_reputation"),
	}
}

// WindowTotals sums the actor's recorded deltas inside the rolling window.
// Runs on the supplied transaction so limit checks see the same snapshot
// as the pending write; a nil tx runs on the model's own connection.
func (r *ReputationModel) WindowTotals(
	ctx context.Context, tx bun.IDB, actorID uuid.UUID, since time.Time,
) (*types.WindowTotals, error) {
	if tx == nil {
		tx = r.db
	}

	var totals types.WindowTotals
	err := tx.NewSelect().
		Model((*types.ReputationEvent)(nil)).
		ColumnExpr("COALESCE(SUM(CASE WHEN delta > 0 THEN delta ELSE 0 END), 0) AS gained").
		ColumnExpr("COALESCE(SUM(CASE WHEN delta < 0 THEN -delta ELSE 0 END), 0) AS lost").
		ColumnExpr("COALESCE(SUM(delta), 0) AS net").
		Where("actor_id = ?", actorID).
		Where("created_at >= ?", since).
		Scan(ctx, &totals.Gained, &totals.Lost, &totals.Net)
	if err != nil {
		return nil, fmt.Errorf("failed to sum window totals: %w", err)
	}
	return &totals, nil
}

// AppendEvent writes a ledger entry inside the caller's transaction.
func (r *ReputationModel) AppendEvent(ctx context.Context, tx bun.IDB, event *types.ReputationEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	if _, err := tx.NewInsert().Model(event).Exec(ctx); err != nil {
		return fmt.Errorf("failed to append reputation event: %w", err)
	}
	return nil
}

// GetEvents returns the actor's ledger entries, newest first.
func (r *ReputationModel) GetEvents(
	ctx context.Context, actorID uuid.UUID, limit, offset int,
) ([]*types.ReputationEvent, error) {
	var events []*types.ReputationEvent
	err := r.db.NewSelect().
		Model(&events).
		Where("actor_id = ?", actorID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get reputation events: %w", err)
	}
	return events, nil
}

// EventsAsc streams the actor's full ledger in commit order for replay.
func (r *ReputationModel) EventsAsc(ctx context.Context, actorID uuid.UUID) ([]*types.ReputationEvent, error) {
	var events []*types.ReputationEvent
	err := r.db.NewSelect().
		Model(&events).
		Where("actor_id = ?", actorID).
		Order("created_at ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger for replay: %w", err)
	}
	return events, nil
}
