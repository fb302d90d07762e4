package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studyhive/community-core/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ActorModel handles database operations for actors and their scores.
type ActorModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewActor creates an ActorModel.
func NewActor(db *bun.DB, logger *zap.Logger) *ActorModel {
	return &ActorModel{
		db:     db,
		logger: logger.Named("db_actor"),
	}
}

// Get retrieves an actor by ID.
func (r *ActorModel) Get(ctx context.Context, actorID uuid.UUID) (*types.Actor, error) {
	var actor types.Actor
	err := r.db.NewSelect().
		Model(&actor).
		Where("id = ?", actorID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrActorNotFound
		}
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}
	return &actor, nil
}

// Score returns the actor's current score, or zero for actors that have
// not been touched by a reputation event yet.
func (r *ActorModel) Score(ctx context.Context, actorID uuid.UUID) (int64, error) {
	actor, err := r.Get(ctx, actorID)
	if err != nil {
		if errors.Is(err, types.ErrActorNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return actor.Score, nil
}

// EnsureExists creates the actor row with a zero score if it is missing.
// Safe under concurrent creation: the conflicting insert is a no-op.
func (r *ActorModel) EnsureExists(ctx context.Context, tx bun.IDB, actorID uuid.UUID) error {
	now := time.Now()
	_, err := tx.NewInsert().
		Model(&types.Actor{
			ID:        actorID,
			Score:     0,
			CreatedAt: now,
			UpdatedAt: now,
		}).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to ensure actor exists: %w", err)
	}
	return nil
}

// ScoreForUpdate reads the actor's score inside tx with a row lock,
// serializing concurrent ledger applications for the same actor.
func (r *ActorModel) ScoreForUpdate(ctx context.Context, tx bun.Tx, actorID uuid.UUID) (int64, error) {
	var actor types.Actor
	err := tx.NewSelect().
		Model(&actor).
		Column("score").
		Where("id = ?", actorID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, types.ErrActorNotFound
		}
		return 0, fmt.Errorf("failed to lock actor score: %w", err)
	}
	return actor.Score, nil
}

// UpdateScore writes the actor's new score inside tx. A zero-row update
// means the locked row vanished mid-transaction, which breaks the ledger
// invariant and is surfaced as such.
func (r *ActorModel) UpdateScore(ctx context.Context, tx bun.Tx, actorID uuid.UUID, newScore int64) error {
	res, err := tx.NewUpdate().
		Model((*types.Actor)(nil)).
		Set("score = ?", newScore).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", actorID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update actor score: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return types.ErrLedgerInconsistency
	}

	return nil
}

// TopByScore returns the highest-scored actors with dense ranks.
func (r *ActorModel) TopByScore(ctx context.Context, limit int) ([]*types.LeaderboardEntry, error) {
	var entries []*types.LeaderboardEntry
	err := r.db.NewSelect().
		Model((*types.Actor)(nil)).
		ColumnExpr("id AS actor_id, score, DENSE_RANK() OVER (ORDER BY score DESC) AS rank").
		OrderExpr("score DESC").
		Limit(limit).
		Scan(ctx, &entries)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	return entries, nil
}

// IDs returns every actor ID. Used by the offline ledger audit.
func (r *ActorModel) IDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.NewSelect().
		Model((*types.Actor)(nil)).
		Column("id").
		Order("created_at ASC").
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list actor ids: %w", err)
	}
	return ids, nil
}
