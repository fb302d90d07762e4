package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studyhive/community-core/internal/database/types"
	"github.com/studyhive/community-core/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// votePairConflict matches the partial unique index guarding one active
// polarity vote per (actor, content) pair.
const votePairConflict = "CONFLICT (actor_id, content_id) WHERE kind IN (0, 1) DO NOTHING"

// uniqueKindConflict matches the partial unique index guarding duplicate
// bookmarks and reports.
const uniqueKindConflict = "CONFLICT (actor_id, content_id, kind) WHERE kind NOT IN (0, 1) DO NOTHING"

// InteractionModel handles database operations for votes, bookmarks, and
// reports. All mutations are conditional writes: the caller learns from
// the affected-row count whether a concurrent writer got there first.
type InteractionModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewInteraction creates an InteractionModel.
func NewInteraction(db *bun.DB, logger *zap.Logger) *InteractionModel {
	return &InteractionModel{
		db:     db,
		logger: logger.Named("db_interaction"),
	}
}

// GetActiveVote retrieves the pair's active polarity interaction, or nil
// when none exists.
func (r *InteractionModel) GetActiveVote(
	ctx context.Context, actorID, contentID uuid.UUID,
) (*types.Interaction, error) {
	var interaction types.Interaction
	err := r.db.NewSelect().
		Model(&interaction).
		Where("actor_id = ?", actorID).
		Where("content_id = ?", contentID).
		Where("kind IN (?)", bun.In([]enum.InteractionKind{
			enum.InteractionKindUpvote, enum.InteractionKindDownvote,
		})).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active vote: %w", err)
	}
	return &interaction, nil
}

// CreateVote inserts a new polarity interaction. Returns ErrVoteConflict
// when a concurrent writer already holds the pair's vote slot.
func (r *InteractionModel) CreateVote(ctx context.Context, interaction *types.Interaction) error {
	now := time.Now()
	if interaction.ID == uuid.Nil {
		interaction.ID = uuid.New()
	}
	interaction.CreatedAt = now
	interaction.UpdatedAt = now

	res, err := r.db.NewInsert().
		Model(interaction).
		On(votePairConflict).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create vote: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return types.ErrVoteConflict
	}

	return nil
}

// DeleteVote removes the pair's vote only if it still has the expected
// polarity. Returns ErrVoteConflict when the observed state is gone.
func (r *InteractionModel) DeleteVote(
	ctx context.Context, actorID, contentID uuid.UUID, polarity enum.InteractionKind,
) error {
	res, err := r.db.NewDelete().
		Model((*types.Interaction)(nil)).
		Where("actor_id = ?", actorID).
		Where("content_id = ?", contentID).
		Where("kind = ?", polarity).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return types.ErrVoteConflict
	}

	return nil
}

// FlipVote changes the pair's vote polarity in place, conditioned on the
// previously observed polarity still being current.
func (r *InteractionModel) FlipVote(
	ctx context.Context, actorID, contentID uuid.UUID, from, to enum.InteractionKind,
) error {
	res, err := r.db.NewUpdate().
		Model((*types.Interaction)(nil)).
		Set("kind = ?", to).
		Set("updated_at = ?", time.Now()).
		Where("actor_id = ?", actorID).
		Where("content_id = ?", contentID).
		Where("kind = ?", from).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to flip vote: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return types.ErrVoteConflict
	}

	return nil
}

// CreateUnique inserts a non-polarity interaction (bookmark or report).
// Returns ErrInteractionAlreadyExists when the pair already holds one of
// the same kind.
func (r *InteractionModel) CreateUnique(ctx context.Context, interaction *types.Interaction) error {
	now := time.Now()
	if interaction.ID == uuid.Nil {
		interaction.ID = uuid.New()
	}
	interaction.CreatedAt = now
	interaction.UpdatedAt = now

	res, err := r.db.NewInsert().
		Model(interaction).
		On(uniqueKindConflict).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create interaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return types.ErrInteractionAlreadyExists
	}

	return nil
}

// Delete removes a non-polarity interaction. Returns the number of rows
// removed so the caller can treat an already-gone row as a no-op.
func (r *InteractionModel) Delete(
	ctx context.Context, actorID, contentID uuid.UUID, kind enum.InteractionKind,
) (int64, error) {
	res, err := r.db.NewDelete().
		Model((*types.Interaction)(nil)).
		Where("actor_id = ?", actorID).
		Where("content_id = ?", contentID).
		Where("kind = ?", kind).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete interaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}

// CountReportsSince counts the actor's reports in the rolling window.
func (r *InteractionModel) CountReportsSince(
	ctx context.Context, actorID uuid.UUID, since time.Time,
) (int, error) {
	count, err := r.db.NewSelect().
		Model((*types.Interaction)(nil)).
		Where("actor_id = ?", actorID).
		Where("kind = ?", enum.InteractionKindReport).
		Where("created_at >= ?", since).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}

// GetActorInteractions returns the actor's interactions, newest first,
// optionally filtered by kind.
func (r *InteractionModel) GetActorInteractions(
	ctx context.Context, actorID uuid.UUID, kind *enum.InteractionKind, limit int,
) ([]*types.Interaction, error) {
	var interactions []*types.Interaction
	q := r.db.NewSelect().
		Model(&interactions).
		Where("actor_id = ?", actorID).
		Order("created_at DESC").
		Limit(limit)
	if kind != nil {
		q = q.Where("kind = ?", *kind)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to get interactions: %w", err)
	}
	return interactions, nil
}
