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

// BadgeModel handles database operations for awarded badges. Badge
// definitions live in configuration, only grants are persisted.
type BadgeModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewBadge creates a BadgeModel.
func NewBadge(db *bun.DB, logger *zap.Logger) *BadgeModel {
	return &BadgeModel{
		db:     db,
		logger: logger.Named("db_badge"),
	}
}

// AwardedIDs returns the set of badge IDs the actor has already earned.
func (r *BadgeModel) AwardedIDs(ctx context.Context, actorID uuid.UUID) (map[string]struct{}, error) {
	var ids []string
	err := r.db.NewSelect().
		Model((*types.AwardedBadge)(nil)).
		Column("badge_id").
		Where("actor_id = ?", actorID).
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get awarded badge IDs: %w", err)
	}

	awarded := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		awarded[id] = struct{}{}
	}
	return awarded, nil
}

// Insert grants a badge. Returns false when the actor already holds it,
// which makes concurrent awards of the same badge converge on one grant.
func (r *BadgeModel) Insert(ctx context.Context, badge *types.AwardedBadge) (bool, error) {
	if badge.AwardedAt.IsZero() {
		badge.AwardedAt = time.Now()
	}

	res, err := r.db.NewInsert().
		Model(badge).
		On("CONFLICT (actor_id, badge_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to award badge: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

// GetActorBadges returns the actor's grants, newest first.
func (r *BadgeModel) GetActorBadges(ctx context.Context, actorID uuid.UUID) ([]*types.AwardedBadge, error) {
	var badges []*types.AwardedBadge
	err := r.db.NewSelect().
		Model(&badges).
		Where("actor_id = ?", actorID).
		Order("awarded_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get actor badges: %w", err)
	}
	return badges, nil
}
