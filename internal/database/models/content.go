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

// ContentModel handles database operations for questions and answers.
type ContentModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewContent creates a ContentModel.
func NewContent(db *bun.DB, logger *zap.Logger) *ContentModel {
	return &ContentModel{
		db:     db,
		logger: logger.Named("db_content"),
	}
}

// Get retrieves a content item by ID.
func (r *ContentModel) Get(ctx context.Context, contentID uuid.UUID) (*types.ContentItem, error) {
	var item types.ContentItem
	err := r.db.NewSelect().
		Model(&item).
		Where("id = ?", contentID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to get content: %w", err)
	}
	return &item, nil
}

// Create inserts a content item. Content rows are owned by the posting
// collaborator; the core only needs this for that collaborator's writes
// and for tests.
func (r *ContentModel) Create(ctx context.Context, item *types.ContentItem) error {
	now := time.Now()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(item).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create content: %w", err)
	}
	return nil
}

// IncrementTally applies a signed delta to the content's vote tally as a
// single atomic update and returns the new tally. Never read-modify-write:
// concurrent votes must not lose increments.
func (r *ContentModel) IncrementTally(ctx context.Context, contentID uuid.UUID, delta int64) (int64, error) {
	var tally int64
	err := r.db.NewUpdate().
		Model((*types.ContentItem)(nil)).
		Set("vote_tally = vote_tally + ?", delta).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", contentID).
		Returning("vote_tally").
		Scan(ctx, &tally)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, types.ErrContentNotFound
		}
		return 0, fmt.Errorf("failed to increment tally: %w", err)
	}
	return tally, nil
}

// MarkBest flags one answer as best inside tx, clearing the flag from any
// sibling answer of the same question first.
func (r *ContentModel) MarkBest(ctx context.Context, tx bun.Tx, questionID, answerID uuid.UUID) error {
	_, err := tx.NewUpdate().
		Model((*types.ContentItem)(nil)).
		Set("is_best = false").
		Set("updated_at = ?", time.Now()).
		Where("parent_id = ?", questionID).
		Where("is_best = true").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear best answers: %w", err)
	}

	res, err := tx.NewUpdate().
		Model((*types.ContentItem)(nil)).
		Set("is_best = true").
		Set("updated_at = ?", time.Now()).
		Where("id = ?", answerID).
		Where("kind = ?", enum.ContentKindAnswer).
		Where("parent_id = ?", questionID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark best answer: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return types.ErrContentNotFound
	}

	return nil
}
