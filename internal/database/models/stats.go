package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/studyhive/community-core/internal/database/types"
	"github.com/studyhive/community-core/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// StatsModel computes actor statistics used by badge criteria. Counts are
// derived from content rows on demand rather than maintained as counters.
type StatsModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewStats creates a StatsModel.
func NewStats(db *bun.DB, logger *zap.Logger) *StatsModel {
	return &StatsModel{
		db:     db,
		logger: logger.Named("db_stats"),
	}
}

// GetActorStatistics gathers the actor's content counts and score.
func (r *StatsModel) GetActorStatistics(ctx context.Context, actorID uuid.UUID) (*types.ActorStatistics, error) {
	stats := &types.ActorStatistics{ActorID: actorID}

	err := r.db.NewSelect().
		Model((*types.ContentItem)(nil)).
		ColumnExpr("COUNT(*) FILTER (WHERE kind = ?) AS questions", enum.ContentKindQuestion).
		ColumnExpr("COUNT(*) FILTER (WHERE kind = ?) AS answers", enum.ContentKindAnswer).
		ColumnExpr("COUNT(*) FILTER (WHERE kind = ? AND is_best) AS best_answers", enum.ContentKindAnswer).
		Where("author_id = ?", actorID).
		Scan(ctx, &stats.QuestionCount, &stats.AnswerCount, &stats.BestAnswerCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count content: %w", err)
	}

	err = r.db.NewSelect().
		Model((*types.Actor)(nil)).
		Column("score").
		Where("id = ?", actorID).
		Scan(ctx, &stats.ReputationScore)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get actor score: %w", err)
	}

	var subjects []struct {
		SubjectCode string `bun:"subject_code"`
		Count       int64  `bun:"count"`
	}
	err = r.db.NewSelect().
		Model((*types.ContentItem)(nil)).
		Column("subject_code").
		ColumnExpr("COUNT(*) AS count").
		Where("author_id = ?", actorID).
		Where("kind = ?", enum.ContentKindAnswer).
		Where("is_best").
		Where("subject_code != ''").
		Group("subject_code").
		Scan(ctx, &subjects)
	if err != nil {
		return nil, fmt.Errorf("failed to count subject best answers: %w", err)
	}

	stats.SubjectBestAnswers = make(map[string]int64, len(subjects))
	for _, s := range subjects {
		stats.SubjectBestAnswers[s.SubjectCode] = s.Count
	}

	return stats, nil
}
