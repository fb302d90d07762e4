package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/studyhive/community-core/internal/database/dbretry"
	"github.com/studyhive/community-core/internal/database/models"
	"github.com/studyhive/community-core/internal/database/types"
	"github.com/studyhive/community-core/internal/database/types/enum"
	"github.com/studyhive/community-core/internal/events"
	"github.com/studyhive/community-core/internal/setup/config"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ContentService handles content creation and best-answer marking.
type ContentService struct {
	db         *bun.DB
	contents   *models.ContentModel
	actors     *models.ActorModel
	reputation *ReputationService
	badges     *BadgeService
	points     *config.Reputation
	emitter    events.Emitter
	logger     *zap.Logger
}

// NewContent creates a content service.
func NewContent(
	db *bun.DB,
	contents *models.ContentModel,
	actors *models.ActorModel,
	reputation *ReputationService,
	badges *BadgeService,
	points *config.Reputation,
	emitter events.Emitter,
	logger *zap.Logger,
) *ContentService {
	return &ContentService{
		db:         db,
		contents:   contents,
		actors:     actors,
		reputation: reputation,
		badges:     badges,
		points:     points,
		emitter:    emitter,
		logger:     logger.Named("content_service"),
	}
}

// CreateQuestion records a new question and re-evaluates the author's
// count badges.
func (s *ContentService) CreateQuestion(
	ctx context.Context, authorID uuid.UUID, subjectCode string,
) (*types.ContentItem, []*types.AwardedBadge, error) {
	item := &types.ContentItem{
		AuthorID:    authorID,
		Kind:        enum.ContentKindQuestion,
		SubjectCode: subjectCode,
	}
	return s.create(ctx, item)
}

// CreateAnswer records a new answer under an existing question and
// re-evaluates the author's count badges.
func (s *ContentService) CreateAnswer(
	ctx context.Context, authorID, questionID uuid.UUID, subjectCode string,
) (*types.ContentItem, []*types.AwardedBadge, error) {
	question, err := s.contents.Get(ctx, questionID)
	if err != nil {
		return nil, nil, err
	}
	if question.Kind != enum.ContentKindQuestion {
		return nil, nil, fmt.Errorf("%w: parent %s is not a question", types.ErrContentNotFound, questionID)
	}

	if subjectCode == "" {
		subjectCode = question.SubjectCode
	}

	item := &types.ContentItem{
		AuthorID:    authorID,
		Kind:        enum.ContentKindAnswer,
		ParentID:    questionID,
		SubjectCode: subjectCode,
	}
	return s.create(ctx, item)
}

func (s *ContentService) create(
	ctx context.Context, item *types.ContentItem,
) (*types.ContentItem, []*types.AwardedBadge, error) {
	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		return s.actors.EnsureExists(ctx, tx, item.AuthorID)
	})
	if err != nil {
		return nil, nil, err
	}

	if err := s.contents.Create(ctx, item); err != nil {
		return nil, nil, err
	}

	badges, err := s.badges.Evaluate(ctx, item.AuthorID)
	if err != nil {
		s.logger.Warn("Badge evaluation failed after content creation",
			zap.Error(err),
			zap.String("authorID", item.AuthorID.String()))
		badges = nil
	}

	return item, badges, nil
}

// Get retrieves a content item.
func (s *ContentService) Get(ctx context.Context, contentID uuid.UUID) (*types.ContentItem, error) {
	return s.contents.Get(ctx, contentID)
}

// MarkBestAnswer marks answerID as the accepted answer of questionID. Only
// the question's author may mark, at most one answer per question holds
// the flag, and marking the current best again is a no-op. The answer
// author's reward and badge re-evaluation are best-effort side effects.
func (s *ContentService) MarkBestAnswer(
	ctx context.Context, markerID, questionID, answerID uuid.UUID,
) (*types.BestAnswerResult, error) {
	question, err := s.contents.Get(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.Kind != enum.ContentKindQuestion {
		return nil, fmt.Errorf("%w: %s is not a question", types.ErrContentNotFound, questionID)
	}
	if question.AuthorID != markerID {
		return nil, types.ErrNotContentAuthor
	}

	answer, err := s.contents.Get(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if answer.Kind != enum.ContentKindAnswer {
		return nil, types.ErrNotAnAnswer
	}
	if answer.ParentID != questionID {
		return nil, fmt.Errorf("%w: answer does not belong to question %s", types.ErrNotAnAnswer, questionID)
	}

	result := &types.BestAnswerResult{QuestionID: questionID, AnswerID: answerID}

	if answer.IsBest {
		return result, nil
	}

	err = dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		return s.contents.MarkBest(ctx, tx, questionID, answerID)
	})
	if err != nil {
		return nil, err
	}

	deltaResult, err := s.reputation.ApplyDelta(ctx, answer.AuthorID, s.points.BestAnswer,
		enum.ReputationActionBestAnswer, answerID, nil, false)
	switch {
	case err == nil:
		result.AuthorResult = deltaResult
	case errors.Is(err, types.ErrLedgerInconsistency):
		// Breaks the audit-sum invariant; escalate rather than drop.
		result.Failures = append(result.Failures, types.SideEffectFailure{
			Step: "best_answer_reward", ActorID: answer.AuthorID, Err: err,
		})
		s.emitter.Emit(ctx, &events.Event{
			Kind:      events.KindReconciliationNeeded,
			ActorID:   answer.AuthorID,
			ContentID: answerID,
			Detail:    "best_answer_reward",
			Payload:   map[string]any{"delta": s.points.BestAnswer, "error": err.Error()},
		})
		s.logger.Error("Ledger inconsistency during best answer reward",
			zap.Error(err),
			zap.String("actorID", answer.AuthorID.String()))
	default:
		result.Failures = append(result.Failures, types.SideEffectFailure{
			Step: "best_answer_reward", ActorID: answer.AuthorID, Err: err,
		})
		s.logger.Warn("Best answer reward dropped",
			zap.Error(err),
			zap.String("actorID", answer.AuthorID.String()))
	}

	badges, err := s.badges.Evaluate(ctx, answer.AuthorID)
	if err != nil {
		result.Failures = append(result.Failures, types.SideEffectFailure{
			Step: "badge_evaluation", ActorID: answer.AuthorID, Err: err,
		})
	} else {
		result.NewBadges = badges
	}

	return result, nil
}
