package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studyhive/community-core/internal/database/models"
	"github.com/studyhive/community-core/internal/database/types"
	"github.com/studyhive/community-core/internal/database/types/enum"
	"github.com/studyhive/community-core/internal/events"
	"github.com/studyhive/community-core/internal/setup/config"
	"go.uber.org/zap"
)

// InteractionService handles bookmarks and reports, the non-vote
// interaction kinds.
type InteractionService struct {
	contents     *models.ContentModel
	interactions *models.InteractionModel
	limits       *config.Reputation
	emitter      events.Emitter
	logger       *zap.Logger
}

// NewInteraction creates an interaction service.
func NewInteraction(
	contents *models.ContentModel,
	interactions *models.InteractionModel,
	limits *config.Reputation,
	emitter events.Emitter,
	logger *zap.Logger,
) *InteractionService {
	return &InteractionService{
		contents:     contents,
		interactions: interactions,
		limits:       limits,
		emitter:      emitter,
		logger:       logger.Named("interaction_service"),
	}
}

// Bookmark saves content to the actor's bookmark list.
func (s *InteractionService) Bookmark(ctx context.Context, actorID, contentID uuid.UUID) error {
	content, err := s.contents.Get(ctx, contentID)
	if err != nil {
		return err
	}

	return s.interactions.CreateUnique(ctx, &types.Interaction{
		ActorID:     actorID,
		ContentID:   contentID,
		ContentKind: content.Kind,
		Kind:        enum.InteractionKindBookmark,
	})
}

// RemoveBookmark deletes the actor's bookmark. Removing a bookmark that
// does not exist is a no-op.
func (s *InteractionService) RemoveBookmark(ctx context.Context, actorID, contentID uuid.UUID) error {
	_, err := s.interactions.Delete(ctx, actorID, contentID, enum.InteractionKindBookmark)
	return err
}

// SubmitReport flags content for the moderation pipeline. An actor may
// report a given content item once, and at most the configured number of
// times per rolling day overall.
func (s *InteractionService) SubmitReport(
	ctx context.Context, actorID, contentID uuid.UUID, reason enum.ReportReason, details string,
) (*types.Interaction, error) {
	if !reason.IsAReportReason() {
		return nil, fmt.Errorf("%w: %d", types.ErrInvalidReportReason, reason)
	}

	content, err := s.contents.Get(ctx, contentID)
	if err != nil {
		return nil, err
	}

	count, err := s.interactions.CountReportsSince(ctx, actorID, time.Now().Add(-limitWindow))
	if err != nil {
		return nil, err
	}
	if count >= s.limits.MaxDailyReports {
		return nil, fmt.Errorf("%w: %d submitted, cap %d",
			types.ErrReportLimitExceeded, count, s.limits.MaxDailyReports)
	}

	interaction := &types.Interaction{
		ActorID:       actorID,
		ContentID:     contentID,
		ContentKind:   content.Kind,
		Kind:          enum.InteractionKindReport,
		ReportReason:  &reason,
		ReportDetails: details,
	}
	if err := s.interactions.CreateUnique(ctx, interaction); err != nil {
		return nil, err
	}

	s.emitter.Emit(ctx, &events.Event{
		Kind:      events.KindReportSubmitted,
		ActorID:   actorID,
		ContentID: contentID,
		Detail:    reason.String(),
	})
	s.logger.Info("Report submitted",
		zap.String("actorID", actorID.String()),
		zap.String("contentID", contentID.String()),
		zap.String("reason", reason.String()))

	return interaction, nil
}

// Bookmarks returns the actor's bookmarks, newest first.
func (s *InteractionService) Bookmarks(ctx context.Context, actorID uuid.UUID, limit int) ([]*types.Interaction, error) {
	kind := enum.InteractionKindBookmark
	return s.interactions.GetActorInteractions(ctx, actorID, &kind, limit)
}

// History returns the actor's interactions of every kind, newest first.
func (s *InteractionService) History(ctx context.Context, actorID uuid.UUID, limit int) ([]*types.Interaction, error) {
	return s.interactions.GetActorInteractions(ctx, actorID, nil, limit)
}
