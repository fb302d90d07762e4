package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/studyhive/community-core/internal/database/types"
	"github.com/studyhive/community-core/internal/events"
	"github.com/studyhive/community-core/internal/setup/config"
	"go.uber.org/zap"
)

// The badge service depends on narrow views of the storage models so the
// eligibility logic can be exercised without a database.
type (
	grantStore interface {
		AwardedIDs(ctx context.Context, actorID uuid.UUID) (map[string]struct{}, error)
		Insert(ctx context.Context, badge *types.AwardedBadge) (bool, error)
		GetActorBadges(ctx context.Context, actorID uuid.UUID) ([]*types.AwardedBadge, error)
	}

	statsReader interface {
		GetActorStatistics(ctx context.Context, actorID uuid.UUID) (*types.ActorStatistics, error)
	}
)

// BadgeService evaluates badge eligibility and records grants. The badge
// catalog comes from configuration and is fixed for the process lifetime.
type BadgeService struct {
	badges  grantStore
	stats   statsReader
	catalog []*types.BadgeDefinition
	byID    map[string]*types.BadgeDefinition
	emitter events.Emitter
	logger  *zap.Logger
}

// NewBadge creates a badge service, validating every catalog entry.
func NewBadge(
	badges grantStore,
	stats statsReader,
	entries []config.Badge,
	emitter events.Emitter,
	logger *zap.Logger,
) (*BadgeService, error) {
	catalog := make([]*types.BadgeDefinition, 0, len(entries))
	byID := make(map[string]*types.BadgeDefinition, len(entries))

	for _, e := range entries {
		def, err := types.NewBadgeDefinition(e.ID, e.Name, e.Description, e.Rarity, e.Criterion, e.Threshold, e.Subject)
		if err != nil {
			return nil, err
		}
		if _, ok := byID[def.ID]; ok {
			return nil, fmt.Errorf("duplicate badge ID %q in catalog", def.ID)
		}
		catalog = append(catalog, def)
		byID[def.ID] = def
	}

	return &BadgeService{
		badges:  badges,
		stats:   stats,
		catalog: catalog,
		byID:    byID,
		emitter: emitter,
		logger:  logger.Named("badge_service"),
	}, nil
}

// Catalog returns every badge definition.
func (s *BadgeService) Catalog() []*types.BadgeDefinition {
	return s.catalog
}

// Evaluate checks the actor against every automatic badge and grants the
// ones newly satisfied. Concurrent evaluations of the same actor converge
// because the grant insert is conditional on the unique pair.
func (s *BadgeService) Evaluate(ctx context.Context, actorID uuid.UUID) ([]*types.AwardedBadge, error) {
	stats, err := s.stats.GetActorStatistics(ctx, actorID)
	if err != nil {
		return nil, err
	}

	awarded, err := s.badges.AwardedIDs(ctx, actorID)
	if err != nil {
		return nil, err
	}

	var granted []*types.AwardedBadge
	for _, def := range s.catalog {
		if def.ManualOnly() {
			continue
		}
		if _, ok := awarded[def.ID]; ok {
			continue
		}
		if !def.Criterion.Satisfied(stats) {
			continue
		}

		badge := &types.AwardedBadge{ActorID: actorID, BadgeID: def.ID}
		inserted, err := s.badges.Insert(ctx, badge)
		if err != nil {
			return granted, err
		}
		if !inserted {
			// Another evaluation granted it first.
			continue
		}

		granted = append(granted, badge)
		s.emitter.Emit(ctx, &events.Event{
			Kind:    events.KindBadgeAwarded,
			ActorID: actorID,
			BadgeID: def.ID,
		})
		s.logger.Info("Badge awarded",
			zap.String("actorID", actorID.String()),
			zap.String("badgeID", def.ID),
			zap.String("rarity", def.Rarity.String()))
	}

	return granted, nil
}

// AwardManual grants a badge by hand, recording who granted it and why.
// Works for any badge in the catalog, including manual-only ones.
func (s *BadgeService) AwardManual(
	ctx context.Context, actorID uuid.UUID, badgeID string, awardedBy uuid.UUID, reason string,
) (*types.AwardedBadge, error) {
	def, ok := s.byID[badgeID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrBadgeNotFound, badgeID)
	}

	badge := &types.AwardedBadge{
		ActorID:   actorID,
		BadgeID:   def.ID,
		AwardedBy: awardedBy,
		Reason:    reason,
	}
	inserted, err := s.badges.Insert(ctx, badge)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, fmt.Errorf("%w: %s", types.ErrBadgeAlreadyEarned, badgeID)
	}

	s.emitter.Emit(ctx, &events.Event{
		Kind:    events.KindBadgeAwarded,
		ActorID: actorID,
		BadgeID: def.ID,
		Detail:  reason,
	})

	return badge, nil
}

// Progress reports how close the actor is to each unsatisfied automatic
// badge, keyed by badge ID. Badges already awarded and badges whose
// criterion is met are excluded; a satisfied-but-unawarded pair converges
// on the next evaluation, not here.
func (s *BadgeService) Progress(ctx context.Context, actorID uuid.UUID) (map[string]types.BadgeProgress, error) {
	stats, err := s.stats.GetActorStatistics(ctx, actorID)
	if err != nil {
		return nil, err
	}

	awarded, err := s.badges.AwardedIDs(ctx, actorID)
	if err != nil {
		return nil, err
	}

	progress := make(map[string]types.BadgeProgress)
	for _, def := range s.catalog {
		if def.ManualOnly() {
			continue
		}
		if _, ok := awarded[def.ID]; ok {
			continue
		}
		if def.Criterion.Satisfied(stats) {
			continue
		}

		current := def.Criterion.Current(stats)
		required := def.Criterion.Threshold
		var pct float64
		if required > 0 {
			pct = float64(current) / float64(required)
		}
		progress[def.ID] = types.BadgeProgress{
			Current:    current,
			Required:   required,
			Percentage: pct,
		}
	}

	return progress, nil
}

// ActorBadges returns the actor's grants, newest first.
func (s *BadgeService) ActorBadges(ctx context.Context, actorID uuid.UUID) ([]*types.AwardedBadge, error) {
	return s.badges.GetActorBadges(ctx, actorID)
}
