package database

import (
	"github.com/studyhive/community-core/internal/database/service"
	"github.com/studyhive/community-core/internal/events"
	"github.com/studyhive/community-core/internal/level"
	"github.com/studyhive/community-core/internal/setup/config"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Service provides access to all business logic services.
type Service struct {
	reputation  *service.ReputationService
	vote        *service.VoteService
	badge       *service.BadgeService
	content     *service.ContentService
	interaction *service.InteractionService
}

// NewService creates a new service instance with all services. Returns an
// error when the configured level table or badge catalog is invalid.
func NewService(
	db *bun.DB,
	repository *Repository,
	cfg *config.Config,
	emitter events.Emitter,
	logger *zap.Logger,
) (*Service, error) {
	levels := make([]level.Definition, len(cfg.Levels))
	for i, l := range cfg.Levels {
		levels[i] = level.Definition{
			Name:       l.Name,
			MinScore:   l.MinScore,
			Privileges: l.Privileges,
		}
	}
	calculator := level.NewCalculator(levels)

	reputation := service.NewReputation(
		db, repository.Actor(), repository.Reputation(),
		calculator, &cfg.Reputation, emitter, logger)

	badge, err := service.NewBadge(
		repository.Badge(), repository.Stats(), cfg.Badges, emitter, logger)
	if err != nil {
		return nil, err
	}

	vote := service.NewVote(
		repository.Content(), repository.Interaction(), repository.Actor(),
		reputation, badge, &cfg.Reputation, emitter, logger)

	content := service.NewContent(
		db, repository.Content(), repository.Actor(),
		reputation, badge, &cfg.Reputation, emitter, logger)

	interaction := service.NewInteraction(
		repository.Content(), repository.Interaction(),
		&cfg.Reputation, emitter, logger)

	return &Service{
		reputation:  reputation,
		vote:        vote,
		badge:       badge,
		content:     content,
		interaction: interaction,
	}, nil
}

// Reputation returns the reputation ledger service.
func (s *Service) Reputation() *service.ReputationService {
	return s.reputation
}

// Vote returns the vote state machine service.
func (s *Service) Vote() *service.VoteService {
	return s.vote
}

// Badge returns the badge eligibility service.
func (s *Service) Badge() *service.BadgeService {
	return s.badge
}

// Content returns the content service.
func (s *Service) Content() *service.ContentService {
	return s.content
}

// Interaction returns the bookmark and report service.
func (s *Service) Interaction() *service.InteractionService {
	return s.interaction
}
