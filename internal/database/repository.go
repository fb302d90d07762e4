package database

import (
	"github.com/studyhive/community-core/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	actor       *models.ActorModel
	content     *models.ContentModel
	interaction *models.InteractionModel
	reputation  *models.ReputationModel
	badge       *models.BadgeModel
	stats       *models.StatsModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		actor:       models.NewActor(db, logger),
		content:     models.NewContent(db, logger),
		interaction: models.NewInteraction(db, logger),
		reputation:  models.NewReputation(db, logger),
		badge:       models.NewBadge(db, logger),
		stats:       models.NewStats(db, logger),
	}
}

// Actor returns the actor model repository.
func (r *Repository) Actor() *models.ActorModel {
	return r.actor
}

// Content returns the content model repository.
func (r *Repository) Content() *models.ContentModel {
	return r.content
}

// Interaction returns the interaction model repository.
func (r *Repository) Interaction() *models.InteractionModel {
	return r.interaction
}

// Reputation returns the reputation model repository.
func (r *Repository) Reputation() *models.ReputationModel {
	return r.reputation
}

// Badge returns the badge model repository.
func (r *Repository) Badge() *models.BadgeModel {
	return r.badge
}

// Stats returns the stats model repository.
func (r *Repository) Stats() *models.StatsModel {
	return r.stats
}
