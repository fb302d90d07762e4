// Package events publishes core domain events to a bounded Redis list so
// external collaborators (notifications, moderation, reconciliation) can
// observe what the core did without being in its call path.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/rueidis"
	"github.com/studyhive/community-core/internal/setup/config"
	"go.uber.org/zap"
)

// Event kinds published on the feed.
const (
	KindLevelUp              = "level_up"
	KindBadgeAwarded         = "badge_awarded"
	KindReportSubmitted      = "report_submitted"
	KindReconciliationNeeded = "reconciliation_needed"
	KindSideEffectDropped    = "side_effect_dropped"
)

// Event is one entry on the community event feed.
type Event struct {
	Kind       string         `json:"kind"`
	ActorID    uuid.UUID      `json:"actorId"`
	ContentID  uuid.UUID      `json:"contentId,omitempty"`
	BadgeID    string         `json:"badgeId,omitempty"`
	Detail     string         `json:"detail,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// Emitter publishes events. Publishing is best-effort: implementations
// log failures and never propagate them into the caller's operation.
type Emitter interface {
	Emit(ctx context.Context, event *Event)
}

// Publisher emits events onto a bounded Redis list, newest first.
type Publisher struct {
	client  rueidis.Client
	feedKey string
	maxLen  int64
	logger  *zap.Logger
}

// NewPublisher creates a publisher using the given Redis client.
func NewPublisher(client rueidis.Client, cfg *config.Events, logger *zap.Logger) *Publisher {
	return &Publisher{
		client:  client,
		feedKey: cfg.FeedKey,
		maxLen:  cfg.FeedLength,
		logger:  logger.Named("events"),
	}
}

// Emit serializes the event and pushes it onto the feed, trimming the
// list to the configured length.
func (p *Publisher) Emit(ctx context.Context, event *Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	payload, err := sonic.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err), zap.String("kind", event.Kind))
		return
	}

	err = p.client.Do(ctx,
		p.client.B().Lpush().Key(p.feedKey).Element(string(payload)).Build(),
	).Error()
	if err != nil {
		p.logger.Warn("Failed to publish event",
			zap.Error(err),
			zap.String("kind", event.Kind),
			zap.String("actorID", event.ActorID.String()))
		return
	}

	err = p.client.Do(ctx,
		p.client.B().Ltrim().Key(p.feedKey).Start(0).Stop(p.maxLen-1).Build(),
	).Error()
	if err != nil {
		p.logger.Warn("Failed to trim event feed", zap.Error(err))
	}
}

// NewEmitter builds the emitter the configuration asks for. When the feed
// is disabled it returns Noop and Redis is never dialed. The returned
// closer releases the Redis connection and is safe to call either way.
func NewEmitter(cfg *config.Config, logger *zap.Logger) (Emitter, func(), error) {
	if !cfg.Events.Enabled {
		return Noop{}, func() {}, nil
	}

	client, err := NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, nil, err
	}

	return NewPublisher(client, &cfg.Events, logger), client.Close, nil
}

// NewRedisClient dials Redis from configuration.
func NewRedisClient(cfg *config.Redis) (rueidis.Client, error) {
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress: []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		Username:    cfg.Username,
		Password:    cfg.Password,
		ClientName:  "community-core",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	return client, nil
}

// Noop discards every event. Used when the feed is disabled and in tests.
type Noop struct{}

// Emit implements Emitter.
func (Noop) Emit(context.Context, *Event) {}
