package events_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyhive/community-core/internal/events"
	"github.com/studyhive/community-core/internal/setup/config"
	"go.uber.org/zap/zaptest"
)

func setupPublisher(t *testing.T, feedLength int64) (*events.Publisher, *miniredis.Miniredis, string) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	cfg := &config.Events{
		Enabled:    true,
		FeedKey:    "community:events",
		FeedLength: feedLength,
	}

	return events.NewPublisher(client, cfg, zaptest.NewLogger(t)), mr, cfg.FeedKey
}

func TestPublisher_Emit(t *testing.T) {
	t.Parallel()

	publisher, mr, feedKey := setupPublisher(t, 100)

	actorID := uuid.New()
	publisher.Emit(context.Background(), &events.Event{
		Kind:    events.KindLevelUp,
		ActorID: actorID,
		Payload: map[string]any{"from": "Newcomer", "to": "Contributor"},
	})

	entries, err := mr.List(feedKey)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	var event events.Event
	require.NoError(t, sonic.Unmarshal([]byte(entries[0]), &event))
	assert.Equal(t, events.KindLevelUp, event.Kind)
	assert.Equal(t, actorID, event.ActorID)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestPublisher_EmitTrimsFeed(t *testing.T) {
	t.Parallel()

	publisher, mr, feedKey := setupPublisher(t, 3)

	for range 10 {
		publisher.Emit(context.Background(), &events.Event{
			Kind:    events.KindBadgeAwarded,
			ActorID: uuid.New(),
		})
	}

	entries, err := mr.List(feedKey)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

// A disabled feed must produce a no-op emitter without dialing Redis; an
// enabled feed must dial, so an unreachable address surfaces at startup.
func TestNewEmitter(t *testing.T) {
	t.Parallel()

	t.Run("disabled returns noop", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			Events: config.Events{Enabled: false},
			// No reachable Redis; the disabled path must never need one.
			Redis: config.Redis{Host: "127.0.0.1", Port: 1},
		}

		emitter, closeEvents, err := events.NewEmitter(cfg, zaptest.NewLogger(t))
		require.NoError(t, err)
		defer closeEvents()

		assert.IsType(t, events.Noop{}, emitter)
	})

	t.Run("enabled dials redis", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			Events: config.Events{Enabled: true, FeedKey: "community:events", FeedLength: 10},
			Redis:  config.Redis{Host: "127.0.0.1", Port: 1},
		}

		_, _, err := events.NewEmitter(cfg, zaptest.NewLogger(t))
		require.Error(t, err)
	})
}

func TestNoop_Emit(t *testing.T) {
	t.Parallel()

	// Must not panic with a nil context path or empty event.
	events.Noop{}.Emit(context.Background(), &events.Event{})
}
