package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			-- One active polarity vote per (actor, content) pair. The vote
			-- state machine's conditional writes depend on this index, so a
			-- concurrent duplicate insert fails instead of racing.
			CREATE UNIQUE INDEX IF NOT EXISTS idx_interactions_one_vote_per_pair
			ON interactions (actor_id, content_id)
			WHERE kind IN (0, 1);

			-- Non-polarity interactions (bookmarks, reports) are unique per
			-- kind instead, so a pair can hold a vote and a bookmark at once.
			CREATE UNIQUE INDEX IF NOT EXISTS idx_interactions_unique_kind
			ON interactions (actor_id, content_id, kind)
			WHERE kind NOT IN (0, 1);

			-- Rolling-window queries: daily caps and report limits
			CREATE INDEX IF NOT EXISTS idx_reputation_events_actor_time
			ON reputation_events (actor_id, created_at DESC);

			CREATE INDEX IF NOT EXISTS idx_interactions_actor_kind_time
			ON interactions (actor_id, kind, created_at DESC);

			-- Statistics provider lookups
			CREATE INDEX IF NOT EXISTS idx_content_items_author_kind
			ON content_items (author_id, kind);

			CREATE INDEX IF NOT EXISTS idx_content_items_parent
			ON content_items (parent_id)
			WHERE parent_id IS NOT NULL;

			-- Leaderboard ordering
			CREATE INDEX IF NOT EXISTS idx_actors_score
			ON actors (score DESC);
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			DROP INDEX IF EXISTS idx_interactions_one_vote_per_pair;
			DROP INDEX IF EXISTS idx_interactions_unique_kind;
			DROP INDEX IF EXISTS idx_reputation_events_actor_time;
			DROP INDEX IF EXISTS idx_interactions_actor_kind_time;
			DROP INDEX IF EXISTS idx_content_items_author_kind;
			DROP INDEX IF EXISTS idx_content_items_parent;
			DROP INDEX IF EXISTS idx_actors_score;
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop indexes: %w", err)
		}

		return nil
	})
}
