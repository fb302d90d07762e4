package migrations

import (
	"context"
	"fmt"

	"github.com/studyhive/community-core/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		tables := []struct {
			model any
			name  string
		}{
			{(*types.Actor)(nil), "actors"},
			{(*types.ContentItem)(nil), "content_items"},
			{(*types.Interaction)(nil), "interactions"},
			{(*types.ReputationEvent)(nil), "reputation_events"},
			{(*types.AwardedBadge)(nil), "awarded_badges"},
		}

		for _, table := range tables {
			_, err := db.NewCreateTable().
				Model(table.model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table %s: %w", table.name, err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.AwardedBadge)(nil),
			(*types.ReputationEvent)(nil),
			(*types.Interaction)(nil),
			(*types.ContentItem)(nil),
			(*types.Actor)(nil),
		}

		for _, model := range models {
			_, err := db.NewDropTable().
				Model(model).
				IfExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to drop table: %w", err)
			}
		}

		return nil
	})
}
