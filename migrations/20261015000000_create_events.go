package migrations

import (
	"context"
	"fmt"

	"github.com/blagoySimandov/novafields/internal/models"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewCreateTable().
			Model((*models.EventDB)(nil)).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create events table: %w", err)
		}

		_, err = db.NewCreateIndex().
			Model((*models.EventDB)(nil)).
			Index("idx_events_event_date").
			Column("event_date").
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create event_date index: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().
			Model((*models.EventDB)(nil)).
			IfExists().
			Exec(ctx)
		return err
	})
}
