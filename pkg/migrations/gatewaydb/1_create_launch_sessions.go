package gatewaydb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/fineai/miniapp-gateway/pkg/launch/sessionstore"
	mghelper "github.com/fineai/miniapp-gateway/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.CreateSchema(ctx, db, &sessionstore.LaunchSessionDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &sessionstore.LaunchSessionDao{}, "telegram_id", "created_at")
	}, func(ctx context.Context, db *bun.DB) error {
		return mghelper.DropTables(ctx, db, &sessionstore.LaunchSessionDao{})
	})
}
