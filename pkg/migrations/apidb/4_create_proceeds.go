package apidb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/chainsafe/music-marketplace/pkg/pgutil/migrations"
	"github.com/chainsafe/music-marketplace/pkg/royaltystore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating proceeds table...")
		if err := mghelper.CreateSchema(ctx, db, &royaltystore.ProceedsDao{}); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &royaltystore.ProceedsDao{}, "user_id"); err != nil {
			return err
		}
		return royaltystore.CreatePendingIndex(ctx, db)
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping proceeds table...")
		return mghelper.DropTables(ctx, db, &royaltystore.ProceedsDao{})
	})
}
