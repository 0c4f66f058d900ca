package apidb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/chainsafe/music-marketplace/pkg/pgutil/migrations"
	"github.com/chainsafe/music-marketplace/pkg/userstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating wallets table...")
		if err := mghelper.CreateSchema(ctx, db, &userstore.WalletDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &userstore.WalletDao{}, "user_id")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping wallets table...")
		return mghelper.DropTables(ctx, db, &userstore.WalletDao{})
	})
}
