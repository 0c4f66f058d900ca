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
		log.Println("creating royalty_distributions table...")
		if err := mghelper.CreateSchema(ctx, db, &royaltystore.DistributionDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &royaltystore.DistributionDao{}, "nft_id")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping royalty_distributions table...")
		return mghelper.DropTables(ctx, db, &royaltystore.DistributionDao{})
	})
}
