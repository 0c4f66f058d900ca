package apidb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/chainsafe/music-marketplace/pkg/nftstore"
	mghelper "github.com/chainsafe/music-marketplace/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating nfts table...")
		if err := mghelper.CreateSchema(ctx, db, &nftstore.NFTDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &nftstore.NFTDao{}, "owner_id", "token_id")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping nfts table...")
		return mghelper.DropTables(ctx, db, &nftstore.NFTDao{})
	})
}
