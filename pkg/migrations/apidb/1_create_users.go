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
		log.Println("creating users table...")
		if err := mghelper.CreateSchema(ctx, db, &userstore.UserDao{}); err != nil {
			return err
		}
		// wallet uniqueness is case-insensitive
		return mghelper.CreateIndexes(ctx, db, &userstore.UserDao{}, mghelper.Index{
			Name:   "idx_users_wallet_address_lower",
			Column: "lower(wallet_address)",
			Expr:   true,
			Unique: true,
		})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping users table...")
		return mghelper.DropTables(ctx, db, &userstore.UserDao{})
	})
}
