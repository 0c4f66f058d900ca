package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/music-marketplace/pkg/migrations/apidb"
	mghelper "github.com/chainsafe/music-marketplace/pkg/pgutil"
)

func TestAPIDBMigrations_Apply(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, apidb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected migrations to run, but none were applied")
	}

	expectedTables := []string{
		"users",
		"wallets",
		"nfts",
		"proceeds",
		"royalty_distributions",
		"bun_migrations",
	}
	for _, table := range expectedTables {
		mghelper.AssertTableExists(t, db, table)
	}

	mghelper.AssertIndexExists(t, db, "idx_users_wallet_address_lower")
	mghelper.AssertIndexExists(t, db, "idx_wallets_user_id")
	mghelper.AssertIndexExists(t, db, "idx_nfts_owner_id")
	mghelper.AssertIndexExists(t, db, "idx_proceeds_user_id")
	mghelper.AssertIndexExists(t, db, "proceeds_user_pending_key")
	mghelper.AssertIndexExists(t, db, "idx_royalty_distributions_nft_id")
}

func TestMigrations_Idempotency(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, apidb.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("First Migrate() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Second Migrate() failed: %v", err)
	}
	if !group.IsZero() {
		t.Error("Expected no new migrations on second run")
	}

	mghelper.AssertTableExists(t, db, "users")
	mghelper.AssertTableExists(t, db, "nfts")
}

func TestMigrations_Rollback(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, apidb.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	// all migrations run in one group, so a single rollback drops everything
	group, err := migrator.Rollback(ctx)
	if err != nil {
		t.Fatalf("Rollback() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected rollback to process a migration")
	}

	mghelper.AssertTableNotExists(t, db, "royalty_distributions")
	mghelper.AssertTableNotExists(t, db, "proceeds")
	mghelper.AssertTableNotExists(t, db, "nfts")
	mghelper.AssertTableNotExists(t, db, "wallets")
	mghelper.AssertTableNotExists(t, db, "users")
}

func TestWalletIndex_CaseInsensitive(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, apidb.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	insert := `INSERT INTO users (email, password_hash, wallet_address) VALUES (?, 'x', ?)`
	if _, err := db.ExecContext(ctx, insert, "a@example.com", "0xAbCdEf0000000000000000000000000000000001"); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if _, err := db.ExecContext(ctx, insert, "b@example.com", "0xabcdef0000000000000000000000000000000001"); err == nil {
		t.Fatal("expected lower-cased duplicate wallet to be rejected")
	}
	mghelper.AssertRowCount(t, db, "users", 1)
}
