package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun"

	"github.com/chainsafe/music-marketplace/pkg/config"
	"github.com/chainsafe/music-marketplace/pkg/pgutil"
)

type trackDao struct {
	bun.BaseModel `bun:"table:test_tracks"`
	ID            int64  `bun:",pk,autoincrement"`
	Title         string `bun:",notnull,type:varchar(100)"`
	Plays         int    `bun:",nullzero"`
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "test",
		Password: "test",
		Database: "test",
		SSLMode:  "disable",
	}

	db, err := pgutil.ConnectDB(cfg)
	if err == nil {
		_ = db.Close()
		t.Error("ConnectDB() should fail with invalid host")
	}
}

func TestCreateAndDropSchema(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &trackDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "test_tracks")

	if err := CreateSchema(ctx, db, &trackDao{}); err != nil {
		t.Errorf("CreateSchema() second call failed: %v", err)
	}

	if err := DropTables(ctx, db, &trackDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "test_tracks")
}

func TestTruncateTables(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &trackDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if _, err := db.NewInsert().Model(&[]trackDao{{Title: "a"}, {Title: "b"}}).Exec(ctx); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	pgutil.AssertRowCount(t, db, "test_tracks", 2)

	if err := TruncateTables(ctx, db, (*trackDao)(nil)); err != nil {
		t.Fatalf("TruncateTables() failed: %v", err)
	}
	pgutil.AssertRowCount(t, db, "test_tracks", 0)
}

func TestModelIndexes(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &trackDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}

	if err := CreateModelIndexes(ctx, db, &trackDao{}, "plays"); err != nil {
		t.Fatalf("CreateModelIndexes() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, "idx_test_tracks_plays")

	if err := CreateModelUniqueIndexes(ctx, db, &trackDao{}, "title"); err != nil {
		t.Fatalf("CreateModelUniqueIndexes() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, "idx_test_tracks_title")

	if _, err := db.NewInsert().Model(&trackDao{Title: "same"}).Exec(ctx); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	_, err := db.NewInsert().Model(&trackDao{Title: "same"}).Exec(ctx)
	if !pgutil.IsUniqueViolation(err) {
		t.Fatalf("expected unique violation, got %v", err)
	}

	if err := DropModelIndexes(ctx, db, &trackDao{}, "plays", "title"); err != nil {
		t.Fatalf("DropModelIndexes() failed: %v", err)
	}
}

func TestCreateIndexes_ExpressionAndPartial(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &trackDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}

	err := CreateIndexes(ctx, db, &trackDao{},
		Index{Name: "idx_test_tracks_title_lower", Column: "lower(title)", Expr: true, Unique: true},
		Index{Column: "plays", Where: "plays IS NOT NULL"},
	)
	if err != nil {
		t.Fatalf("CreateIndexes() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, "idx_test_tracks_title_lower")
	pgutil.AssertIndexExists(t, db, "idx_test_tracks_plays")

	if _, err := db.NewInsert().Model(&trackDao{Title: "Blue"}).Exec(ctx); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	_, err = db.NewInsert().Model(&trackDao{Title: "BLUE"}).Exec(ctx)
	if !pgutil.IsUniqueViolation(err) {
		t.Fatalf("expected case-insensitive unique violation, got %v", err)
	}

	err = CreateIndexes(ctx, db, &trackDao{}, Index{Column: "lower(title)", Expr: true})
	if err == nil {
		t.Fatal("expected unnamed expression index to be rejected")
	}
}
