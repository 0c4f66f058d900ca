// Package migrations holds migrations related helpers
package migrations

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

const usageText = `Usage:
  go run cmd/api-server/migrate/main.go [-config config.yaml] <command>

This program runs command on the marketplace database. Supported commands are:
  - init - creates migration info table in the database
  - up - runs all available migrations.
  - down - reverts last migration group.
  - status - prints migration status.
  - unlock - releases a lock left behind by an interrupted run.

Examples:
  go run cmd/api-server/migrate/main.go -config config.yaml init
  go run cmd/api-server/migrate/main.go -config config.yaml up
  go run cmd/api-server/migrate/main.go -config config.yaml status
`

// Usage prints command usage
func Usage() {
	fmt.Print(usageText)
	flag.PrintDefaults()
	os.Exit(2)
}

// Exitf exits command printing usage
func Exitf(s string, args ...any) {
	fmt.Fprintf(os.Stderr, s+"\n", args...)
	Usage()
	os.Exit(1)
}

// CreateSchema creates tables for models, skipping those that exist
func CreateSchema(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		log.Println("Creating Table for", reflect.TypeOf(model))
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table %T: %w", model, err)
		}
	}
	return nil
}

// DropTables drops tables for models, cascading to dependent objects
func DropTables(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		log.Println("Dropping Table for", reflect.TypeOf(model))
		if _, err := db.NewDropTable().Model(model).IfExists().Cascade().Exec(ctx); err != nil {
			return fmt.Errorf("drop table %T: %w", model, err)
		}
	}
	return nil
}

// TruncateTables removes every row from the tables of models
func TruncateTables(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		if _, err := db.NewTruncateTable().Model(model).Cascade().Exec(ctx); err != nil {
			return fmt.Errorf("truncate %T: %w", model, err)
		}
	}
	return nil
}

// Index describes one index on a model's table. Column is either a column
// name or, with Expr set, an SQL expression such as "lower(email)". An empty
// Name is derived as idx_<table>_<column>.
type Index struct {
	Name   string
	Column string
	Expr   bool
	Unique bool
	Where  string
}

// CreateIndexes creates the described indexes if they do not exist yet
func CreateIndexes(ctx context.Context, db bun.IDB, model any, indexes ...Index) error {
	for _, idx := range indexes {
		name, err := indexName(db, model, idx)
		if err != nil {
			return err
		}

		q := db.NewCreateIndex().Model(model).Index(name).IfNotExists()
		if idx.Expr {
			q = q.ColumnExpr(idx.Column)
		} else {
			q = q.Column(idx.Column)
		}
		if idx.Unique {
			q = q.Unique()
		}
		if idx.Where != "" {
			q = q.Where(idx.Where)
		}
		if _, err := q.Exec(ctx); err != nil {
			return fmt.Errorf("create index %s: %w", name, err)
		}
	}
	return nil
}

// CreateModelIndexes creates a plain index per column
func CreateModelIndexes(ctx context.Context, db bun.IDB, model any, columns ...string) error {
	return CreateIndexes(ctx, db, model, columnIndexes(columns, false)...)
}

// CreateModelUniqueIndexes creates a unique index per column
func CreateModelUniqueIndexes(ctx context.Context, db bun.IDB, model any, columns ...string) error {
	return CreateIndexes(ctx, db, model, columnIndexes(columns, true)...)
}

// DropModelIndexes drops the derived per-column indexes of a model
func DropModelIndexes(ctx context.Context, db bun.IDB, model any, columns ...string) error {
	for _, idx := range columnIndexes(columns, false) {
		name, err := indexName(db, model, idx)
		if err != nil {
			return err
		}
		if _, err := db.NewDropIndex().Model(model).Index(name).IfExists().Exec(ctx); err != nil {
			return fmt.Errorf("drop index %s: %w", name, err)
		}
	}
	return nil
}

func columnIndexes(columns []string, unique bool) []Index {
	out := make([]Index, len(columns))
	for i, c := range columns {
		out[i] = Index{Column: c, Unique: unique}
	}
	return out
}

func indexName(db bun.IDB, model any, idx Index) (string, error) {
	if idx.Name != "" {
		return idx.Name, nil
	}
	if idx.Expr {
		return "", fmt.Errorf("expression index %q needs an explicit name", idx.Column)
	}
	if model == nil {
		return "", fmt.Errorf("model cannot be nil")
	}
	tableName := db.NewCreateIndex().Model(model).GetTableName()
	if tableName == "" {
		return "", fmt.Errorf("failed to resolve table name for model %T", model)
	}

	indexTableName := strings.NewReplacer(`"`, "", ".", "_").Replace(tableName)
	return fmt.Sprintf("idx_%s_%s", indexTableName, idx.Column), nil
}

// RunMigrations runs the migration command named by args[0]
func RunMigrations(migrator *migrate.Migrator, args ...string) error {
	ctx := context.Background()

	if len(args) == 0 {
		Exitf("no command provided")
	}

	switch args[0] {
	case "init":
		if err := migrator.Init(ctx); err != nil {
			return err
		}
		log.Println("migration table created")
		return nil

	case "up":
		return withLock(ctx, migrator, func() error {
			group, err := migrator.Migrate(ctx)
			if err != nil {
				return err
			}
			if group.IsZero() {
				log.Println("no new migrations to run (database is up to date)")
			} else {
				log.Printf("migrated to %s\n", group)
			}
			return nil
		})

	case "down":
		return withLock(ctx, migrator, func() error {
			group, err := migrator.Rollback(ctx)
			if err != nil {
				return err
			}
			if group.IsZero() {
				log.Println("no migrations to rollback")
			} else {
				log.Printf("rolled back %s\n", group)
			}
			return nil
		})

	case "status":
		ms, err := migrator.MigrationsWithStatus(ctx)
		if err != nil {
			return err
		}
		log.Printf("migrations: %s\n", ms)
		log.Printf("unapplied migrations: %s\n", ms.Unapplied())
		log.Printf("last migration group: %s\n", ms.LastGroup())
		return nil

	case "unlock":
		if err := migrator.Unlock(ctx); err != nil {
			return err
		}
		log.Println("migration lock released")
		return nil

	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func withLock(ctx context.Context, migrator *migrate.Migrator, fn func() error) error {
	if err := migrator.Lock(ctx); err != nil {
		return fmt.Errorf("failed to acquire migration lock: %w", err)
	}
	defer func() {
		if err := migrator.Unlock(ctx); err != nil {
			log.Printf("failed to release migration lock: %v", err)
		}
	}()
	return fn()
}
