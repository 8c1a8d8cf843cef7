package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sort"
	"strings"

	pagebuilder "github.com/goliatone/go-pagebuilder"
	"github.com/goliatone/go-pagebuilder/media"
	"github.com/goliatone/go-pagebuilder/pages"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("pagebuilder-seed: %v", err)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("pagebuilder-seed", flag.ExitOnError)
	driver := flags.String("driver", "sqlite3", "Database driver (sqlite3 or postgres)")
	dsn := flags.String("dsn", "file:pagebuilder.db?cache=shared", "Database connection string")
	actor := flags.String("actor", "", "Actor id recorded on seeded content (defaults to a random id)")
	logLevel := flags.String("log-level", "info", "Log level")

	if err := flags.Parse(args); err != nil {
		return err
	}

	actorID := uuid.New()
	if strings.TrimSpace(*actor) != "" {
		parsed, err := uuid.Parse(*actor)
		if err != nil {
			return fmt.Errorf("parse actor: %w", err)
		}
		actorID = parsed
	}

	sqlDB, err := sql.Open(*driver, *dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer sqlDB.Close()

	var bunDB *bun.DB
	switch *driver {
	case "sqlite3":
		bunDB = bun.NewDB(sqlDB, sqlitedialect.New())
		bunDB.SetMaxOpenConns(1)
	case "postgres":
		bunDB = bun.NewDB(sqlDB, pgdialect.New())
	default:
		return fmt.Errorf("unsupported driver %q", *driver)
	}

	ctx := context.Background()

	if err := runMigrations(ctx, bunDB); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	cfg := pagebuilder.DefaultConfig()
	cfg.Logging.Level = *logLevel

	module, err := pagebuilder.New(cfg,
		pagebuilder.WithPageRepository(pages.NewBunRepository(bunDB)),
		pagebuilder.WithMediaRepository(media.NewBunRepository(bunDB)),
	)
	if err != nil {
		return fmt.Errorf("build module: %w", err)
	}

	page, err := pagebuilder.SeedHomepage(ctx, module.Pages(), actorID)
	if err != nil {
		return fmt.Errorf("seed homepage: %w", err)
	}

	fmt.Fprintf(os.Stdout, "seeded homepage %s (%d sections)\n", page.Slug, len(page.Sections))
	return nil
}

// runMigrations applies the embedded SQL files in lexical order. Statements
// are written to be re-runnable, so the command stays idempotent without a
// migration ledger table.
func runMigrations(ctx context.Context, db *bun.DB) error {
	migrations := pagebuilder.GetMigrationsFS()

	entries, err := fs.Glob(migrations, "data/sql/migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(entries)

	for _, entry := range entries {
		contents, err := fs.ReadFile(migrations, entry)
		if err != nil {
			return fmt.Errorf("read %s: %w", entry, err)
		}
		if _, err := db.ExecContext(ctx, string(contents)); err != nil {
			return fmt.Errorf("apply %s: %w", entry, err)
		}
	}
	return nil
}
