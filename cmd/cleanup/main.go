package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/glisicmilica/barberline-backend/internal/cleanup"
	"github.com/glisicmilica/barberline-backend/internal/db"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report what would be deleted without deleting")
	deleteAll := flag.Bool("all", false, "delete every reservation regardless of age")
	limit := flag.Int("limit", 0, "maximum number of reservations to delete (0 = unlimited)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The job only needs the database, so it reads DB_DSN directly instead
	// of going through config.Load which also demands JWT settings.
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is required")
	}

	pool, err := db.NewPool(ctx, dsn)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer pool.Close()

	deleted, err := cleanup.Run(ctx, cleanup.NewPgxStore(pool), cleanup.Options{
		DryRun:    *dryRun,
		DeleteAll: *deleteAll,
		Limit:     *limit,
	})
	if err != nil {
		log.Fatalf("cleanup failed after %d deletions: %v", deleted, err)
	}

	if *dryRun {
		log.Printf("dry run: %d reservations past retention", deleted)
	} else {
		log.Printf("cleanup finished: %d reservations removed", deleted)
	}
}
