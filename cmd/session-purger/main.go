package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	accountspostgres "github.com/enayetchefonline/partner-gateway/internal/domains/accounts/adapters/persistence/postgres"
	platformpostgres "github.com/enayetchefonline/partner-gateway/internal/platform/postgres"
)

func main() {
	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot purge sessions")
	}

	store := accountspostgres.NewSessionStore(db)
	purged, err := store.PurgeExpired(ctx)
	if err != nil {
		log.Fatalf("failed to purge sessions: %v", err)
	}
	log.Printf("session purge completed, removed %d expired sessions", purged)
}
