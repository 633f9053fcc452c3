// One-shot schema provisioning: creates the per-vertical lead tables and
// indexes, then exits. Run it once against a fresh database.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/obsidianco/lead-capture/internal/config"
	"github.com/obsidianco/lead-capture/internal/infra/database"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatal(err)
	}

	log.Println("lead tables ready")
}
