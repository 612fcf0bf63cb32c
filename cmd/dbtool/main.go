package main

import (
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"daynight-map-service/internal/adapters/cache"
	"daynight-map-service/internal/platform/db"
)

// dbtool bootstraps the Postgres curve cache schema. Run it once before
// starting the server with CACHE_BACKEND=postgres.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pgDB, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pgDB.Close()

	log.Println("Initializing curve cache schema...")
	if err := cache.InitPostgresSchema(pgDB); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}
