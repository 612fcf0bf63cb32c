package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	_ "github.com/jackc/pgx/v5/stdlib"

	"daynight-map-service/internal/adapters/cache"
	"daynight-map-service/internal/adapters/solar"
	"daynight-map-service/internal/api"
	"daynight-map-service/internal/config"
	"daynight-map-service/internal/platform/db"
	"daynight-map-service/internal/ports"
)

// main is the application composition root.
// It wires a solar position provider and a curve cache behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	provider, model, err := buildProvider(config.Get("SOLAR_MODEL", "noaa"))
	if err != nil {
		log.Fatal(err)
	}

	curveCache, closeCache, err := buildCache(config.Get("CACHE_BACKEND", "sqlite"))
	if err != nil {
		log.Fatal(err)
	}
	if closeCache != nil {
		defer closeCache()
	}

	router := api.NewRouter(provider, curveCache, model)

	// Write timeout covers a cold-cache full-resolution curve (360 samples
	// at up to 32 solar queries each); that is pure CPU and finishes fast,
	// but leave headroom for constrained hosts.
	log.Printf("Server listening addr=:%s model=%s", port, model)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func buildProvider(model string) (ports.SolarPositionProvider, string, error) {
	switch strings.ToLower(model) {
	case "noaa":
		return solar.NewNOAAProvider(), "noaa", nil
	case "meeus":
		return solar.NewMeeusProvider(), "meeus", nil
	default:
		return nil, "", fmt.Errorf("unknown SOLAR_MODEL %q (want noaa or meeus)", model)
	}
}

// buildCache selects a curve cache backend. A nil cache disables caching.
func buildCache(backend string) (ports.CurveCache, func(), error) {
	switch strings.ToLower(backend) {
	case "none":
		return nil, nil, nil

	case "sqlite":
		path := config.Get("DB_PATH", "data/curves.db")
		sqliteDB, err := openSqlite(path)
		if err != nil {
			return nil, nil, err
		}
		if err := cache.InitSqliteSchema(sqliteDB); err != nil {
			sqliteDB.Close()
			return nil, nil, err
		}
		return cache.NewSqliteCurveCache(sqliteDB), func() { sqliteDB.Close() }, nil

	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, nil, fmt.Errorf("DATABASE_URL is required for CACHE_BACKEND=postgres")
		}
		pgDB, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return cache.NewSQLCurveCache(pgDB), func() { pgDB.Close() }, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: config.Get("REDIS_ADDR", "localhost:6379"),
		})
		ttl := config.GetDurationSeconds("CACHE_TTL_SECONDS", 300)
		return cache.NewRedisCurveCache(client, ttl), func() { client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown CACHE_BACKEND %q (want sqlite, postgres, redis or none)", backend)
	}
}

func openSqlite(dbPath string) (*sql.DB, error) {
	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := sqliteDB.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return sqliteDB, nil
}
