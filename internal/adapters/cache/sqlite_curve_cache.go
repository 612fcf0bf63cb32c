package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"daynight-map-service/internal/domain"
)

// SQLite-backed cache for computed terminator curves. Keys are expected
// to be consistent (e.g., already time-bucketed) by the caller.
type SqliteCurveCache struct {
	DB *sql.DB
}

func NewSqliteCurveCache(db *sql.DB) *SqliteCurveCache {
	return &SqliteCurveCache{DB: db}
}

// Fetch a cached curve by key.
func (s *SqliteCurveCache) Get(ctx context.Context, key string) (domain.TerminatorCurve, bool, error) {
	if s.DB == nil {
		return domain.TerminatorCurve{}, false, errors.New("curve cache: db is nil")
	}
	if key == "" {
		return domain.TerminatorCurve{}, false, errors.New("get curve cache: key must not be empty")
	}

	q := `
	SELECT payload
	FROM terminator_cache
	WHERE cache_key = ?;
	`

	var payload []byte
	err := s.DB.QueryRowContext(ctx, q, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TerminatorCurve{}, false, nil
	}
	if err != nil {
		return domain.TerminatorCurve{}, false, fmt.Errorf("get curve cache: query terminator_cache table: %w", err)
	}

	curve, err := decodeCurve(payload)
	if err != nil {
		return domain.TerminatorCurve{}, false, fmt.Errorf("get curve cache: %w", err)
	}

	return curve, true, nil
}

// Store a curve under the given key.
func (s *SqliteCurveCache) Put(ctx context.Context, key string, curve domain.TerminatorCurve) error {
	if s.DB == nil {
		return errors.New("curve cache: db is nil")
	}
	if key == "" {
		return errors.New("insert curve cache: key must not be empty")
	}

	payload, err := encodeCurve(curve)
	if err != nil {
		return fmt.Errorf("insert curve cache: %w", err)
	}

	q := `
	INSERT OR REPLACE INTO terminator_cache (cache_key, payload)
	VALUES (?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, q, key, payload); err != nil {
		return fmt.Errorf("insert curve cache key=%q: %w", key, err)
	}

	return nil
}
