package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"daynight-map-service/internal/domain"
	"daynight-map-service/internal/platform/obs"
)

// SQLCurveCache is a Postgres-backed cache for computed terminator curves.
type SQLCurveCache struct {
	DB *sql.DB
}

func NewSQLCurveCache(db *sql.DB) *SQLCurveCache {
	return &SQLCurveCache{DB: db}
}

// Fetch a cached curve by key.
func (s *SQLCurveCache) Get(ctx context.Context, key string) (_ domain.TerminatorCurve, _ bool, err error) {
	defer obs.Time(ctx, "curve.cache.Get")(&err)

	if s.DB == nil {
		return domain.TerminatorCurve{}, false, errors.New("curve cache: db is nil")
	}
	if key == "" {
		return domain.TerminatorCurve{}, false, errors.New("get curve cache: key must not be empty")
	}

	q := `
	SELECT payload
	FROM terminator_cache
	WHERE cache_key = $1;
	`

	var payload []byte
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&payload)
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
func (s *SQLCurveCache) Put(ctx context.Context, key string, curve domain.TerminatorCurve) (err error) {
	defer obs.Time(ctx, "curve.cache.Put")(&err)

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
	INSERT INTO terminator_cache (cache_key, payload)
	VALUES ($1, $2::jsonb)
	ON CONFLICT (cache_key) DO UPDATE
	SET payload = EXCLUDED.payload,
		created_at = now();
	`
	if _, err := s.DB.ExecContext(ctx, q, key, string(payload)); err != nil {
		return fmt.Errorf("insert curve cache key=%q: %w", key, err)
	}

	return nil
}
