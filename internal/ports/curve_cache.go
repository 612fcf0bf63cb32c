package ports

import (
	"context"
	"daynight-map-service/internal/domain"
)

// Port: a boundary for caching computed terminator curves.
// Keys are expected to be consistent (e.g., already time-bucketed)
// by the caller.
type CurveCache interface {
	// Fetch a cached curve. The second return value reports a hit.
	Get(ctx context.Context, key string) (domain.TerminatorCurve, bool, error)
	// Store a curve under the given key.
	Put(ctx context.Context, key string, curve domain.TerminatorCurve) error
}
