package cache

import (
	"context"
	"database/sql"
	"reflect"
	"testing"

	_ "modernc.org/sqlite"
)

func newTestSqliteCache(t *testing.T) *SqliteCurveCache {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSqliteSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	return NewSqliteCurveCache(db)
}

func TestSqliteCurveCacheRoundTrip(t *testing.T) {
	c := newTestSqliteCache(t)
	ctx := context.Background()
	curve := testCurve()

	if err := c.Put(ctx, "k1", curve); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}
	if !reflect.DeepEqual(got, curve) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, curve)
	}
}

func TestSqliteCurveCacheOverwrite(t *testing.T) {
	c := newTestSqliteCache(t)
	ctx := context.Background()

	first := testCurve()
	if err := c.Put(ctx, "k1", first); err != nil {
		t.Fatalf("put: %v", err)
	}

	second := testCurve()
	second.Resolution = 8
	if err := c.Put(ctx, "k1", second); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, ok, err := c.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}
	if got.Resolution != 8 {
		t.Errorf("resolution = %d, want 8 (overwritten value)", got.Resolution)
	}
}

func TestSqliteCurveCacheMiss(t *testing.T) {
	c := newTestSqliteCache(t)

	_, ok, err := c.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected a miss for absent key")
	}
}
