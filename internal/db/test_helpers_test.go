package db_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/db"
	"go.uber.org/zap"
)

// newTestGateway returns an initialized gateway against a throwaway
// database with fast retry backoff.
func newTestGateway(t *testing.T, opts ...db.Option) *db.Gateway {
	t.Helper()
	gw := newBareGateway(t, opts...)
	if err := gw.Init(); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return gw
}

// newBareGateway skips Init, for tests that exercise opening and seeding
// themselves.
func newBareGateway(t *testing.T, opts ...db.Option) *db.Gateway {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snakless.db")
	opts = append([]db.Option{db.WithRetryBase(time.Millisecond)}, opts...)
	gw := db.New(path, zap.NewNop(), opts...)
	t.Cleanup(func() { _ = gw.Close() })
	return gw
}
