// Package db is the persistent store gateway. It owns the single SQLite
// connection, its lazy initialization and recovery, the schema, and every
// statement executed against the database.
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

var (
	// ErrConnect wraps a failed attempt to open the database.
	ErrConnect = errors.New("open database connection")
	// ErrRetriesExhausted is returned when every validation/reopen attempt
	// for a single logical operation has failed.
	ErrRetriesExhausted = errors.New("database connection retries exhausted")
	// ErrOpenSession is returned when a start is attempted while a fasting
	// session is already open.
	ErrOpenSession = errors.New("a fasting session is already open")
)

const (
	defaultRetries   = 3
	defaultRetryBase = time.Second
)

// OpenFunc opens the underlying database handle. Swappable in tests.
type OpenFunc func(path string) (*sql.DB, error)

// Open is the default OpenFunc: a single-connection SQLite handle in WAL
// mode, validated with a ping before use.
func Open(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	conn.SetMaxOpenConns(1)
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := conn.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return conn, nil
}

// Gateway owns the shared connection handle. All access is serialized
// through its mutex, so concurrent callers racing to open coalesce into one
// open attempt and multi-statement units run without interleaving.
type Gateway struct {
	path      string
	open      OpenFunc
	log       *zap.Logger
	retries   int
	retryBase time.Duration

	mu   chan struct{} // 1-slot semaphore; held across open and every op
	conn *sql.DB
}

type Option func(*Gateway)

// WithOpenFunc replaces the connection opener (test seam).
func WithOpenFunc(open OpenFunc) Option {
	return func(g *Gateway) { g.open = open }
}

// WithRetryBase sets the base delay for linear retry backoff.
func WithRetryBase(d time.Duration) Option {
	return func(g *Gateway) { g.retryBase = d }
}

func New(path string, log *zap.Logger, opts ...Option) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Gateway{
		path:      path,
		open:      Open,
		log:       log,
		retries:   defaultRetries,
		retryBase: defaultRetryBase,
		mu:        make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) lock()   { g.mu <- struct{}{} }
func (g *Gateway) unlock() { <-g.mu }

// Connect returns the shared handle, opening it lazily. Callers racing to
// connect block on the gateway lock while the first open is in flight; they
// observe the established handle rather than opening a second one. On
// failure the shared state is cleared and the error propagated.
func (g *Gateway) Connect() (*sql.DB, error) {
	g.lock()
	defer g.unlock()
	return g.connectLocked()
}

func (g *Gateway) connectLocked() (*sql.DB, error) {
	if g.conn != nil {
		return g.conn, nil
	}
	conn, err := g.open(g.path)
	if err != nil {
		g.conn = nil
		g.log.Error("database open failed", zap.String("path", g.path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}
	g.conn = conn
	g.log.Debug("database connection established", zap.String("path", g.path))
	return g.conn, nil
}

// connLocked returns a validated handle, retrying with linearly increasing
// backoff (base, 2x base, 3x base, ...) and discarding the shared handle
// between attempts. The caller must hold the gateway lock.
func (g *Gateway) connLocked() (*sql.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= g.retries; attempt++ {
		conn, err := g.connectLocked()
		if err == nil {
			var one int
			if err = conn.QueryRow(`SELECT 1`).Scan(&one); err == nil {
				return conn, nil
			}
		}
		lastErr = err
		g.log.Warn("database connection attempt failed",
			zap.Int("attempt", attempt), zap.Error(err))
		g.invalidateLocked()
		if attempt < g.retries {
			time.Sleep(g.retryBase * time.Duration(attempt))
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrRetriesExhausted, lastErr)
}

// With acquires a validated connection, runs op, and on any error discards
// the shared handle so the next call reopens instead of reusing a possibly
// broken connection. The op name is carried into logs and wrapped errors.
func (g *Gateway) With(opName string, op func(conn *sql.DB) error) error {
	g.lock()
	defer g.unlock()

	conn, err := g.connLocked()
	if err != nil {
		return fmt.Errorf("%s: %w", opName, err)
	}
	if err := op(conn); err != nil {
		g.invalidateLocked()
		g.log.Error("database operation failed", zap.String("op", opName), zap.Error(err))
		return fmt.Errorf("%s: %w", opName, err)
	}
	return nil
}

// Invalidate drops the shared handle; the next access reopens.
func (g *Gateway) Invalidate() {
	g.lock()
	defer g.unlock()
	g.invalidateLocked()
}

func (g *Gateway) invalidateLocked() {
	if g.conn != nil {
		_ = g.conn.Close()
	}
	g.conn = nil
}

func (g *Gateway) Close() error {
	g.lock()
	defer g.unlock()
	if g.conn == nil {
		return nil
	}
	err := g.conn.Close()
	g.conn = nil
	return err
}
