package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const notifyChannel = "fave_store_changes"

// Postgres is the shared Store backend. Writes NOTIFY on a fixed channel so
// change notifications reach subscribers in every connected process, not
// just the writing one.
type Postgres struct {
	pool   *pgxpool.Pool
	hub    *hub
	cancel context.CancelFunc
}

// ConnectPostgres establishes a connection pool, ensures the kv table
// exists, and starts the notification listener.
func ConnectPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BYTEA NOT NULL,
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)
	`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	listenCtx, cancel := context.WithCancel(context.Background())
	p := &Postgres{pool: pool, hub: newHub(), cancel: cancel}
	go p.listen(listenCtx)

	log.Println("postgres store connection established")
	return p, nil
}

func (p *Postgres) Read(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := p.pool.QueryRow(ctx, "SELECT value FROM kv WHERE key = $1", key).Scan(&value)
	if err == pgx.ErrNoRows {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

func (p *Postgres) Write(ctx context.Context, key string, value []byte) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	// The broadcast rides on LISTEN/NOTIFY so other processes sharing the
	// database observe the change too. Our own listener fans it back into
	// the local hub.
	_, err = p.pool.Exec(ctx, "SELECT pg_notify($1, $2)", notifyChannel, key)
	if err != nil {
		log.Printf("store: notify after write %s failed: %v", key, err)
	}
	return nil
}

func (p *Postgres) Subscribe(ctx context.Context) <-chan string {
	return p.hub.subscribe(ctx)
}

// listen holds a dedicated connection on LISTEN and fans notifications into
// the hub. Reconnects with a short backoff until the store is closed.
func (p *Postgres) listen(ctx context.Context) {
	for ctx.Err() == nil {
		if err := p.listenOnce(ctx); err != nil && ctx.Err() == nil {
			log.Printf("store: notification listener error, reconnecting: %v", err)
			select {
			case <-time.After(2 * time.Second):
			case <-ctx.Done():
			}
		}
	}
}

func (p *Postgres) listenOnce(ctx context.Context) error {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		return err
	}

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		p.hub.broadcast(notification.Payload)
	}
}

func (p *Postgres) Close() {
	p.cancel()
	p.pool.Close()
	log.Println("postgres store connection closed")
}
