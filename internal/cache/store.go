package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"pizzaria-be/internal/order"
	"pizzaria-be/internal/pricing"
	"pizzaria-be/internal/utils"

	_ "modernc.org/sqlite"
)

// OrdersKey is the single slot holding the offline order list.
const OrdersKey = "pizzaone_offline_orders"

// maxID bounds the ids handed out offline. Collisions with each other or
// with remote ids are possible and accepted.
const maxID = 100000

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// Store keeps orders created while the remote store is unreachable. It is
// a single key-value slot holding the JSON encoded list, newest first.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
	newID func() int64
}

// Open opens the SQLite file at path and creates the slot table.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("cache path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &Store{sqlDB: sqlDB, now: time.Now, newID: randomID}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Create stores in as a new offline order. The total is the client
// estimate, rounded to cents, since no price authority is reachable.
func (s *Store) Create(ctx context.Context, in order.CreateOrderInput) (*order.StoredOrder, error) {
	in.ApplyDefaults()
	o := order.NewStoredOrder(in, pricing.Round(in.EstimatedTotal), s.now().UTC())
	o.ID = s.newID()

	err := s.update(ctx, func(orders []order.StoredOrder) ([]order.StoredOrder, error) {
		return append([]order.StoredOrder{o}, orders...), nil
	})
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns the offline orders, newest first.
func (s *Store) List(ctx context.Context) ([]order.StoredOrder, error) {
	var raw string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, OrdersKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []order.StoredOrder{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read cache: %w", order.ErrPersistence, err)
	}
	return decode(raw)
}

// Delete removes every offline order with id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.update(ctx, func(orders []order.StoredOrder) ([]order.StoredOrder, error) {
		kept := make([]order.StoredOrder, 0, len(orders))
		for _, o := range orders {
			if o.ID != id {
				kept = append(kept, o)
			}
		}
		if len(kept) == len(orders) {
			return nil, order.ErrNotFound
		}
		return kept, nil
	})
}

// update rewrites the slot inside one transaction.
func (s *Store) update(ctx context.Context, fn func([]order.StoredOrder) ([]order.StoredOrder, error)) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", order.ErrPersistence, err)
	}
	defer func() { _ = tx.Rollback() }()

	orders := []order.StoredOrder{}
	var raw string
	err = tx.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, OrdersKey).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return fmt.Errorf("%w: read cache: %w", order.ErrPersistence, err)
	default:
		if orders, err = decode(raw); err != nil {
			return err
		}
	}

	orders, err = fn(orders)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("%w: encode cache: %w", order.ErrPersistence, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		OrdersKey, string(payload),
	); err != nil {
		return fmt.Errorf("%w: write cache: %w", order.ErrPersistence, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", order.ErrPersistence, err)
	}
	return nil
}

func decode(raw string) ([]order.StoredOrder, error) {
	orders := []order.StoredOrder{}
	if strings.TrimSpace(raw) == "" {
		return orders, nil
	}
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		return nil, fmt.Errorf("%w: decode cache: %w", order.ErrPersistence, err)
	}
	return orders, nil
}

func randomID() int64 {
	return utils.RandomInt(maxID)
}
