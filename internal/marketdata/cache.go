package marketdata

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/mkarvelas/marketglow/internal/database"
	"github.com/mkarvelas/marketglow/internal/domain"
)

// Cache is a TTL snapshot cache backed by the cache database. It is an
// explicit handle injected into the service, never ambient process state.
// Rows hold msgpack-encoded snapshots keyed by a caller-chosen string.
type Cache struct {
	db  *database.DB
	ttl time.Duration
	now func() time.Time
}

// NewCache creates the snapshot cache, creating its table if needed.
func NewCache(db *database.DB, ttl time.Duration) (*Cache, error) {
	_, err := db.Conn().Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			key        TEXT PRIMARY KEY,
			payload    BLOB NOT NULL,
			created_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshots table: %w", err)
	}
	return &Cache{db: db, ttl: ttl, now: time.Now}, nil
}

// Get returns the cached snapshot for key. Absent or expired entries are
// misses, not errors.
func (c *Cache) Get(key string) (domain.Snapshot, bool, error) {
	var payload []byte
	var createdAt int64
	err := c.db.Conn().QueryRow(
		`SELECT payload, created_at FROM snapshots WHERE key = ?`, key,
	).Scan(&payload, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Snapshot{}, false, nil
	}
	if err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("failed to read snapshot %q: %w", key, err)
	}

	if c.now().Unix()-createdAt > int64(c.ttl.Seconds()) {
		return domain.Snapshot{}, false, nil
	}

	var snap domain.Snapshot
	if err := msgpack.Unmarshal(payload, &snap); err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("failed to decode snapshot %q: %w", key, err)
	}
	return snap, true, nil
}

// Put stores or replaces the snapshot for key.
func (c *Cache) Put(key string, snap domain.Snapshot) error {
	payload, err := msgpack.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %q: %w", key, err)
	}

	_, err = c.db.Conn().Exec(
		`INSERT INTO snapshots (key, payload, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, created_at = excluded.created_at`,
		key, payload, c.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to store snapshot %q: %w", key, err)
	}
	return nil
}

// Clear removes every cached snapshot, forcing the next Get to miss.
func (c *Cache) Clear() error {
	if _, err := c.db.Conn().Exec(`DELETE FROM snapshots`); err != nil {
		return fmt.Errorf("failed to clear snapshot cache: %w", err)
	}
	return nil
}
