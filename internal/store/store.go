// Package store implements the persistence, migration, and query layer for
// Worktop. All entity collections live in a key-value backing store as JSON
// arrays under a versioned schema; every getter reads the full collection
// fresh and returns a copy, so callers never hold a reference into storage.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/worktop/internal/kv"
)

// Backing store keys. The "projects" collection was named "clients" before
// the v2 schema generation; the legacy key survives only as migration input.
const (
	keySchemaVersion   = "schemaVersion"
	keyRequests        = "requests"
	keyInProgressItems = "inProgressItems"
	keyReports         = "reports"
	keyProjects        = "projects"
	keyClientsLegacy   = "clients"
	keyDocuments       = "documents"
	keyDashboardLinks  = "dashboardLinks"
	keyControlItems    = "controlItems"
)

// Store owns all persisted entity collections. Construct with New, then call
// Open once at startup to run pending schema migrations.
type Store struct {
	backing kv.Store
	log     *zap.Logger
	now     func() time.Time
	newID   func() string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for soft-recovered read failures.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides ID generation. Used by tests.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New creates a Store over the given backing key-value store.
func New(backing kv.Store, opts ...Option) *Store {
	s := &Store{
		backing: backing,
		log:     zap.NewNop(),
		now:     time.Now,
		newID:   generateID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open brings the persisted schema up to the current version. It must be
// called once before any read or write operation. Open is idempotent:
// re-running migrations at the current version is a no-op.
func (s *Store) Open() error {
	return s.migrate()
}

// Close releases the backing store.
func (s *Store) Close() error {
	return s.backing.Close()
}

// generateID generates a UUID v7 (timestamp-ordered plus random suffix)
// for entity IDs, falling back to UUID v4 if v7 generation fails.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// readCollection reads the full collection under key and decodes it.
// Read failures recover soft: a missing key, a backend error, or corrupt
// JSON all yield an empty collection so the rest of the system degrades to
// "no data" instead of failing.
func readCollection[T any](s *Store, key string) []T {
	raw, err := s.backing.Get(key)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			s.log.Warn("collection read failed", zap.String("key", key), zap.Error(err))
		}
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Warn("collection is corrupt, treating as empty",
			zap.String("key", key), zap.Error(err))
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// writeCollection persists the whole collection under key. Write failures
// are reported to the caller; in-memory state is not rolled back.
func writeCollection[T any](s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.backing.Set(key, data); err != nil {
		return fmt.Errorf("persisting %s: %w", key, err)
	}
	return nil
}

// deleteByID removes the record with the given ID from items.
// The second return value reports whether anything was removed.
func deleteByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	for i, item := range items {
		if idOf(item) == id {
			return append(items[:i:i], items[i+1:]...), true
		}
	}
	return items, false
}

// trim removes leading and trailing whitespace from a user-supplied field.
func trim(s string) string {
	return strings.TrimSpace(s)
}
