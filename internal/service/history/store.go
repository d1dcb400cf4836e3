// Package history keeps the capped list of past calculations. The list lives
// as one JSON array under a single key of a repository.KeyValueStore. History
// is a convenience feature: medium failures are logged and swallowed.
package history

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/bmicare/internal/domain/models"
	"github.com/mamadbah2/bmicare/internal/repository"
)

const (
	// DefaultKey is the record name the history array is stored under.
	DefaultKey = "bmi-history"
	// DefaultCapacity is the number of entries retained.
	DefaultCapacity = 50
)

// Store is the append-only, capacity-bounded history.
type Store struct {
	kv       repository.KeyValueStore
	key      string
	capacity int
	logger   *zap.Logger
	now      func() time.Time

	mu     sync.Mutex
	lastID int64
}

// NewStore wires a history store over kv. Empty key and non-positive capacity
// fall back to the defaults.
func NewStore(kv repository.KeyValueStore, key string, capacity int, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if key == "" {
		key = DefaultKey
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		kv:       kv,
		key:      key,
		capacity: capacity,
		logger:   logger,
		now:      time.Now,
	}
}

// Capacity returns the retention limit.
func (s *Store) Capacity() int {
	return s.capacity
}

// Append stamps the entry with an id and timestamp, appends it and drops the
// oldest entries beyond capacity. The stamped entry is returned even when the
// write is skipped.
func (s *Store) Append(ctx context.Context, in models.NewHistoryEntry) models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load(ctx)

	now := s.now()
	entry := models.HistoryEntry{
		ID:            s.nextID(now, entries),
		Timestamp:     now.UnixMilli(),
		Age:           in.Age,
		Height:        in.Height,
		Weight:        in.Weight,
		BMI:           in.BMI,
		Category:      in.Category,
		CategoryLabel: in.CategoryLabel,
	}

	entries = append(entries, entry)
	if len(entries) > s.capacity {
		entries = entries[len(entries)-s.capacity:]
	}

	s.save(ctx, entries)
	return entry
}

// List returns the entries oldest first.
func (s *Store) List(ctx context.Context) []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Get returns the entry with id.
func (s *Store) Get(ctx context.Context, id string) (models.HistoryEntry, bool) {
	for _, entry := range s.List(ctx) {
		if entry.ID == id {
			return entry, true
		}
	}
	return models.HistoryEntry{}, false
}

// Remove deletes the entry with id. An unknown id leaves the history untouched.
func (s *Store) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load(ctx)
	kept := entries[:0]
	for _, entry := range entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(entries) {
		return
	}
	s.save(ctx, kept)
}

// Clear empties the history.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, s.key); err != nil {
		s.logger.Warn("history clear skipped", zap.String("key", s.key), zap.Error(err))
	}
}

// nextID derives the id from the creation time in milliseconds, moved past
// every id already issued or stored so two entries never share one.
func (s *Store) nextID(now time.Time, existing []models.HistoryEntry) string {
	id := now.UnixMilli()
	floor := s.lastID
	for _, entry := range existing {
		if n, err := strconv.ParseInt(entry.ID, 10, 64); err == nil && n > floor {
			floor = n
		}
	}
	if id <= floor {
		id = floor + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func (s *Store) load(ctx context.Context) []models.HistoryEntry {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("history read failed, treating as empty", zap.String("key", s.key), zap.Error(err))
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var entries []models.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.logger.Warn("history record unparseable, treating as empty", zap.String("key", s.key), zap.Error(err))
		return nil
	}
	return entries
}

func (s *Store) save(ctx context.Context, entries []models.HistoryEntry) {
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		s.logger.Warn("history encode failed, write skipped", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, s.key, string(payload)); err != nil {
		s.logger.Warn("history write skipped", zap.String("key", s.key), zap.Error(err))
	}
}

// CategoryColor returns the color a history row is drawn with.
func CategoryColor(category models.Category) string {
	return category.Color()
}
