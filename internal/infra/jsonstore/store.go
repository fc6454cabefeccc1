// Package jsonstore contains the embedded document store backing all
// persistence: the whole dataset lives in memory as typed collections and is
// rewritten to a single JSON file after every mutation. Repositories in this
// package share the store's lock, so any number of readers proceed in
// parallel while mutations are fully serialized, preserving cross-collection
// consistency without a database.
package jsonstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"homeplate/config"
	"homeplate/internal/domain/entity"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dataset is the durable file layout: one key per collection, each an ordered
// sequence of records. Insertion order is collection order.
type dataset struct {
	Admins       []entity.Admin        `json:"admins"`
	Users        []entity.User         `json:"users"`
	Products     []entity.Product      `json:"products"`
	Orders       []entity.Order        `json:"orders"`
	OrderItems   []entity.OrderItem    `json:"order_items"`
	Payments     []entity.Payment      `json:"payments"`
	BusinessInfo []entity.BusinessInfo `json:"business_info"`
}

func defaultDataset() *dataset {
	return &dataset{
		Admins:       []entity.Admin{},
		Users:        []entity.User{},
		Products:     []entity.Product{},
		Orders:       []entity.Order{},
		OrderItems:   []entity.OrderItem{},
		Payments:     []entity.Payment{},
		BusinessInfo: []entity.BusinessInfo{},
	}
}

// Store is the in-memory authoritative copy of all collections, synchronized
// to a single JSON file on every write. Mutations hold the write lock through
// the flush, so a mutation either lands on disk before its operation returns
// or the operation fails.
type Store struct {
	mu     sync.RWMutex
	path   string
	logger *slog.Logger
	now    func() time.Time
	data   *dataset
}

// Params holds the store's dependencies, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the store at the configured path and registers a final flush on
// application stop.
func New(params Params) (*Store, error) {
	store, err := Open(params.Config.Store.Path(), params.Logger)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Open loads (or initializes) the dataset file at path. A missing file is
// created with empty collections; an unreadable or unparseable file is logged
// and replaced in memory with empty collections, leaving the broken file on
// disk until the next mutation overwrites it.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create data directory")
	}

	store := &Store{
		path:   path,
		logger: logger,
		now:    time.Now,
		data:   defaultDataset(),
	}

	if err := store.load(); err != nil {
		return nil, err
	}

	return store, nil
}

// Close flushes the dataset one final time so disk matches memory at shutdown.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.flushLocked()
}

func (s *Store) load() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.mu.Lock()
		defer s.mu.Unlock()

		return s.flushLocked()
	}
	if err != nil {
		return errors.Wrap(err, "read dataset file")
	}

	loaded := defaultDataset()
	if err := json.Unmarshal(raw, loaded); err != nil {
		// Corrupt persisted state is recoverable: start from defaults and
		// keep serving. The broken file stays untouched until the next write.
		s.logger.Warn("dataset file unparseable, starting with empty collections",
			slog.String("path", s.path),
			slog.Any("error", err),
		)
		s.data = defaultDataset()

		return nil
	}

	s.data = loaded

	return nil
}

// flushLocked rewrites the whole dataset file. Callers must hold the write
// lock. A write failure propagates: memory is then ahead of disk until the
// next successful flush.
func (s *Store) flushLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal dataset")
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return errors.Wrap(err, "write dataset file")
	}

	return nil
}

// stamp returns now for created_at fields, resolution preserved by RFC 3339.
func (s *Store) stamp() time.Time {
	return s.now()
}

// first returns a copy of the first record satisfying pred, scanning in
// stored order.
func first[T any](list []T, pred func(*T) bool) (T, bool) {
	for i := range list {
		if pred(&list[i]) {
			return list[i], true
		}
	}

	var zero T

	return zero, false
}

// filter returns pointers to copies of every record satisfying pred, in
// stored order. A nil pred selects everything.
func filter[T any](list []T, pred func(*T) bool) []*T {
	out := make([]*T, 0, len(list))
	for i := range list {
		if pred == nil || pred(&list[i]) {
			record := list[i]
			out = append(out, &record)
		}
	}

	return out
}

// count returns the number of records satisfying pred.
func count[T any](list []T, pred func(*T) bool) int {
	n := 0
	for i := range list {
		if pred == nil || pred(&list[i]) {
			n++
		}
	}

	return n
}

// nextID computes the auto-increment id for an insert: max existing id + 1.
// Removing the record holding the maximum id frees that id for reuse.
func nextID[T any](list []T, id func(*T) int64) int64 {
	var maxID int64
	for i := range list {
		if v := id(&list[i]); v > maxID {
			maxID = v
		}
	}

	return maxID + 1
}

// removeAll deletes every record satisfying pred, reporting whether any were
// removed.
func removeAll[T any](list []T, pred func(*T) bool) ([]T, bool) {
	kept := list[:0]
	removed := false
	for i := range list {
		if pred(&list[i]) {
			removed = true

			continue
		}
		kept = append(kept, list[i])
	}

	return kept, removed
}
