package store

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/model"
)

var (
	// ErrNotFound is returned when an item is not (or no longer) in the store.
	ErrNotFound = errors.New("item not found")
	// ErrNotLoaded guards against reading or overwriting data that was never loaded.
	ErrNotLoaded = errors.New("store not loaded")
)

// IOError wraps every backend failure during load or save.
type IOError struct {
	Op   string // "load" | "save"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Backend reads and writes the whole collection at once.
type Backend interface {
	Load() ([]*model.Item, error)
	Save(items []*model.Item) error
	Path() string
}

// Store owns the single ordered collection of items. Insertion order is
// the canonical order; display order belongs to the view.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	logger  *log.Logger
	items   []*model.Item
	loaded  bool
	version uint64
}

type Option func(*Store)

func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func New(b Backend, opts ...Option) *Store {
	s := &Store{
		backend: b,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path is the backing file of the configured backend.
func (s *Store) Path() string { return s.backend.Path() }

// Load replaces the collection with the backend's contents. It is
// all-or-nothing: on error the store keeps whatever it held before,
// including the not-loaded state.
func (s *Store) Load() error {
	items, err := s.backend.Load()
	if err != nil {
		s.logger.Error("load failed", "path", s.backend.Path(), "err", err)
		return &IOError{Op: "load", Path: s.backend.Path(), Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.loaded = true
	s.version++
	s.logger.Debug("loaded", "path", s.backend.Path(), "items", len(items))
	return nil
}

func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Items returns a snapshot of the collection in store order. The item
// pointers are shared with the store.
func (s *Store) Items() []*model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Version changes whenever the collection or any item in it changes.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Add appends to the end. No duplicate check.
func (s *Store) Add(it *model.Item) error {
	if it == nil {
		return errors.New("add: nil item")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}
	s.items = append(s.items, it)
	s.version++
	return nil
}

// Delete removes it by identity.
func (s *Store) Delete(it *model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}
	i := s.indexOf(it)
	if i < 0 {
		return ErrNotFound
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.version++
	return nil
}

// Update edits an item in place.
func (s *Store) Update(it *model.Item, shortDescription, details string, deadline model.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}
	if s.indexOf(it) < 0 {
		return ErrNotFound
	}
	it.Set(shortDescription, details, deadline)
	s.version++
	return nil
}

// Contains reports whether it is still in the collection.
func (s *Store) Contains(it *model.Item) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(it) >= 0
}

func (s *Store) indexOf(it *model.Item) int {
	for i, cur := range s.items {
		if cur == it {
			return i
		}
	}
	return -1
}

// Save writes the full collection in store order, replacing the file.
func (s *Store) Save() error {
	s.mu.RLock()
	if !s.loaded {
		s.mu.RUnlock()
		return ErrNotLoaded
	}
	items := slices.Clone(s.items)
	s.mu.RUnlock()

	if err := s.backend.Save(items); err != nil {
		s.logger.Error("save failed", "path", s.backend.Path(), "err", err)
		return &IOError{Op: "save", Path: s.backend.Path(), Err: err}
	}
	s.logger.Debug("saved", "path", s.backend.Path(), "items", len(items))
	return nil
}
