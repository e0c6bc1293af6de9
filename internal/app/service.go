// Package app is the surface the CLI and the TUI talk to. It validates
// form input, mutates the store, drives the filtered view and decides
// when to persist.
package app

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/view"
)

type Options struct {
	// Autosave persists after every successful mutation. When false the
	// caller persists on exit.
	Autosave bool
	Logger   *log.Logger
	View     []view.Option
}

type Service struct {
	store    *store.Store
	view     *view.Projection
	autosave bool
	dirty    bool
	logger   *log.Logger
	saved    []func()
}

func New(st *store.Store, opt Options) *Service {
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{
		store:    st,
		view:     view.New(st, opt.View...),
		autosave: opt.Autosave,
		logger:   logger,
	}
}

func (s *Service) Store() *store.Store { return s.store }

// Today is the date the due-today filter uses.
func (s *Service) Today() model.Date { return s.view.Today() }

// ListVisibleItems is the filtered, deadline-sorted list.
func (s *Service) ListVisibleItems() []*model.Item { return s.view.Items() }

// VisibleIndex locates it in the visible list, or -1.
func (s *Service) VisibleIndex(it *model.Item) int { return s.view.IndexOf(it) }

func (s *Service) FilterMode() view.FilterMode { return s.view.Mode() }

func (s *Service) SetFilterMode(m view.FilterMode) {
	s.view.SetMode(m)
	s.logger.Debug("filter", "mode", m)
}

func (s *Service) ToggleFilter() view.FilterMode {
	m := s.view.Mode().Toggle()
	s.SetFilterMode(m)
	return m
}

// DueToday lists items due today regardless of the current filter.
func (s *Service) DueToday() []*model.Item {
	return view.Apply(s.store.Items(), view.ShowDueToday, s.view.Today())
}

// Dirty reports unsaved mutations.
func (s *Service) Dirty() bool { return s.dirty }

// CreateItem trims and validates the form fields and appends a new item.
// With autosave on, a save failure is returned alongside the created item.
func (s *Service) CreateItem(shortDescription, details string, deadline model.Date) (*model.Item, error) {
	shortDescription, details = strings.TrimSpace(shortDescription), strings.TrimSpace(details)
	if err := model.Validate(shortDescription, details, deadline); err != nil {
		return nil, err
	}
	it := model.NewItem(shortDescription, details, deadline)
	if err := s.store.Add(it); err != nil {
		return nil, err
	}
	s.logger.Info("added", "item", it.ShortDescription, "deadline", it.Deadline)
	return it, s.changed()
}

// EditItem replaces all three fields of an existing item.
func (s *Service) EditItem(it *model.Item, shortDescription, details string, deadline model.Date) error {
	shortDescription, details = strings.TrimSpace(shortDescription), strings.TrimSpace(details)
	if err := model.Validate(shortDescription, details, deadline); err != nil {
		return err
	}
	if err := s.store.Update(it, shortDescription, details, deadline); err != nil {
		return err
	}
	s.logger.Info("edited", "item", it.ShortDescription, "deadline", it.Deadline)
	return s.changed()
}

// DeleteItem removes it. Deleting an item that is already gone is a no-op.
// Confirmation is the caller's job.
func (s *Service) DeleteItem(it *model.Item) error {
	err := s.store.Delete(it)
	if errors.Is(err, store.ErrNotFound) {
		s.logger.Debug("delete: item already gone")
		return nil
	}
	if err != nil {
		return err
	}
	s.logger.Info("deleted", "item", it.ShortDescription)
	return s.changed()
}

// OnPersist registers fn to run after every successful save, including
// autosaves.
func (s *Service) OnPersist(fn func()) { s.saved = append(s.saved, fn) }

func (s *Service) Persist() error {
	if err := s.store.Save(); err != nil {
		return err
	}
	s.dirty = false
	for _, fn := range s.saved {
		fn()
	}
	return nil
}

// Reload discards in-memory changes and reads the backing file again.
func (s *Service) Reload() error {
	if err := s.store.Load(); err != nil {
		return err
	}
	s.dirty = false
	s.logger.Debug("reloaded", "path", s.store.Path(), "items", s.store.Len())
	return nil
}

func (s *Service) changed() error {
	s.dirty = true
	if !s.autosave {
		return nil
	}
	return s.Persist()
}
