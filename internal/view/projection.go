// Package view derives the list the user sees from the store: a filter
// (everything, or only items due today) followed by an ascending sort on
// the deadline. Items sharing a deadline keep their store order.
package view

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/idilsaglam/todolist/internal/model"
)

type FilterMode int

const (
	ShowAll FilterMode = iota
	ShowDueToday
)

func (m FilterMode) String() string {
	if m == ShowDueToday {
		return "today"
	}
	return "all"
}

func (m FilterMode) Toggle() FilterMode {
	if m == ShowDueToday {
		return ShowAll
	}
	return ShowDueToday
}

func ParseFilterMode(s string) (FilterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return ShowAll, nil
	case "today", "due-today", "due_today":
		return ShowDueToday, nil
	}
	return ShowAll, fmt.Errorf("unknown filter %q (want all|today)", s)
}

// Source is what the projection reads. Version must change on every
// mutation so cached results can be dropped.
type Source interface {
	Items() []*model.Item
	Version() uint64
}

// Projection is a read-through view; it is never mutated directly.
type Projection struct {
	src  Source
	mode FilterMode
	now  func() time.Time

	cached     []*model.Item
	cacheValid bool
	cacheVer   uint64
	cacheMode  FilterMode
	cacheToday model.Date
}

type Option func(*Projection)

// WithClock overrides time.Now for the due-today predicate.
func WithClock(now func() time.Time) Option {
	return func(p *Projection) { p.now = now }
}

func New(src Source, opts ...Option) *Projection {
	p := &Projection{src: src, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Projection) Mode() FilterMode { return p.mode }

// SetMode switches the predicate; the store is untouched.
func (p *Projection) SetMode(m FilterMode) { p.mode = m }

// Today is the local calendar date the due-today predicate compares to.
func (p *Projection) Today() model.Date { return model.DateOf(p.now()) }

// Items returns the visible items. The slice is a copy; the items are not.
func (p *Projection) Items() []*model.Item {
	return slices.Clone(p.current())
}

func (p *Projection) Len() int { return len(p.current()) }

// IndexOf locates an item in the visible order, or -1.
func (p *Projection) IndexOf(it *model.Item) int {
	return slices.Index(p.current(), it)
}

func (p *Projection) current() []*model.Item {
	ver := p.src.Version()
	today := p.Today()
	if p.cacheValid && ver == p.cacheVer && p.mode == p.cacheMode && today == p.cacheToday {
		return p.cached
	}
	p.cached = Apply(p.src.Items(), p.mode, today)
	p.cacheValid = true
	p.cacheVer = ver
	p.cacheMode = p.mode
	p.cacheToday = today
	return p.cached
}

// Apply filters items by mode and sorts them by deadline, stable on the
// input order.
func Apply(items []*model.Item, mode FilterMode, today model.Date) []*model.Item {
	out := make([]*model.Item, 0, len(items))
	for _, it := range items {
		if mode == ShowDueToday && !it.DueOn(today) {
			continue
		}
		out = append(out, it)
	}
	slices.SortStableFunc(out, func(a, b *model.Item) int {
		return a.Deadline.Compare(b.Deadline)
	})
	return out
}
