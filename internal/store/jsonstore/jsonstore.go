package jsonstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/idilsaglam/todolist/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// Unlike the text format it has no trouble with tabs or newlines.

const DefaultFileName = "todos.json"

type Backend struct {
	path string
}

func New(path string) *Backend {
	if path == "" {
		path = DefaultFileName
	}
	return &Backend{path: path}
}

func (b *Backend) Path() string { return b.path }

func (b *Backend) Load() ([]*model.Item, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []*model.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	for i, it := range items {
		if it == nil || it.Deadline.IsZero() {
			return nil, fmt.Errorf("item %d: missing deadline", i+1)
		}
		if !it.Deadline.InRange() {
			return nil, fmt.Errorf("item %d: %w", i+1, model.ErrDateRange)
		}
	}
	if items == nil {
		items = []*model.Item{}
	}
	return items, nil
}

func (b *Backend) Save(items []*model.Item) error {
	for i, it := range items {
		if !it.Deadline.InRange() {
			return fmt.Errorf("item %d: deadline %q: %w", i+1, it.Deadline.String(), model.ErrDateRange)
		}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(b.path, data, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
