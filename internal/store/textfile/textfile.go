package textfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/todolist/internal/model"
)

// DefaultFileName matches the file name earlier versions wrote.
const DefaultFileName = "TodoListItems.txt"

// Backend keeps the collection in a single text file.
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

// Load returns an empty collection when the file does not exist yet.
func (b *Backend) Load() ([]*model.Item, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Save encodes into memory first, then replaces the file through a
// sibling temp file so a failed write never leaves it half written.
func (b *Backend) Save(items []*model.Item) error {
	var buf bytes.Buffer
	if err := Encode(&buf, items); err != nil {
		return err
	}
	return writeFileAtomic(b.path, buf.Bytes())
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
