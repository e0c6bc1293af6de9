package sqlitestore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/idilsaglam/todolist/internal/model"
)

const DefaultFileName = "todolist.db"

const schema = `
CREATE TABLE IF NOT EXISTS items (
	position          INTEGER PRIMARY KEY,
	short_description TEXT NOT NULL,
	details           TEXT NOT NULL DEFAULT '',
	deadline          TEXT NOT NULL
);`

// Backend keeps the collection in a SQLite file. Row position carries
// the store order.
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

func (b *Backend) open() (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)", b.path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Join(fmt.Errorf("schema apply failed"), err)
	}
	return db, nil
}

func (b *Backend) Load() ([]*model.Item, error) {
	db, err := b.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT short_description, details, deadline FROM items ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*model.Item{}
	for rows.Next() {
		var short, details, deadline string
		if err := rows.Scan(&short, &details, &deadline); err != nil {
			return nil, err
		}
		due, err := model.ParseDate(model.ISOLayout, deadline)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(items)+1, err)
		}
		items = append(items, model.NewItem(short, details, due))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Save replaces every row in one transaction. Items without a storable
// deadline are refused before the table is touched.
func (b *Backend) Save(items []*model.Item) error {
	for i, it := range items {
		if !it.Deadline.InRange() {
			return fmt.Errorf("item %d: deadline %q: %w", i+1, it.Deadline.String(), model.ErrDateRange)
		}
	}
	db, err := b.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM items`); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO items(position, short_description, details, deadline) VALUES(?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, it := range items {
		if _, err := stmt.Exec(i, it.ShortDescription, it.Details, it.Deadline.String()); err != nil {
			return fmt.Errorf("insert item %d: %w", i+1, err)
		}
	}
	return tx.Commit()
}
