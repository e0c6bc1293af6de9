package sqlitestore

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/idilsaglam/todolist/internal/model"
)

func TestSQLiteStore_RoundTripKeepsOrder(t *testing.T) {
	b := New(filepath.Join(t.TempDir(), "todo.db"))

	items, err := b.Load()
	if err != nil {
		t.Fatalf("Load on fresh db: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("Expected empty db, got %d", len(items))
	}

	in := []*model.Item{
		model.NewItem("Later", "", model.NewDate(2024, time.June, 1)),
		model.NewItem("Sooner", "details", model.NewDate(2024, time.May, 1)),
		model.NewItem("Middle", "", model.NewDate(2024, time.May, 15)),
	}
	if err := b.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// A shorter second save must drop the old rows.
	if err := b.Save(in[:2]); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := b.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(out))
	}
	for i := range out {
		if *out[i] != *in[i] {
			t.Errorf("item %d: %+v != %+v", i, *out[i], *in[i])
		}
	}
}

func TestSQLiteStore_RefusesUnstorableDeadline(t *testing.T) {
	b := New(filepath.Join(t.TempDir(), "todo.db"))
	keep := []*model.Item{model.NewItem("Keep", "", model.NewDate(2024, time.May, 1))}
	if err := b.Save(keep); err != nil {
		t.Fatalf("Save: %v", err)
	}

	for _, due := range []model.Date{{}, model.NewDate(10240, time.July, 9)} {
		bad := append(keep, model.NewItem("Bad", "", due))
		if err := b.Save(bad); !errors.Is(err, model.ErrDateRange) {
			t.Fatalf("deadline %v: want ErrDateRange, got %v", due, err)
		}
	}

	out, err := b.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out) != 1 || *out[0] != *keep[0] {
		t.Fatalf("refused save touched the table: %+v", out)
	}
}
