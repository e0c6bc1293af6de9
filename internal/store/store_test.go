package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store/textfile"
)

func newTextStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "TodoListItems.txt")
	return New(textfile.New(path)), path
}

func TestStore_LoadSaveRoundTrip(t *testing.T) {
	s, path := newTextStore(t)
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	rent := model.NewItem("Pay rent", "due monthly", model.NewDate(2024, time.March, 1))
	dentist := model.NewItem("Dentist", "checkup", model.NewDate(2024, time.March, 5))
	for _, it := range []*model.Item{dentist, rent} {
		if err := s.Add(it); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	s2 := New(textfile.New(path))
	if err := s2.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got := s2.Items()
	if len(got) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(got))
	}
	// store order is insertion order, not deadline order
	if *got[0] != *dentist || *got[1] != *rent {
		t.Errorf("order not preserved: %+v, %+v", *got[0], *got[1])
	}
}

func TestStore_MalformedLoadLeavesStoreUnloaded(t *testing.T) {
	s, path := newTextStore(t)
	content := "Pay rent\tdue monthly\t01 March, 2024\nDentist\t05 March, 2024\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	err := s.Load()
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "load" {
		t.Fatalf("want load IOError, got %v", err)
	}
	if !errors.Is(err, textfile.ErrMalformed) {
		t.Errorf("want ErrMalformed in chain, got %v", err)
	}
	if s.Loaded() || s.Len() != 0 {
		t.Fatalf("store partially populated: loaded=%v len=%d", s.Loaded(), s.Len())
	}
	if err := s.Save(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("save after failed load must refuse, got %v", err)
	}
	if data, _ := os.ReadFile(path); string(data) != content {
		t.Fatal("file was modified after failed load")
	}
}

func TestStore_FailedReloadKeepsPreviousItems(t *testing.T) {
	s, path := newTextStore(t)
	if err := os.WriteFile(path, []byte("a\tb\t01 March, 2024\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("broken\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.Load(); err == nil {
		t.Fatal("expected reload failure")
	}
	if s.Len() != 1 {
		t.Fatalf("previous items lost, len=%d", s.Len())
	}
}

func TestStore_DeleteByIdentity(t *testing.T) {
	s, _ := newTextStore(t)
	_ = s.Load()
	due := model.NewDate(2024, time.March, 5)
	a := model.NewItem("same", "", due)
	b := model.NewItem("same", "", due)
	_ = s.Add(a)
	_ = s.Add(b)

	if err := s.Delete(b); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	items := s.Items()
	if len(items) != 1 || items[0] != a {
		t.Fatal("wrong item removed")
	}
	if err := s.Delete(b); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: want ErrNotFound, got %v", err)
	}
}

func TestStore_VersionBumps(t *testing.T) {
	s, _ := newTextStore(t)
	v0 := s.Version()
	_ = s.Load()
	v1 := s.Version()
	it := model.NewItem("x", "", model.NewDate(2024, 1, 1))
	_ = s.Add(it)
	v2 := s.Version()
	_ = s.Update(it, "y", "", model.NewDate(2024, 1, 2))
	v3 := s.Version()
	_ = s.Delete(it)
	v4 := s.Version()
	if !(v0 < v1 && v1 < v2 && v2 < v3 && v3 < v4) {
		t.Fatalf("versions not increasing: %d %d %d %d %d", v0, v1, v2, v3, v4)
	}
	if err := s.Update(it, "z", "", model.NewDate(2024, 1, 3)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update of removed item: %v", err)
	}
	if it.ShortDescription != "y" {
		t.Fatal("removed item was mutated")
	}
}

func TestStore_AddBeforeLoad(t *testing.T) {
	s, _ := newTextStore(t)
	if err := s.Add(model.NewItem("x", "", model.NewDate(2024, 1, 1))); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("want ErrNotLoaded, got %v", err)
	}
}

func TestStore_UnstorableDeadlineNeverReachesDisk(t *testing.T) {
	s, path := newTextStore(t)
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(model.NewItem("Pay rent", "", model.NewDate(2024, time.March, 1))); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}

	for _, due := range []model.Date{{}, model.NewDate(10240, time.July, 9)} {
		it := model.NewItem("x", "", due)
		if err := s.Add(it); err != nil {
			t.Fatal(err)
		}
		err := s.Save()
		var ioe *IOError
		if !errors.As(err, &ioe) || !errors.Is(err, textfile.ErrUnencodable) {
			t.Fatalf("deadline %v: want IOError wrapping ErrUnencodable, got %v", due, err)
		}
		if err := s.Delete(it); err != nil {
			t.Fatal(err)
		}
	}

	fresh := New(textfile.New(path))
	if err := fresh.Load(); err != nil {
		t.Fatalf("file no longer loads: %v", err)
	}
	if fresh.Len() != 1 {
		t.Fatalf("Expected 1 item, got %d", fresh.Len())
	}
}
