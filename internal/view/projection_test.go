package view

import (
	"path/filepath"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/store/textfile"
)

func fixedClock(d model.Date) func() time.Time {
	return func() time.Time {
		return time.Date(d.Year(), d.Month(), d.Day(), 15, 30, 0, 0, time.Local)
	}
}

func loadedStore(t *testing.T, items ...*model.Item) *store.Store {
	t.Helper()
	s := store.New(textfile.New(filepath.Join(t.TempDir(), "todo.txt")))
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	for _, it := range items {
		if err := s.Add(it); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestProjection_Scenario(t *testing.T) {
	rent := model.NewItem("Pay rent", "due monthly", model.NewDate(2024, time.March, 1))
	dentist := model.NewItem("Dentist", "checkup", model.NewDate(2024, time.March, 5))
	// stored out of deadline order on purpose
	s := loadedStore(t, dentist, rent)
	p := New(s, WithClock(fixedClock(model.NewDate(2024, time.March, 5))))

	p.SetMode(ShowDueToday)
	got := p.Items()
	if len(got) != 1 || got[0] != dentist {
		t.Fatalf("due today = %v", got)
	}

	p.SetMode(ShowAll)
	got = p.Items()
	if len(got) != 2 || got[0] != rent || got[1] != dentist {
		t.Fatalf("all = %v", got)
	}
	if s.Len() != 2 || s.Items()[0] != dentist {
		t.Fatal("switching the filter mutated the store")
	}
}

func TestProjection_FollowsStoreWithoutRebuild(t *testing.T) {
	today := model.NewDate(2024, time.March, 5)
	s := loadedStore(t)
	p := New(s, WithClock(fixedClock(today)))
	if p.Len() != 0 {
		t.Fatal("expected empty view")
	}

	a := model.NewItem("a", "", today)
	_ = s.Add(a)
	if p.Len() != 1 {
		t.Fatal("add not visible")
	}

	_ = s.Update(a, "a", "", today.AddDays(1))
	p.SetMode(ShowDueToday)
	if p.Len() != 0 {
		t.Fatal("edit of deadline not visible in due-today view")
	}

	p.SetMode(ShowAll)
	_ = s.Delete(a)
	if p.Len() != 0 || p.IndexOf(a) != -1 {
		t.Fatal("delete not visible")
	}
}

func TestProjection_DayRollover(t *testing.T) {
	day := model.NewDate(2024, time.March, 5)
	now := fixedClock(day)
	s := loadedStore(t, model.NewItem("x", "", day.AddDays(1)))
	p := New(s, WithClock(func() time.Time { return now() }))
	p.SetMode(ShowDueToday)
	if p.Len() != 0 {
		t.Fatal("not due yet")
	}
	now = fixedClock(day.AddDays(1))
	if p.Len() != 1 {
		t.Fatal("view did not follow the new day")
	}
}

func TestApply_SortedStableAndFiltered(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := model.NewDate(2024, time.January, 1)
		today := base.AddDays(rapid.IntRange(0, 5).Draw(t, "today"))
		offsets := rapid.SliceOfN(rapid.IntRange(0, 5), 0, 30).Draw(t, "offsets")
		items := make([]*model.Item, len(offsets))
		order := map[*model.Item]int{}
		for i, off := range offsets {
			items[i] = model.NewItem("t", "", base.AddDays(off))
			order[items[i]] = i
		}

		all := Apply(items, ShowAll, today)
		if len(all) != len(items) {
			t.Fatalf("ShowAll dropped items: %d of %d", len(all), len(items))
		}
		for i := 1; i < len(all); i++ {
			c := all[i-1].Deadline.Compare(all[i].Deadline)
			if c > 0 {
				t.Fatalf("not sorted at %d", i)
			}
			if c == 0 && order[all[i-1]] > order[all[i]] {
				t.Fatalf("tie at %d broke store order", i)
			}
		}

		due := Apply(items, ShowDueToday, today)
		want := 0
		for _, it := range items {
			if it.Deadline == today {
				want++
			}
		}
		if len(due) != want {
			t.Fatalf("due-today returned %d, want %d", len(due), want)
		}
		for _, it := range due {
			if it.Deadline != today {
				t.Fatalf("item due %v leaked into due-today", it.Deadline)
			}
		}
	})
}

func TestParseFilterMode(t *testing.T) {
	for in, want := range map[string]FilterMode{"": ShowAll, "all": ShowAll, "Today": ShowDueToday} {
		got, err := ParseFilterMode(in)
		if err != nil || got != want {
			t.Errorf("%q: got %v, %v", in, got, err)
		}
	}
	if _, err := ParseFilterMode("week"); err == nil {
		t.Error("expected error")
	}
	if ShowAll.Toggle() != ShowDueToday || ShowDueToday.Toggle() != ShowAll {
		t.Error("toggle broken")
	}
}
