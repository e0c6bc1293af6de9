package dateparse

import (
	"errors"
	"testing"
	"time"

	"github.com/idilsaglam/todolist/internal/model"
)

func TestParse(t *testing.T) {
	today := model.NewDate(2024, time.March, 5) // a Tuesday
	cases := map[string]model.Date{
		"today":          today,
		" Tomorrow ":     today.AddDays(1),
		"yesterday":      today.AddDays(-1),
		"next week":      today.AddDays(7),
		"+3d":            today.AddDays(3),
		"-1d":            today.AddDays(-1),
		"2w":             today.AddDays(14),
		"in 5 days":      today.AddDays(5),
		"tue":            today,
		"friday":         today.AddDays(3),
		"monday":         today.AddDays(6),
		"2024-12-24":     model.NewDate(2024, time.December, 24),
		"05 March, 2024": today,
		"5 march, 2024":  today,
		"Mar 5, 2024":    today,
	}
	for in, want := range cases {
		got, err := Parse(in, today)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: got %v want %v", in, got, want)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	today := model.NewDate(2024, time.March, 5)
	for _, in := range []string{"", "soon", "32 March, 2024", "3x"} {
		if _, err := Parse(in, today); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestParseRefusesUnstorableYears(t *testing.T) {
	today := model.NewDate(2024, time.March, 5)
	for _, in := range []string{"+3000000d", "-800000d", "600000w", "+99999999999d", "0000-01-01"} {
		d, err := Parse(in, today)
		if !errors.Is(err, model.ErrDateRange) {
			t.Errorf("%q: got %v, %v; want ErrDateRange", in, d, err)
		}
	}
	// the last storable day is still reachable
	if d, err := Parse("9999-12-31", today); err != nil || d != model.NewDate(9999, time.December, 31) {
		t.Fatalf("9999-12-31: %v, %v", d, err)
	}
}
