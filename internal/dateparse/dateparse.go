package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/idilsaglam/todolist/internal/model"
)

var relativeRe = regexp.MustCompile(`^(?:in\s+)?([+-]?\d+)\s*(d|day|days|w|week|weeks)$`)

// maxOffsetDays spans the whole storable calendar; larger offsets can only
// land outside it.
const maxOffsetDays = (model.MaxYear - model.MinYear + 1) * 366

var layouts = []string{
	model.ISOLayout,
	"2006/01/02",
	model.DisplayLayout, // also accepts the zero-padded file layout
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// Parse turns user input into a deadline. It understands today, tomorrow,
// yesterday, weekday names (next occurrence, today included), offsets like
// "+3d", "2w" or "in 5 days", and a handful of absolute layouts.
// Results outside model.MinYear..model.MaxYear are refused.
func Parse(input string, today model.Date) (model.Date, error) {
	d, err := parse(input, today)
	if err != nil {
		return model.Date{}, err
	}
	if !d.InRange() {
		return model.Date{}, fmt.Errorf("%s: %w", strings.TrimSpace(input), model.ErrDateRange)
	}
	return d, nil
}

func parse(input string, today model.Date) (model.Date, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return model.Date{}, fmt.Errorf("empty date input")
	}

	switch s {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	case "next week":
		return today.AddDays(7), nil
	}

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		if s == name || s == name[:3] {
			cur := today.AsTime().Weekday()
			return today.AddDays((int(wd) - int(cur) + 7) % 7), nil
		}
	}

	if m := relativeRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return model.Date{}, fmt.Errorf("unable to parse date: %s", input)
		}
		if strings.HasPrefix(m[2], "w") {
			n *= 7
		}
		if n > maxOffsetDays || n < -maxOffsetDays {
			return model.Date{}, fmt.Errorf("%s: %w", strings.TrimSpace(input), model.ErrDateRange)
		}
		return today.AddDays(n), nil
	}

	for _, layout := range layouts {
		if d, err := model.ParseDate(layout, strings.TrimSpace(input)); err == nil {
			return d, nil
		}
	}
	return model.Date{}, fmt.Errorf("unable to parse date: %s", input)
}
