package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/model"
)

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	t := Current()
	// lipgloss.Width ignores ANSI sequences and counts wide runes
	maxw := 0
	for _, ln := range lines {
		if vw := lipgloss.Width(ln); vw > maxw {
			maxw = vw
		}
	}
	pad := func(s string) string {
		if vis := lipgloss.Width(s); vis < maxw {
			s = s + strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(w, t.V+" "+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}

// UrgencyColor maps a deadline bucket to a theme color.
func UrgencyColor(u model.Urgency) string {
	t := Current()
	switch u {
	case model.UrgencyOverdue, model.UrgencyToday:
		return t.Overdue
	case model.UrgencyTomorrow:
		return t.Soon
	default:
		return ""
	}
}

// ItemLines renders a numbered listing, one row per item, plus an
// indented details line when the item has details.
func ItemLines(items []*model.Item, today model.Date) []string {
	t := Current()
	if len(items) == 0 {
		return []string{C(t.Muted, "no items")}
	}
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		u := it.Urgency(today)
		sym := t.SymBullet
		switch u {
		case model.UrgencyOverdue:
			sym = t.SymOverdue
		case model.UrgencyToday:
			sym = t.SymDue
		}
		desc := it.ShortDescription
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s  %s",
			Dim(fmt.Sprintf("%2d.", i+1)),
			C(UrgencyColor(u), sym),
			C(UrgencyColor(u), it.Deadline.Format("02 Jan 2006")),
			desc,
		))
		if it.Details != "" {
			out = append(out, "     "+C(t.Muted, it.Details))
		}
	}
	return out
}
