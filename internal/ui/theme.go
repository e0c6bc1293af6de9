package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All CLI renderers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Overdue, Soon string
	CornerTL, CornerTR, CornerBL, CornerBR              string
	H, V                                                string
	SymDue, SymOverdue, SymBullet                       string
}

var current = classic()

func classic() Theme {
	return Theme{
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed, Overdue: fgRed, Soon: fgYellow,
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
		SymDue: "⚑", SymOverdue: "!", SymBullet: "•",
	}
}

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Overdue: "\033[91m", Soon: "\033[93m",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymDue: "⚑", SymOverdue: "‼", SymBullet: "•",
		}
	case "mono":
		disableColor = true
		current = Theme{
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymDue: "*", SymOverdue: "!", SymBullet: "-",
		}
	default: // classic
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }
