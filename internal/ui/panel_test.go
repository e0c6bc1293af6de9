package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/idilsaglam/todolist/internal/model"
)

func TestPanelFramesEveryLine(t *testing.T) {
	SetColorForcing(false, true)
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	Panel(&buf, []string{"short", "a longer line"})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("want 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	for _, ln := range lines {
		if len(ln) != len(lines[0]) {
			t.Fatalf("ragged frame:\n%s", buf.String())
		}
	}
	if lines[1] != "| short         |" {
		t.Fatalf("padding: %q", lines[1])
	}
}

func TestItemLines(t *testing.T) {
	SetColorForcing(false, true)
	today := model.NewDate(2024, time.March, 5)
	items := []*model.Item{
		model.NewItem("Pay rent", "due monthly", today.AddDays(-4)),
		model.NewItem("Dentist", "", today),
	}
	lines := ItemLines(items, today)
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %v", lines)
	}
	if !strings.Contains(lines[0], "01 Mar 2024") || !strings.Contains(lines[0], "Pay rent") {
		t.Errorf("row 1: %q", lines[0])
	}
	if !strings.Contains(lines[1], "due monthly") {
		t.Errorf("details row: %q", lines[1])
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[2]), "2.") {
		t.Errorf("row 2: %q", lines[2])
	}
	if got := ItemLines(nil, today); len(got) != 1 || got[0] != "no items" {
		t.Errorf("empty: %v", got)
	}
}

func TestStatusLinesFollowOutput(t *testing.T) {
	SetColorForcing(false, true)
	var out, errOut bytes.Buffer
	oldOut, oldErr := Out, Err
	SetOutput(&out, &errOut)
	defer SetOutput(oldOut, oldErr)

	OK("saved")
	Fail("boom")
	if out.String() != symCheck+" saved\n" {
		t.Fatalf("out = %q", out.String())
	}
	if errOut.String() != symCross+" boom\n" {
		t.Fatalf("err = %q", errOut.String())
	}

	// a buffer is not a terminal, so nothing is colored unless forced
	SetColorForcing(false, false)
	if got := C(fgRed, "x"); got != "x" {
		t.Fatalf("colored non-terminal output: %q", got)
	}
	SetColorForcing(true, false)
	if got := C(fgRed, "x"); got != fgRed+"x"+reset {
		t.Fatalf("forced color: %q", got)
	}
	SetColorForcing(false, true)
}
