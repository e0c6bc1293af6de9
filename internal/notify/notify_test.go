package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/idilsaglam/todolist/internal/model"
)

func TestFormatDueToday(t *testing.T) {
	_, msg := FormatDueToday(nil)
	if msg != "Nothing due today." {
		t.Errorf("empty: %q", msg)
	}
	d := model.NewDate(2024, time.March, 5)
	_, msg = FormatDueToday([]*model.Item{model.NewItem("Dentist", "", d)})
	if !strings.HasPrefix(msg, "1 item due today:") || !strings.Contains(msg, "Dentist") {
		t.Errorf("single: %q", msg)
	}
	_, msg = FormatDueToday([]*model.Item{model.NewItem("a", "", d), model.NewItem("b", "", d)})
	if !strings.HasPrefix(msg, "2 items due today:") {
		t.Errorf("plural: %q", msg)
	}
}
