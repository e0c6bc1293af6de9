package notify

import (
	"fmt"
	"strings"

	"github.com/gen2brain/beeep"

	"github.com/idilsaglam/todolist/internal/model"
)

// DueToday pops a desktop notification listing today's items.
func DueToday(items []*model.Item) error {
	title, msg := FormatDueToday(items)
	return beeep.Notify(title, msg, "")
}

func FormatDueToday(items []*model.Item) (string, string) {
	title := "Due today"
	if len(items) == 0 {
		return title, "Nothing due today."
	}
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, "• "+it.ShortDescription)
	}
	noun := "items"
	if len(items) == 1 {
		noun = "item"
	}
	return title, fmt.Sprintf("%d %s due today:\n%s", len(items), noun, strings.Join(names, "\n"))
}
