package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/ui"
)

var lsToday bool

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List items, earliest deadline first",
	Args:  exactArgs(0, "ls [--today]"),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(false)
		if err != nil {
			return err
		}
		defer e.close()
		e.applyFilter(lsToday)

		t := ui.Current()
		items := e.svc.ListVisibleItems()
		today := e.svc.Today()
		filter := "all"
		if lsToday {
			filter = "due today"
		}

		header := fmt.Sprintf("%s  %s  %s %d  %s %d",
			ui.C(t.Title, "Todos"),
			ui.C(t.Muted, "["+filter+"]"),
			ui.C(t.Overdue, t.SymDue+" due today"), len(e.svc.DueToday()),
			ui.C(t.Accent, "Total"), e.store.Len(),
		)
		lines := []string{header, ""}
		lines = append(lines, ui.ItemLines(items, today)...)
		lines = append(lines, "")
		lines = append(lines, ui.C(t.Muted, "Tip: add with `todolist add \"Buy milk\" --due tomorrow`"))
		ui.Panel(cmd.OutOrStdout(), lines)
		return nil
	},
}

func init() {
	addTodayFlag(lsCmd, &lsToday)
}
