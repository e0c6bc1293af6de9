package cli

import (
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

var (
	rmToday bool
	rmYes   bool
)

// confirmDelete asks before removing. Swappable in tests.
var confirmDelete = func(it *model.Item) (bool, error) {
	ok := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete item: " + it.ShortDescription).
				Description("Due " + it.Deadline.Format(model.DisplayLayout)).
				Affirmative("Delete").
				Negative("Keep").
				Value(&ok),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}

func isTerminal() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

var rmCmd = &cobra.Command{
	Use:   "rm <index>",
	Short: "Remove the item at a 1-based index",
	Args:  exactArgs(1, "rm <index> [--today] [--yes]"),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(false)
		if err != nil {
			return err
		}
		defer e.close()
		e.applyFilter(rmToday)

		it, err := e.itemAt(args[0])
		if err != nil {
			return err
		}
		if !rmYes {
			if !isTerminal() {
				return usagef("rm: stdin is not a terminal; pass --yes to delete without asking")
			}
			ok, err := confirmDelete(it)
			if err != nil {
				return err
			}
			if !ok {
				ui.Warn("kept " + it.ShortDescription)
				return nil
			}
		}
		if err := e.svc.DeleteItem(it); err != nil {
			return err
		}
		if err := e.finish(); err != nil {
			return err
		}
		ui.OK("removed " + it.ShortDescription)
		return nil
	},
}

func init() {
	addTodayFlag(rmCmd, &rmToday)
	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "delete without asking")
}
