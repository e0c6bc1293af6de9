package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/dateparse"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

var (
	editToday   bool
	editDesc    string
	editDetails string
	editDue     string
)

var editCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Change the description, details or deadline of an item",
	Example: `  todolist edit 2 --due +1w
  todolist edit 1 --today --details "bring the insurance card"`,
	Args: exactArgs(1, "edit <index> [--description <text>] [--details <text>] [--due <date>]"),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(false)
		if err != nil {
			return err
		}
		defer e.close()
		e.applyFilter(editToday)

		it, err := e.itemAt(args[0])
		if err != nil {
			return err
		}
		f := cmd.Flags()
		if !f.Changed("description") && !f.Changed("details") && !f.Changed("due") {
			return usagef("edit: nothing to change (use --description, --details or --due)")
		}

		desc, details, due := it.ShortDescription, it.Details, it.Deadline
		if f.Changed("description") {
			desc = editDesc
		}
		if f.Changed("details") {
			details = editDetails
		}
		if f.Changed("due") {
			if due, err = dateparse.Parse(editDue, e.svc.Today()); err != nil {
				return usagef("edit: %v", err)
			}
		}
		if err := e.svc.EditItem(it, desc, details, due); err != nil {
			return asUsage("edit", err)
		}
		if err := e.finish(); err != nil {
			return err
		}
		ui.OK("updated " + it.ShortDescription)
		return nil
	},
}

// asUsage turns validation failures into usage errors (exit 2).
func asUsage(op string, err error) error {
	if errors.Is(err, model.ErrValidation) {
		return usagef("%s: %v", op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func init() {
	addTodayFlag(editCmd, &editToday)
	editCmd.Flags().StringVar(&editDesc, "description", "", "new short description")
	editCmd.Flags().StringVarP(&editDetails, "details", "d", "", "new details")
	editCmd.Flags().StringVarP(&editDue, "due", "D", "", "new deadline")
}
