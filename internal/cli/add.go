package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/dateparse"
	"github.com/idilsaglam/todolist/internal/ui"
)

var (
	addDetails string
	addDue     string
)

var addCmd = &cobra.Command{
	Use:   "add <description...>",
	Short: "Add a new item (description can be multiple words)",
	Example: `  todolist add "Buy milk" --due tomorrow
  todolist add Dentist -d checkup --due 2024-03-05`,
	Args: minArgs(1, "add <description...> --due <date> [--details <text>]"),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(false)
		if err != nil {
			return err
		}
		defer e.close()

		if strings.TrimSpace(addDue) == "" {
			return usagef("add: --due is required")
		}
		due, err := dateparse.Parse(addDue, e.svc.Today())
		if err != nil {
			return usagef("add: %v", err)
		}
		it, err := e.svc.CreateItem(strings.Join(args, " "), addDetails, due)
		if err != nil {
			return asUsage("add", err)
		}
		if err := e.finish(); err != nil {
			return err
		}
		ui.OK("added " + it.ShortDescription + " (due " + it.Deadline.Format("2 Jan 2006") + ")")
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDetails, "details", "d", "", "free-text details")
	addCmd.Flags().StringVarP(&addDue, "due", "D", "", "deadline: today, tomorrow, fri, +3d, 2024-03-05, \"05 March, 2024\"")
}
