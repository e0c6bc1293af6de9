package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/notify"
	"github.com/idilsaglam/todolist/internal/ui"
)

var remindQuiet bool

// sendReminder is replaced in tests so no desktop notification pops up.
var sendReminder = notify.DueToday

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Show a desktop notification for items due today",
	Long: `remind is meant for cron or a login hook. It prints today's items and
sends one desktop notification listing them.`,
	Args: exactArgs(0, "remind [--quiet]"),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(false)
		if err != nil {
			return err
		}
		defer e.close()

		due := e.svc.DueToday()
		title, msg := notify.FormatDueToday(due)
		fmt.Fprintln(cmd.OutOrStdout(), msg)

		if !e.cfg.Reminder.Enabled {
			e.logger.Info("reminders disabled in config")
			return nil
		}
		if len(due) == 0 && remindQuiet {
			return nil
		}
		if err := sendReminder(due); err != nil {
			return fmt.Errorf("notify: %w", err)
		}
		e.logger.Debug("reminder sent", "title", title, "items", len(due))
		ui.OK("reminder sent")
		return nil
	},
}

func init() {
	remindCmd.Flags().BoolVarP(&remindQuiet, "quiet", "q", false, "no notification when nothing is due")
}
