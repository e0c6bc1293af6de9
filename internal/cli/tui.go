package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/ui"
	"github.com/idilsaglam/todolist/internal/version"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive list",
	Args:  exactArgs(0, "tui"),
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("unknown subcommand: %s", args[0])
	}
	e, err := setup(true)
	if err != nil {
		return err
	}
	defer e.close()

	opt := ui.RunOptions{Logger: e.logger}
	if e.cfg.Watch {
		opt.WatchPath = e.store.Path()
	}
	return ui.Run(e.svc, opt)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  exactArgs(0, "version"),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Info())
	},
}
