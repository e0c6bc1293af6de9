package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/ui"
)

// Root flags (apply to every subcommand)
var (
	configPath string
	dataFile   string
	backend    string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "todolist",
	Short: "A small to-do list with deadlines",
	Long: `todolist keeps tasks with a short description, free-text details and a
deadline. Run it without a subcommand for the interactive list.`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runTUI,
}

// usageError marks errors that should exit with code 2.
type usageError struct{ error }

func usagef(format string, a ...any) error { return usageError{fmt.Errorf(format, a...)} }

func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usagef("usage: todolist %s", usage)
		}
		return nil
	}
}

func minArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return usagef("usage: todolist %s", usage)
		}
		return nil
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default ~/.config/todolist/config.yaml)")
	pf.StringVarP(&dataFile, "file", "f", "", "data file (overrides data_file)")
	pf.StringVar(&backend, "backend", "", "storage backend: text|json|sqlite (overrides storage.backend)")
	pf.StringVar(&logLevel, "log-level", "", "debug|info|warn|error (overrides log.level)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	rootCmd.AddCommand(lsCmd, addCmd, editCmd, rmCmd, remindCmd, tuiCmd, versionCmd)
}

// Execute runs the command tree and returns an exit code (0 ok, 1 error, 2 usage).
func Execute() int {
	return run(rootCmd)
}

func run(cmd *cobra.Command) int {
	ui.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}
