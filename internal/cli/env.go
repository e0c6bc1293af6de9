package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/app"
	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/store/sqlitestore"
	"github.com/idilsaglam/todolist/internal/store/textfile"
	"github.com/idilsaglam/todolist/internal/ui"
	"github.com/idilsaglam/todolist/internal/view"
)

// env is everything a command needs, built once per invocation.
type env struct {
	cfg     config.Config
	logger  *log.Logger
	store   *store.Store
	svc     *app.Service
	closers []io.Closer
}

// setup loads config, wires logger, backend, store and service, then
// loads the data file before anything reads it.
func setup(interactive bool) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	if backend != "" {
		cfg.Storage.Backend = backend
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, usageError{err}
	}

	e := &env{cfg: cfg}
	e.logger, err = e.newLogger(interactive)
	if err != nil {
		return nil, err
	}
	ui.SetTheme(cfg.Theme)

	e.store = store.New(newBackend(cfg), store.WithLogger(e.logger))
	e.svc = app.New(e.store, app.Options{Autosave: cfg.Autosave, Logger: e.logger})
	if err := e.svc.Reload(); err != nil {
		e.close()
		return nil, err
	}
	return e, nil
}

func newBackend(cfg config.Config) store.Backend {
	switch cfg.Storage.Backend {
	case "json":
		return jsonstore.New(cfg.DataFile)
	case "sqlite":
		return sqlitestore.New(cfg.DataFile)
	default:
		return textfile.New(cfg.DataFile)
	}
}

// newLogger writes to log.file when set. Otherwise commands log to stderr
// and the TUI, which owns the terminal, logs nowhere.
func (e *env) newLogger(interactive bool) (*log.Logger, error) {
	level, err := log.ParseLevel(e.cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	// commands report their own outcome; keep stderr quiet unless asked
	if !interactive && e.cfg.Log.File == "" && logLevel == "" && level == log.InfoLevel {
		level = log.WarnLevel
	}

	var w io.Writer = os.Stderr
	switch {
	case e.cfg.Log.File != "":
		f, err := os.OpenFile(e.cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		e.closers = append(e.closers, f)
		w = f
	case interactive:
		w = io.Discard
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "todolist",
		ReportTimestamp: e.cfg.Log.File != "",
	}), nil
}

// finish persists pending changes (autosave off) and releases resources.
func (e *env) finish() error {
	defer e.close()
	if e.svc.Dirty() {
		return e.svc.Persist()
	}
	return nil
}

func (e *env) close() {
	for _, c := range e.closers {
		_ = c.Close()
	}
	e.closers = nil
}

// itemAt resolves a 1-based index into the visible list.
func (e *env) itemAt(arg string) (*model.Item, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, usagef("not a number: %s", arg)
	}
	items := e.svc.ListVisibleItems()
	if n < 1 || n > len(items) {
		return nil, usagef("index out of range: have %d, got %d (run `todolist ls` to see valid indexes)", len(items), n)
	}
	return items[n-1], nil
}

// addTodayFlag registers --today on commands that address items by index.
func addTodayFlag(cmd *cobra.Command, dst *bool) {
	cmd.Flags().BoolVar(dst, "today", false, "address the due-today list instead of the full list")
}

func (e *env) applyFilter(today bool) {
	if today {
		e.svc.SetFilterMode(view.ShowDueToday)
	}
}
