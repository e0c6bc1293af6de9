package version

import (
	"fmt"
	"runtime"
)

// Build metadata injected by the makefile via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func Info() string {
	if Version == "dev" {
		return fmt.Sprintf("todolist dev (%s/%s)", runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("todolist %s (commit: %s, built: %s, %s/%s)",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
