package clock

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/oshokin/alarm-clock/internal/logger"
)

// warnIfAlreadyRunning logs a warning when another process with this
// executable's name is already running, since two alarms racing for the
// audio device is rarely intended. The scan is best-effort: enumeration
// failures are logged at debug level and the alarm is armed regardless.
func warnIfAlreadyRunning(ctx context.Context) {
	processes, err := ps.Processes()
	if err != nil {
		logger.DebugKV(ctx, "Process scan failed", "error", err)
		return
	}

	self := os.Getpid()
	name := executableName(os.Args[0])

	for _, process := range processes {
		if process.Pid() == self {
			continue
		}

		if executableName(process.Executable()) == name {
			logger.WarnKV(ctx, "Another alarm process is already running",
				"pid", process.Pid())
			return
		}
	}
}

// executableName reduces a path to a comparable base name, dropping the
// Windows ".exe" suffix.
func executableName(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(strings.ToLower(base), ".exe")
}
