package shared

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a charmbracelet logger at the named level. debug
// forces debug level regardless of the configured one.
func SetupLogger(w io.Writer, level string, debug bool) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	if debug {
		lvl = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}

// SetupFileLogger opens (truncating) a log file for programs that own the
// terminal. The caller closes the returned file.
func SetupFileLogger(path, level string, debug bool) (*log.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := SetupLogger(f, level, debug)
	logger.SetFormatter(log.LogfmtFormatter)
	return logger, f, nil
}
