package cli

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/brandonbloom/bypass/internal/config"
)

// newLogger stays silent below warn unless BYPASS_DEBUG is set, so ordinary
// runs write nothing of their own to stderr.
func newLogger(w io.Writer, settings config.Settings) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "bypass",
		Level:  log.WarnLevel,
	})
	if settings.Debug {
		logger.SetLevel(log.DebugLevel)
	}
	switch settings.LogFormat {
	case config.FormatJSON:
		logger.SetFormatter(log.JSONFormatter)
	case config.FormatLogfmt:
		logger.SetFormatter(log.LogfmtFormatter)
	default:
		logger.SetFormatter(log.TextFormatter)
	}
	return logger
}
