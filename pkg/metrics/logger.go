package metrics

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Environment overrides for logging setup.
const (
	EnvLogLevel  = "QOSST_LOG_LEVEL"
	EnvLogFormat = "QOSST_LOG_FORMAT"
)

var configureOnce sync.Once

// ConfigureLogging initializes the global zerolog logger once. The level
// string accepts zerolog's names (debug, info, warn, error) plus "silent";
// the QOSST_LOG_LEVEL and QOSST_LOG_FORMAT environment variables override
// the arguments. Format "console" enables human-readable output, anything
// else stays JSON.
func ConfigureLogging(level, format string) {
	configureOnce.Do(func() {
		if env := os.Getenv(EnvLogLevel); env != "" {
			level = env
		}
		if env := os.Getenv(EnvLogFormat); env != "" {
			format = env
		}
		zerolog.SetGlobalLevel(parseLevel(level))
		var out io.Writer = os.Stderr
		if strings.EqualFold(format, "console") {
			out = zerolog.ConsoleWriter{Out: os.Stderr}
		}
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
		log := zerolog.New(out).With().Timestamp().Logger()
		zerolog.DefaultContextLogger = &log
	})
}

// NewLogger returns a component-scoped logger writing to w.
func NewLogger(w io.Writer, component string) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Str("component", component).Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "silent", "off", "none":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
