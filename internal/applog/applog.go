package applog

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// scopeFieldName defines the key for the "scope" field in structured logs.
const scopeFieldName = "scope"

// NewLogger creates a console logger writing to stderr, so that command
// output on stdout stays clean.
func NewLogger(debug bool) zerolog.Logger {
	return newLogger(os.Stderr, debug)
}

func newLogger(out io.Writer, debug bool) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			scopeFieldName,
			zerolog.MessageFieldName,
		},
		FormatPrepare: func(m map[string]any) error {
			if v, ok := m[scopeFieldName].(string); ok && v != "" {
				m[scopeFieldName] = fmt.Sprintf("[%s]", v)
			} else {
				m[scopeFieldName] = ""
			}
			return nil
		},
		FieldsExclude: []string{scopeFieldName},
	}

	logger := zerolog.New(consoleWriter)
	if debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}
	return logger.With().Timestamp().Logger()
}

// WithScope creates a sub-logger tagged with a component name.
func WithScope(logger zerolog.Logger, scope string) zerolog.Logger {
	return logger.With().Str(scopeFieldName, scope).Logger()
}
