package applog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	tcs := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{"info level hides debug", false, false},
		{"debug level shows debug", true, true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := WithScope(newLogger(&buf, tc.debug), "TREE")

			logger.Debug().Msg("debug line")
			logger.Info().Msg("info line")

			out := buf.String()
			assert.Contains(t, out, "info line")
			assert.Contains(t, out, "[TREE]")
			assert.Equal(t, tc.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug line")))
		})
	}
}
