package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"negative is warn", -1, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLevel, Level(tt.verbosity))
		})
	}
}

func TestSetup_WritesPlainText(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(1, &buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.WarnLevel) })

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	logger.Info().Str("pair", "dog→cat").Msg("searching")
	logger.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, "searching")
	assert.Contains(t, out, "dog→cat")
	assert.NotContains(t, out, "hidden")
	assert.False(t, strings.Contains(out, "\x1b["), "buffer is not a terminal; no colour codes")
}

func TestComponentAndOperation(t *testing.T) {
	var buf bytes.Buffer
	Setup(2, &buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.WarnLevel) })

	done := OperationStart(Component("ladder"), "build")
	done()

	out := buf.String()
	assert.Contains(t, out, "component=ladder")
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "operation=build")
}
