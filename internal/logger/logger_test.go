package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "default suppresses debug", verbose: false, wantDebug: false},
		{name: "verbose enables debug", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(&buf, tt.verbose)

			log.Debug().Msg("debug message")
			log.Info().Msg("info message")

			out := buf.String()
			if got := strings.Contains(out, "debug message"); got != tt.wantDebug {
				t.Errorf("debug message logged = %v, want %v", got, tt.wantDebug)
			}
			if !strings.Contains(out, "info message") {
				t.Error("info message should always be logged")
			}
		})
	}
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	// Must not panic and must not write anywhere.
	log.Error().Msg("dropped")
}
