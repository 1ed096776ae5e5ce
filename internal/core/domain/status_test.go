package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/piprun/internal/core/domain"
)

func TestEnvStatus_Built(t *testing.T) {
	assert.False(t, domain.EnvStatusCached.Built())
	assert.True(t, domain.EnvStatusCreated.Built())
	assert.True(t, domain.EnvStatusRecreated.Built())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.LogLevel
		ok       bool
	}{
		{"debug", domain.LogLevelDebug, true},
		{"INFO", domain.LogLevelInfo, true},
		{"warn", domain.LogLevelWarn, true},
		{"warning", domain.LogLevelWarn, true},
		{"error", domain.LogLevelError, true},
		{"loud", domain.LogLevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, ok := domain.ParseLogLevel(tt.input)
			assert.Equal(t, tt.expected, level)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", domain.LogLevelDebug.String())
	assert.Equal(t, "WARN", domain.LogLevelWarn.String())
	assert.Equal(t, "INFO", domain.LogLevel(3).String())
}

func TestHandoff(t *testing.T) {
	h := domain.Handoff{Program: "python", Args: []string{"x.py", "-v"}}
	assert.Equal(t, []string{"python", "x.py", "-v"}, h.Argv())
	assert.True(t, domain.HandoffExec.Valid())
	assert.True(t, domain.HandoffSpawn.Valid())
	assert.False(t, domain.HandoffMode("fork").Valid())
}
