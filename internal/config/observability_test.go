package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultObservabilityConfig(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "accounts", cfg.ServiceName)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Contains(t, cfg.HealthChecks.Checks, "database")
}

func TestObservabilityValidate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.ServiceName = ""
	assert.Error(t, cfg.Validate())
}

func TestGetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Logging.Level = ""
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())
	assert.True(t, cfg.IsProduction())
}
