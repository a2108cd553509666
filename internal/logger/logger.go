// Package logger configures application logging and observability.
//
// Logging is zerolog throughout. When a New Relic license key is
// configured, the LoggerService owns the agent instance and log output is
// wrapped with zerologWriter so application logs are forwarded alongside
// traces. Without a key everything degrades to plain zerolog.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/deppfellow/accounts-service/internal/config"
)

// LoggerService wraps the optional New Relic application instance.
// A nil inner application means the agent is disabled.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService initializes the New Relic agent when a license key is
// configured. Agent startup failures are logged and treated as "agent
// disabled" rather than fatal; the service must come up without APM.
func NewLoggerService(cfg *config.Config, bootstrap *zerolog.Logger) *LoggerService {
	nr := cfg.Observability.NewRelic
	if nr.LicenseKey == "" {
		return &LoggerService{}
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(nr.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(nr.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(nr.DistributedTracingEnabled),
		func(c *newrelic.Config) {
			c.Labels = map[string]string{"env": cfg.Observability.Environment}
		},
	)
	if err != nil {
		bootstrap.Error().Err(err).Msg("failed to initialize new relic, continuing without APM")
		return &LoggerService{}
	}

	// Give the agent a moment to connect so early transactions are not lost.
	// Timing out here is fine; the agent keeps connecting in the background.
	_ = app.WaitForConnection(5 * time.Second)

	return &LoggerService{nrApp: app}
}

// GetApplication returns the New Relic application, or nil when disabled.
func (s *LoggerService) GetApplication() *newrelic.Application {
	return s.nrApp
}

// Shutdown flushes buffered telemetry. Safe to call when the agent is disabled.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s.nrApp != nil {
		s.nrApp.Shutdown(timeout)
	}
}

// New builds the application logger from config.
//
// Format "console" writes human-readable output for local development;
// "json" writes machine-parseable lines. When the New Relic agent is
// active, output is routed through zerologWriter for log forwarding.
func New(cfg *config.Config, nrApp *newrelic.Application) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Observability.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	if nrApp != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled {
		w := zerologWriter.New(out, nrApp)
		out = &w
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()
}

// WithTraceContext returns a child logger carrying the transaction's
// trace and span ids so log lines correlate with distributed traces.
func WithTraceContext(l zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	md := txn.GetTraceMetadata()
	return l.With().
		Str("trace.id", md.TraceID).
		Str("span.id", md.SpanID).
		Logger()
}
