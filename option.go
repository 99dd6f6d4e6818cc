package simdash

import (
	"log/slog"

	"github.com/viant/simdash/service/processing"
	"github.com/viant/simdash/service/validation"
	"github.com/viant/simdash/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises a Service.
type Option func(s *Service)

// WithLogger sets the logger shared by all services
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithValidator replaces the configured validation service
func WithValidator(validator validation.Service) Option {
	return func(s *Service) {
		s.validator = validator
	}
}

// WithProcessor sets the processing backend, enabling processing even
// without a configured URL
func WithProcessor(processor processing.Processor) Option {
	return func(s *Service) {
		s.processor = processor
	}
}

// WithTracingExporter configures OpenTelemetry tracing with a custom
// exporter. The first successful initialisation wins.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		if err := tracing.InitWithExporter(serviceName, serviceVersion, exporter); err != nil {
			s.logger.Warn("failed to initialise tracing", "error", err)
		}
	}
}
