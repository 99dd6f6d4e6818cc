package processing

import (
	"log/slog"

	"github.com/viant/simdash/progress"
	"github.com/viant/simdash/service/messaging"
)

type Option func(*Service)

// WithMessageQueue sets the job queue implementation
func WithMessageQueue(queue messaging.Queue[Job]) Option {
	return func(s *Service) {
		s.queue = queue
	}
}

// WithProcessor sets the job processor
func WithProcessor(processor Processor) Option {
	return func(s *Service) {
		s.processor = processor
	}
}

// WithWorkers sets the number of worker goroutines
func WithWorkers(count int) Option {
	return func(s *Service) {
		s.config.WorkerCount = count
	}
}

// WithProgress sets the job counters tracker
func WithProgress(tracker *progress.Progress) Option {
	return func(s *Service) {
		s.progress = tracker
	}
}

// WithLogger sets the service logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithConfig sets the configuration for the service
func WithConfig(config Config) Option {
	return func(s *Service) {
		s.config = config
	}
}
