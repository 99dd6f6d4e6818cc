package storage

import "log/slog"

type Option func(s *Service)

// WithLogger sets the storage logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}
