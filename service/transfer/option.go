package transfer

import (
	"log/slog"

	"github.com/viant/afs"
)

type Option func(s *Service)

// WithLogger sets the transfer logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithFs sets the storage service used for import and export
func WithFs(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}
