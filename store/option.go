package store

import "log/slog"

type Option func(s *Store)

// WithLogger sets the store logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithRecorder sets the action event log recorder
func WithRecorder(recorder Recorder) Option {
	return func(s *Store) {
		s.recorder = recorder
	}
}

// WithState seeds slices before the first dispatch
func WithState(root Root) Option {
	return func(s *Store) {
		for k, v := range root {
			s.state[k] = v
		}
	}
}
