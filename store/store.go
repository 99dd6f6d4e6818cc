package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/viant/simdash/action"
	"github.com/viant/simdash/tracing"
)

// Listener is notified after every dispatch. Listeners may dispatch with the
// ctx they receive.
type Listener func(ctx context.Context, change *Change)

// Recorder appends dispatched actions to an external event log.
type Recorder interface {
	Record(ctx context.Context, act action.Action) error
}

// Store owns the Root state.
type Store struct {
	features  []*Feature
	order     sync.Mutex
	pendingMu sync.Mutex
	pending   []queued
	mux       sync.RWMutex
	state     Root
	listeners []*subscription
	nextID    int
	recorder  Recorder
	logger    *slog.Logger
}

type subscription struct {
	id       int
	listener Listener
}

type queued struct {
	ctx context.Context
	act action.Action
}

type drainingKey struct{}

// State returns the current Root.
func (s *Store) State() Root {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.state
}

// Dispatch applies act to every feature reducer, records it and notifies
// listeners. Dispatches are serialised: each one is reduced, recorded and
// delivered to every listener before the next starts. A listener dispatching
// with the ctx it received queues the action; it is applied once the current
// one has been delivered.
func (s *Store) Dispatch(ctx context.Context, act action.Action) error {
	if act == nil {
		return fmt.Errorf("store: action was nil")
	}
	if ctx.Value(drainingKey{}) == s {
		s.pendingMu.Lock()
		s.pending = append(s.pending, queued{ctx: ctx, act: act})
		s.pendingMu.Unlock()
		return nil
	}
	s.order.Lock()
	defer s.order.Unlock()
	s.apply(context.WithValue(ctx, drainingKey{}, s), act)
	for {
		next, ok := s.dequeue()
		if !ok {
			return nil
		}
		s.apply(next.ctx, next.act)
	}
}

func (s *Store) dequeue() (queued, bool) {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	if len(s.pending) == 0 {
		return queued{}, false
	}
	next := s.pending[0]
	s.pending = s.pending[1:]
	return next, true
}

func (s *Store) apply(ctx context.Context, act action.Action) {
	ctx, span := tracing.StartSpan(ctx, string(act.ActionType()), "INTERNAL")
	change := s.reduce(act)
	if s.recorder != nil {
		if err := s.recorder.Record(ctx, act); err != nil {
			s.logger.Warn("failed to record action", "type", act.ActionType(), "error", err)
		}
	}
	for _, listener := range s.subscribers() {
		listener(ctx, change)
	}
	tracing.EndSpan(span, nil)
}

func (s *Store) reduce(act action.Action) *Change {
	prev := s.State()
	var next Root
	for _, feature := range s.features {
		slice, changed := feature.reduce(prev[feature.Key], act)
		if !changed {
			continue
		}
		if next == nil {
			next = prev.clone()
		}
		next[feature.Key] = slice
	}
	if next == nil {
		return &Change{Action: act, Prev: prev, Next: prev}
	}
	s.mux.Lock()
	s.state = next
	s.mux.Unlock()
	return &Change{Action: act, Prev: prev, Next: next}
}

// SetRecorder replaces the recorder once in-flight dispatches are done; nil
// stops recording.
func (s *Store) SetRecorder(recorder Recorder) {
	s.order.Lock()
	defer s.order.Unlock()
	s.recorder = recorder
}

// Subscribe registers listener and returns a function removing it.
func (s *Store) Subscribe(listener Listener) func() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, &subscription{id: id, listener: listener})
	return func() {
		s.mux.Lock()
		defer s.mux.Unlock()
		for i, candidate := range s.listeners {
			if candidate.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) subscribers() []Listener {
	s.mux.RLock()
	defer s.mux.RUnlock()
	result := make([]Listener, 0, len(s.listeners))
	for _, item := range s.listeners {
		result = append(result, item.listener)
	}
	return result
}

// Select evaluates selector against the current state.
func Select[O any](s *Store, selector Selector[O]) O {
	return selector(s.State())
}

// New creates a store with the initial slices of features.
func New(features []*Feature, options ...Option) *Store {
	ret := &Store{
		features: features,
		state:    Root{},
		logger:   slog.Default(),
	}
	for _, feature := range features {
		ret.state[feature.Key] = feature.initial
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}
