package event

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/simdash/service/messaging"
	"github.com/viant/simdash/service/messaging/fs"
	"github.com/viant/simdash/service/messaging/memory"
)

// Service hands out named publishers and listeners backed by the
// configured queue vendor
type Service struct {
	publishers        map[string]any
	listeners         map[string]stopper
	mux               sync.RWMutex
	queueVendor       messaging.Vendor
	fsNewQueueConfig  func(name string) fs.Config
	memNewQueueConfig func(name string) memory.Config
	logger            *slog.Logger
}

type stopper interface {
	Stop()
}

func New(queueVendor messaging.Vendor, opts ...Option) (*Service, error) {
	ret := &Service{
		queueVendor: queueVendor,
		publishers:  make(map[string]any),
		listeners:   make(map[string]stopper),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	switch queueVendor {
	case messaging.VendorFs:
		if ret.fsNewQueueConfig == nil {
			return nil, fmt.Errorf("fs queue vendor requires fsNewQueueConfig")
		}
	case messaging.VendorMemory:
		if ret.memNewQueueConfig == nil {
			ret.memNewQueueConfig = func(string) memory.Config { return memory.DefaultConfig() }
		}
	default:
		return nil, fmt.Errorf("unsupported queue vendor: %s", queueVendor)
	}
	return ret, nil
}

// Vendor returns the queue vendor
func (s *Service) Vendor() messaging.Vendor {
	return s.queueVendor
}

// Close stops all listeners
func (s *Service) Close() {
	s.mux.Lock()
	listeners := s.listeners
	s.listeners = make(map[string]stopper)
	s.mux.Unlock()
	for _, listener := range listeners {
		listener.Stop()
	}
}

func QueueOf[T any](s *Service, name string) (messaging.Queue[T], error) {
	switch s.queueVendor {
	case messaging.VendorFs:
		return fs.NewQueue[T](afs.New(), s.fsNewQueueConfig(name))
	case messaging.VendorMemory:
		return memory.NewQueue[T](s.memNewQueueConfig(name)), nil
	}
	return nil, fmt.Errorf("unsupported queue vendor: %s", s.queueVendor)
}

// PublisherOf returns the publisher for the named topic, creating it on first use
func PublisherOf[T any](s *Service, name string) (*Publisher[T], error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if ret, ok := s.publishers[name]; ok {
		publisher, ok := ret.(*Publisher[T])
		if !ok {
			return nil, fmt.Errorf("topic %v was registered with %T", name, ret)
		}
		return publisher, nil
	}
	queue, err := QueueOf[Event[T]](s, name)
	if err != nil {
		return nil, err
	}
	publisher := NewPublisher[T](queue)
	s.publishers[name] = publisher
	return publisher, nil
}

// SetListenerOf replaces the listener of the named topic
func SetListenerOf[T any](s *Service, name string, handler func(*Event[T])) error {
	publisher, err := PublisherOf[T](s, name)
	if err != nil {
		return err
	}
	s.mux.Lock()
	prev := s.listeners[name]
	listener := NewListener[T](publisher, handler, s.logger)
	s.listeners[name] = listener
	s.mux.Unlock()
	if prev != nil {
		prev.Stop()
	}
	listener.Start()
	return nil
}
