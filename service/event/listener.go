package event

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const defaultPollInterval = 50 * time.Millisecond

type Listener[T any] struct {
	publisher    *Publisher[T]
	handler      func(*Event[T])
	logger       *slog.Logger
	pollInterval time.Duration
	cancel       context.CancelFunc
	done         chan struct{}
	once         sync.Once
}

func NewListener[T any](publisher *Publisher[T], handler func(*Event[T]), logger *slog.Logger) *Listener[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Listener[T]{
		publisher:    publisher,
		handler:      handler,
		logger:       logger,
		pollInterval: defaultPollInterval,
		done:         make(chan struct{}),
	}
}

// Stop cancels the consuming loop and waits for it to exit
func (l *Listener[T]) Stop() {
	l.once.Do(func() {
		if l.cancel == nil {
			close(l.done)
			return
		}
		l.cancel()
	})
	<-l.done
}

func (l *Listener[T]) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	go func() {
		defer close(l.done)
		for {
			if ctx.Err() != nil {
				return
			}
			event, err := l.publisher.Consume(ctx)
			if err != nil {
				if ctx.Err() == nil {
					l.logger.Error("failed to consume event", "error", err)
				}
			}
			if event == nil {
				select {
				case <-ctx.Done():
					return
				case <-time.After(l.pollInterval):
				}
				continue
			}
			l.handler(event)
		}
	}()
}
