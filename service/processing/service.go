// Package processing runs model processing jobs (simulation, parameter
// estimation, sensitivity analysis) on a pool of workers and reports their
// results to the store.
package processing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/viant/simdash/actions"
	"github.com/viant/simdash/internal/clock"
	"github.com/viant/simdash/internal/idgen"
	"github.com/viant/simdash/model"
	"github.com/viant/simdash/progress"
	"github.com/viant/simdash/service/messaging"
	"github.com/viant/simdash/service/messaging/memory"
	"github.com/viant/simdash/state"
	"github.com/viant/simdash/store"
	"github.com/viant/simdash/tracing"
	"golang.org/x/sync/errgroup"
)

// ErrUnknownProcessingType is returned by Submit for unsupported types
var ErrUnknownProcessingType = errors.New("processing: unknown processing type")

// ErrNoModel is returned by Submit when no model is selected
var ErrNoModel = errors.New("processing: no model selected")

const pollInterval = 100 * time.Millisecond

// Config represents processing service configuration
type Config struct {
	// WorkerCount is the number of workers processing jobs
	WorkerCount int

	// MaxRetries is the number of times a failed job is requeued
	MaxRetries int

	// RetryDelay is the delay before a failed job is requeued
	RetryDelay time.Duration
}

// DefaultConfig returns the default processing configuration
func DefaultConfig() Config {
	return Config{
		WorkerCount: 2,
		MaxRetries:  1,
		RetryDelay:  time.Second,
	}
}

// Service handles processing jobs
type Service struct {
	config    Config
	store     *store.Store
	queue     messaging.Queue[Job]
	processor Processor
	progress  *progress.Progress
	logger    *slog.Logger

	mu     sync.Mutex
	group  *errgroup.Group
	cancel context.CancelFunc
}

// Progress returns the job counters
func (s *Service) Progress() progress.Counters {
	return s.progress.Snapshot()
}

// Submit queues a job processing the selected model. An empty runID adds a
// new run holding a snapshot of the model.
func (s *Service) Submit(ctx context.Context, processingType any, runID string) (*Job, error) {
	if !model.IsProcessingType(processingType) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownProcessingType, processingType)
	}
	kind := toProcessingType(processingType)
	aModel := store.Select(s.store, state.SelectModel)
	if aModel == nil {
		return nil, ErrNoModel
	}
	aModel = aModel.Clone()
	if runID == "" {
		run := &model.Run{ID: idgen.WithPrefix("run"), Name: string(kind), CreatedAt: clock.Now(), Model: aModel}
		if err := s.store.Dispatch(ctx, actions.Dashboard.AddRun.Create(actions.RunProps{Run: run})); err != nil {
			return nil, err
		}
		runID = run.ID
	}
	job := &Job{
		ID:             idgen.WithPrefix("job"),
		ProcessingType: kind,
		RunID:          runID,
		Model:          aModel,
		Settings:       store.Select(s.store, state.SelectSimulationSettings),
		CreatedAt:      clock.Now(),
	}
	if err := s.queue.Publish(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to queue job %v: %w", job.ID, err)
	}
	s.progress.Update(progress.Delta{Total: 1, Pending: 1})
	return job, nil
}

// Start launches the workers; they run until ctx is done or Stop is called
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.group != nil {
		return fmt.Errorf("processing service already started")
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.group, ctx = errgroup.WithContext(ctx)
	for i := 0; i < s.config.WorkerCount; i++ {
		id := i
		s.group.Go(func() error {
			s.work(ctx, id)
			return nil
		})
	}
	return nil
}

// Stop cancels the workers and waits for them to exit
func (s *Service) Stop() error {
	s.mu.Lock()
	group, cancel := s.group, s.cancel
	s.group, s.cancel = nil, nil
	s.mu.Unlock()
	if group == nil {
		return nil
	}
	cancel()
	return group.Wait()
}

func (s *Service) work(ctx context.Context, id int) {
	for {
		msg, err := s.queue.Consume(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			s.logger.Warn("failed to consume job", "worker", id, "error", err)
		}
		if msg == nil {
			select {
			case <-ctx.Done():
				return
			case <-time.After(pollInterval):
			}
			continue
		}
		if err := s.process(ctx, msg); err != nil {
			s.logger.Error("job failed", "worker", id, "error", err)
		}
	}
}

func (s *Service) process(ctx context.Context, msg messaging.Message[Job]) (err error) {
	job := msg.T()
	ctx, span := tracing.StartSpan(ctx, "processing.Job", "CONSUMER")
	span.WithAttributes(map[string]string{"job.id": job.ID, "processing.type": string(job.ProcessingType)})
	defer func() { tracing.EndSpan(span, err) }()

	s.progress.Update(progress.Delta{Pending: -1, Running: 1})
	data, err := s.processor.Process(ctx, job)
	if err != nil {
		_ = msg.Ack()
		s.retry(job, err)
		return fmt.Errorf("job %v: %w", job.ID, err)
	}
	props := actions.ProcessingProps{ProcessingType: job.ProcessingType, RunID: job.RunID, Data: data}
	if err = s.store.Dispatch(ctx, actions.Processing.ModelProcessingSuccess.Create(props)); err != nil {
		_ = msg.Nack(err)
		s.progress.Update(progress.Delta{Running: -1, Failed: 1})
		return err
	}
	s.progress.Update(progress.Delta{Running: -1, Completed: 1})
	return msg.Ack()
}

func (s *Service) retry(job *Job, cause error) {
	if job.Attempts >= s.config.MaxRetries {
		s.progress.Update(progress.Delta{Running: -1, Failed: 1})
		return
	}
	s.progress.Update(progress.Delta{Running: -1, Pending: 1})
	next := *job
	next.Attempts++
	s.logger.Info("retrying job", "job", job.ID, "attempt", next.Attempts, "cause", cause)
	time.AfterFunc(s.config.RetryDelay, func() {
		if err := s.queue.Publish(context.Background(), &next); err != nil {
			s.progress.Update(progress.Delta{Pending: -1, Failed: 1})
			s.logger.Error("failed to requeue job", "job", next.ID, "error", err)
		}
	})
}

func toProcessingType(v any) model.ProcessingType {
	switch actual := v.(type) {
	case model.ProcessingType:
		return actual
	case string:
		return model.ProcessingType(actual)
	}
	return ""
}

// New creates a processing service bound to aStore
func New(aStore *store.Store, options ...Option) (*Service, error) {
	s := &Service{
		config: DefaultConfig(),
		store:  aStore,
		logger: slog.Default(),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if s.processor == nil {
		return nil, fmt.Errorf("processor is required")
	}
	if s.queue == nil {
		s.queue = memory.NewQueue[Job](memory.DefaultConfig())
	}
	if s.progress == nil {
		s.progress = progress.New(nil)
	}
	if s.config.WorkerCount <= 0 {
		s.config.WorkerCount = 1
	}
	return s, nil
}
