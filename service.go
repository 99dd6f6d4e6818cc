package simdash

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/simdash/action"
	"github.com/viant/simdash/model"
	"github.com/viant/simdash/service/dao"
	daofs "github.com/viant/simdash/service/dao/fs"
	daomem "github.com/viant/simdash/service/dao/memory"
	"github.com/viant/simdash/service/devtools"
	"github.com/viant/simdash/service/event"
	"github.com/viant/simdash/service/messaging"
	"github.com/viant/simdash/service/messaging/fs"
	"github.com/viant/simdash/service/messaging/memory"
	"github.com/viant/simdash/service/processing"
	"github.com/viant/simdash/service/storage"
	"github.com/viant/simdash/service/transfer"
	"github.com/viant/simdash/service/validation"
	"github.com/viant/simdash/state"
	"github.com/viant/simdash/store"
	"github.com/viant/simdash/tracing"
)

const (
	serviceVersion   = "1.0.0"
	diffContextLines = 2
)

// Service wires the dashboard store with its side-effect services.
type Service struct {
	config     *Config
	logger     *slog.Logger
	fs         afs.Service
	store      *store.Store
	events     *event.Service
	storage    *storage.Service
	validator  validation.Service
	processor  processing.Processor
	processing *processing.Service
	transfer   *transfer.Service
	devtools   *devtools.Logger

	mux     sync.Mutex
	started bool
	detach  []func()
}

// Store returns the underlying store.
func (s *Service) Store() *store.Store {
	return s.store
}

// Config returns the effective configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Dispatch applies act to the store.
func (s *Service) Dispatch(ctx context.Context, act action.Action) error {
	return s.store.Dispatch(ctx, act)
}

// ValidateExpression checks expression against the symbols of the current model.
func (s *Service) ValidateExpression(ctx context.Context, expression string) (*validation.Result, error) {
	symbols := store.Select(s.store, state.SelectSymbols)
	return s.validator.Validate(ctx, expression, symbols)
}

// Submit queues the current model for processing. An empty runID records a new run.
func (s *Service) Submit(ctx context.Context, processingType model.ProcessingType, runID string) (*processing.Job, error) {
	if s.processing == nil {
		return nil, fmt.Errorf("processing was not configured")
	}
	return s.processing.Submit(ctx, processingType, runID)
}

// ImportModel loads a model definition from URL into the current workspace.
func (s *Service) ImportModel(ctx context.Context, URL string) (*model.Definition, error) {
	return s.transfer.ImportModel(ctx, URL)
}

// ImportSample loads a bundled model into the current workspace.
func (s *Service) ImportSample(ctx context.Context, name string) (*model.Definition, error) {
	return s.transfer.ImportSample(ctx, name)
}

// Start restores persisted state, attaches listeners and starts processing workers.
func (s *Service) Start(ctx context.Context) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.started {
		return nil
	}
	if err := s.storage.Load(ctx); err != nil {
		return err
	}
	s.detach = append(s.detach, s.storage.Attach(), s.transfer.Attach())
	if s.devtools != nil {
		s.detach = append(s.detach, s.store.Subscribe(s.devtools.OnChange))
	}
	if s.processing != nil {
		if err := s.processing.Start(ctx); err != nil {
			return err
		}
	}
	s.started = true
	return nil
}

// ResetStorage deletes the persisted workspaces, runs and settings.
func (s *Service) ResetStorage(ctx context.Context) error {
	return s.storage.Reset(ctx)
}

// Close stops workers, listeners and action recording. It is safe to call
// more than once.
func (s *Service) Close() error {
	s.mux.Lock()
	defer s.mux.Unlock()
	var err error
	if s.processing != nil {
		err = s.processing.Stop()
	}
	s.store.SetRecorder(nil)
	for _, fn := range s.detach {
		fn()
	}
	s.detach = nil
	s.events.Close()
	s.started = false
	return err
}

// ReplayJournal rebuilds state from the persisted action journal into a
// fresh store without side effects.
func (s *Service) ReplayJournal(ctx context.Context) (*store.Store, int, error) {
	if s.config.Events.Vendor != messaging.VendorFs {
		return nil, 0, fmt.Errorf("journal replay requires the fs events vendor")
	}
	replayed := state.NewStore(store.WithLogger(s.logger))
	count, err := devtools.ReplayJournal(ctx, s.fs, s.journalURL(event.ActionTopic), replayed)
	return replayed, count, err
}

func (s *Service) journalURL(topic string) string {
	return url.Join(s.config.Events.URL, topic)
}

func (s *Service) initEvents() error {
	options := []event.Option{event.WithLogger(s.logger)}
	switch s.config.Events.Vendor {
	case messaging.VendorFs:
		options = append(options, event.WithNewFsQueueConfig(func(name string) fs.Config {
			return fs.Config{BasePath: s.journalURL(name)}
		}))
	case messaging.VendorMemory:
		buffer := s.config.Events.Buffer
		options = append(options, event.WithNewMemoryQueueConfig(func(string) memory.Config {
			config := memory.DefaultConfig()
			if buffer > 0 {
				config.QueueBuffer = buffer
			}
			return config
		}))
	}
	var err error
	if s.events, err = event.New(s.config.Events.Vendor, options...); err != nil {
		return err
	}
	// memory publishers block once the buffer fills up, the journal is always drained
	return event.SetListenerOf[json.RawMessage](s.events, event.ActionTopic, event.LogHandler(s.logger))
}

func (s *Service) initStorage() error {
	var snapshots dao.Service[string, storage.Snapshot]
	switch s.config.Storage.Vendor {
	case messaging.VendorFs:
		service, err := daofs.New[storage.Snapshot](s.config.Storage.URL, storage.SnapshotKey, s.logger)
		if err != nil {
			return err
		}
		snapshots = service
	default:
		snapshots = daomem.New[storage.Snapshot](storage.SnapshotKey)
	}
	s.storage = storage.New(snapshots, s.store, storage.WithLogger(s.logger))
	return nil
}

func (s *Service) initValidator() error {
	if s.validator != nil {
		return nil
	}
	cfg := s.config.Validation
	if cfg.Local {
		s.validator = validation.NewLocal()
		return nil
	}
	client := validation.NewClient(cfg.URL, validation.WithTimeout(cfg.Timeout()), validation.WithLogger(s.logger))
	if cfg.CacheSize == 0 {
		s.validator = client
		return nil
	}
	cached, err := validation.NewCached(client, cfg.CacheSize)
	if err != nil {
		return err
	}
	s.validator = cached
	return nil
}

func (s *Service) initProcessing() error {
	cfg := s.config.Processing
	if s.processor == nil {
		if cfg.URL == "" {
			return nil
		}
		s.processor = processing.NewHTTPProcessor(cfg.URL, http.DefaultClient)
	}
	var err error
	s.processing, err = processing.New(s.store,
		processing.WithProcessor(s.processor),
		processing.WithConfig(processing.Config{
			WorkerCount: cfg.Workers,
			MaxRetries:  cfg.MaxRetries,
			RetryDelay:  cfg.RetryDelay(),
		}),
		processing.WithLogger(s.logger),
	)
	return err
}

// New creates a Service from config. A nil config uses DefaultConfig.
func New(config *Config, options ...Option) (*Service, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	ret := &Service{config: config, logger: slog.Default(), fs: afs.New()}
	for _, opt := range options {
		opt(ret)
	}
	if config.Tracing.Enabled {
		if err := tracing.Init(config.Tracing.Service, serviceVersion, config.Tracing.Output); err != nil {
			ret.logger.Warn("failed to initialise tracing", "error", err)
		}
	}
	if err := ret.initEvents(); err != nil {
		return nil, err
	}
	recorder, err := event.NewRecorder(ret.events, config.Tracing.Service)
	if err != nil {
		ret.events.Close()
		return nil, err
	}
	ret.store = state.NewStore(store.WithLogger(ret.logger), store.WithRecorder(recorder))
	for _, initFn := range []func() error{ret.initStorage, ret.initValidator, ret.initProcessing} {
		if err = initFn(); err != nil {
			ret.events.Close()
			return nil, err
		}
	}
	ret.transfer = transfer.New(ret.store, config.Export.URL, transfer.WithLogger(ret.logger), transfer.WithFs(ret.fs))
	if config.Debug {
		ret.devtools = devtools.NewLogger(ret.logger, diffContextLines)
	}
	return ret, nil
}
