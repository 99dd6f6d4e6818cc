package simdash

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/afs"
	"github.com/viant/simdash/service/messaging"
	"github.com/viant/simdash/service/meta"
	"github.com/viant/simdash/service/validation"
)

// Config is a serialisable representation of the service configuration,
// loaded from YAML or JSON. Zero values inherit DefaultConfig.
type Config struct {
	Storage    StorageConfig    `json:"storage" yaml:"storage"`
	Events     EventsConfig     `json:"events" yaml:"events"`
	Validation ValidationConfig `json:"validation" yaml:"validation"`
	Processing ProcessingConfig `json:"processing" yaml:"processing"`
	Export     ExportConfig     `json:"export" yaml:"export"`
	Tracing    TracingConfig    `json:"tracing" yaml:"tracing"`
	Debug      bool             `json:"debug" yaml:"debug"`
}

// StorageConfig selects where workspaces, runs and settings are kept.
type StorageConfig struct {
	Vendor messaging.Vendor `json:"vendor" yaml:"vendor"`
	URL    string           `json:"url" yaml:"url"`
}

// EventsConfig configures the action journal.
type EventsConfig struct {
	Vendor messaging.Vendor `json:"vendor" yaml:"vendor"`
	URL    string           `json:"url" yaml:"url"`
	Buffer int              `json:"buffer" yaml:"buffer"`
}

type ValidationConfig struct {
	URL       string `json:"url" yaml:"url"`
	CacheSize int    `json:"cacheSize" yaml:"cacheSize"`
	// TimeoutMs bounds remote calls; zero disables the timeout
	TimeoutMs int `json:"timeoutMs" yaml:"timeoutMs"`
	// Local validates offline instead of calling URL
	Local bool `json:"local" yaml:"local"`
}

type ProcessingConfig struct {
	// URL of the processing backend; processing is disabled when empty
	URL          string `json:"url" yaml:"url"`
	Workers      int    `json:"workers" yaml:"workers"`
	MaxRetries   int    `json:"maxRetries" yaml:"maxRetries"`
	RetryDelayMs int    `json:"retryDelayMs" yaml:"retryDelayMs"`
}

type ExportConfig struct {
	URL string `json:"url" yaml:"url"`
}

type TracingConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Service string `json:"service" yaml:"service"`
	// Output is the trace file; stdout when empty
	Output string `json:"output" yaml:"output"`
}

// Timeout returns the validation timeout.
func (c *ValidationConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// RetryDelay returns the delay before a failed job is retried.
func (c *ProcessingConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMs) * time.Millisecond
}

// DefaultConfig returns a Config keeping everything in memory.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{Vendor: messaging.VendorMemory},
		Events:  EventsConfig{Vendor: messaging.VendorMemory, Buffer: 100},
		Validation: ValidationConfig{
			URL:       validation.DefaultURL,
			CacheSize: validation.DefaultCacheSize,
		},
		Processing: ProcessingConfig{Workers: 2, MaxRetries: 1, RetryDelayMs: 1000},
		Export:     ExportConfig{URL: "exports"},
		Tracing:    TracingConfig{Service: "simdash"},
	}
}

// Validate returns an error describing the first invalid setting or nil.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config was nil")
	}
	if err := validateVendor("storage", c.Storage.Vendor, c.Storage.URL); err != nil {
		return err
	}
	if err := validateVendor("events", c.Events.Vendor, c.Events.URL); err != nil {
		return err
	}
	if c.Events.Buffer < 0 {
		return fmt.Errorf("events.buffer must be >= 0")
	}
	if !c.Validation.Local && c.Validation.URL == "" {
		return fmt.Errorf("validation.url was empty")
	}
	if c.Validation.CacheSize < 0 || c.Validation.TimeoutMs < 0 {
		return fmt.Errorf("validation.cacheSize and validation.timeoutMs must be >= 0")
	}
	if c.Processing.URL != "" && c.Processing.Workers <= 0 {
		return fmt.Errorf("processing.workers must be > 0")
	}
	if c.Processing.MaxRetries < 0 || c.Processing.RetryDelayMs < 0 {
		return fmt.Errorf("processing.maxRetries and processing.retryDelayMs must be >= 0")
	}
	if c.Export.URL == "" {
		return fmt.Errorf("export.url was empty")
	}
	return nil
}

func validateVendor(section string, vendor messaging.Vendor, URL string) error {
	switch vendor {
	case messaging.VendorMemory:
		return nil
	case messaging.VendorFs:
		if URL == "" {
			return fmt.Errorf("%v.url is required for the fs vendor", section)
		}
		return nil
	}
	return fmt.Errorf("unsupported %v.vendor: %q", section, vendor)
}

// LoadConfig reads a YAML or JSON config over the defaults, expanding
// ${env.KEY} expressions.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	ret := DefaultConfig()
	if err := meta.New(afs.New(), "").Load(ctx, URL, ret); err != nil {
		return nil, err
	}
	if err := ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", URL, err)
	}
	return ret, nil
}
