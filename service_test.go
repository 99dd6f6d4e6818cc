package simdash

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/simdash/actions"
	"github.com/viant/simdash/model"
	"github.com/viant/simdash/service/messaging"
	"github.com/viant/simdash/service/processing"
	"github.com/viant/simdash/service/validation"
	"github.com/viant/simdash/state"
)

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		description string
		mutate      func(c *Config)
		expectErr   bool
	}{
		{description: "defaults", mutate: func(c *Config) {}},
		{description: "fs storage without url", mutate: func(c *Config) { c.Storage.Vendor = messaging.VendorFs }, expectErr: true},
		{description: "fs storage", mutate: func(c *Config) {
			c.Storage.Vendor = messaging.VendorFs
			c.Storage.URL = "/tmp/simdash"
		}},
		{description: "unknown events vendor", mutate: func(c *Config) { c.Events.Vendor = "kafka" }, expectErr: true},
		{description: "remote validation without url", mutate: func(c *Config) { c.Validation.URL = "" }, expectErr: true},
		{description: "local validation without url", mutate: func(c *Config) {
			c.Validation.URL = ""
			c.Validation.Local = true
		}},
		{description: "negative timeout", mutate: func(c *Config) { c.Validation.TimeoutMs = -1 }, expectErr: true},
		{description: "processing without workers", mutate: func(c *Config) {
			c.Processing.URL = "http://localhost:5000/process"
			c.Processing.Workers = 0
		}, expectErr: true},
		{description: "empty export url", mutate: func(c *Config) { c.Export.URL = "" }, expectErr: true},
	}
	for _, testCase := range testCases {
		config := DefaultConfig()
		testCase.mutate(config)
		err := config.Validate()
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
	}
	var config *Config
	assert.Error(t, config.Validate())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SIMDASH_VALIDATION_URL", "http://validator:5000/validate")
	location := filepath.Join(dir, "simdash.yaml")
	require.NoError(t, os.WriteFile(location, []byte(`
storage:
  vendor: fs
  url: ${env.HOME}/simdash
validation:
  url: ${env.SIMDASH_VALIDATION_URL}
  timeoutMs: 250
debug: true
`), 0o644))

	config, err := LoadConfig(context.Background(), location)
	require.NoError(t, err)
	assert.Equal(t, messaging.VendorFs, config.Storage.Vendor)
	assert.Equal(t, "http://validator:5000/validate", config.Validation.URL)
	assert.Equal(t, 250*time.Millisecond, config.Validation.Timeout())
	assert.Equal(t, validation.DefaultCacheSize, config.Validation.CacheSize)
	assert.Equal(t, messaging.VendorMemory, config.Events.Vendor)
	assert.True(t, config.Debug)

	require.NoError(t, os.WriteFile(location, []byte("storage:\n  vendor: fs\n"), 0o644))
	_, err = LoadConfig(context.Background(), location)
	assert.Error(t, err)
}

func newFsConfig(dir string) *Config {
	config := DefaultConfig()
	config.Storage = StorageConfig{Vendor: messaging.VendorFs, URL: filepath.Join(dir, "storage")}
	config.Events = EventsConfig{Vendor: messaging.VendorFs, URL: filepath.Join(dir, "events")}
	config.Validation.Local = true
	config.Export.URL = filepath.Join(dir, "exports")
	config.Processing.RetryDelayMs = 10
	return config
}

func TestService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	processor := processing.ProcessorFunc(func(ctx context.Context, job *processing.Job) (*model.SimulationData, error) {
		return &model.SimulationData{Times: []float64{0, 1}, Series: map[string][]float64{"S": {990, 980}}}, nil
	})
	srv, err := New(newFsConfig(dir), WithProcessor(processor))
	require.NoError(t, err)
	require.NoError(t, srv.Start(ctx))
	require.NoError(t, srv.Start(ctx))

	aModel, err := srv.ImportSample(ctx, "sir")
	require.NoError(t, err)
	assert.Equal(t, "SIR", aModel.Name)

	result, err := srv.ValidateExpression(ctx, "beta * S * I / N")
	require.NoError(t, err)
	assert.True(t, result.Valid, result.Message)
	result, err = srv.ValidateExpression(ctx, "delta * S")
	require.NoError(t, err)
	assert.False(t, result.Valid)

	job, err := srv.Submit(ctx, model.ProcessingSimulation, "")
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		run := state.SelectRunsState(srv.Store().State()).Lookup(job.RunID)
		return run != nil && run.Data != nil
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, srv.Dispatch(ctx, actions.App.ExportModel.Create()))
	assert.FileExists(t, filepath.Join(dir, "exports", "SIR.model.json"))

	assert.Eventually(t, func() bool {
		replayed, count, err := srv.ReplayJournal(ctx)
		if err != nil || count == 0 {
			return false
		}
		restored := state.SelectModel(replayed.State())
		return restored != nil && restored.Name == "SIR"
	}, 2*time.Second, 20*time.Millisecond)
	require.NoError(t, srv.Close())
	require.NoError(t, srv.Close())

	restarted, err := New(newFsConfig(dir), WithProcessor(processor))
	require.NoError(t, err)
	require.NoError(t, restarted.Start(ctx))
	defer restarted.Close()
	restored := state.SelectModel(restarted.Store().State())
	require.NotNil(t, restored)
	assert.Equal(t, "SIR", restored.Name)
	assert.NotNil(t, state.SelectRunsState(restarted.Store().State()).Lookup(job.RunID))
}

func TestService_DispatchAfterClose(t *testing.T) {
	ctx := context.Background()
	config := DefaultConfig()
	config.Events.Buffer = 1
	srv, err := New(config, WithValidator(validation.NewLocal()))
	require.NoError(t, err)
	require.NoError(t, srv.Start(ctx))
	require.NoError(t, srv.Close())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10; i++ {
			_ = srv.Dispatch(ctx, actions.Workspace.AddWorkspace.Create(actions.NameProps{Name: fmt.Sprintf("w%d", i)}))
		}
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch blocked after close")
	}
	assert.Len(t, state.SelectWorkspaceNames(srv.Store().State()), 11)
}

func TestService_ResetStorage(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	srv, err := New(newFsConfig(dir))
	require.NoError(t, err)
	require.NoError(t, srv.Start(ctx))
	_, err = srv.ImportSample(ctx, "sir")
	require.NoError(t, err)
	require.NoError(t, srv.Close())

	restarted, err := New(newFsConfig(dir))
	require.NoError(t, err)
	require.NoError(t, restarted.ResetStorage(ctx))
	require.NoError(t, restarted.Start(ctx))
	defer restarted.Close()
	assert.Empty(t, state.SelectModel(restarted.Store().State()).Name)
}

func TestService_Defaults(t *testing.T) {
	ctx := context.Background()
	srv, err := New(nil, WithValidator(validation.NewLocal()))
	require.NoError(t, err)
	require.NoError(t, srv.Start(ctx))
	defer srv.Close()

	_, err = srv.Submit(ctx, model.ProcessingSimulation, "")
	assert.Error(t, err)
	_, _, err = srv.ReplayJournal(ctx)
	assert.Error(t, err)

	result, err := srv.ValidateExpression(ctx, "")
	require.NoError(t, err)
	assert.False(t, result.Valid)
}
