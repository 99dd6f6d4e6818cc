// Package transfer moves models and run results in and out of the dashboard:
// model import (JSON or YAML), bundled sample models and exports of the model
// and of run data.
package transfer

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/simdash/actions"
	"github.com/viant/simdash/model"
	"github.com/viant/simdash/state"
	"github.com/viant/simdash/store"
)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

type Service struct {
	fs        afs.Service
	exportURL string
	store     *store.Store
	logger    *slog.Logger
}

// ImportModel reads a model document from URL and dispatches Import Model
func (s *Service) ImportModel(ctx context.Context, URL string) (*model.Definition, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read model %v: %w", URL, err)
	}
	aModel, err := DecodeModel(URL, data)
	if err != nil {
		return nil, fmt.Errorf("invalid model %v: %w", URL, err)
	}
	if err = aModel.Validate(); err != nil {
		return nil, err
	}
	return aModel, s.store.Dispatch(ctx, actions.App.ImportModel.Create(actions.ModelProps{Model: aModel}))
}

// ImportSample dispatches Import Sample Model with an embedded sample
func (s *Service) ImportSample(ctx context.Context, name string) (*model.Definition, error) {
	aModel, err := sample(name)
	if err != nil {
		return nil, err
	}
	return aModel, s.store.Dispatch(ctx, actions.App.ImportSampleModel.Create(actions.ModelProps{Model: aModel}))
}

// OnChange performs the export requested by the dispatched action
func (s *Service) OnChange(ctx context.Context, change *store.Change) {
	var URL string
	var err error
	switch {
	case actions.App.ExportModel.Match(change.Action):
		URL, err = s.ExportModel(ctx, change.Next)
	default:
		if props, ok := actions.Dashboard.ExportRunData.Match(change.Action); ok {
			URL, err = s.ExportRunData(ctx, change.Next, props.ID)
		} else if props, ok := actions.Dashboard.ExportRunValues.Match(change.Action); ok {
			URL, err = s.ExportRunValues(ctx, change.Next, props.ID)
		} else {
			return
		}
	}
	if err != nil {
		s.logger.Error("export failed", "action", change.Action.ActionType(), "error", err)
		return
	}
	s.logger.Info("exported", "action", change.Action.ActionType(), "url", URL)
}

// ExportModel writes the selected model as JSON
func (s *Service) ExportModel(ctx context.Context, root store.Root) (string, error) {
	workspace := state.SelectCurrentWorkspace(root)
	if workspace == nil || workspace.Model == nil {
		return "", fmt.Errorf("no model selected")
	}
	name := workspace.Model.Name
	if name == "" {
		name = workspace.Name
	}
	data, err := json.MarshalIndent(workspace.Model, "", "  ")
	if err != nil {
		return "", err
	}
	return s.upload(ctx, fileName(name, "model.json"), data)
}

// ExportRunData writes the run, including its model snapshot, as JSON
func (s *Service) ExportRunData(ctx context.Context, root store.Root, id string) (string, error) {
	run := state.SelectRunsState(root).Lookup(id)
	if run == nil {
		return "", fmt.Errorf("run %v not found", id)
	}
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return "", err
	}
	return s.upload(ctx, fileName(run.ID, "json"), data)
}

// ExportRunValues writes the run series as CSV: a time column followed by
// one column per series, in name order
func (s *Service) ExportRunValues(ctx context.Context, root store.Root, id string) (string, error) {
	run := state.SelectRunsState(root).Lookup(id)
	if run == nil {
		return "", fmt.Errorf("run %v not found", id)
	}
	if run.Data == nil {
		return "", fmt.Errorf("run %v has no data", id)
	}
	data, err := encodeCSV(run.Data)
	if err != nil {
		return "", err
	}
	return s.upload(ctx, fileName(run.ID, "csv"), data)
}

func encodeCSV(data *model.SimulationData) ([]byte, error) {
	names := make([]string, 0, len(data.Series))
	for name := range data.Series {
		names = append(names, name)
	}
	sort.Strings(names)
	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)
	if err := writer.Write(append([]string{"time"}, names...)); err != nil {
		return nil, err
	}
	for i, at := range data.Times {
		record := make([]string, 0, len(names)+1)
		record = append(record, formatFloat(at))
		for _, name := range names {
			values := data.Series[name]
			if i < len(values) {
				record = append(record, formatFloat(values[i]))
				continue
			}
			record = append(record, "")
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	return buffer.Bytes(), writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func fileName(name, ext string) string {
	name = unsafeName.ReplaceAllString(name, "_")
	if name == "" {
		name = "export"
	}
	return name + "." + ext
}

func (s *Service) upload(ctx context.Context, name string, data []byte) (string, error) {
	URL := url.Join(s.exportURL, name)
	if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to write %v: %w", URL, err)
	}
	return URL, nil
}

// Attach subscribes the service to its store and returns the unsubscribe function
func (s *Service) Attach() func() {
	return s.store.Subscribe(s.OnChange)
}

func New(aStore *store.Store, exportURL string, opts ...Option) *Service {
	ret := &Service{store: aStore, exportURL: exportURL, fs: afs.New(), logger: slog.Default()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
