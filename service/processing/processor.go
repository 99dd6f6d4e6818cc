package processing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/viant/simdash/model"
	"github.com/viant/simdash/tracing"
)

// ErrBackend wraps failures reported by or reaching the processing backend
var ErrBackend = errors.New("processing: backend failure")

// Processor computes simulation data for a job
type Processor interface {
	Process(ctx context.Context, job *Job) (*model.SimulationData, error)
}

// HTTPProcessor posts jobs to a remote processing backend
type HTTPProcessor struct {
	url  string
	http *http.Client
}

func (p *HTTPProcessor) Process(ctx context.Context, job *Job) (data *model.SimulationData, err error) {
	ctx, span := tracing.StartSpan(ctx, "processing.Process", "CLIENT")
	span.WithAttributes(map[string]string{"processing.type": string(job.ProcessingType), "run.id": job.RunID})
	defer func() { tracing.EndSpan(span, err) }()

	body, err := json.Marshal(&Request{ProcessingType: job.ProcessingType, Model: job.Model, Settings: job.Settings})
	if err != nil {
		return nil, fmt.Errorf("failed to encode job %v: %w", job.ID, err)
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	response, err := p.http.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackend, err)
	}
	defer response.Body.Close()
	span.SetStatusFromHTTPCode(response.StatusCode)
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		message, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrBackend, response.StatusCode, bytes.TrimSpace(message))
	}
	output := &Response{}
	if err = json.NewDecoder(response.Body).Decode(output); err != nil {
		return nil, fmt.Errorf("%w: invalid response: %v", ErrBackend, err)
	}
	if output.Data == nil {
		return nil, fmt.Errorf("%w: response had no data", ErrBackend)
	}
	return output.Data, nil
}

// NewHTTPProcessor creates a processor posting to URL
func NewHTTPProcessor(URL string, client *http.Client) *HTTPProcessor {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPProcessor{url: URL, http: client}
}

// ProcessorFunc adapts a function to Processor
type ProcessorFunc func(ctx context.Context, job *Job) (*model.SimulationData, error)

func (f ProcessorFunc) Process(ctx context.Context, job *Job) (*model.SimulationData, error) {
	return f(ctx, job)
}
