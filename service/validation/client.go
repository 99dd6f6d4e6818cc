package validation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/viant/simdash/tracing"
)

const maxErrorBody = 512

// Client calls the remote validation endpoint
type Client struct {
	url     string
	http    *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// Validate posts the expression and decodes the verdict. Transport failures
// and non-2xx answers are returned as errors wrapping ErrTransport.
func (c *Client) Validate(ctx context.Context, expression string, allowedSymbols []string) (result *Result, err error) {
	ctx, span := tracing.StartSpan(ctx, "validation.Validate", "CLIENT")
	span.WithAttributes(map[string]string{"http.url": c.url})
	defer func() { tracing.EndSpan(span, err) }()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if allowedSymbols == nil {
		allowedSymbols = []string{}
	}
	body, err := json.Marshal(&Request{Expression: expression, AllowedSymbols: allowedSymbols})
	if err != nil {
		return nil, fmt.Errorf("failed to encode validation request: %w", err)
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create validation request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	response, err := c.http.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer response.Body.Close()
	span.SetStatusFromHTTPCode(response.StatusCode)
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: status %d: %s", ErrTransport, response.StatusCode, bytes.TrimSpace(data))
	}
	result = &Result{}
	if err = json.NewDecoder(response.Body).Decode(result); err != nil {
		return nil, fmt.Errorf("%w: invalid response: %v", ErrTransport, err)
	}
	c.logger.Debug("expression validated", "expression", expression, "valid", result.Valid)
	return result, nil
}

// NewClient creates a client for URL, defaulting to DefaultURL
func NewClient(URL string, opts ...Option) *Client {
	if URL == "" {
		URL = DefaultURL
	}
	ret := &Client{url: URL, http: http.DefaultClient, logger: slog.Default()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
