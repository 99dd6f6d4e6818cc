package tracing

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracingFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "span_test.txt")
	require.NoError(t, Init("simdash", "0.0.1", fname))

	_, span := StartSpan(context.Background(), "[Test] Dispatch", "INTERNAL")
	span.WithAttributes(map[string]string{"k": "v"})
	EndSpan(span, nil)

	_, span = StartSpan(context.Background(), "validate", "CLIENT")
	span.SetStatusFromHTTPCode(500)
	EndSpan(span, errors.New("server error"))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestNilSpan(t *testing.T) {
	var span *Span
	assert.Nil(t, span.WithAttributes(map[string]string{"k": "v"}))
	span.SetStatus(nil)
	span.SetStatusFromHTTPCode(200)
	EndSpan(span, nil)
}

type trackedFile struct {
	closed bool
}

func (f *trackedFile) Write(p []byte) (int, error) {
	return len(p), nil
}

func (f *trackedFile) Close() error {
	f.closed = true
	return nil
}

func TestInit_ClosesUnusedFile(t *testing.T) {
	require.NoError(t, Init("simdash", "0.0.1", filepath.Join(t.TempDir(), "first.txt")))

	tracked := &trackedFile{}
	original := createFile
	createFile = func(string) (io.WriteCloser, error) { return tracked, nil }
	defer func() { createFile = original }()

	require.NoError(t, Init("simdash", "0.0.1", "second.txt"))
	assert.True(t, tracked.closed)
}
