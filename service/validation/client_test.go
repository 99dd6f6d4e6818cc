package validation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidationServer(t *testing.T, calls *int32, status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		request := &Request{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(request))
		assert.Equal(t, "a+b", request.Expression)
		assert.Equal(t, []string{"a", "b"}, request.AllowedSymbols)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestClient_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		status      int
		body        string
		expect      *Result
		transport   bool
	}{
		{description: "valid", status: http.StatusOK, body: `{"valid":true}`, expect: &Result{Valid: true}},
		{description: "invalid with message", status: http.StatusOK, body: `{"valid":false,"message":"unknown c"}`, expect: &Result{Message: "unknown c"}},
		{description: "server error", status: http.StatusInternalServerError, body: "boom", transport: true},
		{description: "malformed body", status: http.StatusOK, body: "{", transport: true},
	}
	for _, testCase := range testCases {
		var calls int32
		server := newValidationServer(t, &calls, testCase.status, testCase.body)
		client := NewClient(server.URL)
		result, err := client.Validate(context.Background(), "a+b", []string{"a", "b"})
		server.Close()
		assert.EqualValues(t, 1, calls, testCase.description)
		if testCase.transport {
			assert.ErrorIs(t, err, ErrTransport, testCase.description)
			assert.Nil(t, result, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, result, testCase.description)
	}
}

func TestClient_Validate_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	URL := server.URL
	server.Close()
	_, err := NewClient(URL).Validate(context.Background(), "a", nil)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestClient_Validate_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)
	_, err := NewClient(server.URL, WithTimeout(20*time.Millisecond)).Validate(context.Background(), "a", []string{"a"})
	assert.ErrorIs(t, err, ErrTransport)
}

func TestNewClient_DefaultURL(t *testing.T) {
	assert.Equal(t, DefaultURL, NewClient("").url)
}

func TestCached_Validate(t *testing.T) {
	var calls int32
	server := newValidationServer(t, &calls, http.StatusOK, `{"valid":true}`)
	defer server.Close()
	cached, err := NewCached(NewClient(server.URL), 8)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		result, err := cached.Validate(context.Background(), "a+b", []string{"a", "b"})
		require.NoError(t, err)
		assert.True(t, result.Valid)
	}
	assert.EqualValues(t, 1, calls)
	assert.Equal(t, 1, cached.Len())
}

func TestCached_Validate_ErrorsNotCached(t *testing.T) {
	var calls int32
	server := newValidationServer(t, &calls, http.StatusBadGateway, "")
	defer server.Close()
	cached, err := NewCached(NewClient(server.URL), 0)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = cached.Validate(context.Background(), "a+b", []string{"a", "b"})
		assert.ErrorIs(t, err, ErrTransport)
	}
	assert.EqualValues(t, 2, calls)
	assert.Equal(t, 0, cached.Len())
}

func TestCacheKey_SymbolOrder(t *testing.T) {
	assert.Equal(t, cacheKey("a+b", []string{"b", "a"}), cacheKey("a+b", []string{"a", "b"}))
	assert.NotEqual(t, cacheKey("a+b", []string{"a"}), cacheKey("a+b", []string{"a", "b"}))
}
