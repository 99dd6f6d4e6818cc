// Package validation checks model expressions against the symbols a model
// defines. Client calls the remote validation endpoint, Cached memoizes its
// answers and Local validates offline.
package validation

import (
	"context"
	"errors"
)

// DefaultURL is the development validation endpoint
const DefaultURL = "http://localhost:5000/validate"

// ErrTransport wraps failures reaching the validation endpoint
var ErrTransport = errors.New("validation: transport failure")

// Service validates an expression against the allowed symbols
type Service interface {
	Validate(ctx context.Context, expression string, allowedSymbols []string) (*Result, error)
}

// Request is the validation endpoint payload
type Request struct {
	Expression     string   `json:"expression"`
	AllowedSymbols []string `json:"allowedSymbols"`
}

// Result is the validation verdict
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}
