package idgen

import (
	"strings"

	"github.com/google/uuid"
)

var NewFunc = func() string { return uuid.New().String() }

// New returns a new globally unique identifier.
func New() string { return NewFunc() }

// WithPrefix returns a new identifier in the form <prefix>-<id>.
func WithPrefix(prefix string) string {
	if prefix == "" {
		return New()
	}
	return strings.TrimSuffix(prefix, "-") + "-" + New()
}
