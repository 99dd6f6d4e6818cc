package store

import (
	"github.com/viant/simdash/action"
)

// Feature is a named top-level slice of the Root with its reducer.
type Feature struct {
	Key     string
	initial any
	reduce  func(state any, act action.Action) (any, bool)
}

// NewFeature creates a feature. S must be comparable (usually a pointer)
// so that unchanged slices can be detected by reference.
func NewFeature[S comparable](key string, initial S, reducer Reducer[S]) *Feature {
	return &Feature{
		Key:     key,
		initial: initial,
		reduce: func(state any, act action.Action) (any, bool) {
			prev, _ := state.(S)
			next := reducer(prev, act)
			return next, next != prev
		},
	}
}
