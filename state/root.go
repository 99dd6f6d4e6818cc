package state

import (
	"github.com/viant/simdash/store"
)

// Features returns the dashboard features with their initial slices.
func Features() []*store.Feature {
	return []*store.Feature{
		store.NewFeature(WorkspacesKey, NewWorkspacesState(), WorkspacesReducer),
		store.NewFeature(RunsKey, NewRunsState(), RunsReducer),
		store.NewFeature(SettingsKey, NewSettingsState(), SettingsReducer),
	}
}

// NewStore creates a store holding the dashboard features.
func NewStore(options ...store.Option) *store.Store {
	return store.New(Features(), options...)
}
