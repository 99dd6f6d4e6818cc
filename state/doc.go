// Package state defines the root state of the dashboard: one feature per
// slice (workspaces, runs, settings), their reducers and selectors. The model
// under edit is the model of the selected workspace.
//
// Slices are immutable pointers. A reducer returns the same pointer when an
// action does not change its slice, so selectors and the persistence layer
// can detect changes by reference.
package state

// Feature keys
const (
	RunsKey       = "runs"
	WorkspacesKey = "workspaces"
	SettingsKey   = "settings"
)

// PersistedKeys lists the slices kept in local storage.
var PersistedKeys = []string{WorkspacesKey, RunsKey, SettingsKey}
