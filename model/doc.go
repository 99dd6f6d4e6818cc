// Package model contains the data shapes shared by the dashboard state
// layer: compartmental model definitions (compartments, flows and
// definitions), workspaces, simulation runs and their results, user settings
// and processing kinds.
//
// Types in this package carry no behaviour beyond construction, cloning and
// the runtime guards (IsWorkspace, IsProcessingType) used wherever a value
// crosses a trust boundary, for example when it is read back from storage.
package model
