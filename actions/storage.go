package actions

import "github.com/viant/simdash/action"

var localStorageGroup = action.NewGroup("Local Storage")

// LocalStorage groups the actions restoring persisted slices at startup.
var LocalStorage = struct {
	LoadWorkspaces *action.Creator[WorkspacesProps]
	LoadRuns       *action.Creator[RunsProps]
	LoadSettings   *action.Creator[SettingsProps]
}{
	LoadWorkspaces: action.NewCreator[WorkspacesProps](localStorageGroup, "Load Workspaces"),
	LoadRuns:       action.NewCreator[RunsProps](localStorageGroup, "Load Runs"),
	LoadSettings:   action.NewCreator[SettingsProps](localStorageGroup, "Load Settings"),
}
