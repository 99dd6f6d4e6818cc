package actions

import "github.com/viant/simdash/action"

var settingsGroup = action.NewGroup("Settings Component")

// Settings groups the actions of the settings form.
var Settings = struct {
	SetSettings *action.Creator[SettingsProps]
}{
	SetSettings: action.NewCreator[SettingsProps](settingsGroup, "Set Settings"),
}
