package state

import (
	"github.com/viant/simdash/actions"
	"github.com/viant/simdash/model"
	"github.com/viant/simdash/store"
)

// SettingsState holds user preferences.
type SettingsState struct {
	model.Settings
}

func NewSettingsState() *SettingsState {
	return &SettingsState{Settings: *model.DefaultSettings()}
}

var SettingsReducer = store.CreateReducer[*SettingsState](
	store.On(setSettings, actions.Settings.SetSettings, actions.LocalStorage.LoadSettings),
)

// setSettings replaces settings; missing sections keep their current value.
func setSettings(state *SettingsState, props actions.SettingsProps) *SettingsState {
	if props.Settings == nil {
		return state
	}
	ret := &SettingsState{Settings: *props.Settings}
	if ret.Dashboard == nil {
		ret.Dashboard = state.Dashboard
	}
	if ret.Simulation == nil {
		ret.Simulation = state.Simulation
	}
	return ret
}
