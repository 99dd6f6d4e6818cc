package state

import (
	"github.com/viant/simdash/model"
	"github.com/viant/simdash/store"
)

var (
	SelectWorkspacesState = store.FeatureSelector[*WorkspacesState](WorkspacesKey)
	SelectRunsState       = store.FeatureSelector[*RunsState](RunsKey)
	SelectSettingsState   = store.FeatureSelector[*SettingsState](SettingsKey)
)

var (
	SelectDashboardSettings = store.CreateSelector(SelectSettingsState, func(s *SettingsState) *model.DashboardSettings {
		if s == nil {
			return nil
		}
		return s.Dashboard
	})

	SelectSimulationSettings = store.CreateSelector(SelectSettingsState, func(s *SettingsState) *model.SimulationSettings {
		if s == nil {
			return nil
		}
		return s.Simulation
	})

	SelectCurrentWorkspace = store.CreateSelector(SelectWorkspacesState, func(s *WorkspacesState) *model.Workspace {
		return s.Current()
	})

	SelectWorkspaceNames = store.CreateSelector(SelectWorkspacesState, func(s *WorkspacesState) []string {
		if s == nil {
			return nil
		}
		result := make([]string, 0, len(s.Workspaces))
		for _, candidate := range s.Workspaces {
			result = append(result, candidate.Name)
		}
		return result
	})

	// SelectModel returns the model of the selected workspace.
	SelectModel = store.CreateSelector(SelectCurrentWorkspace, func(w *model.Workspace) *model.Definition {
		if w == nil {
			return nil
		}
		return w.Model
	})

	SelectCompartments = store.CreateSelector(SelectModel, func(d *model.Definition) []*model.Compartment {
		if d == nil {
			return nil
		}
		return d.Compartments
	})

	SelectFlows = store.CreateSelector(SelectModel, func(d *model.Definition) []*model.Flow {
		if d == nil {
			return nil
		}
		return d.Flows
	})

	// SelectSymbols returns the names an expression of the current model may use.
	SelectSymbols = store.CreateSelector(SelectModel, func(d *model.Definition) []string {
		return d.Symbols()
	})

	SelectRuns = store.CreateSelector(SelectRunsState, func(s *RunsState) []*model.Run {
		if s == nil {
			return nil
		}
		return s.Runs
	})

	SelectSelectedRun = store.CreateSelector(SelectRunsState, func(s *RunsState) *model.Run {
		if s == nil {
			return nil
		}
		return s.Lookup(s.SelectedID)
	})
)
