package state

import (
	"github.com/viant/simdash/actions"
	"github.com/viant/simdash/model"
	"github.com/viant/simdash/store"
)

// DefaultWorkspace is created whenever no workspace exists.
const DefaultWorkspace = "Default"

// WorkspacesState holds named workspaces; the selected workspace model is
// the model being edited.
type WorkspacesState struct {
	Workspaces []*model.Workspace `json:"workspaces"`
	Selected   string             `json:"selected"`
}

// NewWorkspacesState returns a state with one empty default workspace.
func NewWorkspacesState() *WorkspacesState {
	return &WorkspacesState{
		Workspaces: []*model.Workspace{{Name: DefaultWorkspace, Model: model.NewDefinition()}},
		Selected:   DefaultWorkspace,
	}
}

// Lookup returns a workspace by name or nil.
func (s *WorkspacesState) Lookup(name string) *model.Workspace {
	if s == nil {
		return nil
	}
	for _, candidate := range s.Workspaces {
		if candidate.Name == name {
			return candidate
		}
	}
	return nil
}

// Current returns the selected workspace.
func (s *WorkspacesState) Current() *model.Workspace {
	if s == nil {
		return nil
	}
	return s.Lookup(s.Selected)
}

// withModel returns a state whose selected workspace holds aModel.
func (s *WorkspacesState) withModel(aModel *model.Definition) *WorkspacesState {
	current := s.Current()
	if current == nil || current.Model == aModel {
		return s
	}
	ret := &WorkspacesState{Selected: s.Selected, Workspaces: make([]*model.Workspace, 0, len(s.Workspaces))}
	for _, candidate := range s.Workspaces {
		if candidate.Name == s.Selected {
			candidate = &model.Workspace{Name: candidate.Name, Model: aModel}
		}
		ret.Workspaces = append(ret.Workspaces, candidate)
	}
	return ret
}

func onModel[P any](fn func(*model.Definition, P) *model.Definition) func(*WorkspacesState, P) *WorkspacesState {
	return func(state *WorkspacesState, props P) *WorkspacesState {
		current := state.Current()
		if current == nil {
			return state
		}
		return state.withModel(fn(current.Model, props))
	}
}

// WorkspacesReducer reduces the workspaces slice, including every model
// edit applied to the selected workspace.
var WorkspacesReducer = store.CreateReducer[*WorkspacesState](
	store.OnEmpty(func(state *WorkspacesState) *WorkspacesState {
		return state.withModel(model.NewDefinition())
	}, actions.App.ClearModel),
	store.On(onModel(importModel), actions.App.ImportModel, actions.App.ImportSampleModel),
	store.On(onModel(upsertCompartment), actions.CompartmentDialog.UpsertCompartment, actions.EditCompartment.UpsertCompartment),
	store.On(onModel(upsertFlow), actions.FlowDialog.UpsertFlow, actions.EditFlow.UpsertFlow),
	store.On(onModel(removeCompartment), actions.App.RemoveCompartment),
	store.On(onModel(removeFlow), actions.App.RemoveFlow),
	store.On(onModel(updateDefinitions), actions.DefinitionsTable.UpdateDefinitions),
	store.On(addWorkspace, actions.Workspace.AddWorkspace),
	store.On(selectWorkspace, actions.Workspace.SelectWorkspace),
	store.On(removeWorkspace, actions.Workspace.RemoveWorkspace),
	store.On(loadWorkspaces, actions.LocalStorage.LoadWorkspaces),
)

// addWorkspace creates and selects an empty workspace; existing names are
// left untouched.
func addWorkspace(state *WorkspacesState, props actions.NameProps) *WorkspacesState {
	if props.Name == "" || state.Lookup(props.Name) != nil {
		return state
	}
	ret := &WorkspacesState{Selected: props.Name, Workspaces: make([]*model.Workspace, 0, len(state.Workspaces)+1)}
	ret.Workspaces = append(ret.Workspaces, state.Workspaces...)
	ret.Workspaces = append(ret.Workspaces, &model.Workspace{Name: props.Name, Model: model.NewDefinition()})
	return ret
}

func selectWorkspace(state *WorkspacesState, props actions.NameProps) *WorkspacesState {
	if state.Selected == props.Name || state.Lookup(props.Name) == nil {
		return state
	}
	return &WorkspacesState{Workspaces: state.Workspaces, Selected: props.Name}
}

// removeWorkspace deletes a workspace. Removing the selected one selects the
// first remaining workspace, or a fresh default when none remain.
func removeWorkspace(state *WorkspacesState, props actions.NameProps) *WorkspacesState {
	if state.Lookup(props.Name) == nil {
		return state
	}
	ret := &WorkspacesState{Selected: state.Selected, Workspaces: make([]*model.Workspace, 0, len(state.Workspaces))}
	for _, candidate := range state.Workspaces {
		if candidate.Name != props.Name {
			ret.Workspaces = append(ret.Workspaces, candidate)
		}
	}
	if len(ret.Workspaces) == 0 {
		return NewWorkspacesState()
	}
	if ret.Selected == props.Name {
		ret.Selected = ret.Workspaces[0].Name
	}
	return ret
}

// loadWorkspaces replaces the slice with persisted workspaces, keeping only
// values passing the workspace guard.
func loadWorkspaces(state *WorkspacesState, props actions.WorkspacesProps) *WorkspacesState {
	ret := &WorkspacesState{Workspaces: make([]*model.Workspace, 0, len(props.Workspaces))}
	seen := map[string]bool{}
	for _, candidate := range props.Workspaces {
		if !model.IsWorkspace(candidate) || seen[candidate.Name] {
			continue
		}
		seen[candidate.Name] = true
		ret.Workspaces = append(ret.Workspaces, candidate)
	}
	if len(ret.Workspaces) == 0 {
		return state
	}
	ret.Selected = props.Selected
	if ret.Lookup(ret.Selected) == nil {
		ret.Selected = ret.Workspaces[0].Name
	}
	return ret
}
