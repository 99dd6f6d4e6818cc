package state

import (
	"github.com/viant/simdash/actions"
	"github.com/viant/simdash/model"
	"github.com/viant/simdash/store"
)

// RunsState holds simulation runs in creation order.
type RunsState struct {
	Runs       []*model.Run `json:"runs"`
	SelectedID string       `json:"selectedId,omitempty"`
}

func NewRunsState() *RunsState {
	return &RunsState{Runs: []*model.Run{}}
}

// Lookup returns a run by id or nil.
func (s *RunsState) Lookup(id string) *model.Run {
	if s == nil {
		return nil
	}
	for _, candidate := range s.Runs {
		if candidate.ID == id {
			return candidate
		}
	}
	return nil
}

var RunsReducer = store.CreateReducer[*RunsState](
	store.On(addRun, actions.Dashboard.AddRun),
	store.On(func(state *RunsState, props actions.IDProps) *RunsState {
		if state.SelectedID == props.ID || state.Lookup(props.ID) == nil {
			return state
		}
		return &RunsState{Runs: state.Runs, SelectedID: props.ID}
	}, actions.Dashboard.SelectRun),
	store.On(removeRun, actions.Dashboard.RemoveRun),
	store.On(func(state *RunsState, props actions.RunsProps) *RunsState {
		ret := &RunsState{Runs: make([]*model.Run, 0, len(props.Runs))}
		for _, candidate := range props.Runs {
			if candidate != nil && candidate.ID != "" {
				ret.Runs = append(ret.Runs, candidate)
			}
		}
		if ret.Lookup(props.SelectedID) != nil {
			ret.SelectedID = props.SelectedID
		}
		return ret
	}, actions.LocalStorage.LoadRuns),
	store.On(processingSuccess, actions.Processing.ModelProcessingSuccess),
)

// addRun appends a run, replacing any run with the same id.
func addRun(state *RunsState, props actions.RunProps) *RunsState {
	if props.Run == nil || props.Run.ID == "" {
		return state
	}
	ret := &RunsState{SelectedID: state.SelectedID, Runs: make([]*model.Run, 0, len(state.Runs)+1)}
	for _, candidate := range state.Runs {
		if candidate.ID != props.Run.ID {
			ret.Runs = append(ret.Runs, candidate)
		}
	}
	ret.Runs = append(ret.Runs, props.Run)
	return ret
}

func removeRun(state *RunsState, props actions.IDProps) *RunsState {
	if state.Lookup(props.ID) == nil {
		return state
	}
	ret := &RunsState{SelectedID: state.SelectedID, Runs: make([]*model.Run, 0, len(state.Runs))}
	for _, candidate := range state.Runs {
		if candidate.ID != props.ID {
			ret.Runs = append(ret.Runs, candidate)
		}
	}
	if ret.SelectedID == props.ID {
		ret.SelectedID = ""
	}
	return ret
}

// processingSuccess attaches processed data to its run.
func processingSuccess(state *RunsState, props actions.ProcessingProps) *RunsState {
	if state.Lookup(props.RunID) == nil {
		return state
	}
	ret := &RunsState{SelectedID: state.SelectedID, Runs: make([]*model.Run, 0, len(state.Runs))}
	for _, candidate := range state.Runs {
		if candidate.ID == props.RunID {
			candidate = candidate.Clone()
			candidate.Data = props.Data
			candidate.Result = &model.Result{Success: true}
		}
		ret.Runs = append(ret.Runs, candidate)
	}
	return ret
}
