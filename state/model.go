package state

import (
	"github.com/viant/simdash/actions"
	"github.com/viant/simdash/model"
)

// Model edits operate on the selected workspace model. Each returns the
// input pointer when nothing changed. Upserts replace the whole entity
// keyed by id.

func importModel(current *model.Definition, props actions.ModelProps) *model.Definition {
	if props.Model.Validate() != nil {
		return current
	}
	return props.Model.Clone()
}

func shallowCopy(current *model.Definition) *model.Definition {
	if current == nil {
		return model.NewDefinition()
	}
	ret := *current
	return &ret
}

func upsertCompartment(current *model.Definition, props actions.CompartmentProps) *model.Definition {
	if props.Compartment == nil || props.Compartment.ID == "" {
		return current
	}
	next := shallowCopy(current)
	next.Compartments = make([]*model.Compartment, 0, len(next.Compartments)+1)
	replaced := false
	for _, candidate := range shallowCopy(current).Compartments {
		if candidate.ID == props.Compartment.ID {
			next.Compartments = append(next.Compartments, props.Compartment.Clone())
			replaced = true
			continue
		}
		next.Compartments = append(next.Compartments, candidate)
	}
	if !replaced {
		next.Compartments = append(next.Compartments, props.Compartment.Clone())
	}
	return next
}

func upsertFlow(current *model.Definition, props actions.FlowProps) *model.Definition {
	if props.Flow == nil || props.Flow.ID == "" {
		return current
	}
	next := shallowCopy(current)
	next.Flows = make([]*model.Flow, 0, len(next.Flows)+1)
	replaced := false
	for _, candidate := range shallowCopy(current).Flows {
		if candidate.ID == props.Flow.ID {
			next.Flows = append(next.Flows, props.Flow.Clone())
			replaced = true
			continue
		}
		next.Flows = append(next.Flows, candidate)
	}
	if !replaced {
		next.Flows = append(next.Flows, props.Flow.Clone())
	}
	return next
}

// removeCompartment drops the compartment and every flow attached to it.
func removeCompartment(current *model.Definition, props actions.IDProps) *model.Definition {
	if current.Compartment(props.ID) == nil {
		return current
	}
	next := shallowCopy(current)
	next.Compartments = []*model.Compartment{}
	for _, candidate := range current.Compartments {
		if candidate.ID != props.ID {
			next.Compartments = append(next.Compartments, candidate)
		}
	}
	next.Flows = []*model.Flow{}
	for _, candidate := range current.Flows {
		if candidate.Source != props.ID && candidate.Target != props.ID {
			next.Flows = append(next.Flows, candidate)
		}
	}
	return next
}

func removeFlow(current *model.Definition, props actions.IDProps) *model.Definition {
	if current.Flow(props.ID) == nil {
		return current
	}
	next := shallowCopy(current)
	next.Flows = []*model.Flow{}
	for _, candidate := range current.Flows {
		if candidate.ID != props.ID {
			next.Flows = append(next.Flows, candidate)
		}
	}
	return next
}

func updateDefinitions(current *model.Definition, props actions.DefinitionsProps) *model.Definition {
	next := shallowCopy(current)
	next.Definitions = props.Definitions.Clone()
	return next
}
