package actions

import (
	"github.com/viant/simdash/model"
)

type (
	// ModelProps carries a complete model.
	ModelProps struct {
		Model *model.Definition `json:"model"`
	}

	// IDProps identifies an entity.
	IDProps struct {
		ID string `json:"id"`
	}

	// NameProps identifies a workspace.
	NameProps struct {
		Name string `json:"name"`
	}

	// CompartmentProps carries a full compartment; upserts replace by id.
	CompartmentProps struct {
		Compartment *model.Compartment `json:"compartment"`
	}

	// FlowProps carries a full flow; upserts replace by id.
	FlowProps struct {
		Flow *model.Flow `json:"flow"`
	}

	DefinitionsProps struct {
		Definitions model.Definitions `json:"definitions"`
	}

	RunProps struct {
		Run *model.Run `json:"run"`
	}

	SettingsProps struct {
		Settings *model.Settings `json:"settings"`
	}

	WorkspacesProps struct {
		Workspaces []*model.Workspace `json:"workspaces"`
		Selected   string             `json:"selected,omitempty"`
	}

	RunsProps struct {
		Runs       []*model.Run `json:"runs"`
		SelectedID string       `json:"selectedId,omitempty"`
	}

	// ProcessingProps carries the output of a finished processing job.
	ProcessingProps struct {
		ProcessingType model.ProcessingType  `json:"processingType"`
		RunID          string                `json:"runId"`
		Data           *model.SimulationData `json:"data"`
	}
)
