package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/simdash/action"
	"github.com/viant/simdash/actions"
	"github.com/viant/simdash/model"
	"github.com/viant/simdash/store"
)

func dispatchAll(t *testing.T, aStore *store.Store, acts ...action.Action) {
	for _, act := range acts {
		require.NoError(t, aStore.Dispatch(context.Background(), act))
	}
}

func TestModelEdits(t *testing.T) {
	aStore := NewStore()
	dispatchAll(t, aStore,
		actions.CompartmentDialog.UpsertCompartment.Create(actions.CompartmentProps{Compartment: &model.Compartment{ID: "S", Value: "990"}}),
		actions.CompartmentDialog.UpsertCompartment.Create(actions.CompartmentProps{Compartment: &model.Compartment{ID: "I", Value: "10"}}),
		actions.FlowDialog.UpsertFlow.Create(actions.FlowProps{Flow: &model.Flow{ID: "infection", Source: "S", Target: "I", Equation: "b*S*I", Width: 2}}),
	)
	aModel := store.Select(aStore, SelectModel)
	require.NotNil(t, aModel)
	assert.Len(t, aModel.Compartments, 2)
	assert.Len(t, aModel.Flows, 1)

	// inline edit converges on the same handler and replaces the whole entity
	dispatchAll(t, aStore,
		actions.EditCompartment.UpsertCompartment.Create(actions.CompartmentProps{Compartment: &model.Compartment{ID: "S", Name: "Susceptible"}}),
		actions.EditFlow.UpsertFlow.Create(actions.FlowProps{Flow: &model.Flow{ID: "infection", Source: "S", Target: "I"}}),
	)
	aModel = store.Select(aStore, SelectModel)
	assert.Equal(t, &model.Compartment{ID: "S", Name: "Susceptible"}, aModel.Compartment("S"))
	assert.Equal(t, "", aModel.Flow("infection").Equation)
	assert.Equal(t, 0.0, aModel.Flow("infection").Width)
	assert.Equal(t, []string{"S", "I"}, []string{aModel.Compartments[0].ID, aModel.Compartments[1].ID})

	dispatchAll(t, aStore,
		actions.DefinitionsTable.UpdateDefinitions.Create(actions.DefinitionsProps{Definitions: model.Definitions{Constants: []*model.Constant{{Name: "b", Value: 0.1}}}}),
	)
	assert.Equal(t, []string{"S", "I", "b"}, store.Select(aStore, SelectSymbols))

	dispatchAll(t, aStore, actions.App.RemoveCompartment.Create(actions.IDProps{ID: "I"}))
	aModel = store.Select(aStore, SelectModel)
	assert.Len(t, aModel.Compartments, 1)
	assert.Empty(t, aModel.Flows)

	dispatchAll(t, aStore, actions.App.ClearModel.Create())
	aModel = store.Select(aStore, SelectModel)
	assert.Empty(t, aModel.Compartments)
	assert.True(t, aModel.Tagged())
}

func TestModelEdits_NoOp(t *testing.T) {
	aStore := NewStore()
	before := aStore.State()
	dispatchAll(t, aStore,
		actions.App.RemoveFlow.Create(actions.IDProps{ID: "missing"}),
		actions.App.RemoveCompartment.Create(actions.IDProps{ID: "missing"}),
		actions.FlowDialog.UpsertFlow.Create(actions.FlowProps{}),
		actions.App.ImportModel.Create(actions.ModelProps{Model: &model.Definition{}}),
		actions.App.ImportModel.Create(actions.ModelProps{Model: &model.Definition{Kind: model.DefinitionKind, Compartments: []*model.Compartment{nil}, Flows: []*model.Flow{nil}}}),
	)
	assert.Same(t, before[WorkspacesKey], aStore.State()[WorkspacesKey])
}

func TestRemoveFlow(t *testing.T) {
	imported := model.NewDefinition()
	imported.Compartments = []*model.Compartment{{ID: "A"}, {ID: "B"}}
	imported.Flows = []*model.Flow{{ID: "f1", Source: "A", Target: "B"}, {ID: "f2", Source: "B", Target: "A"}}
	aStore := NewStore()
	dispatchAll(t, aStore,
		actions.App.ImportModel.Create(actions.ModelProps{Model: imported}),
		actions.App.RemoveFlow.Create(actions.IDProps{ID: "f1"}),
	)
	aModel := store.Select(aStore, SelectModel)
	assert.Len(t, aModel.Flows, 1)
	assert.Equal(t, "f2", aModel.Flows[0].ID)
	assert.Len(t, imported.Flows, 2)
}

func TestWorkspaces(t *testing.T) {
	aStore := NewStore()
	assert.Equal(t, []string{DefaultWorkspace}, store.Select(aStore, SelectWorkspaceNames))

	dispatchAll(t, aStore,
		actions.CompartmentDialog.UpsertCompartment.Create(actions.CompartmentProps{Compartment: &model.Compartment{ID: "S"}}),
		actions.Workspace.AddWorkspace.Create(actions.NameProps{Name: "SIR"}),
	)
	assert.Equal(t, "SIR", store.Select(aStore, SelectCurrentWorkspace).Name)
	assert.Empty(t, store.Select(aStore, SelectCompartments))

	before := aStore.State()[WorkspacesKey]
	dispatchAll(t, aStore, actions.Workspace.AddWorkspace.Create(actions.NameProps{Name: "SIR"}))
	assert.Same(t, before, aStore.State()[WorkspacesKey])

	dispatchAll(t, aStore, actions.Workspace.SelectWorkspace.Create(actions.NameProps{Name: DefaultWorkspace}))
	assert.Len(t, store.Select(aStore, SelectCompartments), 1)

	dispatchAll(t, aStore, actions.Workspace.RemoveWorkspace.Create(actions.NameProps{Name: DefaultWorkspace}))
	assert.Equal(t, []string{"SIR"}, store.Select(aStore, SelectWorkspaceNames))
	assert.Equal(t, "SIR", store.Select(aStore, SelectCurrentWorkspace).Name)

	dispatchAll(t, aStore, actions.Workspace.RemoveWorkspace.Create(actions.NameProps{Name: "SIR"}))
	assert.Equal(t, []string{DefaultWorkspace}, store.Select(aStore, SelectWorkspaceNames))
}

func TestLoadWorkspaces(t *testing.T) {
	aStore := NewStore()
	valid := &model.Workspace{Name: "A", Model: model.NewDefinition()}
	dispatchAll(t, aStore, actions.LocalStorage.LoadWorkspaces.Create(actions.WorkspacesProps{
		Workspaces: []*model.Workspace{valid, {Name: "B", Model: &model.Definition{}}, {Name: "A", Model: model.NewDefinition()}},
		Selected:   "B",
	}))
	actual := store.Select(aStore, SelectWorkspacesState)
	require.Len(t, actual.Workspaces, 1)
	assert.Same(t, valid, actual.Workspaces[0])
	assert.Equal(t, "A", actual.Selected)

	before := aStore.State()[WorkspacesKey]
	dispatchAll(t, aStore, actions.LocalStorage.LoadWorkspaces.Create(actions.WorkspacesProps{}))
	assert.Same(t, before, aStore.State()[WorkspacesKey])
}
