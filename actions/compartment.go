package actions

import "github.com/viant/simdash/action"

var (
	compartmentDialogGroup = action.NewGroup("Compartment Dialog Component")
	editCompartmentGroup   = action.NewGroup("Edit Compartment Component")
)

// CompartmentDialog groups the actions of the compartment dialog.
var CompartmentDialog = struct {
	UpsertCompartment *action.Creator[CompartmentProps]
}{
	UpsertCompartment: action.NewCreator[CompartmentProps](compartmentDialogGroup, "Upsert Compartment"),
}

// EditCompartment groups the actions of inline compartment editing.
var EditCompartment = struct {
	UpsertCompartment *action.Creator[CompartmentProps]
}{
	UpsertCompartment: action.NewCreator[CompartmentProps](editCompartmentGroup, "Upsert Compartment"),
}
