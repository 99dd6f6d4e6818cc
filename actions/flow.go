package actions

import "github.com/viant/simdash/action"

var (
	flowDialogGroup = action.NewGroup("Flow Dialog Component")
	editFlowGroup   = action.NewGroup("Edit Flow Component")
)

// FlowDialog groups the actions of the flow dialog.
var FlowDialog = struct {
	UpsertFlow *action.Creator[FlowProps]
}{
	UpsertFlow: action.NewCreator[FlowProps](flowDialogGroup, "Upsert Flow"),
}

// EditFlow groups the actions of inline flow editing.
var EditFlow = struct {
	UpsertFlow *action.Creator[FlowProps]
}{
	UpsertFlow: action.NewCreator[FlowProps](editFlowGroup, "Upsert Flow"),
}
