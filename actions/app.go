package actions

import "github.com/viant/simdash/action"

var appGroup = action.NewGroup("App Component")

// App groups the actions of the application shell.
var App = struct {
	ClearModel        *action.EmptyCreator
	ImportModel       *action.Creator[ModelProps]
	ImportSampleModel *action.Creator[ModelProps]
	ExportModel       *action.EmptyCreator
	RemoveCompartment *action.Creator[IDProps]
	RemoveFlow        *action.Creator[IDProps]
}{
	ClearModel:        action.NewEmptyCreator(appGroup, "Clear Model"),
	ImportModel:       action.NewCreator[ModelProps](appGroup, "Import Model"),
	ImportSampleModel: action.NewCreator[ModelProps](appGroup, "Import Sample Model"),
	ExportModel:       action.NewEmptyCreator(appGroup, "Export Model"),
	RemoveCompartment: action.NewCreator[IDProps](appGroup, "Remove Compartment"),
	RemoveFlow:        action.NewCreator[IDProps](appGroup, "Remove Flow"),
}
