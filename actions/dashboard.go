package actions

import "github.com/viant/simdash/action"

var dashboardGroup = action.NewGroup("Dashboard Component")

// Dashboard groups run management actions.
var Dashboard = struct {
	AddRun          *action.Creator[RunProps]
	SelectRun       *action.Creator[IDProps]
	RemoveRun       *action.Creator[IDProps]
	ExportRunData   *action.Creator[IDProps]
	ExportRunValues *action.Creator[IDProps]
}{
	AddRun:          action.NewCreator[RunProps](dashboardGroup, "Add Run"),
	SelectRun:       action.NewCreator[IDProps](dashboardGroup, "Select Run"),
	RemoveRun:       action.NewCreator[IDProps](dashboardGroup, "Remove Run"),
	ExportRunData:   action.NewCreator[IDProps](dashboardGroup, "Export Run Data"),
	ExportRunValues: action.NewCreator[IDProps](dashboardGroup, "Export Run Values"),
}
