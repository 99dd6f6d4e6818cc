package actions

import "github.com/viant/simdash/action"

var definitionsTableGroup = action.NewGroup("Definitions Table Component")

// DefinitionsTable groups the actions of the constants and expressions table.
var DefinitionsTable = struct {
	UpdateDefinitions *action.Creator[DefinitionsProps]
}{
	UpdateDefinitions: action.NewCreator[DefinitionsProps](definitionsTableGroup, "Update Definitions"),
}
