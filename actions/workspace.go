package actions

import "github.com/viant/simdash/action"

var workspaceGroup = action.NewGroup("Workspace Component")

// Workspace groups the actions managing workspaces.
var Workspace = struct {
	AddWorkspace    *action.Creator[NameProps]
	SelectWorkspace *action.Creator[NameProps]
	RemoveWorkspace *action.Creator[NameProps]
}{
	AddWorkspace:    action.NewCreator[NameProps](workspaceGroup, "Add Workspace"),
	SelectWorkspace: action.NewCreator[NameProps](workspaceGroup, "Select Workspace"),
	RemoveWorkspace: action.NewCreator[NameProps](workspaceGroup, "Remove Workspace"),
}
