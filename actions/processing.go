package actions

import "github.com/viant/simdash/action"

var processingGroup = action.NewGroup("Processing Service")

// Processing groups the actions dispatched by the processing service.
var Processing = struct {
	ModelProcessingSuccess *action.Creator[ProcessingProps]
}{
	ModelProcessingSuccess: action.NewCreator[ProcessingProps](processingGroup, "Model Processing Success"),
}
