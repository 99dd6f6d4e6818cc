package model

import "github.com/viant/simdash/internal/set"

// ProcessingType identifies a kind of model processing job.
type ProcessingType string

const (
	ProcessingSimulation          ProcessingType = "simulation"
	ProcessingParameterEstimation ProcessingType = "parameter-estimation"
	ProcessingSensitivityAnalysis ProcessingType = "sensitivity-analysis"
)

// processingTypes is the only list of valid processing kinds.
var processingTypes = set.New(
	ProcessingSimulation,
	ProcessingParameterEstimation,
	ProcessingSensitivityAnalysis,
)

// IsProcessingType reports whether v is one of the declared processing kinds.
func IsProcessingType(v any) bool {
	var candidate ProcessingType
	switch actual := v.(type) {
	case ProcessingType:
		candidate = actual
	case string:
		candidate = ProcessingType(actual)
	default:
		return false
	}
	return processingTypes.Contains(candidate)
}

// ProcessingTypes returns all declared processing kinds.
func ProcessingTypes() []ProcessingType {
	return []ProcessingType{ProcessingSimulation, ProcessingParameterEstimation, ProcessingSensitivityAnalysis}
}
