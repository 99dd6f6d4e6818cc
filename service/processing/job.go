package processing

import (
	"time"

	"github.com/viant/simdash/model"
)

// Job is one processing request queued for the workers
type Job struct {
	ID             string                    `json:"id"`
	ProcessingType model.ProcessingType      `json:"processingType"`
	RunID          string                    `json:"runId"`
	Model          *model.Definition         `json:"model"`
	Settings       *model.SimulationSettings `json:"settings,omitempty"`
	CreatedAt      time.Time                 `json:"createdAt"`
	Attempts       int                       `json:"attempts,omitempty"`
}

// Request is the processing backend payload
type Request struct {
	ProcessingType model.ProcessingType      `json:"processingType"`
	Model          *model.Definition         `json:"model"`
	Settings       *model.SimulationSettings `json:"settings,omitempty"`
}

// Response is the processing backend answer
type Response struct {
	Data *model.SimulationData `json:"data"`
}
