package model

import "time"

type (
	// Run represents one execution of a model together with its output.
	Run struct {
		ID        string    `json:"id" yaml:"id"`
		Name      string    `json:"name,omitempty" yaml:"name,omitempty"`
		CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
		// Model is the snapshot the run was started with
		Model *Definition     `json:"model,omitempty" yaml:"model,omitempty"`
		Data  *SimulationData `json:"data,omitempty" yaml:"data,omitempty"`
		// Result is nil until processing finished
		Result *Result `json:"result,omitempty" yaml:"result,omitempty"`
	}

	// SimulationData holds values over time, one series per compartment.
	SimulationData struct {
		Times  []float64            `json:"times" yaml:"times"`
		Series map[string][]float64 `json:"series" yaml:"series"`
	}

	Result struct {
		Success bool   `json:"success" yaml:"success"`
		Message string `json:"message,omitempty" yaml:"message,omitempty"`
	}
)

// Clone returns a shallow copy of the run; model and data are shared since
// they are never mutated in place.
func (r *Run) Clone() *Run {
	if r == nil {
		return nil
	}
	ret := *r
	return &ret
}
