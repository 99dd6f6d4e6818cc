package model

// Flow represents a directed edge between two compartments.
type Flow struct {
	ID     string `json:"id" yaml:"id"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	// Equation is the rate expression of the flow
	Equation string `json:"equation,omitempty" yaml:"equation,omitempty"`
	// Width is a rendering hint
	Width    float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Selected bool    `json:"-" yaml:"-"`
}

func (f *Flow) Clone() *Flow {
	if f == nil {
		return nil
	}
	ret := *f
	return &ret
}
