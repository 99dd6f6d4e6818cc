package model

// Compartment represents a node of the model graph.
type Compartment struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Value is the initial value expression
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	// Selected is UI state, never persisted
	Selected bool `json:"-" yaml:"-"`
}

func (c *Compartment) Clone() *Compartment {
	if c == nil {
		return nil
	}
	ret := *c
	return &ret
}
