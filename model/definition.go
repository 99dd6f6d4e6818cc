package model

import "fmt"

// DefinitionKind is the discriminant carried by every model built through
// NewDefinition. Values decoded from untrusted sources must carry it to be
// accepted as a model.
const DefinitionKind = "ModelDefinition"

// Definition represents a compartmental model: compartments (graph nodes),
// flows (directed edges) and shared definitions.
type Definition struct {
	// Kind is the construction discriminant, always DefinitionKind
	Kind string `json:"kind" yaml:"kind"`

	// Name is a human-readable model name
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	Compartments []*Compartment `json:"compartments" yaml:"compartments"`

	Flows []*Flow `json:"flows" yaml:"flows"`

	// Definitions holds constants and expressions, flows excluded
	Definitions Definitions `json:"definitions" yaml:"definitions"`
}

// NewDefinition creates an empty, tagged model.
func NewDefinition() *Definition {
	return &Definition{
		Kind:         DefinitionKind,
		Compartments: []*Compartment{},
		Flows:        []*Flow{},
		Definitions:  Definitions{Constants: []*Constant{}, Expressions: []*Expression{}},
	}
}

// Tagged reports whether d was constructed as a model definition.
func (d *Definition) Tagged() bool {
	return d != nil && d.Kind == DefinitionKind
}

// Compartment returns a compartment by id or nil.
func (d *Definition) Compartment(id string) *Compartment {
	if d == nil {
		return nil
	}
	for _, c := range d.Compartments {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Flow returns a flow by id or nil.
func (d *Definition) Flow(id string) *Flow {
	if d == nil {
		return nil
	}
	for _, f := range d.Flows {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// Symbols returns the names an expression in this model may refer to:
// compartment ids followed by constant and expression names.
func (d *Definition) Symbols() []string {
	if d == nil {
		return nil
	}
	var result []string
	for _, c := range d.Compartments {
		result = append(result, c.ID)
	}
	for _, c := range d.Definitions.Constants {
		result = append(result, c.Name)
	}
	for _, e := range d.Definitions.Expressions {
		result = append(result, e.Name)
	}
	return result
}

// Validate checks structural consistency: no null entries, unique ids and
// flows referencing existing compartments.
func (d *Definition) Validate() error {
	if !d.Tagged() {
		return fmt.Errorf("model: missing %v discriminant", DefinitionKind)
	}
	ids := make(map[string]bool, len(d.Compartments))
	for _, c := range d.Compartments {
		if c == nil || c.ID == "" {
			return fmt.Errorf("model: compartment id was empty")
		}
		if ids[c.ID] {
			return fmt.Errorf("model: duplicate compartment %v", c.ID)
		}
		ids[c.ID] = true
	}
	flows := make(map[string]bool, len(d.Flows))
	for _, f := range d.Flows {
		if f == nil || f.ID == "" {
			return fmt.Errorf("model: flow id was empty")
		}
		if flows[f.ID] {
			return fmt.Errorf("model: duplicate flow %v", f.ID)
		}
		flows[f.ID] = true
		if f.Source != "" && !ids[f.Source] {
			return fmt.Errorf("model: flow %v source %v not found", f.ID, f.Source)
		}
		if f.Target != "" && !ids[f.Target] {
			return fmt.Errorf("model: flow %v target %v not found", f.ID, f.Target)
		}
	}
	for _, c := range d.Definitions.Constants {
		if c == nil {
			return fmt.Errorf("model: constant was null")
		}
	}
	for _, e := range d.Definitions.Expressions {
		if e == nil {
			return fmt.Errorf("model: expression was null")
		}
	}
	return nil
}

// Clone returns a deep copy of the model.
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	ret := &Definition{
		Kind:         d.Kind,
		Name:         d.Name,
		Compartments: make([]*Compartment, 0, len(d.Compartments)),
		Flows:        make([]*Flow, 0, len(d.Flows)),
		Definitions:  d.Definitions.Clone(),
	}
	for _, c := range d.Compartments {
		ret.Compartments = append(ret.Compartments, c.Clone())
	}
	for _, f := range d.Flows {
		ret.Flows = append(ret.Flows, f.Clone())
	}
	return ret
}
