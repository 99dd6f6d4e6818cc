package model

type (
	// Definitions holds the shared model definitions.
	Definitions struct {
		Constants   []*Constant   `json:"constants" yaml:"constants"`
		Expressions []*Expression `json:"expressions" yaml:"expressions"`
	}

	Constant struct {
		Name  string  `json:"name" yaml:"name"`
		Value float64 `json:"value" yaml:"value"`
	}

	Expression struct {
		Name     string `json:"name" yaml:"name"`
		Equation string `json:"equation" yaml:"equation"`
	}
)

func (d Definitions) Clone() Definitions {
	ret := Definitions{
		Constants:   make([]*Constant, 0, len(d.Constants)),
		Expressions: make([]*Expression, 0, len(d.Expressions)),
	}
	for _, c := range d.Constants {
		if c == nil {
			continue
		}
		item := *c
		ret.Constants = append(ret.Constants, &item)
	}
	for _, e := range d.Expressions {
		if e == nil {
			continue
		}
		item := *e
		ret.Expressions = append(ret.Expressions, &item)
	}
	return ret
}
