package action

import (
	"encoding/json"
	"fmt"
)

// Type is the source qualified action type tag.
type Type string

// Action represents a dispatched state-change request.
type Action interface {
	ActionType() Type
}

// Value is an action carrying a payload of type P.
type Value[P any] struct {
	Kind  Type
	Props P
}

func (v *Value[P]) ActionType() Type {
	return v.Kind
}

// MarshalJSON encodes the action as {"type": ..., <payload fields>}.
func (v *Value[P]) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(v.Props)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %v payload: %w", v.Kind, err)
	}
	fields := map[string]json.RawMessage{}
	if err = json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%v payload was not an object: %w", v.Kind, err)
	}
	if _, ok := fields[typeField]; ok {
		return nil, fmt.Errorf("%v payload must not define %q", v.Kind, typeField)
	}
	if fields[typeField], err = json.Marshal(v.Kind); err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

// Signal is an action without payload.
type Signal struct {
	Kind Type `json:"type"`
}

func (s *Signal) ActionType() Type {
	return s.Kind
}

const typeField = "type"
