package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Workspace pairs a name with exactly one model.
type Workspace struct {
	Name  string      `json:"name" yaml:"name"`
	Model *Definition `json:"model" yaml:"model"`
}

// ErrInvalidWorkspace is returned when a value fails the workspace guard.
var ErrInvalidWorkspace = errors.New("model: invalid workspace")

// IsWorkspace reports whether v is a workspace. A generic map must have
// exactly the keys "name" and "model", the name must be a string and the
// model a valid *Definition built by NewDefinition; structurally similar
// values are rejected.
func IsWorkspace(v any) bool {
	switch actual := v.(type) {
	case *Workspace:
		return actual != nil && actual.Model.Validate() == nil
	case Workspace:
		return actual.Model.Validate() == nil
	case map[string]any:
		if len(actual) != 2 {
			return false
		}
		if _, ok := actual["name"].(string); !ok {
			return false
		}
		aModel, ok := actual["model"].(*Definition)
		return ok && aModel.Validate() == nil
	}
	return false
}

// DecodeWorkspace decodes a workspace from JSON applying the IsWorkspace
// policy to the raw document: exactly two keys, a string name and a model
// object carrying the DefinitionKind discriminant.
func DecodeWorkspace(data []byte) (*Workspace, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkspace, err)
	}
	if len(raw) != 2 {
		return nil, fmt.Errorf("%w: expected 2 keys, but had %d", ErrInvalidWorkspace, len(raw))
	}
	rawName, ok := raw["name"]
	if !ok || !isJSONString(rawName) {
		return nil, fmt.Errorf("%w: name was not a string", ErrInvalidWorkspace)
	}
	ret := &Workspace{}
	if err := json.Unmarshal(rawName, &ret.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkspace, err)
	}
	rawModel, ok := raw["model"]
	if !ok {
		return nil, fmt.Errorf("%w: model was missing", ErrInvalidWorkspace)
	}
	aModel, err := DecodeDefinition(rawModel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkspace, err)
	}
	ret.Model = aModel
	if !IsWorkspace(ret) {
		return nil, ErrInvalidWorkspace
	}
	return ret, nil
}

// DecodeDefinition decodes a model from JSON, rejecting documents without
// the discriminant, with unknown fields or failing Validate.
func DecodeDefinition(data []byte) (*Definition, error) {
	var probe struct {
		Kind *string `json:"kind"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("model was not an object: %w", err)
	}
	if probe.Kind == nil || *probe.Kind != DefinitionKind {
		return nil, fmt.Errorf("model kind was not %v", DefinitionKind)
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	ret := NewDefinition()
	if err := decoder.Decode(ret); err != nil {
		return nil, fmt.Errorf("failed to decode model: %w", err)
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

func isJSONString(data json.RawMessage) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '"'
}
