package action

import (
	"encoding/json"
	"fmt"
)

// Matcher identifies actions by type.
type Matcher interface {
	Type() Type
}

// Creator creates actions with payload P.
type Creator[P any] struct {
	kind Type
}

func (c *Creator[P]) Type() Type {
	return c.kind
}

// Create returns a new action carrying props.
func (c *Creator[P]) Create(props P) *Value[P] {
	return &Value[P]{Kind: c.kind, Props: props}
}

// Match returns the payload when act was created by c.
func (c *Creator[P]) Match(act Action) (P, bool) {
	var zero P
	if act == nil || act.ActionType() != c.kind {
		return zero, false
	}
	actual, ok := act.(*Value[P])
	if !ok {
		return zero, false
	}
	return actual.Props, true
}

func (c *Creator[P]) decode(data []byte) (Action, error) {
	ret := &Value[P]{Kind: c.kind}
	if err := json.Unmarshal(data, &ret.Props); err != nil {
		return nil, fmt.Errorf("failed to decode %v: %w", c.kind, err)
	}
	return ret, nil
}

// NewCreator returns a registered creator of the event in group.
func NewCreator[P any](group *Group, event string) *Creator[P] {
	ret := &Creator[P]{kind: group.TypeOf(event)}
	register(ret.kind, ret.decode)
	return ret
}

// EmptyCreator creates actions without payload.
type EmptyCreator struct {
	kind Type
}

func (c *EmptyCreator) Type() Type {
	return c.kind
}

func (c *EmptyCreator) Create() *Signal {
	return &Signal{Kind: c.kind}
}

func (c *EmptyCreator) Match(act Action) bool {
	return act != nil && act.ActionType() == c.kind
}

func (c *EmptyCreator) decode([]byte) (Action, error) {
	return c.Create(), nil
}

// NewEmptyCreator returns a registered creator of a payload-less event.
func NewEmptyCreator(group *Group, event string) *EmptyCreator {
	ret := &EmptyCreator{kind: group.TypeOf(event)}
	register(ret.kind, ret.decode)
	return ret
}
