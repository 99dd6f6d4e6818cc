// Package action defines the primitives of the state mutation protocol.
//
// An action is an immutable value describing a state-change request. Every
// action carries a type tag of the literal form "[<source>] <event>", where
// source names the surface the action originates from (see Group). Creators
// are pure data constructors: creating an action performs no validation and
// has no side effects.
//
//	group := action.NewGroup("Edit Flow Component")
//	upsertFlow := action.NewCreator[FlowProps](group, "Upsert Flow")
//	act := upsertFlow.Create(FlowProps{Flow: flow})
//	// act.ActionType() == "[Edit Flow Component] Upsert Flow"
//
// Creators register themselves so that the JSON wire form of any action can
// be decoded back into a typed value with Decode.
package action
