// Package store implements the process-owned application state container.
//
// State is a feature-keyed Root map holding one immutable slice per feature.
// All mutation flows through Dispatch: every registered feature reducer is
// applied to the action in dispatch order and a new Root is produced only
// when a slice reference changed. Actions without a matching handler are
// ignored. Read access goes through Selectors, which are pure functions of
// the Root and memoize on their inputs.
package store
