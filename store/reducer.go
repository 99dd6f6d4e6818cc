package store

import (
	"github.com/viant/simdash/action"
)

// Reducer computes the next state of a slice. It must return the same value
// when the action does not apply.
type Reducer[S any] func(state S, act action.Action) S

// Handler binds reducer logic to one or more action types.
type Handler[S any] struct {
	kinds  []action.Type
	reduce func(state S, act action.Action) S
}

// On binds fn to actions created by creators. Creators sharing a payload
// type may converge on one handler.
func On[S, P any](fn func(state S, props P) S, creators ...*action.Creator[P]) Handler[S] {
	ret := Handler[S]{}
	for _, creator := range creators {
		ret.kinds = append(ret.kinds, creator.Type())
	}
	ret.reduce = func(state S, act action.Action) S {
		for _, creator := range creators {
			if props, ok := creator.Match(act); ok {
				return fn(state, props)
			}
		}
		return state
	}
	return ret
}

// OnEmpty binds fn to payload-less actions.
func OnEmpty[S any](fn func(state S) S, creators ...*action.EmptyCreator) Handler[S] {
	ret := Handler[S]{}
	for _, creator := range creators {
		ret.kinds = append(ret.kinds, creator.Type())
	}
	ret.reduce = func(state S, act action.Action) S {
		return fn(state)
	}
	return ret
}

// CreateReducer returns a reducer dispatching to handlers by action type.
// When several handlers bind the same type the last one wins.
func CreateReducer[S any](handlers ...Handler[S]) Reducer[S] {
	byType := map[action.Type]func(S, action.Action) S{}
	for _, handler := range handlers {
		for _, kind := range handler.kinds {
			byType[kind] = handler.reduce
		}
	}
	return func(state S, act action.Action) S {
		if act == nil {
			return state
		}
		reduce, ok := byType[act.ActionType()]
		if !ok {
			return state
		}
		return reduce(state, act)
	}
}
