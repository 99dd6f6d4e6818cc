package store

import "sync"

// Selector projects the Root onto a derived view.
type Selector[O any] func(root Root) O

// FeatureSelector resolves the slice stored under key.
func FeatureSelector[S any](key string) Selector[S] {
	return func(root Root) S {
		ret, _ := root[key].(S)
		return ret
	}
}

// CreateSelector composes input with project. The projection is recomputed
// only when the input value changes; otherwise the prior output is returned.
func CreateSelector[I comparable, O any](input Selector[I], project func(I) O) Selector[O] {
	var (
		mux     sync.Mutex
		primed  bool
		lastIn  I
		lastOut O
	)
	return func(root Root) O {
		in := input(root)
		mux.Lock()
		defer mux.Unlock()
		if primed && in == lastIn {
			return lastOut
		}
		lastIn, lastOut, primed = in, project(in), true
		return lastOut
	}
}

// CreateSelector2 composes two inputs with project.
func CreateSelector2[I1, I2 comparable, O any](input1 Selector[I1], input2 Selector[I2], project func(I1, I2) O) Selector[O] {
	var (
		mux     sync.Mutex
		primed  bool
		lastIn1 I1
		lastIn2 I2
		lastOut O
	)
	return func(root Root) O {
		in1, in2 := input1(root), input2(root)
		mux.Lock()
		defer mux.Unlock()
		if primed && in1 == lastIn1 && in2 == lastIn2 {
			return lastOut
		}
		lastIn1, lastIn2, lastOut, primed = in1, in2, project(in1, in2), true
		return lastOut
	}
}
