package store

import "github.com/viant/simdash/action"

// Root is the global state tree addressed by feature key. A Root value is
// never mutated once published.
type Root map[string]any

func (r Root) clone() Root {
	ret := make(Root, len(r))
	for k, v := range r {
		ret[k] = v
	}
	return ret
}

// Change describes the outcome of one dispatch.
type Change struct {
	Action action.Action
	Prev   Root
	Next   Root
}

// Changed reports whether the slice under key was replaced.
func (c *Change) Changed(key string) bool {
	if c.Prev == nil {
		return true
	}
	prev, ok := c.Prev[key]
	next, nextOK := c.Next[key]
	if ok != nextOK {
		return true
	}
	return prev != next
}
