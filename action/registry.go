package action

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

type decoder func(data []byte) (Action, error)

var registry = struct {
	sync.RWMutex
	decoders map[Type]decoder
}{decoders: map[Type]decoder{}}

func register(kind Type, fn decoder) {
	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.decoders[kind]; ok {
		panic(fmt.Sprintf("action: duplicate type %v", kind))
	}
	registry.decoders[kind] = fn
}

// Types returns all registered action types, sorted.
func Types() []Type {
	registry.RLock()
	defer registry.RUnlock()
	result := make([]Type, 0, len(registry.decoders))
	for kind := range registry.decoders {
		result = append(result, kind)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// Decode rebuilds a typed action from its JSON wire form.
func Decode(data []byte) (Action, error) {
	var probe struct {
		Kind Type `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to decode action: %w", err)
	}
	if probe.Kind == "" {
		return nil, fmt.Errorf("action type was empty")
	}
	registry.RLock()
	fn, ok := registry.decoders[probe.Kind]
	registry.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown action type: %v", probe.Kind)
	}
	return fn(data)
}
