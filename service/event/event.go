package event

import (
	"time"

	"github.com/viant/simdash/internal/clock"
	"github.com/viant/simdash/internal/idgen"
)

// Context describes where an event originated
type Context struct {
	Source  string `json:"source,omitempty"`
	Type    string `json:"type"`
	Service string `json:"service,omitempty"`
}

type Event[T any] struct {
	ID        string                 `json:"id"`
	Context   *Context               `json:"context"`
	CreatedAt time.Time              `json:"createdAt"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Data      T                      `json:"data"`
}

func NewEvent[T any](context *Context, data T) *Event[T] {
	return &Event[T]{
		ID:        idgen.New(),
		Context:   context,
		CreatedAt: clock.Now(),
		Metadata:  make(map[string]interface{}),
		Data:      data,
	}
}
