package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/viant/simdash/action"
	"github.com/viant/simdash/store"
)

// ActionTopic is the topic holding the action journal
const ActionTopic = "actions"

// Recorder publishes every dispatched action to the action journal
type Recorder struct {
	publisher *Publisher[json.RawMessage]
	service   string
}

// Record encodes act in its wire form and publishes it
func (r *Recorder) Record(ctx context.Context, act action.Action) error {
	data, err := json.Marshal(act)
	if err != nil {
		return fmt.Errorf("failed to encode action %v: %w", act.ActionType(), err)
	}
	kind := string(act.ActionType())
	evt := NewEvent[json.RawMessage](&Context{Source: sourceOf(kind), Type: kind, Service: r.service}, data)
	return r.publisher.Publish(ctx, evt)
}

// NewRecorder returns a recorder publishing on the ActionTopic of s
func NewRecorder(s *Service, service string) (*Recorder, error) {
	publisher, err := PublisherOf[json.RawMessage](s, ActionTopic)
	if err != nil {
		return nil, err
	}
	return &Recorder{publisher: publisher, service: service}, nil
}

// LogHandler returns a journal listener that logs each recorded action
func LogHandler(logger *slog.Logger) func(*Event[json.RawMessage]) {
	return func(evt *Event[json.RawMessage]) {
		kind := ""
		if evt.Context != nil {
			kind = evt.Context.Type
		}
		logger.Debug("action recorded", "id", evt.ID, "type", kind, "size", len(evt.Data))
	}
}

func sourceOf(kind string) string {
	if !strings.HasPrefix(kind, "[") {
		return ""
	}
	if end := strings.Index(kind, "]"); end > 0 {
		return kind[1:end]
	}
	return ""
}

var _ store.Recorder = (*Recorder)(nil)
