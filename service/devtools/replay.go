package devtools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/simdash/action"
	"github.com/viant/simdash/service/event"
	"github.com/viant/simdash/store"
)

// Dispatcher applies actions
type Dispatcher interface {
	Dispatch(ctx context.Context, act action.Action) error
}

// Replay decodes recorded actions and dispatches them in order. It returns
// the number of dispatched actions.
func Replay(ctx context.Context, dispatcher Dispatcher, records []*event.Event[json.RawMessage]) (int, error) {
	count := 0
	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		act, err := action.Decode(record.Data)
		if err != nil {
			return count, fmt.Errorf("record %v: %w", record.ID, err)
		}
		if err = dispatcher.Dispatch(ctx, act); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// ReplayJournal replays the action journal persisted under URL
func ReplayJournal(ctx context.Context, fs afs.Service, URL string, dispatcher Dispatcher) (int, error) {
	records, err := event.Journal(ctx, fs, URL)
	if err != nil {
		return 0, err
	}
	return Replay(ctx, dispatcher, records)
}

var _ Dispatcher = (*store.Store)(nil)
