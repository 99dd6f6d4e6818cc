package event

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/viant/afs"
	"github.com/viant/simdash/service/messaging/fs"
)

// Journal reads the persisted action journal under baseURL in recording
// order, including entries consumed, in flight or not yet consumed
func Journal(ctx context.Context, service afs.Service, baseURL string) ([]*Event[json.RawMessage], error) {
	queue, err := fs.NewQueue[Event[json.RawMessage]](service, fs.Config{BasePath: baseURL})
	if err != nil {
		return nil, err
	}
	var messages []*fs.Message[Event[json.RawMessage]]
	for _, state := range []fs.MessageState{fs.MessageStateCompleted, fs.MessageStateProcessing, fs.MessageStatePending} {
		listed, err := queue.List(ctx, state)
		if err != nil {
			return nil, err
		}
		messages = append(messages, listed...)
	}
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].Name() < messages[j].Name()
	})
	result := make([]*Event[json.RawMessage], 0, len(messages))
	for _, message := range messages {
		result = append(result, message.T())
	}
	return result, nil
}
