package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/simdash/service/messaging"
)

// MessageState represents the state of a message in the filesystem queue
type MessageState string

const (
	MessageStatePending    MessageState = "pending"
	MessageStateProcessing MessageState = "processing"
	MessageStateCompleted  MessageState = "completed"
	MessageStateFailed     MessageState = "failed"
)

// Message implements messaging.Message for the filesystem queue
type Message[T any] struct {
	ID        string       `json:"id"`
	Data      T            `json:"data"`
	State     MessageState `json:"state"`
	Error     string       `json:"error,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`

	name      string
	queue     *Queue[T]
	processed bool
	mu        sync.Mutex
}

// Name returns the message file name; names sort in publication order
func (m *Message[T]) Name() string {
	return m.name
}

// T returns the message payload
func (m *Message[T]) T() *T {
	return &m.Data
}

// Ack moves the message to the completed directory
func (m *Message[T]) Ack() error {
	return m.settle(MessageStateCompleted, nil)
}

// Nack moves the message to the failed directory
func (m *Message[T]) Nack(err error) error {
	return m.settle(MessageStateFailed, err)
}

func (m *Message[T]) settle(state MessageState, cause error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return fmt.Errorf("message %v already processed", m.ID)
	}
	m.processed = true
	m.State = state
	m.UpdatedAt = time.Now()
	if cause != nil {
		m.Error = cause.Error()
	}
	return m.queue.move(context.Background(), m, state)
}

// Config holds configuration for filesystem queue
type Config struct {
	// BasePath is the queue root URL
	BasePath string
}

// Queue implements a filesystem backed messaging.Queue. Messages are kept
// as JSON files named by publication time, so Consume returns them in
// publication order and completed messages form a durable journal.
type Queue[T any] struct {
	fs     afs.Service
	config Config
	mu     sync.Mutex
	last   int64
}

// sequence returns a strictly increasing publication stamp
func (q *Queue[T]) sequence(now time.Time) int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	stamp := now.UnixNano()
	if stamp <= q.last {
		stamp = q.last + 1
	}
	q.last = stamp
	return stamp
}

// Publish adds a new message to the pending directory
func (q *Queue[T]) Publish(ctx context.Context, t *T) error {
	now := time.Now()
	message := &Message[T]{
		ID:        uuid.New().String(),
		Data:      *t,
		State:     MessageStatePending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	message.name = fmt.Sprintf("%020d-%s.json", q.sequence(now), message.ID)
	return q.write(ctx, q.dir(MessageStatePending), message)
}

// Consume moves the oldest pending message to processing and returns it;
// it returns nil when nothing is pending
func (q *Queue[T]) Consume(ctx context.Context) (messaging.Message[T], error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	objects, err := q.objects(ctx, MessageStatePending)
	if err != nil || len(objects) == 0 {
		return nil, err
	}
	obj := objects[0]
	message, err := q.read(ctx, obj)
	if err != nil {
		_ = q.fs.Move(ctx, obj.URL(), url.Join(q.dir(MessageStateFailed), obj.Name()))
		return nil, err
	}
	message.State = MessageStateProcessing
	message.UpdatedAt = time.Now()
	if err = q.write(ctx, q.dir(MessageStateProcessing), message); err != nil {
		return nil, err
	}
	if err = q.fs.Delete(ctx, obj.URL()); err != nil {
		return nil, fmt.Errorf("failed to delete pending message %v: %w", obj.URL(), err)
	}
	return message, nil
}

// List returns messages in the given state in publication order
func (q *Queue[T]) List(ctx context.Context, state MessageState) ([]*Message[T], error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	objects, err := q.objects(ctx, state)
	if err != nil {
		return nil, err
	}
	result := make([]*Message[T], 0, len(objects))
	for _, obj := range objects {
		message, err := q.read(ctx, obj)
		if err != nil {
			return nil, err
		}
		result = append(result, message)
	}
	return result, nil
}

func (q *Queue[T]) move(ctx context.Context, m *Message[T], state MessageState) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if err := q.write(ctx, q.dir(state), m); err != nil {
		return err
	}
	processingURL := url.Join(q.dir(MessageStateProcessing), m.name)
	if exists, _ := q.fs.Exists(ctx, processingURL); exists {
		if err := q.fs.Delete(ctx, processingURL); err != nil {
			return fmt.Errorf("failed to delete processing message %v: %w", processingURL, err)
		}
	}
	return nil
}

func (q *Queue[T]) dir(state MessageState) string {
	return url.Join(q.config.BasePath, string(state))
}

func (q *Queue[T]) objects(ctx context.Context, state MessageState) ([]storage.Object, error) {
	objects, err := q.fs.List(ctx, q.dir(state))
	if err != nil {
		return nil, fmt.Errorf("failed to list %v messages: %w", state, err)
	}
	var result []storage.Object
	for _, obj := range objects {
		if !obj.IsDir() && strings.HasSuffix(obj.Name(), ".json") {
			result = append(result, obj)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result, nil
}

func (q *Queue[T]) write(ctx context.Context, dir string, m *Message[T]) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal message %v: %w", m.ID, err)
	}
	URL := url.Join(dir, m.name)
	if err = q.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write message %v: %w", URL, err)
	}
	return nil
}

func (q *Queue[T]) read(ctx context.Context, obj storage.Object) (*Message[T], error) {
	data, err := q.fs.Download(ctx, obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read message %v: %w", obj.URL(), err)
	}
	message := &Message[T]{}
	if err = json.Unmarshal(data, message); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message %v: %w", obj.URL(), err)
	}
	message.name = obj.Name()
	message.queue = q
	return message, nil
}

// NewQueue creates a filesystem queue, creating its directories
func NewQueue[T any](fs afs.Service, config Config) (*Queue[T], error) {
	if config.BasePath == "" {
		return nil, fmt.Errorf("base path cannot be empty")
	}
	q := &Queue[T]{fs: fs, config: config}
	ctx := context.Background()
	for _, state := range []MessageState{MessageStatePending, MessageStateProcessing, MessageStateCompleted, MessageStateFailed} {
		dir := q.dir(state)
		if exists, _ := fs.Exists(ctx, dir); exists {
			continue
		}
		if err := fs.Create(ctx, dir, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return q, nil
}

var _ messaging.Queue[any] = (*Queue[any])(nil)
