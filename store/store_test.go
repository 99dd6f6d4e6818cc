package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/simdash/action"
)

type counterState struct {
	Value int
}

type addProps struct {
	Delta int `json:"delta"`
}

var (
	counterGroup = action.NewGroup("Counter Test")
	addAction    = action.NewCreator[addProps](counterGroup, "Add")
	addAltAction = action.NewCreator[addProps](action.NewGroup("Counter Alt Test"), "Add")
	resetAction  = action.NewEmptyCreator(counterGroup, "Reset")
	otherAction  = action.NewEmptyCreator(counterGroup, "Other")
)

var counterReducer = CreateReducer[*counterState](
	On(func(state *counterState, props addProps) *counterState {
		return &counterState{Value: state.Value + props.Delta}
	}, addAction, addAltAction),
	OnEmpty(func(state *counterState) *counterState {
		return &counterState{}
	}, resetAction),
)

func newCounterStore(options ...Option) *Store {
	return New([]*Feature{NewFeature("counter", &counterState{}, counterReducer)}, options...)
}

var selectCounter = FeatureSelector[*counterState]("counter")

func TestStore_Dispatch(t *testing.T) {
	ctx := context.Background()
	aStore := newCounterStore()
	require.NoError(t, aStore.Dispatch(ctx, addAction.Create(addProps{Delta: 2})))
	require.NoError(t, aStore.Dispatch(ctx, addAltAction.Create(addProps{Delta: 3})))
	assert.Equal(t, 5, Select(aStore, selectCounter).Value)

	require.NoError(t, aStore.Dispatch(ctx, resetAction.Create()))
	assert.Equal(t, 0, Select(aStore, selectCounter).Value)

	assert.Error(t, aStore.Dispatch(ctx, nil))
}

func TestStore_DispatchUnmatched(t *testing.T) {
	ctx := context.Background()
	aStore := newCounterStore()
	before := aStore.State()
	var changes []*Change
	aStore.Subscribe(func(ctx context.Context, change *Change) {
		changes = append(changes, change)
	})
	require.NoError(t, aStore.Dispatch(ctx, otherAction.Create()))
	after := aStore.State()
	assert.Same(t, before["counter"], after["counter"])
	require.Len(t, changes, 1)
	assert.False(t, changes[0].Changed("counter"))
}

func TestStore_Subscribe(t *testing.T) {
	ctx := context.Background()
	aStore := newCounterStore()
	var seen []int
	unsubscribe := aStore.Subscribe(func(ctx context.Context, change *Change) {
		assert.True(t, change.Changed("counter"))
		seen = append(seen, change.Next["counter"].(*counterState).Value)
	})
	for i := 1; i <= 3; i++ {
		require.NoError(t, aStore.Dispatch(ctx, addAction.Create(addProps{Delta: 1})))
	}
	unsubscribe()
	require.NoError(t, aStore.Dispatch(ctx, addAction.Create(addProps{Delta: 1})))
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestStore_ListenerDispatch(t *testing.T) {
	ctx := context.Background()
	aStore := newCounterStore()
	aStore.Subscribe(func(ctx context.Context, change *Change) {
		if resetAction.Match(change.Action) {
			_ = aStore.Dispatch(ctx, addAction.Create(addProps{Delta: 10}))
		}
	})
	require.NoError(t, aStore.Dispatch(ctx, resetAction.Create()))
	assert.Equal(t, 10, Select(aStore, selectCounter).Value)
}

func TestStore_ListenerDispatchOrder(t *testing.T) {
	ctx := context.Background()
	aStore := newCounterStore()
	aStore.Subscribe(func(ctx context.Context, change *Change) {
		if resetAction.Match(change.Action) {
			_ = aStore.Dispatch(ctx, addAction.Create(addProps{Delta: 10}))
			_ = aStore.Dispatch(ctx, addAction.Create(addProps{Delta: 5}))
		}
	})
	var seen []int
	aStore.Subscribe(func(ctx context.Context, change *Change) {
		seen = append(seen, selectCounter(change.Next).Value)
	})
	require.NoError(t, aStore.Dispatch(ctx, addAction.Create(addProps{Delta: 1})))
	require.NoError(t, aStore.Dispatch(ctx, resetAction.Create()))
	assert.Equal(t, []int{1, 0, 10, 15}, seen)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	aStore := newCounterStore(WithRecorder(rec))
	var seen []int
	aStore.Subscribe(func(ctx context.Context, change *Change) {
		seen = append(seen, selectCounter(change.Next).Value)
	})
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = aStore.Dispatch(ctx, addAction.Create(addProps{Delta: 1}))
		}()
	}
	wg.Wait()
	require.Len(t, seen, 50)
	for i, value := range seen {
		assert.Equal(t, i+1, value)
	}
	assert.Len(t, rec.types, 50)
	assert.Equal(t, 50, Select(aStore, selectCounter).Value)
}

type recorder struct {
	types []action.Type
	err   error
}

func (r *recorder) Record(_ context.Context, act action.Action) error {
	r.types = append(r.types, act.ActionType())
	return r.err
}

func TestStore_Recorder(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{err: errors.New("disk full")}
	aStore := newCounterStore(WithRecorder(rec))
	require.NoError(t, aStore.Dispatch(ctx, resetAction.Create()))
	require.NoError(t, aStore.Dispatch(ctx, otherAction.Create()))
	assert.Equal(t, []action.Type{resetAction.Type(), otherAction.Type()}, rec.types)
}

func TestStore_WithState(t *testing.T) {
	seed := &counterState{Value: 7}
	aStore := newCounterStore(WithState(Root{"counter": seed}))
	assert.Same(t, seed, Select(aStore, selectCounter))
}
