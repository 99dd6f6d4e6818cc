package progress

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_Update(t *testing.T) {
	var last Counters
	tracker := New(func(c Counters) { last = c })
	tracker.Update(Delta{Total: 2, Pending: 2})
	tracker.Update(Delta{Pending: -1, Running: 1})
	tracker.Update(Delta{Running: -1, Completed: 1})
	expect := Counters{Total: 2, Pending: 1, Completed: 1}
	assert.Equal(t, expect, tracker.Snapshot())
	assert.Equal(t, expect, last)
}

func TestProgress_Concurrent(t *testing.T) {
	tracker := New(nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Update(Delta{Total: 1, Failed: 1})
		}()
	}
	wg.Wait()
	assert.Equal(t, Counters{Total: 50, Failed: 50}, tracker.Snapshot())
}

func TestUpdateCtx(t *testing.T) {
	tracker := New(nil)
	ctx := WithTracker(context.Background(), tracker)
	UpdateCtx(ctx, Delta{Total: 1})
	UpdateCtx(context.Background(), Delta{Total: 1})
	assert.Equal(t, 1, tracker.Snapshot().Total)

	var nilTracker *Progress
	nilTracker.Update(Delta{Total: 1})
	assert.Equal(t, Counters{}, nilTracker.Snapshot())
}
