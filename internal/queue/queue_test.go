package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"promotimer/internal/core/trigger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(id string) trigger.Command {
	return trigger.Command{Name: trigger.CommandOpenForm, FormID: id}
}

func TestAppendPreservesOrder(t *testing.T) {
	queue := New()
	queue.Append(open("a"))
	queue.Append(trigger.Command{Name: trigger.CommandCloseForm, FormID: "a"})
	queue.Append(open("b"))

	assert.Equal(t, 3, queue.Len())
	snapshot := queue.Snapshot()
	assert.Equal(t, []trigger.Command{
		open("a"),
		{Name: trigger.CommandCloseForm, FormID: "a"},
		open("b"),
	}, snapshot)

	snapshot[0].FormID = "mutated"
	assert.Equal(t, "a", queue.Snapshot()[0].FormID)
}

func TestAppendNeverBlocksWithoutConsumer(t *testing.T) {
	queue := New()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			queue.Append(open("x"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Append blocked")
	}
	assert.Equal(t, 1000, queue.Len())
}

func TestConsumeDeliversBacklogAndNewCommands(t *testing.T) {
	queue := New()
	queue.Append(open("before"))

	ctx, cancel := context.WithCancel(context.Background())
	var mu sync.Mutex
	var received []string
	result := make(chan error, 1)
	go func() {
		result <- queue.Consume(ctx, func(command trigger.Command) {
			mu.Lock()
			received = append(received, command.FormID)
			mu.Unlock()
		})
	}()

	queue.Append(open("after-1"))
	queue.Append(open("after-2"))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	err := <-result
	assert.True(t, errors.Is(err, context.Canceled))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"before", "after-1", "after-2"}, received)
}
