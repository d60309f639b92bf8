// Package queue holds the ordered, append-only list of external form
// commands. Producers never block; a single consumer drains it asynchronously.
package queue

import (
	"context"
	"sync"

	"promotimer/internal/core/trigger"
)

// Queue is an append-only command list.
type Queue struct {
	mu       sync.Mutex
	commands []trigger.Command
	notify   chan struct{}
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{notify: make(chan struct{}, 1)}
}

// Append adds a command to the end of the queue.
func (queue *Queue) Append(command trigger.Command) {
	queue.mu.Lock()
	queue.commands = append(queue.commands, command)
	queue.mu.Unlock()

	select {
	case queue.notify <- struct{}{}:
	default:
	}
}

// Len returns the number of commands appended so far.
func (queue *Queue) Len() int {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	return len(queue.commands)
}

// Snapshot returns a copy of every command appended so far, in order.
func (queue *Queue) Snapshot() []trigger.Command {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	return append([]trigger.Command(nil), queue.commands...)
}

// Consume delivers every command, including ones appended before the call,
// to handler in order until ctx is done.
func (queue *Queue) Consume(ctx context.Context, handler func(trigger.Command)) error {
	next := 0
	for {
		queue.mu.Lock()
		pending := append([]trigger.Command(nil), queue.commands[next:]...)
		next = len(queue.commands)
		queue.mu.Unlock()

		for _, command := range pending {
			handler(command)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-queue.notify:
		}
	}
}
