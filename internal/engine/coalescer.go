package engine

import (
	"context"
	"fmt"

	"digitex_go/internal/domain"
)

// coalescer collects notification requests raised while one inbound message
// is processed and fires each hook slot at most once after all mutations.
// Identity is the hook slot's address, so three mutations touching the same
// trader collapse into a single callback.
type coalescer struct {
	seen  map[*domain.Hook]struct{}
	queue []*domain.Hook
	spawn func(domain.Task)
}

func newCoalescer(spawn func(domain.Task)) *coalescer {
	if spawn == nil {
		spawn = func(t domain.Task) { go t(context.Background()) }
	}
	return &coalescer{
		seen:  make(map[*domain.Hook]struct{}),
		spawn: spawn,
	}
}

// Schedule queues a hook slot for the end-of-message flush. Duplicate slots
// within one message are ignored.
func (c *coalescer) Schedule(slot *domain.Hook) {
	if slot == nil {
		return
	}
	if _, dup := c.seen[slot]; dup {
		return
	}
	c.seen[slot] = struct{}{}
	c.queue = append(c.queue, slot)
}

// Flush invokes every pending hook exactly once and clears the queue.
// A hook returning nil reacted synchronously; a domain.Task return is handed
// to the spawner to run independently. Any other return value is a contract
// violation and fails the current message immediately.
func (c *coalescer) Flush() error {
	defer c.Reset()
	for _, slot := range c.queue {
		cb := *slot
		if cb == nil {
			continue
		}
		switch res := cb().(type) {
		case nil:
			// Synchronous reaction, done.
		case domain.Task:
			c.spawn(res)
		default:
			return fmt.Errorf("%w: %T", domain.ErrUnsupportedReaction, res)
		}
	}
	return nil
}

// Reset drops all pending notifications without firing them.
func (c *coalescer) Reset() {
	clear(c.seen)
	c.queue = c.queue[:0]
}

// Pending returns the number of queued notifications.
func (c *coalescer) Pending() int {
	return len(c.queue)
}
