package engine

import (
	"context"
	"errors"
	"testing"

	"digitex_go/internal/domain"
)

func TestCoalescer_FiresOncePerSlot(t *testing.T) {
	c := newCoalescer(nil)

	calls := 0
	hook := domain.Hook(func() any { calls++; return nil })

	c.Schedule(&hook)
	c.Schedule(&hook)
	c.Schedule(&hook)

	if c.Pending() != 1 {
		t.Fatalf("expected 1 pending notification, got %d", c.Pending())
	}
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("hook fired %d times, want 1", calls)
	}
	if c.Pending() != 0 {
		t.Errorf("queue should be cleared after flush, %d pending", c.Pending())
	}
}

func TestCoalescer_PreservesRequestOrder(t *testing.T) {
	c := newCoalescer(nil)

	var fired []string
	first := domain.Hook(func() any { fired = append(fired, "first"); return nil })
	second := domain.Hook(func() any { fired = append(fired, "second"); return nil })

	c.Schedule(&first)
	c.Schedule(&second)
	c.Schedule(&first)

	if err := c.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if len(fired) != 2 || fired[0] != "first" || fired[1] != "second" {
		t.Errorf("unexpected firing order: %v", fired)
	}
}

func TestCoalescer_NilAndUnsetSlots(t *testing.T) {
	c := newCoalescer(nil)

	c.Schedule(nil)

	var unset domain.Hook // entity with no observer attached
	c.Schedule(&unset)

	if err := c.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
}

func TestCoalescer_DeferredReaction(t *testing.T) {
	spawned := 0
	c := newCoalescer(func(task domain.Task) {
		spawned++
		task(context.Background())
	})

	ran := false
	hook := domain.Hook(func() any {
		return domain.Task(func(ctx context.Context) { ran = true })
	})

	c.Schedule(&hook)
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if spawned != 1 {
		t.Errorf("expected 1 spawned task, got %d", spawned)
	}
	if !ran {
		t.Error("deferred task did not run")
	}
}

func TestCoalescer_UnsupportedReaction(t *testing.T) {
	c := newCoalescer(nil)

	hook := domain.Hook(func() any { return 42 })
	c.Schedule(&hook)

	err := c.Flush()
	if !errors.Is(err, domain.ErrUnsupportedReaction) {
		t.Fatalf("expected ErrUnsupportedReaction, got %v", err)
	}
	if c.Pending() != 0 {
		t.Error("queue should be cleared even after a violation")
	}
}
