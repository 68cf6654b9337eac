package domain

import "context"

// Hook is an entity's change-notification slot. The reconciler invokes it at
// most once per inbound message, after all mutations for that message.
//
// Return contract:
//   - nil: the observer reacted synchronously, nothing more to do.
//   - Task: a deferred reaction, handed to the host scheduler to run
//     independently of the processing loop.
//
// Any other return value is a programming error and fails the current message.
type Hook func() any

// Task is a deferred observer reaction spawned after flush. Tasks must not
// mutate entity state; they are read-and-react only (e.g. follow-up outbound
// calls), or the single-mutator invariant is broken.
type Task func(ctx context.Context)
