package message

import (
	"sync"
)

// Pooling for high-frequency inbound envelopes, to reduce GC pressure on the
// hot path. The session acquires a message per decoded frame; the processing
// loop releases it once all notifications for it have fired.
//
// Usage:
//
//	msg := message.Acquire()
//	msg.Kind = message.KindOrderStatus
//	// ... fill and process ...
//	message.Release(msg)
var inboundPool = sync.Pool{
	New: func() interface{} {
		return &Inbound{}
	},
}

// Acquire gets an Inbound from the pool. The returned message has zero values
// and must be initialized.
func Acquire() *Inbound {
	return inboundPool.Get().(*Inbound)
}

// Release resets an Inbound and returns it to the pool. Callers must not hold
// references to the message or its slices afterwards.
func Release(m *Inbound) {
	if m == nil {
		return
	}
	m.Reset()
	inboundPool.Put(m)
}

// Warmup pre-allocates a batch of messages to smooth out startup allocation.
func Warmup() {
	const batchSize = 1000

	msgs := make([]*Inbound, 0, batchSize)
	for i := 0; i < batchSize; i++ {
		msgs = append(msgs, Acquire())
	}
	for _, m := range msgs {
		Release(m)
	}
}
