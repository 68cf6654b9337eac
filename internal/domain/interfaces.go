package domain

import "context"

// VenueSession defines the interface for the venue transport connector
type VenueSession interface {
	Connect(ctx context.Context) error
	Disconnect()
	IsConnected() bool
}

// SnapshotRequester requests a fresh order-book snapshot from the venue.
// Fire-and-forget: the snapshot arrives later as a regular inbound message.
type SnapshotRequester interface {
	RequestOrderBook(marketID int32)
}
