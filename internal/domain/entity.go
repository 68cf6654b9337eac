package domain

import (
	"time"
)

// JournalRecord is the persisted diagnostic trace of one inbound envelope.
// The projection itself is never persisted; records exist for post-mortem
// inspection of what the venue sent.
type JournalRecord struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Kind       string    `gorm:"index" json:"kind"`
	MarketID   int32     `gorm:"index" json:"market_id"`
	ErrorCode  int32     `json:"error_code"`
	Payload    string    `json:"payload"` // JSON dump of the decoded envelope
	ReceivedAt time.Time `json:"received_at"`
}
