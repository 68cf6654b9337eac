package domain

import "github.com/shopspring/decimal"

// BookEntry is one depth level: outstanding quantity at a price.
type BookEntry struct {
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
}

// BookSide is a price-keyed depth map. Keys are canonical decimal strings so
// that equal prices of different scales collapse onto one level.
type BookSide map[string]BookEntry

// Merge applies entries to the side. A zero-quantity entry deletes its level
// when present; anything else inserts or overwrites. The same rule serves both
// snapshot population (side cleared beforehand) and incremental diffs; the
// snapshot/diff distinction belongs to the caller.
func (s BookSide) Merge(entries []BookEntry) {
	for _, e := range entries {
		key := e.Price.String()
		if e.Quantity.IsZero() {
			delete(s, key)
			continue
		}
		s[key] = e
	}
}

// OrderBook is the depth view of one market. Both sides stay nil until the
// first full snapshot arrives; incremental diffs require an initialized book.
type OrderBook struct {
	Bids BookSide
	Asks BookSide

	OnUpdate Hook
}

// Initialized reports whether a snapshot has been applied yet.
func (b *OrderBook) Initialized() bool {
	return b.Bids != nil
}

// ApplySnapshot replaces both sides wholesale.
func (b *OrderBook) ApplySnapshot(bids, asks []BookEntry) {
	if b.Initialized() {
		clear(b.Bids)
		clear(b.Asks)
	} else {
		b.Bids = make(BookSide)
		b.Asks = make(BookSide)
	}
	b.Bids.Merge(bids)
	b.Asks.Merge(asks)
}

// ApplyDiff merges incremental updates into an initialized book. The caller
// is responsible for checking Initialized first.
func (b *OrderBook) ApplyDiff(bidUpdates, askUpdates []BookEntry) {
	b.Bids.Merge(bidUpdates)
	b.Asks.Merge(askUpdates)
}
