package message

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"digitex_go/internal/domain"
)

// Kind discriminates the inbound message types the venue streams.
type Kind uint16

const (
	KindUnknown Kind = iota
	KindTraderStatus
	KindTraderBalance
	KindExchangeRate
	KindOrderBookSnapshot
	KindOrderBookUpdate
	KindOrderStatus
	KindOrderFilled
	KindOrderCanceled
	KindLeverage
)

var kindNames = map[Kind]string{
	KindUnknown:           "unknown",
	KindTraderStatus:      "trader_status",
	KindTraderBalance:     "trader_balance",
	KindExchangeRate:      "exchange_rate",
	KindOrderBookSnapshot: "order_book",
	KindOrderBookUpdate:   "order_book_updated",
	KindOrderStatus:       "order_status",
	KindOrderFilled:       "order_filled",
	KindOrderCanceled:     "order_canceled",
	KindLeverage:          "leverage",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a wire kind tag onto a Kind. Unrecognized tags yield
// KindUnknown, which the reconciler ignores by policy.
func ParseKind(name string) Kind {
	return kindsByName[name]
}

// OrderReport is one inner per-order record. Trader-status and cancel
// envelopes carry several; order-status and order-filled envelopes carry one.
type OrderReport struct {
	// OrigClientID is the echoed client correlation id; uuid.Nil when the
	// venue did not echo one, in which case the envelope's ClientID applies.
	OrigClientID uuid.UUID `json:"orig_client_id"`

	Price           decimal.Decimal `json:"price"`
	Quantity        decimal.Decimal `json:"quantity"`
	OrigQuantity    decimal.Decimal `json:"orig_quantity"`
	DroppedQuantity decimal.Decimal `json:"dropped_quantity"`

	Side     domain.OrderSide     `json:"side"`
	Type     domain.OrderType     `json:"order_type"`
	Duration domain.OrderDuration `json:"duration"`

	// Status is only meaningful when HasStatus is set; some report shapes
	// omit the field entirely and the reconciler infers or forces one.
	Status    domain.OrderStatus `json:"status"`
	HasStatus bool               `json:"has_status"`
}

// Inbound is one decoded envelope from the venue. The transport layer fills
// only the fields relevant to Kind; the rest stay zero. Field groups mirror
// the venue schema, which repeats account figures across message types.
type Inbound struct {
	Kind      Kind      `json:"-"`
	MarketID  int32     `json:"market_id"`
	ClientID  uuid.UUID `json:"client_id"` // envelope correlation id, fallback order identity
	ErrorCode int32     `json:"error_code"`

	// Account figures.
	TraderBalance decimal.Decimal `json:"trader_balance"`
	UPNL          decimal.Decimal `json:"upnl"`
	PNL           decimal.Decimal `json:"pnl"`
	Leverage      int32           `json:"leverage"`

	// Prices.
	MarkPrice         decimal.Decimal `json:"mark_price"`
	LastTradePrice    decimal.Decimal `json:"last_trade_price"`
	LastTradeQuantity decimal.Decimal `json:"last_trade_quantity"`
	LastTradeTime     time.Time       `json:"last_trade_timestamp"`

	// Aggregate order margins.
	OrderMargin     decimal.Decimal `json:"order_margin"`
	BuyOrderMargin  decimal.Decimal `json:"buy_order_margin"`
	SellOrderMargin decimal.Decimal `json:"sell_order_margin"`

	// Position figures.
	PositionContracts         decimal.Decimal     `json:"position_contracts"`
	PositionVolume            decimal.Decimal     `json:"position_volume"`
	PositionLiquidationVolume decimal.Decimal     `json:"position_liquidation_volume"`
	PositionBankruptcyVolume  decimal.Decimal     `json:"position_bankruptcy_volume"`
	PositionMargin            decimal.Decimal     `json:"position_margin"`
	PositionType              domain.PositionType `json:"position_type"`

	// Exchange-rate payload.
	CurrencyPairID int32           `json:"currency_pair_id"`
	SellPrice      decimal.Decimal `json:"sell_price"`
	BuyPrice       decimal.Decimal `json:"buy_price"`
	Unreliable     bool            `json:"unreliable"`

	// Depth payload: Bids/Asks for snapshots, *Updates for diffs.
	Bids       []domain.BookEntry `json:"bids,omitempty"`
	Asks       []domain.BookEntry `json:"asks,omitempty"`
	BidUpdates []domain.BookEntry `json:"bid_updates,omitempty"`
	AskUpdates []domain.BookEntry `json:"ask_updates,omitempty"`

	// Order payload. Order carries the single report of order-status and
	// order-filled envelopes; Orders carries the multi-order reports of
	// trader-status and cancel envelopes. Status is the forced terminal
	// status a cancel envelope applies to every referenced order.
	Order  *OrderReport       `json:"order,omitempty"`
	Orders []OrderReport      `json:"orders,omitempty"`
	Status domain.OrderStatus `json:"status"`
}

// Reset returns the message to its zero state so it can be pooled.
func (m *Inbound) Reset() {
	*m = Inbound{}
}
