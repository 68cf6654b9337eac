package engine

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"digitex_go/internal/domain"
	"digitex_go/internal/message"
	"digitex_go/internal/refdata"
)

// Reconciler applies inbound venue messages to the account's in-memory
// projection: entities, live-order registry and depth books. It is the sole
// mutator of that state; Process must only ever run on one goroutine.
type Reconciler struct {
	ref       *refdata.Registry
	snapshots domain.SnapshotRequester
	pending   *coalescer
}

// NewReconciler creates a reconciler over the given reference data.
// snapshots is invoked when a depth diff arrives before any snapshot.
// spawn runs deferred hook reactions; nil means plain goroutines.
func NewReconciler(ref *refdata.Registry, snapshots domain.SnapshotRequester, spawn func(domain.Task)) *Reconciler {
	return &Reconciler{
		ref:       ref,
		snapshots: snapshots,
		pending:   newCoalescer(spawn),
	}
}

// Process applies one decoded message: mutate state in the fixed per-kind
// order, then fire each requested notification exactly once. On error the
// message is abandoned (pending notifications dropped); later messages are
// unaffected.
func (r *Reconciler) Process(msg *message.Inbound) error {
	if err := r.dispatch(msg); err != nil {
		r.pending.Reset()
		return err
	}
	return r.pending.Flush()
}

func (r *Reconciler) dispatch(msg *message.Inbound) error {
	// Exchange rates route by currency pair, not market: the referenced pair
	// may belong to a different market than the one this account trades.
	if msg.Kind == message.KindExchangeRate {
		r.handleExchangeRate(msg)
		return nil
	}

	m, ok := r.ref.MarketByID(msg.MarketID)
	if !ok {
		return fmt.Errorf("%w: id %d", domain.ErrUnknownMarket, msg.MarketID)
	}

	switch msg.Kind {
	case message.KindTraderStatus:
		return r.handleTraderStatus(m, msg)
	case message.KindTraderBalance:
		r.handleTraderBalance(m, msg)
	case message.KindOrderBookSnapshot:
		r.handleOrderBookSnapshot(m, msg)
	case message.KindOrderBookUpdate:
		r.handleOrderBookUpdate(m, msg)
	case message.KindOrderStatus:
		return r.handleOrderStatus(m, msg)
	case message.KindOrderFilled:
		return r.handleOrderFilled(m, msg)
	case message.KindOrderCanceled:
		return r.handleOrderCanceled(m, msg)
	case message.KindLeverage:
		r.handleLeverage(m, msg)
	default:
		// Forward compatibility: the venue may stream kinds this client does
		// not understand yet.
		slog.Debug("ignoring unrecognized message kind",
			slog.Int("kind", int(msg.Kind)), slog.Int("market_id", int(msg.MarketID)))
	}
	return nil
}

// reconcileOrder is the order lifecycle reconciliation: resolve identity,
// classify status, attach errors, and keep the registry membership invariant.
// env is nil for reports embedded in a trader-status message, which carry no
// envelope fallback id and no error code. A terminal order never seen before
// is returned without ever entering the registry; it exists only for the
// notification of its terminal transition.
func (r *Reconciler) reconcileOrder(m *domain.Market, rep *message.OrderReport, env *message.Inbound, forced domain.OrderStatus) (*domain.Order, bool, error) {
	id := rep.OrigClientID
	if id == uuid.Nil && env != nil {
		id = env.ClientID
	}
	if id == uuid.Nil {
		return nil, false, domain.ErrNoOrderIdentity
	}

	orders := m.Trader.Orders
	order := orders.Lookup(id)
	known := order != nil
	if !known {
		order = &domain.Order{
			ID:       id,
			Price:    rep.Price,
			Quantity: rep.Quantity,
			Side:     rep.Side,
			Type:     rep.Type,
			Duration: rep.Duration,
		}
	}

	switch {
	case rep.HasStatus:
		order.Status = rep.Status
	case forced != domain.OrderStatusUnknown:
		order.Status = forced
	case !known:
		// Heuristic: no explicit status on a first sighting. A shrunken
		// remaining quantity means the order absorbed a fill before this
		// client observed it.
		if !rep.OrigQuantity.Equal(order.Quantity) {
			order.Status = domain.OrderStatusPartial
		} else {
			order.Status = domain.OrderStatusAccepted
		}
	}

	if env != nil && env.ErrorCode != 0 {
		order.ErrorCode = env.ErrorCode
	}

	if known && !order.IsLive() {
		orders.Remove(order)
	} else if !known && order.IsLive() {
		orders.Add(order)
	}

	return order, known, nil
}

func (r *Reconciler) handleTraderStatus(m *domain.Market, msg *message.Inbound) error {
	r.applyBalance(m, msg)
	r.applyMarkPrice(m, msg)
	r.applyLastTrade(m, msg)
	r.applyOrderMargins(m, msg)
	r.applyPosition(m, msg)
	r.applyLeverage(m, msg)

	for i := range msg.Orders {
		order, _, err := r.reconcileOrder(m, &msg.Orders[i], nil, domain.OrderStatusUnknown)
		if err != nil {
			return err
		}
		r.pending.Schedule(&order.OnUpdate)
	}
	return nil
}

func (r *Reconciler) handleTraderBalance(m *domain.Market, msg *message.Inbound) {
	r.applyBalance(m, msg)
	r.applyLastTrade(m, msg)
	r.applyOrderMargins(m, msg)
	r.applyPosition(m, msg)
}

func (r *Reconciler) handleExchangeRate(msg *message.Inbound) {
	pair, ok := r.ref.PairByID(msg.CurrencyPairID)
	if !ok {
		// Not a pair this account tracks.
		return
	}
	// Written directly, not through applyMarkPrice: the pair is not
	// necessarily the market's own.
	pair.MarkPrice = msg.MarkPrice
	pair.SellPrice = msg.SellPrice
	pair.BuyPrice = msg.BuyPrice
	pair.Unreliable = msg.Unreliable

	r.pending.Schedule(&pair.OnUpdate)
}

func (r *Reconciler) handleOrderBookSnapshot(m *domain.Market, msg *message.Inbound) {
	m.OrderBook.ApplySnapshot(msg.Bids, msg.Asks)
	r.pending.Schedule(&m.OrderBook.OnUpdate)

	r.applyLastTrade(m, msg)
	r.applyMarkPrice(m, msg)
}

func (r *Reconciler) handleOrderBookUpdate(m *domain.Market, msg *message.Inbound) {
	if m.OrderBook.Initialized() {
		m.OrderBook.ApplyDiff(msg.BidUpdates, msg.AskUpdates)
		r.pending.Schedule(&m.OrderBook.OnUpdate)
	} else {
		// A diff with nothing to apply it to: drop it and ask the venue for a
		// fresh snapshot. The diff is not buffered for replay.
		r.snapshots.RequestOrderBook(m.ID)
	}

	r.applyLastTrade(m, msg)
}

func (r *Reconciler) handleOrderStatus(m *domain.Market, msg *message.Inbound) error {
	if msg.Order == nil {
		return fmt.Errorf("%w: %s envelope", domain.ErrMissingOrderReport, msg.Kind)
	}
	if msg.ErrorCode == 0 {
		r.applyBalance(m, msg)
		r.applyPosition(m, msg)
		r.applyOrderMargins(m, msg)
	}

	order, _, err := r.reconcileOrder(m, msg.Order, msg, domain.OrderStatusUnknown)
	if err != nil {
		return err
	}
	r.pending.Schedule(&order.OnUpdate)
	return nil
}

func (r *Reconciler) handleOrderFilled(m *domain.Market, msg *message.Inbound) error {
	if msg.Order == nil {
		return fmt.Errorf("%w: %s envelope", domain.ErrMissingOrderReport, msg.Kind)
	}
	if msg.ErrorCode == 0 {
		r.applyBalance(m, msg)
		r.applyPosition(m, msg)
		r.applyOrderMargins(m, msg)
	}

	order, _, err := r.reconcileOrder(m, msg.Order, msg, domain.OrderStatusUnknown)
	if err != nil {
		return err
	}

	// Remaining quantity straight from the venue's own figures; the only
	// local arithmetic is this subtraction.
	rep := msg.Order
	order.Quantity = rep.OrigQuantity.Sub(rep.Quantity).Sub(rep.DroppedQuantity)

	r.pending.Schedule(&order.OnUpdate)
	return nil
}

func (r *Reconciler) handleOrderCanceled(m *domain.Market, msg *message.Inbound) error {
	r.applyOrderMargins(m, msg)
	r.applyMarkPrice(m, msg)
	r.applyBalance(m, msg)

	m.Trader.Position.Margin = msg.PositionMargin
	r.pending.Schedule(&m.Trader.Position.OnUpdate)

	// One cancel report may close out several orders; all of them take the
	// envelope's terminal status rather than a derived one.
	for i := range msg.Orders {
		order, _, err := r.reconcileOrder(m, &msg.Orders[i], msg, msg.Status)
		if err != nil {
			return err
		}
		r.pending.Schedule(&order.OnUpdate)
	}
	return nil
}

func (r *Reconciler) handleLeverage(m *domain.Market, msg *message.Inbound) {
	r.applyLeverage(m, msg)
	if msg.ErrorCode == 0 {
		r.applyBalance(m, msg)
		r.applyPosition(m, msg)
		r.applyOrderMargins(m, msg)
		r.applyLastTrade(m, msg)
	}
}

func (r *Reconciler) applyBalance(m *domain.Market, msg *message.Inbound) {
	t := m.Trader
	t.Balance = msg.TraderBalance
	t.UPNL = msg.UPNL
	t.PNL = msg.PNL

	r.pending.Schedule(&t.OnUpdate)
}

func (r *Reconciler) applyMarkPrice(m *domain.Market, msg *message.Inbound) {
	m.CurrencyPair.MarkPrice = msg.MarkPrice

	r.pending.Schedule(&m.CurrencyPair.OnUpdate)
}

func (r *Reconciler) applyLastTrade(m *domain.Market, msg *message.Inbound) {
	if m.LastTrade == nil {
		m.LastTrade = &domain.Trade{}
	}
	m.LastTrade.Price = msg.LastTradePrice
	m.LastTrade.Quantity = msg.LastTradeQuantity
	m.LastTrade.Time = msg.LastTradeTime

	r.pending.Schedule(&m.LastTrade.OnUpdate)
}

func (r *Reconciler) applyOrderMargins(m *domain.Market, msg *message.Inbound) {
	orders := m.Trader.Orders
	orders.Margin = msg.OrderMargin
	orders.BuyMargin = msg.BuyOrderMargin
	orders.SellMargin = msg.SellOrderMargin

	r.pending.Schedule(&orders.OnMarginsUpdate)
}

func (r *Reconciler) applyPosition(m *domain.Market, msg *message.Inbound) {
	p := &m.Trader.Position
	p.Contracts = msg.PositionContracts
	p.Volume = msg.PositionVolume
	p.LiquidationVolume = msg.PositionLiquidationVolume
	p.BankruptcyVolume = msg.PositionBankruptcyVolume
	p.Type = msg.PositionType
	p.Margin = msg.PositionMargin

	r.pending.Schedule(&p.OnUpdate)
}

func (r *Reconciler) applyLeverage(m *domain.Market, msg *message.Inbound) {
	// Zero means "unset" in the venue schema, not an actual leverage.
	if msg.Leverage == 0 {
		return
	}
	m.Trader.Leverage = msg.Leverage

	r.pending.Schedule(&m.Trader.OnUpdate)
}
