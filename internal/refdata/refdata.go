package refdata

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"digitex_go/internal/domain"
)

// Registry is the immutable reference-data lookup: markets by id/name/code and
// currency pairs by id. It is constructed once at startup and passed by
// reference to every component that needs lookup; there is no ambient global.
type Registry struct {
	marketsByID   map[int32]*domain.Market
	marketsByName map[string]*domain.Market
	marketsByCode map[string]*domain.Market
	pairsByID     map[int32]*domain.CurrencyPair
}

// PairSpec describes one currency pair in the serialized reference table.
type PairSpec struct {
	ID    int32  `yaml:"id"`
	Code  string `yaml:"code"`
	Scale int32  `yaml:"scale"`
}

// MarketSpec describes one market in the serialized reference table.
// Tick values are decimal strings to survive YAML round-trips exactly; an
// empty increment marks a spot market.
type MarketSpec struct {
	ID            int32  `yaml:"id"`
	Name          string `yaml:"name"`
	Code          string `yaml:"code"`
	PairID        int32  `yaml:"pair_id"`
	TickSize      string `yaml:"tick_size"`
	TickIncrement string `yaml:"tick_increment"`
	Scale         int32  `yaml:"scale"`
}

// Table is the serializable form of the reference data.
type Table struct {
	Pairs   []PairSpec   `yaml:"pairs"`
	Markets []MarketSpec `yaml:"markets"`
}

// Build constructs a registry from a table, validating cross-references.
func Build(t Table) (*Registry, error) {
	r := &Registry{
		marketsByID:   make(map[int32]*domain.Market, len(t.Markets)),
		marketsByName: make(map[string]*domain.Market, len(t.Markets)),
		marketsByCode: make(map[string]*domain.Market, len(t.Markets)),
		pairsByID:     make(map[int32]*domain.CurrencyPair, len(t.Pairs)),
	}

	for _, ps := range t.Pairs {
		if _, dup := r.pairsByID[ps.ID]; dup {
			return nil, fmt.Errorf("duplicate currency pair id %d", ps.ID)
		}
		r.pairsByID[ps.ID] = &domain.CurrencyPair{ID: ps.ID, Code: ps.Code, Scale: ps.Scale}
	}

	for _, ms := range t.Markets {
		pair, ok := r.pairsByID[ms.PairID]
		if !ok {
			return nil, fmt.Errorf("market %q references unknown currency pair %d", ms.Code, ms.PairID)
		}
		if _, dup := r.marketsByID[ms.ID]; dup {
			return nil, fmt.Errorf("duplicate market id %d", ms.ID)
		}
		size, err := parseDecimal(ms.TickSize)
		if err != nil {
			return nil, fmt.Errorf("market %q tick size: %w", ms.Code, err)
		}
		if size.IsZero() {
			return nil, fmt.Errorf("market %q: %w", ms.Code, domain.ErrInvalidTick)
		}
		incr, err := parseDecimal(ms.TickIncrement)
		if err != nil {
			return nil, fmt.Errorf("market %q tick increment: %w", ms.Code, err)
		}
		tick := domain.Tick{Size: size, Increment: incr, Scale: ms.Scale}
		m := domain.NewMarket(ms.ID, ms.Name, ms.Code, pair, tick)
		r.marketsByID[ms.ID] = m
		r.marketsByName[ms.Name] = m
		r.marketsByCode[ms.Code] = m
	}

	return r, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, nil
	}
	return decimal.NewFromString(s)
}

// Load reads a YAML reference table from disk and builds a registry.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference table: %w", err)
	}
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse reference table: %w", err)
	}
	return Build(t)
}

// MarketByID looks up a market by venue id.
func (r *Registry) MarketByID(id int32) (*domain.Market, bool) {
	m, ok := r.marketsByID[id]
	return m, ok
}

// MarketByName looks up a market by display name.
func (r *Registry) MarketByName(name string) (*domain.Market, bool) {
	m, ok := r.marketsByName[name]
	return m, ok
}

// MarketByCode looks up a market by venue code.
func (r *Registry) MarketByCode(code string) (*domain.Market, bool) {
	m, ok := r.marketsByCode[code]
	return m, ok
}

// PairByID looks up a currency pair by venue id.
func (r *Registry) PairByID(id int32) (*domain.CurrencyPair, bool) {
	p, ok := r.pairsByID[id]
	return p, ok
}

// Markets returns all registered markets.
func (r *Registry) Markets() []*domain.Market {
	out := make([]*domain.Market, 0, len(r.marketsByID))
	for _, m := range r.marketsByID {
		out = append(out, m)
	}
	return out
}
