package refdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefault(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("built-in table failed to build: %v", err)
	}

	m, ok := reg.MarketByCode("BTCUSD")
	if !ok {
		t.Fatal("BTCUSD missing from built-in table")
	}
	if m.ID != 1 || m.Name != "BTC/USD" {
		t.Errorf("unexpected market identity: %+v", m)
	}
	if m.CurrencyPair == nil || m.CurrencyPair.Code != "BTC/USD" {
		t.Error("market should be bound to its currency pair")
	}
	if !m.Tick.Size.Equal(decimal.RequireFromString("5.00")) {
		t.Errorf("unexpected tick size: %s", m.Tick.Size)
	}

	byID, _ := reg.MarketByID(1)
	byName, _ := reg.MarketByName("BTC/USD")
	if byID != m || byName != m {
		t.Error("all lookup keys should resolve to the same market")
	}

	// Markets sharing a pair share the entity, so one exchange-rate update
	// reaches all of them.
	fut, ok := reg.MarketByCode("D:BTCUSD")
	if !ok {
		t.Fatal("D:BTCUSD missing from built-in table")
	}
	if fut.CurrencyPair != m.CurrencyPair {
		t.Error("markets on the same pair must share the CurrencyPair entity")
	}
}

func TestBuild_Validation(t *testing.T) {
	cases := []struct {
		name  string
		table Table
	}{
		{
			"unknown pair reference",
			Table{Markets: []MarketSpec{{ID: 1, Code: "X", PairID: 9, TickSize: "1"}}},
		},
		{
			"duplicate pair id",
			Table{Pairs: []PairSpec{{ID: 1, Code: "A"}, {ID: 1, Code: "B"}}},
		},
		{
			"duplicate market id",
			Table{
				Pairs: []PairSpec{{ID: 1, Code: "A"}},
				Markets: []MarketSpec{
					{ID: 1, Code: "X", PairID: 1, TickSize: "1"},
					{ID: 1, Code: "Y", PairID: 1, TickSize: "1"},
				},
			},
		},
		{
			"malformed tick size",
			Table{
				Pairs:   []PairSpec{{ID: 1, Code: "A"}},
				Markets: []MarketSpec{{ID: 1, Code: "X", PairID: 1, TickSize: "five"}},
			},
		},
		{
			"zero tick size",
			Table{
				Pairs:   []PairSpec{{ID: 1, Code: "A"}},
				Markets: []MarketSpec{{ID: 1, Code: "X", PairID: 1}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Build(tc.table); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	data := `
pairs:
  - id: 1
    code: BTC/USD
    scale: 4
markets:
  - id: 1
    name: BTC/USD
    code: BTCUSD
    pair_id: 1
    tick_size: "5.00"
    tick_increment: "0.1000"
    scale: 0
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write table: %v", err)
	}

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	m, ok := reg.MarketByCode("BTCUSD")
	if !ok {
		t.Fatal("loaded table missing BTCUSD")
	}
	if !m.Tick.Size.Equal(decimal.RequireFromString("5")) {
		t.Errorf("unexpected tick size: %s", m.Tick.Size)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should error")
	}
}
