package refdata

// defaultTable is the venue's shipped reference data. An override file can
// replace it wholesale; there is no merging of partial tables.
var defaultTable = Table{
	Pairs: []PairSpec{
		{ID: 1, Code: "BTC/USD", Scale: 4},
		{ID: 2, Code: "ETH/USD", Scale: 4},
		{ID: 3, Code: "DGTX/ETH", Scale: 8},
		{ID: 4, Code: "DGTX/BTC", Scale: 8},
		{ID: 6, Code: "XRP/USD_10K", Scale: 4},
		{ID: 7, Code: "XAU/USD", Scale: 4},
		{ID: 8, Code: "XRP/USD", Scale: 5},
		{ID: 19, Code: "AAPL", Scale: 4},
		{ID: 20, Code: "FB", Scale: 4},
		{ID: 21, Code: "AMZN", Scale: 4},
		{ID: 24, Code: "SPY", Scale: 4},
		{ID: 26, Code: "EUR/USD", Scale: 4},
		{ID: 28, Code: "USD/JPY", Scale: 4},
		{ID: 29, Code: "USD/RUB", Scale: 4},
		{ID: 36, Code: "BTC/DUSD", Scale: 4},
		{ID: 37, Code: "ETH/BTC", Scale: 8},
		{ID: 38, Code: "ETH/DUSD", Scale: 4},
		{ID: 39, Code: "DUSD/USDC", Scale: 4},
		{ID: 40, Code: "LINK/DUSD", Scale: 4},
		{ID: 41, Code: "DGTX/DUSD", Scale: 4},
		{ID: 42, Code: "DGTX/LINK", Scale: 4},
	},
	Markets: []MarketSpec{
		{ID: 1, Name: "BTC/USD", Code: "BTCUSD", PairID: 1, TickSize: "5.00", TickIncrement: "0.1000", Scale: 0},
		{ID: 2, Name: "ETH/USD", Code: "ETHUSD", PairID: 2, TickSize: "0.25", TickIncrement: "0.2500", Scale: 2},
		{ID: 3, Name: "XRP/USD", Code: "XRPUSD", PairID: 6, TickSize: "1.00", TickIncrement: "0.1000", Scale: 0},
		{ID: 4, Name: "DGTX/ETH spot", Code: "S:DGTXETH", PairID: 3, TickSize: "0.00000100", Scale: 6},
		{ID: 5, Name: "XAU/USD", Code: "XAUUSD", PairID: 7, TickSize: "0.50", TickIncrement: "0.0500", Scale: 1},
		{ID: 6, Name: "SPY", Code: "SPY", PairID: 24, TickSize: "0.1000", TickIncrement: "0.1000", Scale: 4},
		{ID: 7, Name: "EUR/USD", Code: "EURUSD", PairID: 26, TickSize: "0.0001", TickIncrement: "0.1000", Scale: 4},
		{ID: 8, Name: "AMZN", Code: "AMZN", PairID: 21, TickSize: "1.0000", TickIncrement: "0.1000", Scale: 4},
		{ID: 9, Name: "BTC/USD1", Code: "BTCUSD1", PairID: 1, TickSize: "1.00", TickIncrement: "0.1000", Scale: 0},
		{ID: 10, Name: "USD/JPY", Code: "USDJPY", PairID: 28, TickSize: "0.0100", TickIncrement: "0.0100", Scale: 4},
		{ID: 11, Name: "USD/RUB", Code: "USDRUB", PairID: 29, TickSize: "0.0100", TickIncrement: "0.0100", Scale: 4},
		{ID: 12, Name: "FB", Code: "FB", PairID: 20, TickSize: "0.0100", TickIncrement: "0.0100", Scale: 4},
		{ID: 13, Name: "AAPL", Code: "AAPL", PairID: 19, TickSize: "0.0100", TickIncrement: "0.0100", Scale: 4},
		{ID: 14, Name: "BTC/USD DUSD fut", Code: "D:BTCUSD", PairID: 1, TickSize: "5.00", TickIncrement: "0.0100", Scale: 0},
		{ID: 15, Name: "BTC1/USD DUSD fut", Code: "D:BTC1USD", PairID: 1, TickSize: "1.00", TickIncrement: "0.0010", Scale: 0},
		{ID: 16, Name: "ETH/USD DUSD fut", Code: "D:ETHUSD", PairID: 2, TickSize: "0.25", TickIncrement: "0.0100", Scale: 0},
		{ID: 17, Name: "XRP/USD DUSD fut", Code: "D:XRPUSD", PairID: 8, TickSize: "0.001", TickIncrement: "0.0100", Scale: 0},
		{ID: 18, Name: "BTC/DUSD spot", Code: "S:BTCDUSD", PairID: 36, TickSize: "1.0000", Scale: 0},
		{ID: 19, Name: "ETH/BTC spot", Code: "S:ETHBTC", PairID: 37, TickSize: "0.00001000", Scale: 0},
		{ID: 20, Name: "ETH/DUSD spot", Code: "S:ETHDUSD", PairID: 38, TickSize: "0.1000", Scale: 0},
		{ID: 21, Name: "DUSD/USDC spot", Code: "S:DUSDUSDC", PairID: 39, TickSize: "0.00100000", Scale: 0},
		{ID: 22, Name: "LINK/DUSD spot", Code: "S:LINKDUSD", PairID: 40, TickSize: "0.0100", Scale: 0},
		{ID: 23, Name: "DGTX/BTC spot", Code: "S:DGTXBTC", PairID: 4, TickSize: "0.00000010", Scale: 0},
		{ID: 24, Name: "DGTX/DUSD spot", Code: "S:DGTXDUSD", PairID: 41, TickSize: "0.0010", Scale: 0},
		{ID: 25, Name: "DGTX/LINK spot", Code: "S:DGTXLINK", PairID: 42, TickSize: "0.00010000", Scale: 0},
	},
}

// Default builds the registry from the built-in venue table.
func Default() (*Registry, error) {
	return Build(defaultTable)
}
