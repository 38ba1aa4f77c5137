package marketdata

// DefaultTickers is the curated visualization universe: popular symbols
// across sectors so the scene shows a representative market cross-section.
var DefaultTickers = []string{
	// Tech giants
	"AAPL", "MSFT", "GOOGL", "AMZN", "META", "NVDA", "TSLA", "AVGO",
	// Cloud & software
	"CRM", "ADBE", "NOW", "INTU", "TEAM", "PLTR", "SNOW", "DDOG",
	// Semiconductors
	"AMD", "INTC", "QCOM", "MU", "AMAT", "LRCX", "KLAC", "TSM",
	// Finance
	"JPM", "BAC", "GS", "MS", "V", "MA", "PYPL", "SQ",
	// Consumer
	"WMT", "TGT", "COST", "NKE", "SBUX", "MCD", "DIS", "NFLX",
	// Healthcare
	"JNJ", "UNH", "PFE", "ABBV", "TMO", "DHR", "LLY", "MRNA",
	// Energy
	"XOM", "CVX", "COP", "SLB", "EOG",
	// Automotive
	"F", "GM", "RIVN", "LCID",
	// E-commerce & retail
	"SHOP", "ETSY", "MELI", "SPOT",
	// Aerospace & defense
	"BA", "LMT", "RTX", "NOC",
	// Growth
	"ROKU", "COIN", "RBLX", "U", "DASH", "ABNB",
	// Cloud infrastructure
	"NET", "FSLY", "DOCN",
	// Cybersecurity
	"CRWD", "ZS", "PANW", "FTNT",
	// AI/ML
	"AI", "SMCI", "DELL",
}

// Universe returns at most max tickers from the curated list.
func Universe(max int) []string {
	if max <= 0 || max >= len(DefaultTickers) {
		out := make([]string, len(DefaultTickers))
		copy(out, DefaultTickers)
		return out
	}
	out := make([]string, max)
	copy(out, DefaultTickers[:max])
	return out
}
