package types

import "time"

type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// Sides lists both trade directions in evaluation order.
func Sides() []Side { return []Side{Buy, Sell} }

// Timeframe is a chart period such as "M1" or "H4".
type Timeframe string

const (
	M1  Timeframe = "M1"
	M5  Timeframe = "M5"
	M15 Timeframe = "M15"
	M30 Timeframe = "M30"
	H1  Timeframe = "H1"
	H4  Timeframe = "H4"
	D1  Timeframe = "D1"
)

// Market is the symbol/timeframe context a trade handle operates on.
type Market struct {
	Symbol    string
	Timeframe Timeframe
}

func (m Market) String() string {
	return m.Symbol + "@" + string(m.Timeframe)
}

// Bar is one evaluation input: a closed bar or a single tick (High == Low == Close).
type Bar struct {
	Time   time.Time
	High   float64
	Low    float64
	Close  float64
	Volume float64
	// Spread at the time of the bar, in price-increment units.
	Spread float64
}
