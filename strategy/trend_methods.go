package strategy

import (
	"math"

	"github.com/evdnx/stgcore/types"
)

// Selector codes understood by TrendMethods.
const (
	// SignalOpenMethod / SignalCloseMethod
	MethodTrend    = 0 // trend direction confirmed by the regression slope
	MethodReversal = 1 // three-bar reversal after a counter move

	// SignalOpenFilter
	FilterNone  = 0
	FilterSpike = 1 // reject bars whose move exceeds 3× the mean move

	// SignalOpenBoost
	BoostNone  = 0
	BoostSlope = 1 // 1 + |slope| / volatility, capped at 2

	// PriceLimitMethod
	PriceLimitNone       = 0
	PriceLimitVolatility = 1 // last close ∓ level × volatility

	// TickFilterMethod
	TickFilterNone     = 0
	TickFilterNewPrice = 1 // skip ticks that repeat the last close
)

const trendWarmup = 3

// TrendMethods is a reference Methods implementation working on a rolling
// window of closing prices.
type TrendMethods struct {
	prices *priceBuffer
}

func NewTrendMethods(window int) *TrendMethods {
	return &TrendMethods{prices: newPriceBuffer(window)}
}

func (t *TrendMethods) Observe(bar types.Bar) { t.prices.Add(bar.Close) }

func (t *TrendMethods) TickFilter(bar types.Bar, method int) bool {
	switch method {
	case TickFilterNewPrice:
		return t.prices.Len() == 0 || bar.Close != t.prices.Last()
	default:
		return true
	}
}

func (t *TrendMethods) SignalOpen(side types.Side, method int, level float64) bool {
	if t.prices.Len() < trendWarmup {
		return false
	}
	bullish := side == types.Buy
	switch method {
	case MethodTrend:
		if bullish {
			return t.prices.Trend() > 0 && t.prices.Slope() > level
		}
		return t.prices.Trend() < 0 && t.prices.Slope() < -level
	case MethodReversal:
		if bullish {
			return t.prices.BullishReversal()
		}
		return t.prices.BearishReversal()
	default:
		return false
	}
}

// SignalClose closes a side when the opposite side would open.
func (t *TrendMethods) SignalClose(side types.Side, method int, level float64) bool {
	if side == types.Buy {
		return t.SignalOpen(types.Sell, method, level)
	}
	return t.SignalOpen(types.Buy, method, level)
}

func (t *TrendMethods) SignalOpenFilter(_ types.Side, method int) bool {
	switch method {
	case FilterSpike:
		vol := t.prices.Volatility()
		return vol > 0 && math.Abs(t.prices.Last()-t.prices.Prev()) <= 3*vol
	default:
		return true
	}
}

func (t *TrendMethods) SignalOpenBoost(_ types.Side, method int) float64 {
	if method != BoostSlope {
		return 1
	}
	vol := t.prices.Volatility()
	if vol <= 0 {
		return 1
	}
	return math.Min(1+math.Abs(t.prices.Slope())/vol, 2)
}

func (t *TrendMethods) PriceLimit(side types.Side, method int, level float64) float64 {
	if method != PriceLimitVolatility || t.prices.Len() == 0 {
		return 0
	}
	offset := level * t.prices.Volatility()
	if side == types.Buy {
		return math.Max(t.prices.Last()-offset, 0)
	}
	return t.prices.Last() + offset
}
