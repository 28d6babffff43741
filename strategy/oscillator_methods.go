package strategy

import (
	"github.com/evdnx/stgcore/indicator"
	"github.com/evdnx/stgcore/types"
)

// MethodOscillator opens on RSI/MFI/VWAO crossovers. The open level is the
// number of oscillators that must agree; 0 or less means all of them.
const MethodOscillator = 2

const oscillatorWarmup = 15

// OscillatorMethods reads oscillator crossovers from an indicator suite and
// falls back to the price-pattern reversals when an oscillator has no
// crossover data yet. Every other selector is served by TrendMethods.
//
// The suite is not fed here: install it as the config's indicator handle so
// the strategy adds each bar to it.
type OscillatorMethods struct {
	*TrendMethods
	suite *indicator.Suite
}

func NewOscillatorMethods(suite *indicator.Suite, window int) *OscillatorMethods {
	return &OscillatorMethods{TrendMethods: NewTrendMethods(window), suite: suite}
}

func (o *OscillatorMethods) SignalOpen(side types.Side, method int, level float64) bool {
	if method != MethodOscillator {
		return o.TrendMethods.SignalOpen(side, method, level)
	}
	if o.suite == nil || o.suite.Bars() < oscillatorWarmup {
		return false
	}
	s := o.suite.Indicators()
	if s == nil {
		return false
	}

	var votes []bool
	if side == types.Buy {
		fallback := o.prices.BullishReversal()
		votes = []bool{
			crossed(fallback, s.GetRSI().IsBullishCrossover),
			crossed(fallback, s.GetMFI().IsBullishCrossover),
			crossed(fallback, s.GetVWAO().IsBullishCrossover),
		}
	} else {
		fallback := o.prices.BearishReversal()
		votes = []bool{
			crossed(fallback, s.GetRSI().IsBearishCrossover),
			crossed(fallback, s.GetMFI().IsBearishCrossover),
			crossed(fallback, s.GetVWAO().IsBearishCrossover),
		}
	}

	need := len(votes)
	if level > 0 && int(level) < need {
		need = int(level)
	}
	agree := 0
	for _, v := range votes {
		if v {
			agree++
		}
	}
	return agree >= need
}

// SignalClose closes a side when the opposite side would open.
func (o *OscillatorMethods) SignalClose(side types.Side, method int, level float64) bool {
	if side == types.Buy {
		return o.SignalOpen(types.Sell, method, level)
	}
	return o.SignalOpen(types.Buy, method, level)
}

func crossed(fallback bool, check func() (bool, error)) bool {
	ok, err := check()
	if err != nil {
		return fallback
	}
	return fallback || ok
}

var _ Methods = (*OscillatorMethods)(nil)
