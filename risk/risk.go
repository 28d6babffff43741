package risk

import (
	"math"

	"github.com/evdnx/stgcore/config"
	"github.com/evdnx/stgcore/signal"
)

// VolumeLimits is implemented by trade handles that know their volume step
// and maximum.
type VolumeLimits interface {
	VolumeStep() float64
	VolumeMax() float64
}

// OrderSize derives the order size of this pass from the config and the
// boost factor stored in res, and records it in res.
//
// size = LotSize × LotSizeFactor × MaxRisk (× boost when the strategy is
// boosted), then snapped to the trade handle's volume limits.
func OrderSize(cfg *config.StrategyConfig, res *signal.Result) float64 {
	size := cfg.EffectiveLotSize() * cfg.MaxRisk
	if cfg.Boosted && res.BoostFactor() > 0 {
		size *= res.BoostFactor()
	}
	if size > 0 {
		if t := cfg.Trade(); t != nil {
			min, step, max := t.VolumeMin(), 0.0, math.Inf(1)
			if vl, ok := t.(VolumeLimits); ok {
				step, max = vl.VolumeStep(), vl.VolumeMax()
			}
			size = NormalizeLots(size, min, step, max)
		}
	}
	res.SetLotSize(size)
	return size
}

// NormalizeLots floors lots to a multiple of step and clamps it into
// [min, max]. Sizes that round below min become min; a step <= 0 is ignored.
func NormalizeLots(lots, min, step, max float64) float64 {
	if lots <= 0 {
		return 0
	}
	if step > 0 {
		// tolerate float noise such as 0.3/0.1 = 2.9999999999999996
		lots = math.Floor(lots/step+1e-9) * step
	}
	if lots < min {
		lots = min
	}
	if max > 0 && lots > max {
		lots = max
	}
	return lots
}

// CapStops applies the hard SL/TP limits of cfg to the computed pip
// distances. Non-positive distances are invalid: they are counted on res
// and returned as 0.
func CapStops(cfg *config.StrategyConfig, res *signal.Result, slPips, tpPips int) (sl, tp int) {
	sl = capPips(slPips, cfg.StopLossMaxPips)
	if sl == 0 {
		res.AddInvalidStopLoss()
	}
	tp = capPips(tpPips, cfg.TakeProfitMaxPips)
	if tp == 0 {
		res.AddInvalidTakeProfit()
	}
	return sl, tp
}

func capPips(pips, limit int) int {
	if pips <= 0 {
		return 0
	}
	if limit > 0 && pips > limit {
		return limit
	}
	return pips
}
