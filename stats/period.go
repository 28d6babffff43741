package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var ErrNonFinite = errors.New("outcome value is not a finite number")

// PeriodStats aggregates trade outcomes over one window. Money values are
// accumulated as decimals so repeated updates do not drift.
type PeriodStats struct {
	ordersTotal uint32
	ordersWon   uint32
	ordersLost  uint32
	avgSpread   decimal.Decimal
	netProfit   decimal.Decimal
	grossProfit decimal.Decimal
	grossLoss   decimal.Decimal // stored as a positive magnitude
}

// RecordOutcome folds one closed trade into the window. The caller decides
// whether the trade counts as won or lost (break-even trades included); the
// sign of pnl decides which gross bucket it lands in. NaN or infinite values
// are rejected and leave the window untouched.
func (p *PeriodStats) RecordOutcome(isWin bool, pnl, spread float64) error {
	if err := checkFinite(pnl, spread); err != nil {
		return err
	}
	p.ordersTotal++
	if isWin {
		p.ordersWon++
	} else {
		p.ordersLost++
	}

	amount := decimal.NewFromFloat(pnl)
	p.netProfit = p.netProfit.Add(amount)
	switch amount.Sign() {
	case 1:
		p.grossProfit = p.grossProfit.Add(amount)
	case -1:
		p.grossLoss = p.grossLoss.Add(amount.Abs())
	}

	// running mean: avg += (x - avg) / n
	n := decimal.NewFromInt(int64(p.ordersTotal))
	delta := decimal.NewFromFloat(spread).Sub(p.avgSpread)
	p.avgSpread = p.avgSpread.Add(delta.Div(n))
	return nil
}

func checkFinite(pnl, spread float64) error {
	if math.IsNaN(pnl) || math.IsInf(pnl, 0) {
		return fmt.Errorf("%w: pnl %v", ErrNonFinite, pnl)
	}
	if math.IsNaN(spread) || math.IsInf(spread, 0) {
		return fmt.Errorf("%w: spread %v", ErrNonFinite, spread)
	}
	return nil
}

func (p *PeriodStats) OrdersTotal() uint32 { return p.ordersTotal }
func (p *PeriodStats) OrdersWon() uint32   { return p.ordersWon }
func (p *PeriodStats) OrdersLost() uint32  { return p.ordersLost }

func (p *PeriodStats) AvgSpread() float64   { return p.avgSpread.InexactFloat64() }
func (p *PeriodStats) NetProfit() float64   { return p.netProfit.InexactFloat64() }
func (p *PeriodStats) GrossProfit() float64 { return p.grossProfit.InexactFloat64() }
func (p *PeriodStats) GrossLoss() float64   { return p.grossLoss.InexactFloat64() }

// ProfitFactor is grossProfit / grossLoss. Without any loss it is +Inf when
// there was profit and 0 when there was none.
func (p *PeriodStats) ProfitFactor() float64 {
	if p.grossLoss.IsZero() {
		if p.grossProfit.IsPositive() {
			return math.Inf(1)
		}
		return 0
	}
	return p.grossProfit.Div(p.grossLoss).InexactFloat64()
}

// WinRate returns won/total in [0,1], 0 for an empty window.
func (p *PeriodStats) WinRate() float64 {
	if p.ordersTotal == 0 {
		return 0
	}
	return float64(p.ordersWon) / float64(p.ordersTotal)
}

func (p *PeriodStats) Reset() { *p = PeriodStats{} }

// String renders total,won,lost,avgSpread,net,grossProfit,grossLoss,profitFactor.
func (p *PeriodStats) String() string {
	return fmt.Sprintf("%d,%d,%d,%g,%g,%g,%g,%g",
		p.ordersTotal, p.ordersWon, p.ordersLost,
		p.AvgSpread(), p.NetProfit(), p.GrossProfit(), p.GrossLoss(), p.ProfitFactor())
}
