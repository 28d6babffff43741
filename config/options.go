package config

import (
	"github.com/evdnx/stgcore/logger"
)

// builder collects option values that New must apply in a fixed order.
type builder struct {
	magicSet bool
	magicNo  uint64
	lotSet   bool
	lotSize  float64
	stopsSet bool
	sl, tp   StopProvider
}

// Option configures a StrategyConfig in New.
type Option func(c *StrategyConfig, b *builder)

// WithTrade installs the trade-execution handle. LotSize is derived from its
// minimum volume unless WithLotSize overrides it.
func WithTrade(t Trade, own Ownership) Option {
	return func(c *StrategyConfig, _ *builder) {
		c.trade = t
		c.tradeOwner = own
	}
}

func WithIndicator(d Indicator, own Ownership) Option {
	return func(c *StrategyConfig, _ *builder) {
		c.data = d
		c.dataOwner = own
	}
}

// WithStops sets the stop-loss and take-profit providers; the no-cycle check
// runs once every other option is applied.
func WithStops(sl, tp StopProvider) Option {
	return func(_ *StrategyConfig, b *builder) {
		b.stopsSet = true
		b.sl, b.tp = sl, tp
	}
}

func WithLogger(l logger.Logger) Option {
	return func(c *StrategyConfig, _ *builder) {
		if l != nil {
			c.log = l
		}
	}
}

func WithMagicSource(src MagicSource) Option {
	return func(c *StrategyConfig, _ *builder) {
		if src != nil {
			c.magic = src
		}
	}
}

func WithMagicNo(n uint64) Option {
	return func(_ *StrategyConfig, b *builder) {
		b.magicSet = true
		b.magicNo = n
	}
}

func WithID(id int64) Option {
	return func(c *StrategyConfig, _ *builder) { c.ID = id }
}

func WithWeight(w float64) Option {
	return func(c *StrategyConfig, _ *builder) { c.Weight = w }
}

// WithLotSize pins LotSize regardless of the trade handle.
func WithLotSize(lots float64) Option {
	return func(_ *StrategyConfig, b *builder) {
		b.lotSet = true
		b.lotSize = lots
	}
}

// WithSignals sets the open/close method selectors and thresholds, plus the
// open filter and boost selectors.
func WithSignals(openMethod int, openLevel float64, openFilter, openBoost, closeMethod int, closeLevel float64) Option {
	return func(c *StrategyConfig, _ *builder) {
		c.SetSignals(openMethod, openLevel, openFilter, openBoost, closeMethod, closeLevel)
	}
}

func WithPriceLimit(method int, level float64) Option {
	return func(c *StrategyConfig, _ *builder) { c.SetPriceLimits(method, level) }
}

func WithTickFilter(method int) Option {
	return func(c *StrategyConfig, _ *builder) { c.SetTickFilter(method) }
}

func WithMaxSpread(spread float64) Option {
	return func(c *StrategyConfig, _ *builder) { c.MaxSpread = spread }
}

func WithShift(shift int) Option {
	return func(c *StrategyConfig, _ *builder) { c.Shift = shift }
}

func WithCloseTime(ct CloseTime) Option {
	return func(c *StrategyConfig, _ *builder) { c.SetCloseTime(ct) }
}
