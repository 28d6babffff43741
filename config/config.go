package config

import (
	"fmt"
	"io"

	"github.com/evdnx/stgcore/logger"
	"github.com/evdnx/stgcore/types"
)

// Trade is the trade-execution handle a strategy runs against.
type Trade interface {
	Market() types.Market
	// VolumeMin is the minimum tradable volume of the market.
	VolumeMin() float64
	io.Closer
}

// Indicator is the market-data/indicator handle. The config only stores it.
type Indicator interface {
	io.Closer
}

// TradeFactory opens a trade handle for a market.
type TradeFactory func(m types.Market) (Trade, error)

// Ownership tells the config whether it must close a handle on release.
type Ownership int

const (
	Borrowed Ownership = iota
	Owned
)

// StrategyConfig holds all tunable parameters of one strategy instance
// together with its collaborator handles.
//
// A config is mutated by a single evaluation goroutine; callers serialize
// any other access.
type StrategyConfig struct {
	ID        int64   `yaml:"id"`
	MagicNo   uint64  `yaml:"magic_no"`
	Enabled   bool    `yaml:"enabled"`
	Suspended bool    `yaml:"suspended"`
	Boosted   bool    `yaml:"boosted"`
	Weight    float64 `yaml:"weight" validate:"gte=0"`

	// OrderCloseTime is minutes when positive and bars when negative; use
	// CloseTime for a typed view.
	OrderCloseTime int `yaml:"order_close_time"`
	Shift          int `yaml:"shift" validate:"gte=0"`

	SignalOpenMethod  int     `yaml:"signal_open_method"`
	SignalOpenLevel   float64 `yaml:"signal_open_level"`
	SignalOpenFilter  int     `yaml:"signal_open_filter"`
	SignalOpenBoost   int     `yaml:"signal_open_boost"`
	SignalCloseMethod int     `yaml:"signal_close_method"`
	SignalCloseLevel  float64 `yaml:"signal_close_level"`
	PriceLimitMethod  int     `yaml:"price_limit_method"`
	PriceLimitLevel   float64 `yaml:"price_limit_level"`
	TickFilterMethod  int     `yaml:"tick_filter_method"`

	LotSize       float64 `yaml:"lot_size" validate:"gte=0"`
	LotSizeFactor float64 `yaml:"lot_size_factor" validate:"gte=0"`
	MaxRisk       float64 `yaml:"max_risk" validate:"gte=0"`
	// MaxSpread is the ceiling in price-increment units; 0 disables the check.
	MaxSpread float64 `yaml:"max_spread" validate:"gte=0"`

	TakeProfitMaxPips int      `yaml:"tp_max" validate:"gte=0"`
	StopLossMaxPips   int      `yaml:"sl_max" validate:"gte=0"`
	RefreshTime       Duration `yaml:"refresh_time" validate:"gte=0"`

	trade      Trade
	tradeOwner Ownership
	data       Indicator
	dataOwner  Ownership
	log        logger.Logger
	sl, tp     StopProvider
	magic      MagicSource
	torndown   bool
}

func defaults() *StrategyConfig {
	return &StrategyConfig{
		Enabled:       true,
		Suspended:     false,
		Boosted:       true,
		LotSizeFactor: 1.0,
		MaxRisk:       1.0,
		log:           logger.NewNop(),
		magic:         UUIDMagic{},
	}
}

// New builds a config with defaults applied, then the options. A unique
// magic number is drawn from the magic source unless WithMagicNo is given,
// and LotSize is seeded from the trade handle's minimum volume.
func New(opts ...Option) (*StrategyConfig, error) {
	c := defaults()
	b := &builder{}
	for _, opt := range opts {
		opt(c, b)
	}
	if b.magicSet {
		c.MagicNo = b.magicNo
	} else {
		c.MagicNo = c.magic.NextMagic()
	}
	c.InitLotSize()
	if b.lotSet {
		c.LotSize = b.lotSize
	}
	if b.stopsSet {
		if err := c.SetStops(b.sl, b.tp); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// InitLotSize seeds LotSize from the trade handle's minimum volume. Without a
// trade handle LotSize keeps its current value.
func (c *StrategyConfig) InitLotSize() {
	if c.trade != nil {
		c.LotSize = c.trade.VolumeMin()
	}
}

// EffectiveLotSize returns LotSize × LotSizeFactor.
func (c *StrategyConfig) EffectiveLotSize() float64 {
	return c.LotSize * c.LotSizeFactor
}

func (c *StrategyConfig) SetLotSizeFactor(f float64) error {
	if !(f >= 0) {
		return fmt.Errorf("%w: lot size factor %v must be a non-negative number", ErrInvalidConfig, f)
	}
	c.LotSizeFactor = f
	return nil
}

func (c *StrategyConfig) SetMaxRisk(r float64) error {
	if !(r >= 0) {
		return fmt.Errorf("%w: max risk %v must be a non-negative number", ErrInvalidConfig, r)
	}
	c.MaxRisk = r
	return nil
}

func (c *StrategyConfig) SetSignals(openMethod int, openLevel float64, openFilter, openBoost, closeMethod int, closeLevel float64) {
	c.SignalOpenMethod = openMethod
	c.SignalOpenLevel = openLevel
	c.SignalOpenFilter = openFilter
	c.SignalOpenBoost = openBoost
	c.SignalCloseMethod = closeMethod
	c.SignalCloseLevel = closeLevel
}

func (c *StrategyConfig) SetPriceLimits(method int, level float64) {
	c.PriceLimitMethod = method
	c.PriceLimitLevel = level
}

func (c *StrategyConfig) SetTickFilter(method int) { c.TickFilterMethod = method }

func (c *StrategyConfig) Enable(on bool)  { c.Enabled = on }
func (c *StrategyConfig) Suspend(on bool) { c.Suspended = on }
func (c *StrategyConfig) Boost(on bool)   { c.Boosted = on }

// Log returns the diagnostics handle; never nil.
func (c *StrategyConfig) Log() logger.Logger {
	if c.log == nil {
		return logger.NewNop()
	}
	return c.log
}

// Clone returns a field-wise copy. The copy borrows the trade and data
// handles and shares the SL/TP back-references, so tearing it down never
// releases the original's resources.
func (c *StrategyConfig) Clone() *StrategyConfig {
	cp := *c
	cp.tradeOwner = Borrowed
	cp.dataOwner = Borrowed
	cp.torndown = false
	return &cp
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// String renders the stable, field-ordered summary used for diagnostics and
// golden comparisons.
func (c *StrategyConfig) String() string {
	return fmt.Sprintf("Enabled:%s;Suspended:%s;Boosted:%s;Id:%d,MagicNo:%d;Weight:%.2f;"+
		"SOM:%d,SOL:%.2f;SCM:%d,SCL:%.2f;PLM:%d,PLL:%.2f;LS:%.2f(Factor:%.2f);MS:%.2f;",
		yesNo(c.Enabled), yesNo(c.Suspended), yesNo(c.Boosted), c.ID, c.MagicNo, c.Weight,
		c.SignalOpenMethod, c.SignalOpenLevel, c.SignalCloseMethod, c.SignalCloseLevel,
		c.PriceLimitMethod, c.PriceLimitLevel, c.LotSize, c.LotSizeFactor, c.MaxSpread)
}
