package strategy

import (
	"errors"

	"github.com/evdnx/stgcore/config"
	"github.com/evdnx/stgcore/logger"
	"github.com/evdnx/stgcore/metrics"
	"github.com/evdnx/stgcore/risk"
	"github.com/evdnx/stgcore/signal"
	"github.com/evdnx/stgcore/stats"
	"github.com/evdnx/stgcore/types"
)

// Methods is the pluggable signal logic of a strategy. Every call receives
// the selector code and threshold configured on the strategy's config.
type Methods interface {
	// TickFilter decides whether bar is evaluated at all.
	TickFilter(bar types.Bar, method int) bool
	// Observe is called with every bar that passed the tick filter.
	Observe(bar types.Bar)
	SignalOpen(side types.Side, method int, level float64) bool
	SignalOpenFilter(side types.Side, method int) bool
	// SignalOpenBoost returns a lot-size multiplier; values <= 1 mean no boost.
	SignalOpenBoost(side types.Side, method int) float64
	SignalClose(side types.Side, method int, level float64) bool
	// PriceLimit returns the limit price for a new order, 0 for none.
	PriceLimit(side types.Side, method int, level float64) float64
}

// barSink is implemented by data handles that want to see every bar.
type barSink interface {
	Add(high, low, close, volume float64) error
}

// Strategy hosts one configured rule-set: it runs evaluation passes and keeps
// the strategy's outcome statistics. A Strategy belongs to one goroutine.
type Strategy struct {
	Name    string
	cfg     *config.StrategyConfig
	methods Methods
	ledger  *stats.Ledger
	running stats.Running
	errSrc  signal.ErrorSource
}

// Option configures a Strategy.
type Option func(*Strategy)

// WithErrorSource sets where the per-pass error severity is read from.
func WithErrorSource(src signal.ErrorSource) Option {
	return func(s *Strategy) { s.errSrc = src }
}

// WithLedger shares an existing ledger instead of starting a fresh one.
func WithLedger(l *stats.Ledger) Option {
	return func(s *Strategy) {
		if l != nil {
			s.ledger = l
		}
	}
}

// New validates cfg and wires the strategy. The strategy takes over cfg.
func New(name string, cfg *config.StrategyConfig, methods Methods, opts ...Option) (*Strategy, error) {
	if cfg == nil {
		return nil, errors.New("strategy: nil config")
	}
	if methods == nil {
		return nil, errors.New("strategy: nil signal methods")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Strategy{
		Name:    name,
		cfg:     cfg,
		methods: methods,
		ledger:  stats.NewLedger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Params makes a Strategy usable as another strategy's SL/TP provider.
func (s *Strategy) Params() *config.StrategyConfig {
	if s == nil {
		return nil
	}
	return s.cfg
}

func (s *Strategy) Ledger() *stats.Ledger { return s.ledger }

// Running returns the open-orders and error counters.
func (s *Strategy) Running() *stats.Running { return &s.running }

// ProcessBar runs one evaluation pass and returns its result.
func (s *Strategy) ProcessBar(bar types.Bar) *signal.Result {
	res := signal.NewResult()
	cfg := s.cfg
	log := cfg.Log()

	switch {
	case !cfg.Enabled:
		return s.skip(res, "disabled")
	case cfg.Suspended:
		return s.skip(res, "suspended")
	case cfg.MaxSpread > 0 && bar.Spread > cfg.MaxSpread:
		log.Warn("spread_too_high",
			logger.String("strategy", s.Name),
			logger.Float64("spread", bar.Spread),
			logger.Float64("max_spread", cfg.MaxSpread),
		)
		return s.skip(res, "spread")
	case !s.methods.TickFilter(bar, cfg.TickFilterMethod):
		return s.skip(res, "tick_filter")
	}
	res.AddSignals(signal.TickFilterPassed)

	if sink, ok := cfg.Indicator().(barSink); ok {
		if err := sink.Add(bar.High, bar.Low, bar.Close, bar.Volume); err != nil {
			log.Warn("suite_add_error", logger.String("strategy", s.Name), logger.Err(err))
		}
	}
	s.methods.Observe(bar)

	boost := 1.0
	for _, side := range types.Sides() {
		open, closing, passed, boosted, limited := sideFlags(side)
		if s.methods.SignalOpen(side, cfg.SignalOpenMethod, cfg.SignalOpenLevel) {
			res.AddSignals(open)
			if s.methods.SignalOpenFilter(side, cfg.SignalOpenFilter) {
				res.AddSignals(signal.FilterPassed | passed)
			}
			if f := s.methods.SignalOpenBoost(side, cfg.SignalOpenBoost); cfg.Boosted && f > 1 {
				res.AddSignals(boosted)
				boost = max(boost, f)
			}
			if s.methods.PriceLimit(side, cfg.PriceLimitMethod, cfg.PriceLimitLevel) > 0 {
				res.AddSignals(limited)
			}
		}
		if s.methods.SignalClose(side, cfg.SignalCloseMethod, cfg.SignalCloseLevel) {
			res.AddSignals(closing)
		}
	}
	res.SetBoostFactor(boost)

	if res.HasAllSignals(signal.OpenLong|signal.FilterPassedLong) ||
		res.HasAllSignals(signal.OpenShort|signal.FilterPassedShort) {
		risk.OrderSize(cfg, res)
	}
	s.finish(res, "processed")

	if res.Signals()&(signal.OpenLong|signal.OpenShort|signal.CloseLong|signal.CloseShort) != 0 {
		log.Info("signal_raised",
			logger.String("strategy", s.Name),
			logger.Uint64("magic", cfg.MagicNo),
			logger.String("signals", res.Signals().String()),
			logger.Float64("lot_size", res.LotSize()),
			logger.Float64("boost", res.BoostFactor()),
		)
	}
	return res
}

func (s *Strategy) skip(res *signal.Result, outcome string) *signal.Result {
	s.finish(res, outcome)
	return res
}

// finish reads the pass's error severity and publishes the pass.
func (s *Strategy) finish(res *signal.Result, outcome string) {
	res.ProcessLastError(s.errSrc)
	if res.LastError() != signal.NoError {
		s.running.RecordError()
		metrics.Errors.WithLabelValues(s.Name).Inc()
	}
	metrics.Evaluations.WithLabelValues(s.Name, outcome).Inc()
	metrics.LastError.WithLabelValues(s.Name).Set(float64(res.LastError()))
}

func sideFlags(side types.Side) (open, closing, passed, boosted, limited signal.Flags) {
	if side == types.Buy {
		return signal.OpenLong, signal.CloseLong, signal.FilterPassedLong, signal.BoostLong, signal.PriceLimitLong
	}
	return signal.OpenShort, signal.CloseShort, signal.FilterPassedShort, signal.BoostShort, signal.PriceLimitShort
}

// OrderOpened tells the strategy one of its orders was filled.
func (s *Strategy) OrderOpened() {
	s.running.OrderOpened()
	metrics.OpenOrders.WithLabelValues(s.Name).Set(float64(s.running.OrdersOpen()))
}

// RecordOutcome folds a closed trade into the ledger and counts the order as
// closed. isWin is the caller's classification; break-even trades must be
// classified by the caller too. Non-finite values are rejected and change
// nothing.
func (s *Strategy) RecordOutcome(isWin bool, pnl, spread float64) error {
	if err := s.ledger.Record(isWin, pnl, spread); err != nil {
		s.cfg.Log().Warn("outcome_rejected",
			logger.String("strategy", s.Name),
			logger.Err(err),
		)
		return err
	}
	s.running.OrderClosed()
	metrics.OpenOrders.WithLabelValues(s.Name).Set(float64(s.running.OrdersOpen()))

	result := "lost"
	if isWin {
		result = "won"
	}
	metrics.Outcomes.WithLabelValues(s.Name, result).Inc()
	for _, w := range stats.Windows() {
		p, err := s.ledger.Get(w)
		if err != nil {
			continue
		}
		metrics.NetProfit.WithLabelValues(s.Name, w.String()).Set(p.NetProfit())
		metrics.ProfitFactor.WithLabelValues(s.Name, w.String()).Set(p.ProfitFactor())
	}
	s.cfg.Log().Info("outcome_recorded",
		logger.String("strategy", s.Name),
		logger.Bool("won", isWin),
		logger.Float64("pnl", pnl),
		logger.Float64("spread", spread),
	)
	return nil
}

// ResetWindow clears a statistics window at its period boundary.
func (s *Strategy) ResetWindow(w stats.Window) error {
	if err := s.ledger.ResetWindow(w); err != nil {
		return err
	}
	metrics.NetProfit.WithLabelValues(s.Name, w.String()).Set(0)
	metrics.ProfitFactor.WithLabelValues(s.Name, w.String()).Set(0)
	return nil
}

// Teardown releases the collaborators owned by the strategy's config.
func (s *Strategy) Teardown() error { return s.cfg.Teardown() }
