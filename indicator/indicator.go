package indicator

import (
	"errors"

	"github.com/evdnx/goti"
	"github.com/evdnx/stgcore/types"
)

var ErrClosed = errors.New("indicator suite closed")

// Factory builds the goti suite backing a Suite.
type Factory func() (*goti.IndicatorSuite, error)

// DefaultFactory returns a factory using goti's default thresholds.
func DefaultFactory() Factory {
	return func() (*goti.IndicatorSuite, error) {
		ic := goti.DefaultConfig()
		ic.RSIOverbought = 70
		ic.RSIOversold = 30
		ic.MFIOverbought = 80
		ic.MFIOversold = 20
		return goti.NewIndicatorSuiteWithConfig(ic)
	}
}

// Suite is the market-data handle of a strategy: a goti indicator suite fed
// with the bars of one market.
type Suite struct {
	market types.Market
	suite  *goti.IndicatorSuite
	bars   int
}

func NewSuite(m types.Market, factory Factory) (*Suite, error) {
	if factory == nil {
		factory = DefaultFactory()
	}
	s, err := factory()
	if err != nil {
		return nil, err
	}
	return &Suite{market: m, suite: s}, nil
}

// Add feeds one bar into every indicator.
func (s *Suite) Add(high, low, close, volume float64) error {
	if s.suite == nil {
		return ErrClosed
	}
	if err := s.suite.Add(high, low, close, volume); err != nil {
		return err
	}
	s.bars++
	return nil
}

func (s *Suite) Market() types.Market { return s.market }
func (s *Suite) Bars() int            { return s.bars }

// Indicators exposes the underlying goti suite, nil once closed.
func (s *Suite) Indicators() *goti.IndicatorSuite { return s.suite }

func (s *Suite) Close() error {
	if s.suite == nil {
		return ErrClosed
	}
	s.suite = nil
	return nil
}
