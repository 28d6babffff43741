package executor

import (
	"errors"
	"math"
	"sync"

	"github.com/evdnx/stgcore/config"
	"github.com/evdnx/stgcore/types"
)

var ErrClosed = errors.New("trade handle closed")

// VolumeSpec describes the tradable volume of a market.
type VolumeSpec struct {
	Min  float64
	Step float64
	// Max of 0 means unlimited.
	Max float64
}

// Paper is a trade handle for paper trading: it knows its market and volume
// limits but never routes orders anywhere.
type Paper struct {
	mu     sync.Mutex
	market types.Market
	volume VolumeSpec
	closed bool
}

func NewPaper(m types.Market, spec VolumeSpec) *Paper {
	if spec.Step <= 0 {
		spec.Step = spec.Min
	}
	return &Paper{market: m, volume: spec}
}

// PaperFactory returns a config.TradeFactory opening Paper handles with spec.
func PaperFactory(spec VolumeSpec) config.TradeFactory {
	return func(m types.Market) (config.Trade, error) {
		return NewPaper(m, spec), nil
	}
}

func (p *Paper) Market() types.Market { return p.market }
func (p *Paper) VolumeMin() float64   { return p.volume.Min }
func (p *Paper) VolumeStep() float64  { return p.volume.Step }

func (p *Paper) VolumeMax() float64 {
	if p.volume.Max <= 0 {
		return math.Inf(1)
	}
	return p.volume.Max
}

// Close releases the handle; a second call returns ErrClosed.
func (p *Paper) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	p.closed = true
	return nil
}

func (p *Paper) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}
