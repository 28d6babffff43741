package executor

import (
	"errors"
	"math"
	"testing"

	"github.com/evdnx/stgcore/types"
)

func TestPaper_MarketAndVolume(t *testing.T) {
	m := types.Market{Symbol: "EURUSD", Timeframe: types.M15}
	p := NewPaper(m, VolumeSpec{Min: 0.01, Step: 0.01, Max: 50})

	if p.Market() != m {
		t.Fatalf("unexpected market %v", p.Market())
	}
	if p.VolumeMin() != 0.01 || p.VolumeStep() != 0.01 || p.VolumeMax() != 50 {
		t.Fatalf("unexpected volume spec: min=%v step=%v max=%v", p.VolumeMin(), p.VolumeStep(), p.VolumeMax())
	}
}

func TestPaper_DefaultsStepAndMax(t *testing.T) {
	p := NewPaper(types.Market{Symbol: "BTCUSD"}, VolumeSpec{Min: 0.001})
	if p.VolumeStep() != 0.001 {
		t.Fatalf("expected step to default to min volume, got %v", p.VolumeStep())
	}
	if !math.IsInf(p.VolumeMax(), 1) {
		t.Fatalf("expected unlimited max volume, got %v", p.VolumeMax())
	}
}

func TestPaper_CloseOnce(t *testing.T) {
	p := NewPaper(types.Market{Symbol: "ETHUSD"}, VolumeSpec{Min: 0.1})
	if err := p.Close(); err != nil {
		t.Fatalf("first close failed: %v", err)
	}
	if !p.Closed() {
		t.Fatal("handle should report closed")
	}
	if err := p.Close(); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed on second close, got %v", err)
	}
}

func TestPaperFactory(t *testing.T) {
	f := PaperFactory(VolumeSpec{Min: 0.05, Step: 0.05})
	tr, err := f(types.Market{Symbol: "XAUUSD", Timeframe: types.H1})
	if err != nil {
		t.Fatalf("factory failed: %v", err)
	}
	if tr.VolumeMin() != 0.05 || tr.Market().Timeframe != types.H1 {
		t.Fatalf("unexpected handle: %v %v", tr.VolumeMin(), tr.Market())
	}
}
