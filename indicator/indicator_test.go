package indicator

import (
	"errors"
	"testing"

	"github.com/evdnx/goti"
	"github.com/evdnx/stgcore/types"
)

func TestSuiteAddAndClose(t *testing.T) {
	m := types.Market{Symbol: "EURUSD", Timeframe: types.H1}
	s, err := NewSuite(m, nil)
	if err != nil {
		t.Fatalf("NewSuite failed: %v", err)
	}
	for i := 1; i <= 5; i++ {
		price := 100 + float64(i)
		if err := s.Add(price+0.5, price-0.5, price, 1000); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	if s.Bars() != 5 {
		t.Fatalf("expected 5 bars, got %d", s.Bars())
	}
	if s.Market() != m || s.Indicators() == nil {
		t.Fatal("suite lost its market or indicators")
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := s.Close(); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if err := s.Add(1, 1, 1, 1); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed after close, got %v", err)
	}
}

func TestSuiteFactoryError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewSuite(types.Market{}, func() (*goti.IndicatorSuite, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected factory error, got %v", err)
	}
}
