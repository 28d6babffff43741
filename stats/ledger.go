package stats

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var (
	ErrUnknownWindow   = errors.New("unknown statistics window")
	ErrPermanentWindow = errors.New("total window cannot be reset")
)

// Window is one of the fixed aggregation granularities.
type Window int

const (
	Daily Window = iota
	Weekly
	Monthly
	Total
	windowCount
)

var windowNames = [windowCount]string{"daily", "weekly", "monthly", "total"}

// Windows returns the tracked windows in their fixed reporting order.
func Windows() []Window { return []Window{Daily, Weekly, Monthly, Total} }

func (w Window) Valid() bool { return w >= 0 && w < windowCount }

func (w Window) String() string {
	if !w.Valid() {
		return fmt.Sprintf("window(%d)", int(w))
	}
	return windowNames[w]
}

// ParseWindow maps a window name ("daily", "weekly", ...) to its Window.
func ParseWindow(name string) (Window, error) {
	w, ok := lo.Find(Windows(), func(w Window) bool {
		return strings.EqualFold(windowNames[w], name)
	})
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWindow, name)
	}
	return w, nil
}

// Ledger holds one PeriodStats per window. Windows other than Total are
// reset by an external scheduler on their period boundary; Total lives as
// long as the ledger. Not safe for concurrent use.
type Ledger struct {
	periods [windowCount]PeriodStats
}

func NewLedger() *Ledger { return &Ledger{} }

// Get returns the live stats of a window.
func (l *Ledger) Get(w Window) (*PeriodStats, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownWindow, int(w))
	}
	return &l.periods[w], nil
}

// Set replaces a window's aggregate, e.g. when restoring from a report.
func (l *Ledger) Set(w Window, s PeriodStats) error {
	if !w.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownWindow, int(w))
	}
	l.periods[w] = s
	return nil
}

// Record folds one outcome into every window. A rejected outcome changes no
// window.
func (l *Ledger) Record(isWin bool, pnl, spread float64) error {
	if err := checkFinite(pnl, spread); err != nil {
		return err
	}
	for i := range l.periods {
		_ = l.periods[i].RecordOutcome(isWin, pnl, spread)
	}
	return nil
}

// ResetWindow clears a window at its period boundary.
func (l *Ledger) ResetWindow(w Window) error {
	if !w.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownWindow, int(w))
	}
	if w == Total {
		return ErrPermanentWindow
	}
	l.periods[w].Reset()
	return nil
}

// String joins every window's summary with commas in the fixed window order.
func (l *Ledger) String() string {
	return strings.Join(lo.Map(Windows(), func(w Window, _ int) string {
		return l.periods[w].String()
	}), ",")
}
