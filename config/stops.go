package config

import (
	"errors"
	"fmt"
	"reflect"
)

// MaxStopDepth bounds how many SL/TP hops are followed when checking for cycles.
const MaxStopDepth = 8

var (
	ErrConfigurationCycle = errors.New("stop-loss/take-profit references form a cycle")
	ErrStopChainTooDeep   = errors.New("stop-loss/take-profit chain too deep")
)

// StopProvider is a strategy instance that can serve as a stop-loss or
// take-profit policy for another strategy. The reference is non-owning.
type StopProvider interface {
	Params() *StrategyConfig
}

func (c *StrategyConfig) StopLoss() StopProvider   { return c.sl }
func (c *StrategyConfig) TakeProfit() StopProvider { return c.tp }

// SetStops replaces the SL/TP providers. A nil provider, including a typed
// nil pointer, clears that reference. Nothing changes when the new
// references would make c reachable from its own SL/TP chain.
func (c *StrategyConfig) SetStops(sl, tp StopProvider) error {
	if isNilProvider(sl) {
		sl = nil
	}
	if isNilProvider(tp) {
		tp = nil
	}
	for _, p := range []StopProvider{sl, tp} {
		if err := c.checkReach(p, 1); err != nil {
			return err
		}
	}
	c.sl, c.tp = sl, tp
	return nil
}

// checkReach walks the SL/TP chain starting at p looking for c.
func (c *StrategyConfig) checkReach(p StopProvider, depth int) error {
	if isNilProvider(p) {
		return nil
	}
	pc := p.Params()
	if pc == nil {
		return nil
	}
	if pc == c {
		return ErrConfigurationCycle
	}
	if depth >= MaxStopDepth && (pc.sl != nil || pc.tp != nil) {
		return fmt.Errorf("%w: more than %d hops", ErrStopChainTooDeep, MaxStopDepth)
	}
	if err := c.checkReach(pc.sl, depth+1); err != nil {
		return err
	}
	return c.checkReach(pc.tp, depth+1)
}

func isNilProvider(p StopProvider) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
