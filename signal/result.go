package signal

import (
	"errors"
	"fmt"
)

// NoError is the severity recorded when nothing went wrong.
const NoError uint32 = 0

// ErrInvalidFlagCombination is reserved for callers that layer flag-legality
// checks on top of Result. The bitset itself never validates flags.
var ErrInvalidFlagCombination = errors.New("invalid signal flag combination")

// ErrorSource exposes the most recent error severity of the execution
// environment.
type ErrorSource interface {
	LastError() uint32
}

// Result accumulates the outcome of a single evaluation pass (one tick or
// one bar). A Result must not be shared between concurrent passes.
type Result struct {
	signals           Flags
	boostFactor       float64
	lotSize           float64
	lastError         uint32
	positionsUpdated  uint16
	invalidStopLoss   uint16
	invalidTakeProfit uint16
	tasksProcessed    uint16
	tasksNotProcessed uint16
}

func NewResult() *Result {
	r := &Result{}
	r.Reset()
	return r
}

// Reset returns the result to its zero state. Called at the start of every pass.
func (r *Result) Reset() {
	*r = Result{signals: None, lastError: NoError}
}

func (r *Result) Signals() Flags { return r.signals }

// SetSignals overwrites the whole signal set.
func (r *Result) SetSignals(f Flags) { r.signals = f }

func (r *Result) AddSignals(f Flags)    { r.signals |= f }
func (r *Result) RemoveSignals(f Flags) { r.signals &^= f }

// HasAllSignals is a subset test: every bit in f must be set.
func (r *Result) HasAllSignals(f Flags) bool { return r.signals.Has(f) }

func (r *Result) SetSignal(f Flags, present bool) {
	if present {
		r.AddSignals(f)
		return
	}
	r.RemoveSignals(f)
}

// RecordError keeps the highest severity seen since the last Reset.
func (r *Result) RecordError(severity uint32) {
	if severity > r.lastError {
		r.lastError = severity
	}
}

// ProcessLastError folds the error source's current severity into the result.
func (r *Result) ProcessLastError(src ErrorSource) {
	if src == nil {
		return
	}
	r.RecordError(src.LastError())
}

func (r *Result) LastError() uint32 { return r.lastError }

func (r *Result) SetBoostFactor(v float64) { r.boostFactor = v }
func (r *Result) BoostFactor() float64     { return r.boostFactor }
func (r *Result) SetLotSize(v float64)     { r.lotSize = v }
func (r *Result) LotSize() float64         { return r.lotSize }

func (r *Result) AddPositionsUpdated(n uint16) { r.positionsUpdated += n }
func (r *Result) AddInvalidStopLoss()          { r.invalidStopLoss++ }
func (r *Result) AddInvalidTakeProfit()        { r.invalidTakeProfit++ }

// TaskProcessed counts a task as processed or not processed.
func (r *Result) TaskProcessed(ok bool) {
	if ok {
		r.tasksProcessed++
		return
	}
	r.tasksNotProcessed++
}

func (r *Result) PositionsUpdated() uint16  { return r.positionsUpdated }
func (r *Result) InvalidStopLoss() uint16   { return r.invalidStopLoss }
func (r *Result) InvalidTakeProfit() uint16 { return r.invalidTakeProfit }
func (r *Result) TasksProcessed() uint16    { return r.tasksProcessed }
func (r *Result) TasksNotProcessed() uint16 { return r.tasksNotProcessed }

// String renders signals,positionsUpdated,invalidSL,invalidTP,lastError.
func (r *Result) String() string {
	return fmt.Sprintf("%d,%d,%d,%d,%d",
		uint16(r.signals), r.positionsUpdated, r.invalidStopLoss, r.invalidTakeProfit, r.lastError)
}
