package stats

import "fmt"

// Running holds the strategy-wide counters that are not tied to a window:
// orders currently open and evaluation passes that reported an error.
type Running struct {
	ordersOpen uint32
	errors     uint32
}

func (r *Running) OrderOpened() { r.ordersOpen++ }

// OrderClosed decrements the open-orders gauge; it never goes below zero.
func (r *Running) OrderClosed() {
	if r.ordersOpen > 0 {
		r.ordersOpen--
	}
}

func (r *Running) RecordError() { r.errors++ }

func (r *Running) OrdersOpen() uint32 { return r.ordersOpen }
func (r *Running) Errors() uint32     { return r.errors }

func (r *Running) Reset() { *r = Running{} }

// String renders ordersOpen,errors.
func (r *Running) String() string {
	return fmt.Sprintf("%d,%d", r.ordersOpen, r.errors)
}
