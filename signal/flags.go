package signal

import "strings"

// Flags is a fixed-width set of named signal predicates. Each bit is set
// independently by the open/close/filter/boost methods of a strategy.
type Flags uint16

const None Flags = 0

const (
	OpenLong Flags = 1 << iota
	OpenShort
	CloseLong
	CloseShort
	FilterPassed
	TickFilterPassed
	BoostLong
	BoostShort
	PriceLimitLong
	PriceLimitShort
	// FilterPassedLong/FilterPassedShort say which side's filter passed;
	// FilterPassed is set alongside either of them.
	FilterPassedLong
	FilterPassedShort
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{OpenLong, "OPEN_LONG"},
	{OpenShort, "OPEN_SHORT"},
	{CloseLong, "CLOSE_LONG"},
	{CloseShort, "CLOSE_SHORT"},
	{FilterPassed, "FILTER_PASSED"},
	{TickFilterPassed, "TICK_FILTER_PASSED"},
	{BoostLong, "BOOST_LONG"},
	{BoostShort, "BOOST_SHORT"},
	{PriceLimitLong, "PRICE_LIMIT_LONG"},
	{PriceLimitShort, "PRICE_LIMIT_SHORT"},
	{FilterPassedLong, "FILTER_PASSED_LONG"},
	{FilterPassedShort, "FILTER_PASSED_SHORT"},
}

// Has reports whether every bit of want is present in f.
func (f Flags) Has(want Flags) bool { return f&want == want }

func (f Flags) String() string {
	if f == None {
		return "NONE"
	}
	var parts []string
	rest := f
	for _, n := range flagNames {
		if f&n.flag != 0 {
			parts = append(parts, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		parts = append(parts, "UNKNOWN")
	}
	return strings.Join(parts, "|")
}
