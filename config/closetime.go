package config

import (
	"fmt"
	"time"
)

// CloseUnit says how a CloseTime is measured.
type CloseUnit int

const (
	CloseNever CloseUnit = iota
	CloseMinutes
	CloseBars
)

// CloseTime is the typed form of OrderCloseTime: positive raw values are
// minutes, negative raw values are bars, zero disables time-based closing.
type CloseTime struct {
	Unit CloseUnit
	N    int
}

func Minutes(n int) CloseTime { return CloseTime{Unit: CloseMinutes, N: n} }
func Bars(n int) CloseTime    { return CloseTime{Unit: CloseBars, N: n} }

// ParseCloseTime decodes the sign-encoded raw value.
func ParseCloseTime(raw int) CloseTime {
	switch {
	case raw > 0:
		return Minutes(raw)
	case raw < 0:
		return Bars(-raw)
	default:
		return CloseTime{}
	}
}

// Raw encodes the value back into the signed form.
func (ct CloseTime) Raw() int {
	switch ct.Unit {
	case CloseMinutes:
		return ct.N
	case CloseBars:
		return -ct.N
	default:
		return 0
	}
}

// Expired reports whether a position of the given age, or open for the given
// number of bars, has reached the close time.
func (ct CloseTime) Expired(age time.Duration, bars int) bool {
	if ct.N <= 0 {
		return false
	}
	switch ct.Unit {
	case CloseMinutes:
		return age >= time.Duration(ct.N)*time.Minute
	case CloseBars:
		return bars >= ct.N
	default:
		return false
	}
}

func (ct CloseTime) String() string {
	switch ct.Unit {
	case CloseMinutes:
		return fmt.Sprintf("%dm", ct.N)
	case CloseBars:
		return fmt.Sprintf("%d bars", ct.N)
	default:
		return "never"
	}
}

func (c *StrategyConfig) CloseTime() CloseTime { return ParseCloseTime(c.OrderCloseTime) }

func (c *StrategyConfig) SetCloseTime(ct CloseTime) { c.OrderCloseTime = ct.Raw() }
