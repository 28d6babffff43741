package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource uint32

func (s fixedSource) LastError() uint32 { return uint32(s) }

func TestHasAllSignalsIsSubsetTest(t *testing.T) {
	r := NewResult()
	r.AddSignals(OpenLong)
	r.AddSignals(FilterPassed)

	assert.True(t, r.HasAllSignals(OpenLong|FilterPassed))
	assert.True(t, r.HasAllSignals(OpenLong))
	assert.False(t, r.HasAllSignals(OpenLong|CloseShort), "one matching bit is not enough")
	assert.True(t, r.HasAllSignals(None))
}

func TestAddRemoveRoundTrip(t *testing.T) {
	sets := []Flags{
		OpenLong,
		OpenShort | CloseLong,
		FilterPassed | TickFilterPassed | BoostLong,
		PriceLimitLong | PriceLimitShort | CloseShort,
	}
	for _, a := range sets {
		r := NewResult()
		r.AddSignals(a)
		require.True(t, r.HasAllSignals(a), "after add %s", a)
		r.RemoveSignals(a)
		require.False(t, r.HasAllSignals(a), "after remove %s", a)
		require.Equal(t, None, r.Signals())
	}

	// Bits re-added by another set survive a removal of the first.
	r := NewResult()
	r.AddSignals(OpenLong | FilterPassed)
	r.RemoveSignals(OpenLong)
	r.AddSignals(OpenLong)
	assert.True(t, r.HasAllSignals(OpenLong|FilterPassed))
}

func TestSetSignal(t *testing.T) {
	r := NewResult()
	r.SetSignal(BoostShort, true)
	assert.True(t, r.HasAllSignals(BoostShort))
	r.SetSignal(BoostShort, false)
	assert.False(t, r.HasAllSignals(BoostShort))

	r.SetSignals(OpenShort | CloseLong)
	assert.Equal(t, OpenShort|CloseLong, r.Signals())
}

func TestResetIsIdempotent(t *testing.T) {
	r := NewResult()
	r.AddSignals(OpenLong | CloseShort)
	r.SetBoostFactor(1.5)
	r.SetLotSize(0.2)
	r.AddPositionsUpdated(3)
	r.AddInvalidStopLoss()
	r.AddInvalidTakeProfit()
	r.TaskProcessed(true)
	r.TaskProcessed(false)
	r.RecordError(42)

	r.Reset()
	zero := *NewResult()
	assert.Equal(t, zero, *r)
	r.Reset()
	assert.Equal(t, zero, *r)
	assert.Equal(t, "0,0,0,0,0", r.String())
}

func TestRecordErrorIsHighWaterMark(t *testing.T) {
	r := NewResult()
	r.RecordError(3)
	r.RecordError(1)
	assert.Equal(t, uint32(3), r.LastError())

	r.Reset()
	r.RecordError(1)
	assert.Equal(t, uint32(1), r.LastError())

	r.ProcessLastError(fixedSource(7))
	r.ProcessLastError(fixedSource(2))
	r.ProcessLastError(nil)
	assert.Equal(t, uint32(7), r.LastError())
}

func TestCounters(t *testing.T) {
	r := NewResult()
	r.AddPositionsUpdated(2)
	r.AddInvalidStopLoss()
	r.AddInvalidStopLoss()
	r.AddInvalidTakeProfit()
	r.TaskProcessed(true)
	r.TaskProcessed(false)
	r.TaskProcessed(false)

	assert.Equal(t, uint16(2), r.PositionsUpdated())
	assert.Equal(t, uint16(2), r.InvalidStopLoss())
	assert.Equal(t, uint16(1), r.InvalidTakeProfit())
	assert.Equal(t, uint16(1), r.TasksProcessed())
	assert.Equal(t, uint16(2), r.TasksNotProcessed())
}

func TestStringFormat(t *testing.T) {
	r := NewResult()
	r.AddSignals(OpenLong | FilterPassed) // 1 | 16
	r.AddPositionsUpdated(4)
	r.AddInvalidStopLoss()
	r.RecordError(130)
	assert.Equal(t, "17,4,1,0,130", r.String())
	assert.Equal(t, r.String(), r.String())
}

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "NONE", None.String())
	assert.Equal(t, "OPEN_LONG|FILTER_PASSED", (OpenLong | FilterPassed).String())
	assert.Equal(t, "CLOSE_SHORT|UNKNOWN", (CloseShort | Flags(1<<15)).String())
}

func TestFlagBitsAreDistinct(t *testing.T) {
	var seen Flags
	for _, n := range flagNames {
		require.Zero(t, seen&n.flag, "flag %s overlaps", n.name)
		seen |= n.flag
	}
	assert.Equal(t, Flags(1), OpenLong)
	assert.Equal(t, Flags(1<<10), FilterPassedLong)
	assert.Equal(t, Flags(1<<11), FilterPassedShort)
}

func TestPerSideFilterFlags(t *testing.T) {
	r := NewResult()
	r.AddSignals(OpenLong | OpenShort | FilterPassed | FilterPassedShort)
	assert.True(t, r.HasAllSignals(OpenShort|FilterPassedShort))
	assert.False(t, r.HasAllSignals(OpenLong|FilterPassedLong))
	assert.Equal(t, "OPEN_LONG|OPEN_SHORT|FILTER_PASSED|FILTER_PASSED_SHORT", r.Signals().String())
}
