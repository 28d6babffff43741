package testutils

import (
	"sync"

	"github.com/evdnx/stgcore/types"
)

// MockTrade is an in-memory trade handle that counts how often it is closed.
type MockTrade struct {
	mu        sync.Mutex
	market    types.Market
	volumeMin float64
	closeErr  error
	closed    int
}

// NewMockTrade creates a handle for market with the given minimum volume.
func NewMockTrade(market types.Market, volumeMin float64) *MockTrade {
	return &MockTrade{market: market, volumeMin: volumeMin}
}

// FailClose makes every Close return err.
func (m *MockTrade) FailClose(err error) { m.closeErr = err }

func (m *MockTrade) Market() types.Market { return m.market }
func (m *MockTrade) VolumeMin() float64   { return m.volumeMin }

func (m *MockTrade) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed++
	return m.closeErr
}

// Closed returns the number of Close calls.
func (m *MockTrade) Closed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// MockIndicator is an opaque data handle that counts Close calls.
type MockIndicator struct {
	mu     sync.Mutex
	closed int
}

func NewMockIndicator() *MockIndicator { return &MockIndicator{} }

func (m *MockIndicator) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed++
	return nil
}

func (m *MockIndicator) Closed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// MockErrorSource reports a settable error severity.
type MockErrorSource struct {
	mu       sync.Mutex
	severity uint32
}

func NewMockErrorSource() *MockErrorSource { return &MockErrorSource{} }

func (m *MockErrorSource) Set(sev uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.severity = sev
}

func (m *MockErrorSource) LastError() uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.severity
}
