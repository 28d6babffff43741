package strategy

import "math"

const (
	trendLookback    = 6
	slopeLookback    = 8
	reversalLookback = 6
)

// priceBuffer keeps a rolling window of closing prices and derives the
// lightweight statistics the trend methods work with.
type priceBuffer struct {
	max int
	buf []float64
}

func newPriceBuffer(max int) *priceBuffer {
	if max <= 0 {
		max = 64
	}
	return &priceBuffer{max: max}
}

func (p *priceBuffer) Add(v float64) {
	p.buf = append(p.buf, v)
	if len(p.buf) > p.max {
		p.buf = p.buf[len(p.buf)-p.max:]
	}
}

func (p *priceBuffer) Len() int { return len(p.buf) }

func (p *priceBuffer) Last() float64 {
	if len(p.buf) == 0 {
		return 0
	}
	return p.buf[len(p.buf)-1]
}

func (p *priceBuffer) Prev() float64 {
	if len(p.buf) < 2 {
		return 0
	}
	return p.buf[len(p.buf)-2]
}

// tail returns the last n+1 prices (n moves), fewer when the buffer is short.
func (p *priceBuffer) tail(n int) []float64 {
	if n >= len(p.buf) {
		return p.buf
	}
	return p.buf[len(p.buf)-n-1:]
}

// Trend scores the recent up/down moves: 1 up, -1 down, 0 undecided.
func (p *priceBuffer) Trend() int {
	seg := p.tail(trendLookback)
	if len(seg) < 2 {
		return 0
	}
	score := 0
	for i := 1; i < len(seg); i++ {
		switch {
		case seg[i] > seg[i-1]:
			score++
		case seg[i] < seg[i-1]:
			score--
		}
	}
	threshold := max((len(seg)-1)/3, 2)
	switch {
	case score >= threshold:
		return 1
	case score <= -threshold:
		return -1
	}
	return 0
}

// Slope is the least-squares slope of the recent prices per bar.
func (p *priceBuffer) Slope() float64 {
	seg := p.tail(slopeLookback)
	if len(seg) < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range seg {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	n := float64(len(seg))
	den := n*sumXX - sumX*sumX
	if den == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / den
}

// Volatility is the mean absolute move over the slope lookback.
func (p *priceBuffer) Volatility() float64 {
	seg := p.tail(slopeLookback)
	if len(seg) < 2 {
		return 0
	}
	sum := 0.0
	for i := 1; i < len(seg); i++ {
		sum += math.Abs(seg[i] - seg[i-1])
	}
	return sum / float64(len(seg)-1)
}

// BullishReversal: two consecutive higher closes after a drop whose low sits
// early enough in the window.
func (p *priceBuffer) BullishReversal() bool {
	return p.reversal(func(a, b float64) bool { return a > b })
}

// BearishReversal mirrors BullishReversal.
func (p *priceBuffer) BearishReversal() bool {
	return p.reversal(func(a, b float64) bool { return a < b })
}

// reversal checks for a turn in the direction given by ahead(a, b) meaning
// "a is ahead of b" (higher for bullish, lower for bearish).
func (p *priceBuffer) reversal(ahead func(a, b float64) bool) bool {
	n := len(p.buf)
	if n < 4 {
		return false
	}
	if !(ahead(p.buf[n-1], p.buf[n-2]) && ahead(p.buf[n-2], p.buf[n-3])) {
		return false
	}
	window := min(reversalLookback, n)
	seg := p.buf[n-window:]

	counter := false
	for i := 1; i < len(seg)-2; i++ {
		if ahead(seg[i-1], seg[i]) {
			counter = true
			break
		}
	}
	if !counter {
		return false
	}
	// extreme = the most "behind" price of the window
	extIdx := 0
	for i, v := range seg {
		if ahead(seg[extIdx], v) {
			extIdx = i
		}
	}
	return extIdx <= window-3 && ahead(seg[len(seg)-1], seg[extIdx])
}
