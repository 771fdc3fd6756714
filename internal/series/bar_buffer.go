// Package series maintains bounded per-symbol OHLCV history using a sliding
// window algorithm. A BarBuffer owns the ordered bar sequence for exactly one
// symbol; the Registry owns the symbol to buffer mapping.
//
// Neither type is internally synchronized. Each engine instance exclusively
// owns its registry and buffers; callers running multiple instances must give
// each its own.
package series

import (
	"github.com/quantfold/signalstream/internal/types"
)

// Column identifies one OHLCV column projection of a BarBuffer.
type Column string

const (
	ColumnOpen   Column = "open"
	ColumnHigh   Column = "high"
	ColumnLow    Column = "low"
	ColumnClose  Column = "close"
	ColumnVolume Column = "volume"
)

// BarBuffer stores the ordered bar history for one symbol, oldest first.
// With a positive capacity it behaves as a sliding window: appending beyond
// capacity evicts the oldest bars. Capacity 0 retains the full history,
// trading unbounded memory growth for full-history availability; that
// tradeoff is the caller's to make at construction time.
type BarBuffer struct {
	capacity int
	bars     []types.Bar
}

// NewBarBuffer creates a BarBuffer with the given capacity.
// Capacity 0 means unbounded.
func NewBarBuffer(capacity int) *BarBuffer {
	if capacity < 0 {
		capacity = 0
	}

	initial := capacity
	if initial == 0 {
		initial = 64
	}

	return &BarBuffer{
		capacity: capacity,
		bars:     make([]types.Bar, 0, initial),
	}
}

// Add appends a bar, evicting the oldest bars while the buffer exceeds its
// capacity. It reports whether the buffer has reached the given readiness
// threshold (current length >= readyThreshold).
func (b *BarBuffer) Add(bar types.Bar, readyThreshold int) bool {
	b.bars = append(b.bars, bar)

	if b.capacity > 0 {
		for len(b.bars) > b.capacity {
			b.bars = b.bars[1:]
		}
	}

	return len(b.bars) >= readyThreshold
}

// Len returns the number of bars currently held.
func (b *BarBuffer) Len() int {
	return len(b.bars)
}

// Capacity returns the configured capacity. 0 means unbounded.
func (b *BarBuffer) Capacity() int {
	return b.capacity
}

// Bar returns the bar at index i (0 = oldest).
// The second return value is false if i is out of range.
func (b *BarBuffer) Bar(i int) (types.Bar, bool) {
	if i < 0 || i >= len(b.bars) {
		return types.Bar{}, false
	}

	return b.bars[i], true
}

// Last returns the most recent bar.
// The second return value is false if the buffer is empty.
func (b *BarBuffer) Last() (types.Bar, bool) {
	if len(b.bars) == 0 {
		return types.Bar{}, false
	}

	return b.bars[len(b.bars)-1], true
}

// Bars returns a copy of the current contents, oldest first.
func (b *BarBuffer) Bars() []types.Bar {
	out := make([]types.Bar, len(b.bars))
	copy(out, b.bars)

	return out
}

// Column returns the requested column projection as a contiguous slice,
// index 0 = oldest. The slice is recomputed from the current contents on
// every call; an empty buffer yields an empty slice.
func (b *BarBuffer) Column(col Column) []float64 {
	out := make([]float64, len(b.bars))

	for i, bar := range b.bars {
		switch col {
		case ColumnOpen:
			out[i] = bar.Open
		case ColumnHigh:
			out[i] = bar.High
		case ColumnLow:
			out[i] = bar.Low
		case ColumnClose:
			out[i] = bar.Close
		case ColumnVolume:
			out[i] = bar.Volume
		}
	}

	return out
}

// Opens returns the open column projection.
func (b *BarBuffer) Opens() []float64 { return b.Column(ColumnOpen) }

// Highs returns the high column projection.
func (b *BarBuffer) Highs() []float64 { return b.Column(ColumnHigh) }

// Lows returns the low column projection.
func (b *BarBuffer) Lows() []float64 { return b.Column(ColumnLow) }

// Closes returns the close column projection.
func (b *BarBuffer) Closes() []float64 { return b.Column(ColumnClose) }

// Volumes returns the volume column projection.
func (b *BarBuffer) Volumes() []float64 { return b.Column(ColumnVolume) }

// Clear drops all bars while keeping the configured capacity.
func (b *BarBuffer) Clear() {
	b.bars = b.bars[:0]
}
