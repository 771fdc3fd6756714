package series

import (
	"testing"
	"time"

	"github.com/quantfold/signalstream/internal/types"
	"github.com/stretchr/testify/suite"
)

type BarBufferTestSuite struct {
	suite.Suite
}

func TestBarBufferSuite(t *testing.T) {
	suite.Run(t, new(BarBufferTestSuite))
}

func (suite *BarBufferTestSuite) createBar(symbol string, offset int, close float64) types.Bar {
	baseTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	return types.Bar{
		Symbol: symbol,
		Time:   baseTime.Add(time.Duration(offset) * time.Minute),
		Open:   close - 1,
		High:   close + 1,
		Low:    close - 2,
		Close:  close,
		Volume: 1000,
	}
}

func (suite *BarBufferTestSuite) TestNewBarBuffer() {
	buf := NewBarBuffer(10)
	suite.Equal(0, buf.Len())
	suite.Equal(10, buf.Capacity())

	unbounded := NewBarBuffer(0)
	suite.Equal(0, unbounded.Capacity())
}

func (suite *BarBufferTestSuite) TestAddReportsReadiness() {
	buf := NewBarBuffer(0)

	suite.False(buf.Add(suite.createBar("SPY", 0, 100), 3))
	suite.False(buf.Add(suite.createBar("SPY", 1, 101), 3))
	suite.True(buf.Add(suite.createBar("SPY", 2, 102), 3))
	// Once reached, readiness persists.
	suite.True(buf.Add(suite.createBar("SPY", 3, 103), 3))
}

func (suite *BarBufferTestSuite) TestBoundedEviction() {
	// Inserting closes 10..14 with capacity 3 must leave [12, 13, 14].
	buf := NewBarBuffer(3)

	for i, close := range []float64{10, 11, 12, 13, 14} {
		buf.Add(suite.createBar("SPY", i, close), 1)
	}

	suite.Equal(3, buf.Len())
	suite.Equal([]float64{12, 13, 14}, buf.Closes())
}

func (suite *BarBufferTestSuite) TestUnboundedRetainsAll() {
	buf := NewBarBuffer(0)

	for i := 0; i < 500; i++ {
		buf.Add(suite.createBar("SPY", i, float64(i)), 1)
	}

	suite.Equal(500, buf.Len())

	first, ok := buf.Bar(0)
	suite.True(ok)
	suite.Equal(0.0, first.Close)
}

func (suite *BarBufferTestSuite) TestEmptyBufferViews() {
	buf := NewBarBuffer(5)
	suite.Empty(buf.Closes())
	suite.Empty(buf.Bars())

	_, ok := buf.Last()
	suite.False(ok)

	_, ok = buf.Bar(0)
	suite.False(ok)
}

func (suite *BarBufferTestSuite) TestColumnProjections() {
	buf := NewBarBuffer(0)
	buf.Add(suite.createBar("SPY", 0, 100), 1)
	buf.Add(suite.createBar("SPY", 1, 102), 1)

	suite.Equal([]float64{99, 101}, buf.Opens())
	suite.Equal([]float64{101, 103}, buf.Highs())
	suite.Equal([]float64{98, 100}, buf.Lows())
	suite.Equal([]float64{100, 102}, buf.Closes())
	suite.Equal([]float64{1000, 1000}, buf.Volumes())
}

func (suite *BarBufferTestSuite) TestProjectionsRecomputedAfterEviction() {
	buf := NewBarBuffer(2)
	buf.Add(suite.createBar("SPY", 0, 1), 1)
	buf.Add(suite.createBar("SPY", 1, 2), 1)
	buf.Add(suite.createBar("SPY", 2, 3), 1)

	suite.Equal([]float64{2, 3}, buf.Closes())
}

func (suite *BarBufferTestSuite) TestLast() {
	buf := NewBarBuffer(0)
	buf.Add(suite.createBar("SPY", 0, 100), 1)
	buf.Add(suite.createBar("SPY", 1, 105), 1)

	last, ok := buf.Last()
	suite.True(ok)
	suite.Equal(105.0, last.Close)
}

func (suite *BarBufferTestSuite) TestBarsReturnsCopy() {
	buf := NewBarBuffer(0)
	buf.Add(suite.createBar("SPY", 0, 100), 1)

	bars := buf.Bars()
	bars[0].Close = 999

	reread, ok := buf.Bar(0)
	suite.True(ok)
	suite.Equal(100.0, reread.Close)
}

func (suite *BarBufferTestSuite) TestClear() {
	buf := NewBarBuffer(3)
	buf.Add(suite.createBar("SPY", 0, 100), 1)
	buf.Clear()

	suite.Equal(0, buf.Len())
	suite.Equal(3, buf.Capacity())
}
