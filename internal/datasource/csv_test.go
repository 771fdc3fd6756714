package datasource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type CSVSourceTestSuite struct {
	suite.Suite
}

func TestCSVSourceSuite(t *testing.T) {
	suite.Run(t, new(CSVSourceTestSuite))
}

func (suite *CSVSourceTestSuite) writeCSV(content string) string {
	path := filepath.Join(suite.T().TempDir(), "bars.csv")
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0o600))

	return path
}

func (suite *CSVSourceTestSuite) TestLoadWithSymbolColumn() {
	path := suite.writeCSV(`symbol,time,open,high,low,close,volume
SPY,2024-01-01T09:30:00Z,100,101,99,100.5,1000
SPY,2024-01-01T09:31:00Z,100.5,102,100,101.5,1200
`)

	source := NewCSVSource(path, "DEFAULT")

	bars, err := source.Load()
	suite.Require().NoError(err)
	suite.Require().Len(bars, 2)
	suite.Equal("SPY", bars[0].Symbol)
	suite.Equal(time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC), bars[0].Time)
	suite.InDelta(100.5, bars[0].Close, 1e-9)
	suite.InDelta(1200, bars[1].Volume, 1e-9)
}

func (suite *CSVSourceTestSuite) TestLoadFillsDefaultSymbol() {
	path := suite.writeCSV(`symbol,time,open,high,low,close,volume
,2024-01-01T09:30:00Z,100,101,99,100.5,1000
AAPL,2024-01-01T09:31:00Z,50,51,49,50.5,500
`)

	source := NewCSVSource(path, "SPY")

	bars, err := source.Load()
	suite.Require().NoError(err)
	suite.Require().Len(bars, 2)
	suite.Equal("SPY", bars[0].Symbol)
	suite.Equal("AAPL", bars[1].Symbol)
}

func (suite *CSVSourceTestSuite) TestEventsGroupByTimestamp() {
	path := suite.writeCSV(`symbol,time,open,high,low,close,volume
SPY,2024-01-01T09:30:00Z,100,101,99,100.5,1000
AAPL,2024-01-01T09:30:00Z,50,51,49,50.5,500
SPY,2024-01-01T09:31:00Z,100.5,102,100,101.5,1200
`)

	source := NewCSVSource(path, "")

	events, err := source.Events()
	suite.Require().NoError(err)
	suite.Require().Len(events, 2)
	suite.Len(events[0], 2)
	suite.Equal("SPY", events[0][0].Symbol)
	suite.Equal("AAPL", events[0][1].Symbol)
	suite.Len(events[1], 1)
}

func (suite *CSVSourceTestSuite) TestLoadCachesBars() {
	path := suite.writeCSV(`symbol,time,open,high,low,close,volume
SPY,2024-01-01T09:30:00Z,100,101,99,100.5,1000
`)

	source := NewCSVSource(path, "")

	first, err := source.Load()
	suite.Require().NoError(err)

	// The file is gone; a second Load serves the cached bars.
	suite.Require().NoError(os.Remove(path))

	second, err := source.Load()
	suite.Require().NoError(err)
	suite.Equal(first, second)
}

func (suite *CSVSourceTestSuite) TestMissingFile() {
	source := NewCSVSource(filepath.Join(suite.T().TempDir(), "nope.csv"), "SPY")

	_, err := source.Load()
	suite.Error(err)
}
