// Package datasource loads bar streams for replay through an engine.
package datasource

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/quantfold/signalstream/internal/types"
)

// CSVSource reads OHLCV bars from a CSV file. Expected columns: time
// (RFC3339), open, high, low, close, volume, and optionally symbol; rows
// without a symbol fall back to the configured default. Rows must already
// be in non-decreasing time order.
type CSVSource struct {
	FilePath string
	// Symbol is applied to rows that carry no symbol column.
	Symbol string

	cache []types.Bar
}

// NewCSVSource creates a CSVSource for the given file and default symbol.
func NewCSVSource(filePath, symbol string) *CSVSource {
	return &CSVSource{
		FilePath: filePath,
		Symbol:   symbol,
		cache:    nil,
	}
}

// Load reads and caches all bars from the file.
func (s *CSVSource) Load() ([]types.Bar, error) {
	if s.cache == nil {
		csvFile, err := os.Open(s.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV file: %w", err)
		}
		defer csvFile.Close()

		var bars []types.Bar
		if err := gocsv.UnmarshalFile(csvFile, &bars); err != nil {
			return nil, fmt.Errorf("failed to unmarshal CSV: %w", err)
		}

		for i := range bars {
			if bars[i].Symbol == "" {
				bars[i].Symbol = s.Symbol
			}
		}

		s.cache = bars
	}

	return s.cache, nil
}

// Events groups the loaded bars into engine events: consecutive rows
// sharing one timestamp form one event, so a multi-symbol file replays as
// one event per tick with bars in file order.
func (s *CSVSource) Events() ([][]types.Bar, error) {
	bars, err := s.Load()
	if err != nil {
		return nil, err
	}

	var events [][]types.Bar

	for _, bar := range bars {
		n := len(events)
		if n > 0 && events[n-1][0].Time.Equal(bar.Time) {
			events[n-1] = append(events[n-1], bar)
		} else {
			events = append(events, []types.Bar{bar})
		}
	}

	return events, nil
}
