package types

import "time"

// Bar represents one OHLCV sample for one symbol at one timestamp.
// Bars for a given symbol are expected to arrive in non-decreasing
// timestamp order.
type Bar struct {
	// Symbol is the asset identity this bar belongs to.
	Symbol string `yaml:"symbol" json:"symbol" csv:"symbol" validate:"required"`
	// Time is the completion time of the bar.
	Time time.Time `yaml:"time" json:"time" csv:"time" validate:"required"`
	// Open is the opening price.
	Open float64 `yaml:"open" json:"open" csv:"open"`
	// High is the highest price.
	High float64 `yaml:"high" json:"high" csv:"high"`
	// Low is the lowest price.
	Low float64 `yaml:"low" json:"low" csv:"low"`
	// Close is the closing price.
	Close float64 `yaml:"close" json:"close" csv:"close"`
	// Volume is the traded volume.
	Volume float64 `yaml:"volume" json:"volume" csv:"volume"`
}
