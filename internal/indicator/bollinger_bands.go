package indicator

import "github.com/quantfold/signalstream/pkg/errors"

const (
	// defaultBollingerPeriod is used when no period parameter is supplied.
	defaultBollingerPeriod = 20
	// defaultBollingerStdDev is used when no std_dev parameter is supplied.
	defaultBollingerStdDev = 2.0
)

// BollingerBands computes Bollinger Bands over the close column.
// Parameters: period (>= 2), std_dev (> 0).
// Three outputs in order: lower band, middle band, upper band.
type BollingerBands struct{}

// Lookback implements Computer.
func (b *BollingerBands) Lookback(params Params) int {
	period := params.Period("period", defaultBollingerPeriod)
	if period < 1 {
		return 0
	}

	return period - 1
}

// Compute implements Computer.
func (b *BollingerBands) Compute(columns Columns, params Params) ([][]float64, int, error) {
	period := params.Period("period", defaultBollingerPeriod)
	if err := validatePeriod("period", period, 2); err != nil {
		return nil, -1, err
	}

	multiplier := params.Value("std_dev", defaultBollingerStdDev)
	if multiplier <= 0 {
		return nil, -1, errors.Newf(errors.ErrCodeInvalidParameter, "std_dev must be > 0, got %v", multiplier)
	}

	if err := requireColumn("close", columns.Close); err != nil {
		return nil, -1, err
	}

	n, err := validateColumns(columns)
	if err != nil {
		return nil, -1, err
	}

	if n < period {
		return nil, -1, nil
	}

	middle := make([]float64, n)
	sma(columns.Close, middle, 0, period)

	lower := make([]float64, n)
	upper := make([]float64, n)

	for i := period - 1; i < n; i++ {
		sigma := stdDev(columns.Close, i-period+1, i, middle[i])
		lower[i] = middle[i] - multiplier*sigma
		upper[i] = middle[i] + multiplier*sigma
	}

	firstValid := period - 1

	return [][]float64{lower[firstValid:], middle[firstValid:], upper[firstValid:]}, firstValid, nil
}
