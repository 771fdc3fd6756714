package indicator

import "math"

// defaultATRPeriod is used when no period parameter is supplied.
const defaultATRPeriod = 14

// ATR computes the Average True Range over the high, low and close columns
// using Wilder's smoothing. Parameters: period (>= 1). One output.
type ATR struct{}

// Lookback implements Computer.
func (a *ATR) Lookback(params Params) int {
	period := params.Period("period", defaultATRPeriod)
	if period < 1 {
		return 0
	}

	return period
}

// Compute implements Computer.
func (a *ATR) Compute(columns Columns, params Params) ([][]float64, int, error) {
	period := params.Period("period", defaultATRPeriod)
	if err := validatePeriod("period", period, 1); err != nil {
		return nil, -1, err
	}

	for _, col := range []struct {
		name   string
		values []float64
	}{
		{"high", columns.High},
		{"low", columns.Low},
		{"close", columns.Close},
	} {
		if err := requireColumn(col.name, col.values); err != nil {
			return nil, -1, err
		}
	}

	n, err := validateColumns(columns)
	if err != nil {
		return nil, -1, err
	}

	// True range needs a previous close, so the first value needs period+1 bars.
	if n < period+1 {
		return nil, -1, nil
	}

	tr := make([]float64, n)
	for i := 1; i < n; i++ {
		highLow := columns.High[i] - columns.Low[i]
		highClose := math.Abs(columns.High[i] - columns.Close[i-1])
		lowClose := math.Abs(columns.Low[i] - columns.Close[i-1])
		tr[i] = math.Max(highLow, math.Max(highClose, lowClose))
	}

	out := make([]float64, n)

	seed := 0.0
	for i := 1; i <= period; i++ {
		seed += tr[i]
	}

	out[period] = seed / float64(period)

	for i := period + 1; i < n; i++ {
		out[i] = (out[i-1]*float64(period-1) + tr[i]) / float64(period)
	}

	firstValid := period

	return [][]float64{out[firstValid:]}, firstValid, nil
}
