package indicator

import "github.com/quantfold/signalstream/pkg/errors"

const (
	// defaultMACDFastPeriod is used when no fast_period parameter is supplied.
	defaultMACDFastPeriod = 12
	// defaultMACDSlowPeriod is used when no slow_period parameter is supplied.
	defaultMACDSlowPeriod = 26
	// defaultMACDSignalPeriod is used when no signal_period parameter is supplied.
	defaultMACDSignalPeriod = 9
)

// MACD computes the Moving Average Convergence Divergence of the close
// column. Parameters: fast_period, slow_period, signal_period
// (all >= 1, fast_period < slow_period).
// Three outputs in order: macd line, signal line, histogram.
type MACD struct{}

// Lookback implements Computer.
func (m *MACD) Lookback(params Params) int {
	slow := params.Period("slow_period", defaultMACDSlowPeriod)
	signal := params.Period("signal_period", defaultMACDSignalPeriod)

	if slow < 1 || signal < 1 {
		return 0
	}

	return slow + signal - 2
}

// Compute implements Computer.
func (m *MACD) Compute(columns Columns, params Params) ([][]float64, int, error) {
	fast := params.Period("fast_period", defaultMACDFastPeriod)
	slow := params.Period("slow_period", defaultMACDSlowPeriod)
	signal := params.Period("signal_period", defaultMACDSignalPeriod)

	if err := validatePeriod("fast_period", fast, 1); err != nil {
		return nil, -1, err
	}

	if err := validatePeriod("slow_period", slow, 1); err != nil {
		return nil, -1, err
	}

	if err := validatePeriod("signal_period", signal, 1); err != nil {
		return nil, -1, err
	}

	if fast >= slow {
		return nil, -1, errors.Newf(errors.ErrCodeInvalidParameter,
			"fast_period (%d) must be smaller than slow_period (%d)", fast, slow)
	}

	if err := requireColumn("close", columns.Close); err != nil {
		return nil, -1, err
	}

	n, err := validateColumns(columns)
	if err != nil {
		return nil, -1, err
	}

	firstValid := slow + signal - 2
	if n <= firstValid {
		return nil, -1, nil
	}

	fastEMA := emaSeries(columns.Close, fast)
	slowEMA := emaSeries(columns.Close, slow)

	// The macd line is valid from slow-1, where both EMAs have seeded.
	macdLine := make([]float64, n)
	for i := slow - 1; i < n; i++ {
		macdLine[i] = fastEMA[i] - slowEMA[i]
	}

	// The signal line is an EMA of the macd line, seeded with the simple
	// mean of its first signal values.
	signalLine := make([]float64, n)

	seed := 0.0
	for i := slow - 1; i < slow-1+signal; i++ {
		seed += macdLine[i]
	}

	signalLine[firstValid] = seed / float64(signal)

	multiplier := 2.0 / (float64(signal) + 1.0)
	for i := firstValid + 1; i < n; i++ {
		signalLine[i] = (macdLine[i]-signalLine[i-1])*multiplier + signalLine[i-1]
	}

	histogram := make([]float64, n)
	for i := firstValid; i < n; i++ {
		histogram[i] = macdLine[i] - signalLine[i]
	}

	return [][]float64{
		macdLine[firstValid:],
		signalLine[firstValid:],
		histogram[firstValid:],
	}, firstValid, nil
}
