package indicator

// defaultEMAPeriod is used when no period parameter is supplied.
const defaultEMAPeriod = 20

// EMA computes the Exponential Moving Average of the close column, seeded
// with the simple mean of the first period values.
// Parameters: period (>= 1). One output.
type EMA struct{}

// Lookback implements Computer.
func (e *EMA) Lookback(params Params) int {
	period := params.Period("period", defaultEMAPeriod)
	if period < 1 {
		return 0
	}

	return period - 1
}

// Compute implements Computer.
func (e *EMA) Compute(columns Columns, params Params) ([][]float64, int, error) {
	period := params.Period("period", defaultEMAPeriod)
	if err := validatePeriod("period", period, 1); err != nil {
		return nil, -1, err
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

	out := emaSeries(columns.Close, period)
	firstValid := period - 1

	return [][]float64{out[firstValid:]}, firstValid, nil
}

// emaSeries computes the EMA over values, valid from index period-1.
func emaSeries(values []float64, period int) []float64 {
	out := make([]float64, len(values))

	seed := 0.0
	for i := 0; i < period; i++ {
		seed += values[i]
	}

	out[period-1] = seed / float64(period)

	multiplier := 2.0 / (float64(period) + 1.0)
	for i := period; i < len(values); i++ {
		out[i] = (values[i]-out[i-1])*multiplier + out[i-1]
	}

	return out
}
