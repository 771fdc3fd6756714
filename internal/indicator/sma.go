package indicator

// defaultSMAPeriod is used when no period parameter is supplied.
const defaultSMAPeriod = 20

// SMA computes the Simple Moving Average of the close column.
// Parameters: period (>= 1). One output: the mean of the last period closes.
type SMA struct{}

// Lookback implements Computer.
func (s *SMA) Lookback(params Params) int {
	period := params.Period("period", defaultSMAPeriod)
	if period < 1 {
		return 0
	}

	return period - 1
}

// Compute implements Computer.
func (s *SMA) Compute(columns Columns, params Params) ([][]float64, int, error) {
	period := params.Period("period", defaultSMAPeriod)
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

	out := make([]float64, n)
	sma(columns.Close, out, 0, period)

	firstValid := period - 1

	return [][]float64{out[firstValid:]}, firstValid, nil
}
