package indicator

// defaultRSIPeriod is used when no period parameter is supplied.
const defaultRSIPeriod = 14

// RSI computes the Relative Strength Index of the close column using
// Wilder's smoothing. Parameters: period (>= 1). One output in [0, 100].
type RSI struct{}

// Lookback implements Computer.
func (r *RSI) Lookback(params Params) int {
	period := params.Period("period", defaultRSIPeriod)
	if period < 1 {
		return 0
	}

	return period
}

// Compute implements Computer.
func (r *RSI) Compute(columns Columns, params Params) ([][]float64, int, error) {
	period := params.Period("period", defaultRSIPeriod)
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

	// The first value needs period price changes, i.e. period+1 closes.
	if n < period+1 {
		return nil, -1, nil
	}

	closes := columns.Close
	out := make([]float64, n)

	avgGain := 0.0
	avgLoss := 0.0

	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}

	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = rsiValue(avgGain, avgLoss)

	for i := period + 1; i < n; i++ {
		change := closes[i] - closes[i-1]

		gain := 0.0
		loss := 0.0

		if change > 0 {
			gain = change
		} else {
			loss = -change
		}

		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out[i] = rsiValue(avgGain, avgLoss)
	}

	firstValid := period

	return [][]float64{out[firstValid:]}, firstValid, nil
}

// rsiValue converts smoothed average gain/loss into an RSI reading.
func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}

	rs := avgGain / avgLoss

	return 100 - 100/(1+rs)
}
