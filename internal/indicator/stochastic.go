package indicator

const (
	// defaultStochasticKPeriod is used when no k_period parameter is supplied.
	defaultStochasticKPeriod = 14
	// defaultStochasticDPeriod is used when no d_period parameter is supplied.
	defaultStochasticDPeriod = 3
)

// Stochastic computes the Stochastic Oscillator over the high, low and
// close columns. Parameters: k_period, d_period (both >= 1).
// Two outputs in order: %K, %D.
type Stochastic struct{}

// Lookback implements Computer.
func (s *Stochastic) Lookback(params Params) int {
	kPeriod := params.Period("k_period", defaultStochasticKPeriod)
	dPeriod := params.Period("d_period", defaultStochasticDPeriod)

	if kPeriod < 1 || dPeriod < 1 {
		return 0
	}

	return kPeriod + dPeriod - 2
}

// Compute implements Computer.
func (s *Stochastic) Compute(columns Columns, params Params) ([][]float64, int, error) {
	kPeriod := params.Period("k_period", defaultStochasticKPeriod)
	dPeriod := params.Period("d_period", defaultStochasticDPeriod)

	if err := validatePeriod("k_period", kPeriod, 1); err != nil {
		return nil, -1, err
	}

	if err := validatePeriod("d_period", dPeriod, 1); err != nil {
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

	firstValid := kPeriod + dPeriod - 2
	if n <= firstValid {
		return nil, -1, nil
	}

	rawK := make([]float64, n)

	for i := kPeriod - 1; i < n; i++ {
		highest := columns.High[i-kPeriod+1]
		lowest := columns.Low[i-kPeriod+1]

		for j := i - kPeriod + 2; j <= i; j++ {
			if columns.High[j] > highest {
				highest = columns.High[j]
			}

			if columns.Low[j] < lowest {
				lowest = columns.Low[j]
			}
		}

		if highest == lowest {
			// Flat window: the oscillator is undefined, report neutral.
			rawK[i] = 50
		} else {
			rawK[i] = 100 * (columns.Close[i] - lowest) / (highest - lowest)
		}
	}

	d := make([]float64, n)
	sma(rawK, d, kPeriod-1, dPeriod)

	return [][]float64{rawK[firstValid:], d[firstValid:]}, firstValid, nil
}
