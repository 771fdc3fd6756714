package indicator

// BullishEngulfing detects the bullish engulfing candlestick pattern over
// the open and close columns. No parameters. One output: a pattern-match
// flag, 100 when the latest candle is bullish and its body engulfs the
// previous bearish candle's body, 0 otherwise.
type BullishEngulfing struct{}

// Lookback implements Computer. The pattern compares two adjacent candles.
func (b *BullishEngulfing) Lookback(Params) int {
	return 1
}

// Compute implements Computer.
func (b *BullishEngulfing) Compute(columns Columns, _ Params) ([][]float64, int, error) {
	if err := requireColumn("open", columns.Open); err != nil {
		return nil, -1, err
	}

	if err := requireColumn("close", columns.Close); err != nil {
		return nil, -1, err
	}

	n, err := validateColumns(columns)
	if err != nil {
		return nil, -1, err
	}

	if n < 2 {
		return nil, -1, nil
	}

	out := make([]float64, n)

	for i := 1; i < n; i++ {
		prevBearish := columns.Close[i-1] < columns.Open[i-1]
		currBullish := columns.Close[i] > columns.Open[i]
		engulfs := columns.Open[i] <= columns.Close[i-1] && columns.Close[i] >= columns.Open[i-1]

		if prevBearish && currBullish && engulfs {
			out[i] = 100
		}
	}

	firstValid := 1

	return [][]float64{out[firstValid:]}, firstValid, nil
}
