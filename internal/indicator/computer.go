// Package indicator implements the streaming indicator evaluation gateway.
//
// Numeric computation is delegated to Computer implementations behind a
// two-operation contract: Compute evaluates an indicator over a column range
// and reports the first input index for which a value could be produced;
// Lookback is a pure function of the parameters giving the minimum history
// needed before the first valid output. The Gateway owns offset addressing
// and warm-up detection on top of that contract; the concrete computers in
// this package are exercised through the same contract as any external
// numeric library would be.
package indicator

import (
	"math"

	"github.com/quantfold/signalstream/pkg/errors"
)

// Params holds named numeric parameters for one evaluation, e.g. "period".
type Params map[string]float64

// Period returns the named parameter truncated to int, or def if absent.
func (p Params) Period(name string, def int) int {
	if v, ok := p[name]; ok {
		return int(v)
	}

	return def
}

// Value returns the named parameter, or def if absent.
func (p Params) Value(name string, def float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}

	return def
}

// Columns carries the input column slices for one evaluation. Only the
// columns a binding declares as required are populated; all populated
// slices must have equal length.
type Columns struct {
	Open   []float64
	High   []float64
	Low    []float64
	Close  []float64
	Volume []float64
}

// Len returns the common length of the populated columns, or -1 if the
// populated columns disagree on length.
func (c Columns) Len() int {
	length := -1

	for _, col := range [][]float64{c.Open, c.High, c.Low, c.Close, c.Volume} {
		if col == nil {
			continue
		}

		if length == -1 {
			length = len(col)
		} else if len(col) != length {
			return -1
		}
	}

	if length == -1 {
		return 0
	}

	return length
}

// Computer is the numeric collaborator contract shared by every indicator.
//
// Compute evaluates the indicator over the full input columns and returns
// one output slice per output slot plus firstValid, the input index of the
// first bar for which a value could be produced: outputs[k][j] corresponds
// to input index firstValid+j. firstValid == -1 means no bar produced a
// value. Malformed input (mismatched column lengths, invalid parameters)
// yields an error; that error is never conflated with insufficient history.
//
// Lookback returns the minimum number of preceding bars required before the
// first valid output, as a pure function of the parameters.
type Computer interface {
	Compute(columns Columns, params Params) (outputs [][]float64, firstValid int, err error)
	Lookback(params Params) int
}

// validateColumns checks that the populated columns agree on length and
// returns that length.
func validateColumns(columns Columns) (int, error) {
	n := columns.Len()
	if n < 0 {
		return 0, errors.New(errors.ErrCodeColumnLengthMismatch, "input columns have mismatched lengths")
	}

	return n, nil
}

// requireColumn checks that a required input column is present.
func requireColumn(name string, col []float64) error {
	if col == nil {
		return errors.Newf(errors.ErrCodeInvalidParameter, "%s column is required", name)
	}

	return nil
}

// validatePeriod checks that a period parameter is at least min.
func validatePeriod(name string, period, min int) error {
	if period < min {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "%s must be >= %d, got %d", name, min, period)
	}

	return nil
}

// sma fills out[i] with the arithmetic mean of values[i-period+1..i] for
// every i >= offset+period-1, leaving earlier entries untouched. Shared by
// the mean-based computers.
func sma(values []float64, out []float64, offset, period int) {
	sum := 0.0

	for i := offset; i < len(values); i++ {
		sum += values[i]
		if i-offset >= period {
			sum -= values[i-period]
		}

		if i-offset >= period-1 {
			out[i] = sum / float64(period)
		}
	}
}

// stdDev returns the population standard deviation of values[start..end].
func stdDev(values []float64, start, end int, mean float64) float64 {
	variance := 0.0
	for i := start; i <= end; i++ {
		d := values[i] - mean
		variance += d * d
	}

	variance /= float64(end - start + 1)

	return math.Sqrt(variance)
}
