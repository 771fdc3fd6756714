package indicator

import (
	"github.com/quantfold/signalstream/internal/series"
	"github.com/quantfold/signalstream/internal/types"
	"github.com/quantfold/signalstream/pkg/errors"
)

// Gateway evaluates indicators against a BarBuffer at a historical offset.
//
// Offset addresses the "offset-th most recent completed bar": 0 is the
// latest bar, 1 the one before it. The gateway validates history
// sufficiency against the computer's lookback and reports warm-up as a
// NotReady result rather than an error; errors are reserved for unknown
// indicators, malformed input and invalid parameters.
type Gateway struct {
	registry *Registry
}

// NewGateway creates a Gateway backed by the given registry.
func NewGateway(registry *Registry) *Gateway {
	return &Gateway{
		registry: registry,
	}
}

// Registry returns the gateway's binding registry.
func (g *Gateway) Registry() *Registry {
	return g.registry
}

// Evaluate computes the named indicator at the given offset into buf.
//
// The evaluation window ends at endIndex = buf.Len()-1-offset. If the
// requested index precedes the indicator's warm-up completion, the result
// is NotReady carrying the computer's lookback so the caller can size its
// buffer precisely. Otherwise the result is Ready with the indicator's
// output value(s) at that index, in the binding's documented order.
func (g *Gateway) Evaluate(name types.IndicatorType, buf *series.BarBuffer, params Params, offset int) (Result, error) {
	if offset < 0 {
		return Result{}, errors.Newf(errors.ErrCodeInvalidOffset, "offset must be >= 0, got %d", offset)
	}

	binding, err := g.registry.Get(name)
	if err != nil {
		return Result{}, err
	}

	lookback := binding.Computer.Lookback(params)

	endIndex := buf.Len() - 1 - offset
	if endIndex < 0 {
		return NotReady(lookback), nil
	}

	columns := g.extractColumns(binding, buf, endIndex)

	outputs, firstValid, err := binding.Computer.Compute(columns, params)
	if err != nil {
		return Result{}, errors.Wrapf(errors.ErrCodeComputationFailed, err,
			"indicator %s rejected input", name)
	}

	// firstValid == -1 means no bar in the window produced a value.
	if firstValid < 0 || endIndex < firstValid {
		return NotReady(lookback), nil
	}

	last := endIndex - firstValid

	if len(outputs) != binding.Arity {
		return Result{}, errors.Newf(errors.ErrCodeComputationFailed,
			"indicator %s produced %d output slots, binding declares %d", name, len(outputs), binding.Arity)
	}

	values := make([]float64, len(outputs))

	for k, out := range outputs {
		if last >= len(out) {
			return Result{}, errors.Newf(errors.ErrCodeComputationFailed,
				"indicator %s output slot %d has %d values, need index %d", name, k, len(out), last)
		}

		values[k] = out[last]
	}

	return Ready(values...), nil
}

// EvaluateOrError behaves like Evaluate but converts a warm-up result into
// a typed InsufficientDataError carrying the required lookback. This is the
// entry point for callers that treat insufficient history as a
// misconfiguration, such as the recompute rule engine.
func (g *Gateway) EvaluateOrError(name types.IndicatorType, buf *series.BarBuffer, params Params, offset int) (Outputs, error) {
	result, err := g.Evaluate(name, buf, params, offset)
	if err != nil {
		return Outputs{}, err
	}

	if !result.Ready() {
		return Outputs{}, errors.NewInsufficientDataErrorf(
			result.RequiredLookback(), buf.Len(), "",
			"indicator %s requires a lookback of %d bars, have %d (offset %d)",
			name, result.RequiredLookback(), buf.Len(), offset)
	}

	return result.Outputs(), nil
}

// extractColumns projects the binding's required columns out of the buffer,
// truncated to the evaluation window [0, endIndex].
func (g *Gateway) extractColumns(binding Binding, buf *series.BarBuffer, endIndex int) Columns {
	columns := Columns{} //nolint:exhaustruct // only required columns are populated

	for _, col := range binding.Columns {
		values := buf.Column(col)[:endIndex+1]

		switch col {
		case series.ColumnOpen:
			columns.Open = values
		case series.ColumnHigh:
			columns.High = values
		case series.ColumnLow:
			columns.Low = values
		case series.ColumnClose:
			columns.Close = values
		case series.ColumnVolume:
			columns.Volume = values
		}
	}

	return columns
}
