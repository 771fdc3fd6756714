package engine

import (
	"github.com/quantfold/signalstream/internal/indicator"
	"github.com/quantfold/signalstream/internal/series"
	"github.com/quantfold/signalstream/internal/types"
)

// Predicate is a stateless buy or sell condition, recomputed in full
// against the current window on every bar once the window is ready.
// A warm-up shortfall surfaces as an InsufficientDataError from the
// context's accessors; predicates must not swallow it.
type Predicate func(ctx *Context) (bool, error)

// Context gives a predicate offset-addressed access to the symbol's
// current window during one evaluation.
type Context struct {
	// Symbol is the asset under evaluation.
	Symbol string
	// Series is the symbol's current window.
	Series *series.BarBuffer
	// Indicators evaluates indicators against the window.
	Indicators *indicator.Gateway
}

// Value evaluates an indicator at the given offset and returns its first
// output. Insufficient history yields an InsufficientDataError carrying
// the required lookback: in the recompute style that means the configured
// history is too small for the indicator in use.
func (c *Context) Value(name types.IndicatorType, params indicator.Params, offset int) (float64, error) {
	outputs, err := c.Outputs(name, params, offset)
	if err != nil {
		return 0, err
	}

	return outputs.Value(), nil
}

// Outputs evaluates an indicator at the given offset and returns all of
// its outputs, with the same insufficiency semantics as Value.
func (c *Context) Outputs(name types.IndicatorType, params indicator.Params, offset int) (indicator.Outputs, error) {
	return c.Indicators.EvaluateOrError(name, c.Series, params, offset)
}

// Close returns the close price at the given offset; ok is false when the
// offset reaches past the window.
func (c *Context) Close(offset int) (float64, bool) {
	bar, ok := c.Bar(offset)

	return bar.Close, ok
}

// Bar returns the bar at the given offset from the most recent.
func (c *Context) Bar(offset int) (types.Bar, bool) {
	return c.Series.Bar(c.Series.Len() - 1 - offset)
}
