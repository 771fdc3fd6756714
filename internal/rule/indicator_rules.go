package rule

import (
	"github.com/quantfold/signalstream/internal/indicator"
	"github.com/quantfold/signalstream/internal/series"
	"github.com/quantfold/signalstream/internal/types"
)

// Binding gives a rule access to its symbol's live series and the
// indicator gateway it evaluates against.
type Binding struct {
	// Symbol is the asset the rule is bound to.
	Symbol string
	// Series is the live, growing bar series for the symbol.
	Series *series.BarBuffer
	// Gateway evaluates indicators against the series.
	Gateway *indicator.Gateway
}

// offsetFor converts an index into the bound series into an offset from the
// most recent bar. A negative result means the index is out of range.
func (b Binding) offsetFor(index int) int {
	return b.Series.Len() - 1 - index
}

// value evaluates an indicator at the given index and reports its first
// output. ok is false during warm-up, for out-of-range indices, and for
// evaluation failures: a rule that cannot produce a reading is simply not
// satisfied.
func (b Binding) value(name types.IndicatorType, params indicator.Params, index int) (float64, bool) {
	offset := b.offsetFor(index)
	if offset < 0 || index < 0 {
		return 0, false
	}

	result, err := b.Gateway.Evaluate(name, b.Series, params, offset)
	if err != nil || !result.Ready() {
		return 0, false
	}

	return result.Outputs().Value(), true
}

// indicatorOver is satisfied while an indicator reads strictly above a
// threshold.
type indicatorOver struct {
	binding   Binding
	name      types.IndicatorType
	params    indicator.Params
	threshold float64
}

func (r indicatorOver) IsSatisfied(index int) bool {
	v, ok := r.binding.value(r.name, r.params, index)

	return ok && v > r.threshold
}

// IndicatorOver creates a rule satisfied while the indicator's first output
// is strictly above threshold.
func IndicatorOver(binding Binding, name types.IndicatorType, params indicator.Params, threshold float64) Rule {
	return indicatorOver{
		binding:   binding,
		name:      name,
		params:    params,
		threshold: threshold,
	}
}

// indicatorUnder is satisfied while an indicator reads strictly below a
// threshold.
type indicatorUnder struct {
	binding   Binding
	name      types.IndicatorType
	params    indicator.Params
	threshold float64
}

func (r indicatorUnder) IsSatisfied(index int) bool {
	v, ok := r.binding.value(r.name, r.params, index)

	return ok && v < r.threshold
}

// IndicatorUnder creates a rule satisfied while the indicator's first
// output is strictly below threshold.
func IndicatorUnder(binding Binding, name types.IndicatorType, params indicator.Params, threshold float64) Rule {
	return indicatorUnder{
		binding:   binding,
		name:      name,
		params:    params,
		threshold: threshold,
	}
}

// crossesAbove is satisfied on the bar where the fast indicator moves from
// at-or-below to strictly above the slow indicator.
type crossesAbove struct {
	binding    Binding
	fast, slow types.IndicatorType
	fastParams indicator.Params
	slowParams indicator.Params
}

func (r crossesAbove) IsSatisfied(index int) bool {
	fastNow, ok := r.binding.value(r.fast, r.fastParams, index)
	if !ok {
		return false
	}

	slowNow, ok := r.binding.value(r.slow, r.slowParams, index)
	if !ok {
		return false
	}

	fastPrev, ok := r.binding.value(r.fast, r.fastParams, index-1)
	if !ok {
		return false
	}

	slowPrev, ok := r.binding.value(r.slow, r.slowParams, index-1)
	if !ok {
		return false
	}

	return fastNow > slowNow && fastPrev <= slowPrev
}

// CrossesAbove creates a rule satisfied on the bar where fast crosses above
// slow.
func CrossesAbove(binding Binding, fast types.IndicatorType, fastParams indicator.Params, slow types.IndicatorType, slowParams indicator.Params) Rule {
	return crossesAbove{
		binding:    binding,
		fast:       fast,
		slow:       slow,
		fastParams: fastParams,
		slowParams: slowParams,
	}
}

// CrossesBelow creates a rule satisfied on the bar where fast crosses below
// slow.
func CrossesBelow(binding Binding, fast types.IndicatorType, fastParams indicator.Params, slow types.IndicatorType, slowParams indicator.Params) Rule {
	return crossesAbove{
		binding:    binding,
		fast:       slow,
		slow:       fast,
		fastParams: slowParams,
		slowParams: fastParams,
	}
}

// PatternMatched creates a rule satisfied when a pattern indicator reports
// a nonzero match flag at the index.
func PatternMatched(binding Binding, name types.IndicatorType, params indicator.Params) Rule {
	return Func(func(index int) bool {
		v, ok := binding.value(name, params, index)

		return ok && v != 0
	})
}
