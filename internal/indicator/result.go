package indicator

// Outputs holds the value(s) an indicator produced at one requested index.
// Arity is fixed per indicator: one, two or three numeric values, or a
// single nonzero/zero pattern-match flag.
type Outputs struct {
	values []float64
}

// NewOutputs creates Outputs from the given values.
func NewOutputs(values ...float64) Outputs {
	return Outputs{values: values}
}

// Value returns the first (often only) output value.
func (o Outputs) Value() float64 {
	if len(o.values) == 0 {
		return 0
	}

	return o.values[0]
}

// At returns the output value at slot i.
func (o Outputs) At(i int) float64 {
	if i < 0 || i >= len(o.values) {
		return 0
	}

	return o.values[i]
}

// Values returns a copy of all output values in their documented order.
func (o Outputs) Values() []float64 {
	out := make([]float64, len(o.values))
	copy(out, o.values)

	return out
}

// Arity returns the number of output values.
func (o Outputs) Arity() int {
	return len(o.values)
}

// Matched interprets the first output as a pattern-match flag:
// nonzero means the pattern matched.
func (o Outputs) Matched() bool {
	return o.Value() != 0
}

// Result is the outcome of one gateway evaluation. During warm-up the
// result is NotReady and carries the minimum lookback the indicator
// requires; this is the expected, frequent condition and is deliberately
// not an error. Hard errors are reserved for computation and configuration
// failures.
type Result struct {
	ready            bool
	requiredLookback int
	outputs          Outputs
}

// Ready creates a Result carrying the produced output values.
func Ready(values ...float64) Result {
	return Result{
		ready:            true,
		requiredLookback: 0,
		outputs:          NewOutputs(values...),
	}
}

// NotReady creates a warm-up Result carrying the required lookback.
func NotReady(requiredLookback int) Result {
	return Result{
		ready:            false,
		requiredLookback: requiredLookback,
		outputs:          Outputs{},
	}
}

// Ready reports whether the evaluation produced a value.
func (r Result) Ready() bool {
	return r.ready
}

// Outputs returns the produced output values. Only meaningful when Ready.
func (r Result) Outputs() Outputs {
	return r.outputs
}

// RequiredLookback returns the minimum lookback the indicator requires.
// Only meaningful when not Ready.
func (r Result) RequiredLookback() int {
	return r.requiredLookback
}
