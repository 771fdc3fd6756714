// Package rule provides the stateful rule objects consumed by the
// incremental rule engine. A rule is bound once to one live, growing
// BarBuffer and evaluated by index on every new bar. Rules absorb their
// own warm-up: while the bound series is too short they are simply not
// satisfied, never an error.
//
// Rules address history relative to the end of their bound series, so they
// stay correct when a bounded series evicts old bars and shifts the index
// base underneath them.
package rule

// Rule is an opaque predicate over one bound bar series.
type Rule interface {
	// IsSatisfied reports whether the rule holds at the given index of its
	// bound series. Indices outside the series never satisfy a rule.
	IsSatisfied(index int) bool
}

// Factory constructs a rule bound to a freshly created series. The engine
// calls a factory exactly once per symbol, on the symbol's first bar.
type Factory func(binding Binding) Rule

// Func adapts a plain function to the Rule interface.
type Func func(index int) bool

// IsSatisfied implements Rule.
func (f Func) IsSatisfied(index int) bool {
	return f(index)
}

// never is the constant-false rule.
type never struct{}

func (never) IsSatisfied(int) bool { return false }

// Never returns the constant-false rule. It is the default when no rule is
// supplied: a symbol without a configured rule never produces a signal.
func Never() Rule {
	return never{}
}

// always is the constant-true rule.
type always struct{}

func (always) IsSatisfied(int) bool { return true }

// Always returns the constant-true rule.
func Always() Rule {
	return always{}
}

// and is satisfied when all of its operands are.
type and struct {
	rules []Rule
}

func (a and) IsSatisfied(index int) bool {
	for _, r := range a.rules {
		if !r.IsSatisfied(index) {
			return false
		}
	}

	return true
}

// And combines rules conjunctively. With no operands it is always satisfied.
func And(rules ...Rule) Rule {
	return and{rules: rules}
}

// or is satisfied when any of its operands is.
type or struct {
	rules []Rule
}

func (o or) IsSatisfied(index int) bool {
	for _, r := range o.rules {
		if r.IsSatisfied(index) {
			return true
		}
	}

	return false
}

// Or combines rules disjunctively. With no operands it is never satisfied.
func Or(rules ...Rule) Rule {
	return or{rules: rules}
}

// not negates its operand.
type not struct {
	rule Rule
}

func (n not) IsSatisfied(index int) bool {
	return !n.rule.IsSatisfied(index)
}

// Not negates a rule.
func Not(rule Rule) Rule {
	return not{rule: rule}
}
