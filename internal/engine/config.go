package engine

import (
	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/quantfold/signalstream/internal/rule"
	"github.com/quantfold/signalstream/internal/types"
	"github.com/quantfold/signalstream/pkg/errors"
)

// Mode selects the rule-composition style of an engine instance.
type Mode string

const (
	// ModeRecompute re-evaluates stateless predicates over the full window
	// on every bar once the window is ready.
	ModeRecompute Mode = "recompute"
	// ModeIncremental binds stateful rule objects once per symbol and
	// evaluates them incrementally.
	ModeIncremental Mode = "incremental"
)

// RecomputeConfig carries the stateless buy/sell predicates.
// A nil predicate never fires.
type RecomputeConfig struct {
	Buy  Predicate
	Sell Predicate
}

// IncrementalConfig carries the stateful buy/sell rule factories.
// A nil factory yields the constant-false rule, so the symbol never
// produces a signal in that direction. That default is deliberate.
type IncrementalConfig struct {
	Buy  rule.Factory
	Sell rule.Factory
}

// Config is the construction-time configuration of an engine instance.
// Exactly one of Recompute and Incremental must be populated, matching
// Mode: the two styles are a tagged variant, not overridable hooks.
type Config struct {
	// Mode selects the rule-composition style.
	Mode Mode `validate:"required,oneof=recompute incremental"`
	// HistorySize is the window length the recompute style waits for
	// before evaluating, and the readiness threshold reported by buffers.
	HistorySize int `validate:"required,min=1"`
	// Capacity bounds each per-symbol buffer; 0 retains full history.
	Capacity int `validate:"min=0"`
	// BuyQualifier optionally qualifies emitted BUY signals.
	BuyQualifier optional.Option[types.Qualifier]
	// SellQualifier optionally qualifies emitted SELL signals.
	SellQualifier optional.Option[types.Qualifier]
	// Name labels emitted signals with the strategy name.
	Name string

	Recompute   optional.Option[RecomputeConfig]
	Incremental optional.Option[IncrementalConfig]
}

// Validate checks the configuration, failing fast before any evaluation.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid engine config", err)
	}

	if c.Capacity > 0 && c.Capacity < c.HistorySize {
		return errors.Newf(errors.ErrCodeInvalidConfiguration,
			"capacity (%d) must be 0 or >= history size (%d)", c.Capacity, c.HistorySize)
	}

	switch c.Mode {
	case ModeRecompute:
		if c.Recompute.IsNone() {
			return errors.New(errors.ErrCodeInvalidConfiguration, "recompute mode requires a Recompute section")
		}

		if c.Incremental.IsSome() {
			return errors.New(errors.ErrCodeInvalidConfiguration, "recompute mode must not carry an Incremental section")
		}
	case ModeIncremental:
		if c.Incremental.IsNone() {
			return errors.New(errors.ErrCodeInvalidConfiguration, "incremental mode requires an Incremental section")
		}

		if c.Recompute.IsSome() {
			return errors.New(errors.ErrCodeInvalidConfiguration, "incremental mode must not carry a Recompute section")
		}
	default:
		return errors.Newf(errors.ErrCodeUnsupportedMode, "unsupported mode %q", c.Mode)
	}

	return nil
}
