// Package engine turns a stream of per-symbol OHLCV bars into trading
// signals by evaluating indicator-backed rules against bounded per-symbol
// history.
//
// Two rule-composition styles coexist behind one Engine interface,
// selected by configuration. The recompute style waits for a full window
// per symbol and then re-evaluates stateless predicates on every bar,
// propagating insufficient history as a misconfiguration. The incremental
// style binds stateful rule objects once per symbol against a live growing
// series; those rules absorb their own warm-up and never raise it. The
// asymmetry between the two styles is part of the contract.
//
// Engines are single-threaded: one event is fully applied before the next
// is accepted, and an instance owns its registries exclusively. Callers
// running several strategies concurrently must give each its own engine.
package engine

import (
	"github.com/quantfold/signalstream/internal/indicator"
	"github.com/quantfold/signalstream/internal/logger"
	"github.com/quantfold/signalstream/internal/types"
	"github.com/quantfold/signalstream/pkg/errors"
)

// Stats carries cumulative per-engine counters since construction or the
// last Reset.
type Stats struct {
	// Events is the number of processed events.
	Events int
	// Bars is the number of processed bars across all events.
	Bars int
	// BuySignals is the number of emitted BUY signals.
	BuySignals int
	// SellSignals is the number of emitted SELL signals.
	SellSignals int
	// ReadySymbols is the number of symbols whose window has filled
	// (recompute style) or that have rules bound (incremental style).
	ReadySymbols int
}

// Signals returns the total number of emitted signals.
func (s Stats) Signals() int {
	return s.BuySignals + s.SellSignals
}

// Engine consumes events, one bar per symbol, and emits signals.
type Engine interface {
	// ProcessEvent applies one event: every bar is recorded and every
	// applicable rule evaluated before it returns. The returned signals
	// follow the order of the bars in the event. In recompute mode an
	// insufficient-history condition aborts the evaluation and is
	// returned; incremental mode never returns it.
	ProcessEvent(bars []types.Bar) ([]types.Signal, error)
	// Reset discards all per-symbol state, forcing complete re-binding
	// and re-accumulation on the next event.
	Reset()
	// Stats returns the engine's cumulative counters.
	Stats() Stats
}

// New creates an engine for the given configuration. The configuration is
// validated up front; evaluation never sees an invalid one.
func New(cfg Config, registry *indicator.Registry, log *logger.Logger) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	gateway := indicator.NewGateway(registry)

	switch cfg.Mode {
	case ModeRecompute:
		return newRecomputeEngine(cfg, gateway, log), nil
	case ModeIncremental:
		return newIncrementalEngine(cfg, gateway, log), nil
	default:
		// Validate has already rejected unknown modes.
		return nil, errors.Newf(errors.ErrCodeUnsupportedMode, "unsupported mode %q", cfg.Mode)
	}
}
