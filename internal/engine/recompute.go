package engine

import (
	"github.com/quantfold/signalstream/internal/indicator"
	"github.com/quantfold/signalstream/internal/logger"
	"github.com/quantfold/signalstream/internal/series"
	"github.com/quantfold/signalstream/internal/types"
	"github.com/quantfold/signalstream/pkg/errors"
	"go.uber.org/zap"
)

// recomputeEngine implements the stateless recompute style. Each symbol
// moves through a two-state machine: while its window is short of
// HistorySize, bars are recorded but nothing is evaluated; once the window
// fills, both predicates are recomputed in full on every new bar.
type recomputeEngine struct {
	cfg     Config
	buy     Predicate
	sell    Predicate
	gateway *indicator.Gateway
	series  *series.Registry
	ready   map[string]bool
	emitter *emitter
	log     *logger.Logger
	stats   Stats
}

func newRecomputeEngine(cfg Config, gateway *indicator.Gateway, log *logger.Logger) *recomputeEngine {
	predicates := cfg.Recompute.Unwrap()

	return &recomputeEngine{
		cfg:     cfg,
		buy:     predicates.Buy,
		sell:    predicates.Sell,
		gateway: gateway,
		series:  series.NewRegistry(cfg.Capacity),
		ready:   make(map[string]bool),
		emitter: newEmitter(cfg),
		log:     log,
		stats:   Stats{}, //nolint:exhaustruct // counters start at zero
	}
}

// ProcessEvent implements Engine.
//
// An InsufficientDataError raised by a predicate is a caller-visible
// misconfiguration: the requested indicator lookback exceeds the configured
// history. It is logged at error level and returned, aborting this event's
// evaluation. It is never swallowed.
func (e *recomputeEngine) ProcessEvent(bars []types.Bar) ([]types.Signal, error) {
	e.stats.Events++

	var signals []types.Signal

	for _, bar := range bars {
		e.stats.Bars++

		buf := e.series.GetOrCreate(bar.Symbol)
		if !buf.Add(bar, e.cfg.HistorySize) {
			// Still warming up: record the bar, evaluate nothing.
			continue
		}

		if !e.ready[bar.Symbol] {
			e.ready[bar.Symbol] = true
			e.stats.ReadySymbols++
		}

		ctx := &Context{
			Symbol:     bar.Symbol,
			Series:     buf,
			Indicators: e.gateway,
		}

		// Both predicates are independent and evaluated every tick; both
		// may fire on the same bar. Reconciling BUY against SELL is the
		// caller's concern.
		buySignal, err := e.evaluate(e.buy, ctx, bar, types.RatingBuy)
		if err != nil {
			return nil, err
		}

		if buySignal != nil {
			signals = append(signals, *buySignal)
			e.stats.BuySignals++
		}

		sellSignal, err := e.evaluate(e.sell, ctx, bar, types.RatingSell)
		if err != nil {
			return nil, err
		}

		if sellSignal != nil {
			signals = append(signals, *sellSignal)
			e.stats.SellSignals++
		}
	}

	return signals, nil
}

// evaluate runs one predicate and, if satisfied, builds its signal.
// A nil predicate never fires.
func (e *recomputeEngine) evaluate(pred Predicate, ctx *Context, bar types.Bar, rating types.Rating) (*types.Signal, error) {
	if pred == nil {
		return nil, nil
	}

	satisfied, err := pred(ctx)
	if err != nil {
		if errors.IsInsufficientDataError(err) {
			var insufficientErr *errors.InsufficientDataError
			errors.As(err, &insufficientErr)

			e.log.Error("configured history is too small for the indicators in use",
				zap.String("symbol", bar.Symbol),
				zap.Int("history_size", e.cfg.HistorySize),
				zap.Int("required_lookback", insufficientErr.RequiredLookback),
				zap.Error(err),
			)

			return nil, err
		}

		return nil, errors.Wrapf(errors.ErrCodeComputationFailed, err,
			"%s predicate failed for %s", rating, bar.Symbol)
	}

	if !satisfied {
		return nil, nil
	}

	signal := e.emitter.emit(bar, rating, "predicate satisfied", nil)

	return &signal, nil
}

// Reset implements Engine.
func (e *recomputeEngine) Reset() {
	e.log.Info("resetting recompute engine",
		zap.Int("symbols", e.series.Len()),
		zap.Int("signals", e.stats.Signals()),
	)

	e.series.Clear()
	e.ready = make(map[string]bool)
	e.stats = Stats{} //nolint:exhaustruct // counters restart at zero
}

// Stats implements Engine.
func (e *recomputeEngine) Stats() Stats {
	return e.stats
}
