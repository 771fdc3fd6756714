package engine

import (
	"github.com/quantfold/signalstream/internal/indicator"
	"github.com/quantfold/signalstream/internal/logger"
	"github.com/quantfold/signalstream/internal/rule"
	"github.com/quantfold/signalstream/internal/series"
	"github.com/quantfold/signalstream/internal/types"
	"go.uber.org/zap"
)

// boundRules holds one symbol's rules, constructed exactly once on the
// symbol's first bar and reused for every subsequent bar.
type boundRules struct {
	buy  rule.Rule
	sell rule.Rule
}

// incrementalEngine implements the stateful incremental style. On a
// symbol's first bar the configured factories bind one buy rule and one
// sell rule against the symbol's freshly created, growing series; every
// tick appends the bar and evaluates both rules at the new last index.
//
// This style never reports insufficient history: rule objects carry their
// own readiness and simply stay unsatisfied during warm-up.
type incrementalEngine struct {
	cfg       Config
	factories IncrementalConfig
	gateway   *indicator.Gateway
	series    *series.Registry
	rules     map[string]boundRules
	emitter   *emitter
	log       *logger.Logger
	stats     Stats
}

func newIncrementalEngine(cfg Config, gateway *indicator.Gateway, log *logger.Logger) *incrementalEngine {
	return &incrementalEngine{
		cfg:       cfg,
		factories: cfg.Incremental.Unwrap(),
		gateway:   gateway,
		series:    series.NewRegistry(cfg.Capacity),
		rules:     make(map[string]boundRules),
		emitter:   newEmitter(cfg),
		log:       log,
		stats:     Stats{}, //nolint:exhaustruct // counters start at zero
	}
}

// ProcessEvent implements Engine.
func (e *incrementalEngine) ProcessEvent(bars []types.Bar) ([]types.Signal, error) {
	e.stats.Events++

	var signals []types.Signal

	for _, bar := range bars {
		e.stats.Bars++

		buf := e.series.GetOrCreate(bar.Symbol)

		bound, ok := e.rules[bar.Symbol]
		if !ok {
			bound = e.bind(bar.Symbol, buf)
			e.rules[bar.Symbol] = bound
			e.stats.ReadySymbols++
		}

		buf.Add(bar, e.cfg.HistorySize)

		// Rules address the series by its current last index; a bounded
		// series shifting its base under eviction is handled by the rules
		// themselves.
		index := buf.Len() - 1

		if bound.buy.IsSatisfied(index) {
			signals = append(signals, e.emitter.emit(bar, types.RatingBuy, "buy rule satisfied", nil))
			e.stats.BuySignals++
		}

		if bound.sell.IsSatisfied(index) {
			signals = append(signals, e.emitter.emit(bar, types.RatingSell, "sell rule satisfied", nil))
			e.stats.SellSignals++
		}
	}

	return signals, nil
}

// bind constructs the symbol's rules via the configured factories. A
// missing factory yields the constant-false rule: no rule, no signal.
func (e *incrementalEngine) bind(symbol string, buf *series.BarBuffer) boundRules {
	binding := rule.Binding{
		Symbol:  symbol,
		Series:  buf,
		Gateway: e.gateway,
	}

	bound := boundRules{
		buy:  rule.Never(),
		sell: rule.Never(),
	}

	if e.factories.Buy != nil {
		bound.buy = e.factories.Buy(binding)
	}

	if e.factories.Sell != nil {
		bound.sell = e.factories.Sell(binding)
	}

	e.log.Debug("bound rules for symbol", zap.String("symbol", symbol))

	return bound
}

// Reset implements Engine. Rule objects are discarded wholesale together
// with their series; the next event re-binds from zero.
func (e *incrementalEngine) Reset() {
	e.log.Info("resetting incremental engine",
		zap.Int("symbols", e.series.Len()),
		zap.Int("signals", e.stats.Signals()),
	)

	e.series.Clear()
	e.rules = make(map[string]boundRules)
	e.stats = Stats{} //nolint:exhaustruct // counters restart at zero
}

// Stats implements Engine.
func (e *incrementalEngine) Stats() Stats {
	return e.stats
}
