// Package strategy builds engine configurations for the built-in strategy
// kinds, in both rule-composition styles.
package strategy

import (
	"github.com/moznion/go-optional"
	"github.com/quantfold/signalstream/internal/config"
	"github.com/quantfold/signalstream/internal/engine"
	"github.com/quantfold/signalstream/internal/indicator"
	"github.com/quantfold/signalstream/internal/rule"
	"github.com/quantfold/signalstream/internal/types"
	"github.com/quantfold/signalstream/pkg/errors"
)

const (
	// KindSMACross buys when the fast SMA crosses above the slow SMA and
	// sells on the opposite cross. Params: fast_period, slow_period.
	KindSMACross = "sma_cross"
	// KindRSIThreshold buys while RSI is below buy_threshold and sells
	// while it is above sell_threshold. Params: period, buy_threshold,
	// sell_threshold.
	KindRSIThreshold = "rsi_threshold"
)

// Build turns a file configuration into an engine configuration.
func Build(cfg *config.Config) (engine.Config, error) {
	engineCfg := engine.Config{
		Mode:          engine.Mode(cfg.Mode),
		HistorySize:   cfg.HistorySize,
		Capacity:      cfg.Capacity,
		BuyQualifier:  optional.Some(types.QualifierEntry),
		SellQualifier: optional.Some(types.QualifierExit),
		Name:          cfg.Name,
		Recompute:     optional.None[engine.RecomputeConfig](),
		Incremental:   optional.None[engine.IncrementalConfig](),
	}

	if engineCfg.Name == "" {
		engineCfg.Name = cfg.Strategy.Kind
	}

	params := indicator.Params(cfg.Strategy.Params)

	switch cfg.Strategy.Kind {
	case KindSMACross:
		applySMACross(&engineCfg, params)
	case KindRSIThreshold:
		applyRSIThreshold(&engineCfg, params)
	default:
		return engine.Config{}, errors.Newf(errors.ErrCodeInvalidConfiguration,
			"unknown strategy kind %q", cfg.Strategy.Kind)
	}

	return engineCfg, nil
}

func applySMACross(cfg *engine.Config, params indicator.Params) {
	fast := indicator.Params{"period": float64(params.Period("fast_period", 10))}
	slow := indicator.Params{"period": float64(params.Period("slow_period", 30))}

	if cfg.Mode == engine.ModeRecompute {
		cfg.Recompute = optional.Some(engine.RecomputeConfig{
			Buy:  smaCrossPredicate(fast, slow),
			Sell: smaCrossPredicate(slow, fast),
		})

		return
	}

	cfg.Incremental = optional.Some(engine.IncrementalConfig{
		Buy: func(binding rule.Binding) rule.Rule {
			return rule.CrossesAbove(binding, types.IndicatorTypeSMA, fast, types.IndicatorTypeSMA, slow)
		},
		Sell: func(binding rule.Binding) rule.Rule {
			return rule.CrossesBelow(binding, types.IndicatorTypeSMA, fast, types.IndicatorTypeSMA, slow)
		},
	})
}

// smaCrossPredicate fires on the bar where the a-SMA crosses above the
// b-SMA.
func smaCrossPredicate(a, b indicator.Params) engine.Predicate {
	return func(ctx *engine.Context) (bool, error) {
		aNow, err := ctx.Value(types.IndicatorTypeSMA, a, 0)
		if err != nil {
			return false, err
		}

		bNow, err := ctx.Value(types.IndicatorTypeSMA, b, 0)
		if err != nil {
			return false, err
		}

		aPrev, err := ctx.Value(types.IndicatorTypeSMA, a, 1)
		if err != nil {
			return false, err
		}

		bPrev, err := ctx.Value(types.IndicatorTypeSMA, b, 1)
		if err != nil {
			return false, err
		}

		return aNow > bNow && aPrev <= bPrev, nil
	}
}

func applyRSIThreshold(cfg *engine.Config, params indicator.Params) {
	rsiParams := indicator.Params{"period": float64(params.Period("period", 14))}
	buyThreshold := params.Value("buy_threshold", 30)
	sellThreshold := params.Value("sell_threshold", 70)

	if cfg.Mode == engine.ModeRecompute {
		cfg.Recompute = optional.Some(engine.RecomputeConfig{
			Buy: func(ctx *engine.Context) (bool, error) {
				v, err := ctx.Value(types.IndicatorTypeRSI, rsiParams, 0)
				if err != nil {
					return false, err
				}

				return v < buyThreshold, nil
			},
			Sell: func(ctx *engine.Context) (bool, error) {
				v, err := ctx.Value(types.IndicatorTypeRSI, rsiParams, 0)
				if err != nil {
					return false, err
				}

				return v > sellThreshold, nil
			},
		})

		return
	}

	cfg.Incremental = optional.Some(engine.IncrementalConfig{
		Buy: func(binding rule.Binding) rule.Rule {
			return rule.IndicatorUnder(binding, types.IndicatorTypeRSI, rsiParams, buyThreshold)
		},
		Sell: func(binding rule.Binding) rule.Rule {
			return rule.IndicatorOver(binding, types.IndicatorTypeRSI, rsiParams, sellThreshold)
		},
	})
}
