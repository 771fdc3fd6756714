package engine

import (
	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/quantfold/signalstream/internal/types"
)

// emitter maps per-symbol rule outcomes into directional signals. Both
// engine styles share it: each produces at most one BUY and one SELL per
// symbol per tick, in the order the symbols appear in the input event.
type emitter struct {
	name          string
	buyQualifier  optional.Option[types.Qualifier]
	sellQualifier optional.Option[types.Qualifier]
}

func newEmitter(cfg Config) *emitter {
	return &emitter{
		name:          cfg.Name,
		buyQualifier:  cfg.BuyQualifier,
		sellQualifier: cfg.SellQualifier,
	}
}

// emit builds a signal for one (symbol, rating) outcome.
func (e *emitter) emit(bar types.Bar, rating types.Rating, reason string, rawValue any) types.Signal {
	qualifier := e.buyQualifier
	if rating == types.RatingSell {
		qualifier = e.sellQualifier
	}

	return types.Signal{
		ID:        uuid.NewString(),
		Time:      bar.Time,
		Symbol:    bar.Symbol,
		Rating:    rating,
		Qualifier: qualifier,
		Name:      e.name,
		Reason:    reason,
		RawValue:  rawValue,
	}
}
