package indicator

import (
	"sync"

	"github.com/quantfold/signalstream/internal/series"
	"github.com/quantfold/signalstream/internal/types"
	"github.com/quantfold/signalstream/pkg/errors"
)

// Binding describes one indicator available through the gateway: which
// columns it consumes, how many outputs it produces, and the computer that
// does the numeric work. The catalog of concrete indicators is table-driven
// through bindings rather than hand-duplicated evaluation paths.
type Binding struct {
	// Name identifies the indicator.
	Name types.IndicatorType
	// Columns lists the input columns the computer consumes.
	Columns []series.Column
	// Arity is the number of numeric outputs (1, 2 or 3).
	Arity int
	// Pattern marks indicators whose single output is a nonzero/zero
	// pattern-match flag.
	Pattern bool
	// Computer performs the numeric computation.
	Computer Computer
}

// Registry manages all available indicator bindings.
type Registry struct {
	bindings map[types.IndicatorType]Binding
	mu       sync.RWMutex
}

// NewRegistry creates an empty indicator registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[types.IndicatorType]Binding),
		mu:       sync.RWMutex{},
	}
}

// DefaultRegistry creates a registry with all built-in indicators registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	// Registration of built-ins cannot fail: names are unique constants.
	_ = r.Register(Binding{
		Name:     types.IndicatorTypeSMA,
		Columns:  []series.Column{series.ColumnClose},
		Arity:    1,
		Pattern:  false,
		Computer: &SMA{},
	})
	_ = r.Register(Binding{
		Name:     types.IndicatorTypeEMA,
		Columns:  []series.Column{series.ColumnClose},
		Arity:    1,
		Pattern:  false,
		Computer: &EMA{},
	})
	_ = r.Register(Binding{
		Name:     types.IndicatorTypeRSI,
		Columns:  []series.Column{series.ColumnClose},
		Arity:    1,
		Pattern:  false,
		Computer: &RSI{},
	})
	_ = r.Register(Binding{
		Name:     types.IndicatorTypeATR,
		Columns:  []series.Column{series.ColumnHigh, series.ColumnLow, series.ColumnClose},
		Arity:    1,
		Pattern:  false,
		Computer: &ATR{},
	})
	_ = r.Register(Binding{
		Name:     types.IndicatorTypeBollingerBands,
		Columns:  []series.Column{series.ColumnClose},
		Arity:    3,
		Pattern:  false,
		Computer: &BollingerBands{},
	})
	_ = r.Register(Binding{
		Name:     types.IndicatorTypeMACD,
		Columns:  []series.Column{series.ColumnClose},
		Arity:    3,
		Pattern:  false,
		Computer: &MACD{},
	})
	_ = r.Register(Binding{
		Name:     types.IndicatorTypeStochastic,
		Columns:  []series.Column{series.ColumnHigh, series.ColumnLow, series.ColumnClose},
		Arity:    2,
		Pattern:  false,
		Computer: &Stochastic{},
	})
	_ = r.Register(Binding{
		Name:     types.IndicatorTypeBullishEngulfing,
		Columns:  []series.Column{series.ColumnOpen, series.ColumnClose},
		Arity:    1,
		Pattern:  true,
		Computer: &BullishEngulfing{},
	})

	return r
}

// Register adds a binding to the registry.
func (r *Registry) Register(binding Binding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bindings[binding.Name]; exists {
		return errors.Newf(errors.ErrCodeIndicatorAlreadyRegistered,
			"indicator with name %s already registered", binding.Name)
	}

	r.bindings[binding.Name] = binding

	return nil
}

// Get retrieves a binding by name.
func (r *Registry) Get(name types.IndicatorType) (Binding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	binding, exists := r.bindings[name]
	if !exists {
		return Binding{}, errors.Newf(errors.ErrCodeIndicatorNotFound,
			"indicator with name %s not found", name)
	}

	return binding, nil
}

// List returns the names of all registered indicators.
func (r *Registry) List() []types.IndicatorType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]types.IndicatorType, 0, len(r.bindings))
	for name := range r.bindings {
		names = append(names, name)
	}

	return names
}

// Remove removes a binding from the registry.
func (r *Registry) Remove(name types.IndicatorType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bindings[name]; !exists {
		return errors.Newf(errors.ErrCodeIndicatorNotFound,
			"indicator with name %s not found", name)
	}

	delete(r.bindings, name)

	return nil
}
