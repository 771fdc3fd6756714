package series

// Registry owns the symbol to BarBuffer mapping for one engine instance.
// Buffers are created lazily on first access with the configured capacity;
// GetOrCreate is the only access path. Not safe for concurrent use.
type Registry struct {
	capacity int
	buffers  map[string]*BarBuffer
}

// NewRegistry creates a Registry whose buffers are constructed with the
// given capacity. Capacity 0 means unbounded buffers.
func NewRegistry(capacity int) *Registry {
	return &Registry{
		capacity: capacity,
		buffers:  make(map[string]*BarBuffer),
	}
}

// GetOrCreate returns the buffer for the given symbol, constructing it with
// the configured capacity on first use.
func (r *Registry) GetOrCreate(symbol string) *BarBuffer {
	buf, ok := r.buffers[symbol]
	if !ok {
		buf = NewBarBuffer(r.capacity)
		r.buffers[symbol] = buf
	}

	return buf
}

// Len returns the number of tracked symbols.
func (r *Registry) Len() int {
	return len(r.buffers)
}

// Symbols returns the tracked symbols in unspecified order.
func (r *Registry) Symbols() []string {
	symbols := make([]string, 0, len(r.buffers))
	for symbol := range r.buffers {
		symbols = append(symbols, symbol)
	}

	return symbols
}

// Clear drops all per-symbol buffers.
func (r *Registry) Clear() {
	r.buffers = make(map[string]*BarBuffer)
}
