package param

import (
	"fmt"
	"sync"
)

// Registry manages plugin parameters.
//
// The mutex only guards the registry's own bookkeeping. Parameter values are
// atomics, so callers on the audio thread should hold on to the *Parameter
// instead of looking it up per block.
type Registry struct {
	params map[uint32]*Parameter
	order  []*Parameter // Maintain order for indexed access
	mu     sync.RWMutex
}

// NewRegistry creates a new parameter registry
func NewRegistry() *Registry {
	return &Registry{
		params: make(map[uint32]*Parameter),
	}
}

// Add registers new parameters. IDs must be unique. If any ID is taken,
// nothing is added.
func (r *Registry) Add(params ...*Parameter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[uint32]bool, len(params))
	for _, p := range params {
		if _, exists := r.params[p.ID]; exists || seen[p.ID] {
			return fmt.Errorf("parameter ID %d already exists", p.ID)
		}
		seen[p.ID] = true
	}

	for _, p := range params {
		r.params[p.ID] = p
		r.order = append(r.order, p)
	}

	return nil
}

// Get retrieves a parameter by ID
func (r *Registry) Get(id uint32) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.params[id]
}

// GetByIndex retrieves a parameter by index, or nil if the index is out of range
func (r *Registry) GetByIndex(index int32) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= int32(len(r.order)) {
		return nil
	}

	return r.order[index]
}

// Count returns the number of parameters
func (r *Registry) Count() int32 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int32(len(r.order))
}

// All returns all parameters in order
func (r *Registry) All() []*Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Parameter, len(r.order))
	copy(result, r.order)
	return result
}
