// internal/dialect/registry.go
package dialect

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"escpos-service/pkg/escpos"
)

// Registry manages the dialect tables available to the encode service.
// Dialects themselves are immutable; the registry only guards its map, so
// any number of encoders can resolve tables concurrently.
type Registry struct {
	dialects map[string]*escpos.Dialect
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewRegistry creates a registry seeded with the built-in dialect
func NewRegistry(logger *zap.Logger) *Registry {
	registry := &Registry{
		dialects: make(map[string]*escpos.Dialect),
		logger:   logger,
	}
	registry.dialects[escpos.DefaultDialectName] = escpos.Default()
	return registry
}

// Register adds a dialect. Names are unique; registering an existing name
// is an error, so the built-in table can never be replaced.
func (r *Registry) Register(dialect *escpos.Dialect) error {
	if dialect == nil {
		return fmt.Errorf("dialect is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := dialect.Name()
	if _, exists := r.dialects[name]; exists {
		return fmt.Errorf("dialect %q is already registered", name)
	}

	r.dialects[name] = dialect
	r.logger.Info("Dialect registered",
		zap.String("dialect", name),
		zap.Int("symbols", dialect.Len()),
	)
	return nil
}

// Get returns a dialect by name
func (r *Registry) Get(name string) (*escpos.Dialect, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dialect, exists := r.dialects[name]
	if !exists {
		return nil, fmt.Errorf("dialect %q is not registered", name)
	}
	return dialect, nil
}

// Has checks if a dialect name is registered
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.dialects[name]
	return exists
}

// List returns the registered dialect names, sorted
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.dialects))
	for name := range r.dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered dialects
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.dialects)
}
