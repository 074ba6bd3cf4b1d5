package catalog

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/kbukum/patternkit/errors"
	"github.com/kbukum/patternkit/logger"
)

// Registry holds registered demos keyed by name.
type Registry struct {
	demos map[string]Demo
	mu    sync.RWMutex
}

// NewRegistry creates an empty demo registry.
func NewRegistry() *Registry {
	return &Registry{demos: make(map[string]Demo)}
}

// Register adds a demo to the registry. Names must be unique and non-empty.
func (r *Registry) Register(d Demo) error {
	if d.Name() == "" {
		return errors.MissingField("name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.demos[d.Name()]; exists {
		return errors.AlreadyRegistered(d.Name())
	}
	r.demos[d.Name()] = d

	logger.WithComponent("catalog").Debug("Demo registered", map[string]interface{}{
		logger.FieldDemo:     d.Name(),
		logger.FieldCategory: string(d.Category()),
	})
	return nil
}

// Get returns the demo registered under name.
func (r *Registry) Get(name string) (Demo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.demos[name]
	if !ok {
		return nil, errors.DemoNotFound(name)
	}
	return d, nil
}

// List returns all demos sorted by category, then name.
func (r *Registry) List() []Demo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Demo, 0, len(r.demos))
	for _, d := range r.demos {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category() != out[j].Category() {
			return out[i].Category() < out[j].Category()
		}
		return out[i].Name() < out[j].Name()
	})
	return out
}

// Names returns the sorted names of all registered demos.
func (r *Registry) Names() []string {
	demos := r.List()
	names := make([]string, len(demos))
	for i, d := range demos {
		names[i] = d.Name()
	}
	return names
}

// Run resolves a demo by name and executes it against w.
func (r *Registry) Run(ctx context.Context, name string, w io.Writer) error {
	d, err := r.Get(name)
	if err != nil {
		return err
	}

	log := logger.WithComponent("catalog")
	start := time.Now()
	if err := d.Run(ctx, w); err != nil {
		log.Error("Demo failed", logger.ErrorFields(name, err))
		return errors.DemoFailed(name, err)
	}
	log.Info("Demo completed", logger.DurationFields(name, time.Since(start)))
	return nil
}

// --- Default registry ---

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry that pattern packages
// register into.
func Default() *Registry { return defaultRegistry }

// Register adds a demo to the default registry.
func Register(d Demo) error { return defaultRegistry.Register(d) }

// MustRegister registers a demo and panics on failure. Pattern packages call
// it from init, where a failure means a programming error (duplicate name).
func MustRegister(d Demo) {
	if err := defaultRegistry.Register(d); err != nil {
		panic(err)
	}
}

// Run executes a demo from the default registry.
func Run(ctx context.Context, name string, w io.Writer) error {
	return defaultRegistry.Run(ctx, name, w)
}
