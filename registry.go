package arm64id

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"

	"github.com/leodido/arm64id/internal/sysreg"
)

//go:generate go run ./internal/gensysreg -out .

var (
	// ErrDuplicateProbe is returned when registering a name that is already present.
	// The earlier registration is kept.
	ErrDuplicateProbe = errors.New("duplicate probe")
	// ErrRegistryFrozen is returned when registering into a frozen registry.
	ErrRegistryFrozen = errors.New("registry is frozen")
)

// Entry pairs a system register identifier with the routine that reads it.
// An Entry is immutable once created.
type Entry struct {
	name string
	read func() uint64
}

// NewEntry creates a registry entry. The read routine may trap on CPUs
// that do not implement the register; it is only ever executed inside a
// probe worker.
func NewEntry(name string, read func() uint64) Entry {
	return Entry{name: name, read: read}
}

// Name returns the canonical register identifier.
func (p Entry) Name() string {
	return p.name
}

// Registry is an ordered, append-only collection of probes.
// Insertion order is the iteration and report order.
type Registry struct {
	mu     sync.RWMutex
	probes []Entry
	index  map[string]int
	frozen bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register appends p. Duplicate names are rejected with [ErrDuplicateProbe]
// and leave the registry unchanged.
func (r *Registry) Register(p Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return fmt.Errorf("register %s: %w", p.name, ErrRegistryFrozen)
	}
	if p.name == "" || p.read == nil {
		return fmt.Errorf("register %q: probe needs a name and a read routine", p.name)
	}
	if strings.ContainsAny(p.name, ", \t\n") {
		return fmt.Errorf("register %q: name must not contain commas or whitespace", p.name)
	}
	if _, ok := r.index[p.name]; ok {
		return fmt.Errorf("register %s: %w", p.name, ErrDuplicateProbe)
	}
	r.index[p.name] = len(r.probes)
	r.probes = append(r.probes, p)
	return nil
}

// MustRegister is like [Registry.Register] but panics on error.
func (r *Registry) MustRegister(probes ...Entry) {
	for _, p := range probes {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
}

// Freeze rejects any further registration.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Frozen reports whether [Registry.Freeze] has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Len returns the number of registered probes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.probes)
}

// Lookup returns the probe registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[name]
	if !ok {
		return Entry{}, false
	}
	return r.probes[i], true
}

// All yields the probes in registration order. The sequence is lazy and
// may be ranged over any number of times.
func (r *Registry) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		r.mu.RLock()
		probes := r.probes[:len(r.probes):len(r.probes)]
		r.mu.RUnlock()

		for _, p := range probes {
			if !yield(p) {
				return
			}
		}
	}
}

// snapshot returns the registered probes as a slice.
func (r *Registry) snapshot() []Entry {
	return slices.Collect(r.All())
}

// DefaultRegistry returns the frozen registry of every register in
// [sysreg.Groups] that has a read routine on this architecture.
// Off arm64 it is empty.
var DefaultRegistry = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	for _, reg := range sysreg.All() {
		read, ok := sysregReaders[reg.String()]
		if !ok {
			continue
		}
		r.MustRegister(NewEntry(reg.String(), read))
	}
	r.Freeze()
	return r
})
