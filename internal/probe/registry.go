package probe

import (
	"sort"
	"sync"

	"github.com/CristiGvl/picoCPUCount/internal/platform"
)

// Registry maps platform keys to probes. Registration normally happens
// during setup, but the map is lock-guarded so late registration cannot
// race with queries.
type Registry struct {
	mu     sync.RWMutex
	probes map[platform.Key]Prober
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{probes: make(map[platform.Key]Prober)}
}

// Register inserts or replaces the probe for key. A later registration
// for the same key wins.
func (r *Registry) Register(key platform.Key, p Prober) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.probes[key] = p
}

// RegisterFunc registers fn as a probe identified by name.
func (r *Registry) RegisterFunc(key platform.Key, name string, fn ProbeFunc) {
	r.Register(key, Named(name, fn))
}

// Resolve looks up the probe for key. It never substitutes a default:
// an unknown key is reported through the found flag.
func (r *Registry) Resolve(key platform.Key) (Prober, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.probes[key]
	return p, ok
}

// Keys returns the registered platform keys, sorted.
func (r *Registry) Keys() []platform.Key {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]platform.Key, 0, len(r.probes))
	for key := range r.probes {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
