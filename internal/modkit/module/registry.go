package module

import "sync"

// Process-wide port registry. Modules register their port bundles during
// bootstrap and siblings look them up by module name
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores ports under name, replacing any earlier registration
func Register(name string, ports any) {
	mu.Lock()
	defer mu.Unlock()
	reg[name] = ports
}

// PortsAs looks up name and asserts the stored bundle to T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, found := reg[name]
	mu.RUnlock()
	if !found {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Reset empties the registry, for tests
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	reg = map[string]any{}
}
