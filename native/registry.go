// Package native holds the registry of gdip.Native implementations.
//
// Backends register themselves from init(); import a backend package for its
// side effect to make it available:
//
//	import _ "github.com/gogpu/gdip/native/software"
package native

import (
	"errors"
	"sync"

	"github.com/gogpu/gdip"
)

// Backend names.
const (
	BackendGDIPlus  = "gdiplus"
	BackendSoftware = "software"
)

// ErrNotAvailable is returned when a requested backend is not registered or
// cannot be loaded on this host.
var ErrNotAvailable = errors.New("native: backend not available")

// Factory creates a backend instance. It returns nil if the backend cannot
// run on this host.
type Factory func() gdip.Native

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
	// Priority order for Default: the platform library wins, software is
	// the fallback.
	priority = []string{BackendGDIPlus, BackendSoftware}
)

// Register registers a factory under name, replacing any previous one.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = f
}

// Unregister removes a backend. This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}

// Get returns a new instance of the named backend.
func Get(name string) (gdip.Native, error) {
	registryMu.RLock()
	f, ok := factories[name]
	registryMu.RUnlock()
	if !ok {
		return nil, ErrNotAvailable
	}
	n := f()
	if n == nil {
		return nil, ErrNotAvailable
	}
	return n, nil
}

// Default returns the best available backend by priority, then any other
// registered backend.
func Default() (gdip.Native, error) {
	for _, name := range priority {
		if n, err := Get(name); err == nil {
			return n, nil
		}
	}

	registryMu.RLock()
	rest := make([]Factory, 0, len(factories))
	for _, f := range factories {
		rest = append(rest, f)
	}
	registryMu.RUnlock()

	for _, f := range rest {
		if n := f(); n != nil {
			return n, nil
		}
	}
	return nil, ErrNotAvailable
}
