// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about snapping, push-away passes, and grid arrangement.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, plain logging, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// The engine calls hooks to emit events:
//
//	observability.Layout().OnPushAwayStart(seedID, itemCount)
//	// ... resolve overlaps ...
//	observability.Layout().OnPushAwayComplete(seedID, moved, duration)
package observability

import (
	"sync"
	"time"
)

// LayoutHooks receives events from the layout engine.
type LayoutHooks interface {
	// OnSnap records a drag or resize edge snapping to a trench.
	OnSnap(itemID, trenchID string, axis string, delta float64)

	// Push-away events. Moved counts items whose bounds changed.
	OnPushAwayStart(seedID string, itemCount int)
	OnPushAwayComplete(seedID string, moved int, duration time.Duration)

	// Grid arrangement events.
	OnArrangeStart(count int)
	OnArrangeComplete(count, columns int, duration time.Duration)
}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnSnap(string, string, string, float64)        {}
func (NoopLayoutHooks) OnPushAwayStart(string, int)                   {}
func (NoopLayoutHooks) OnPushAwayComplete(string, int, time.Duration) {}
func (NoopLayoutHooks) OnArrangeStart(int)                            {}
func (NoopLayoutHooks) OnArrangeComplete(int, int, time.Duration)     {}

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout operations.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
}
