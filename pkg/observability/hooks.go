// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about design calculations, workbench storage operations,
// and API requests.
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
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDesignHooks(&myDesignHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Design().OnCalcStart(ctx, source)
//	// ... build the design and its report ...
//	observability.Design().OnCalcComplete(ctx, source, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Design Hooks
// =============================================================================

// DesignHooks receives events from the calculation pipeline.
type DesignHooks interface {
	// Calculation events. Source identifies where the design came from
	// ("flags", "file", "store", "share").
	OnCalcStart(ctx context.Context, source string)
	OnCalcComplete(ctx context.Context, source string, duration time.Duration, err error)

	// Render events. Formats lists the artifact formats being produced.
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from workbench storage operations.
// Entity is the record kind being accessed ("design", "size", "settings").
type StoreHooks interface {
	// OnHit records a successful lookup.
	OnHit(ctx context.Context, entity string)

	// OnMiss records a lookup that found nothing.
	OnMiss(ctx context.Context, entity string)

	// OnWrite records a save or delete.
	OnWrite(ctx context.Context, entity string)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API server.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response sent for a request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)

	// OnError records a request that failed outright (handler panic).
	OnError(ctx context.Context, method, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDesignHooks is a no-op implementation of DesignHooks.
type NoopDesignHooks struct{}

func (NoopDesignHooks) OnCalcStart(context.Context, string)                              {}
func (NoopDesignHooks) OnCalcComplete(context.Context, string, time.Duration, error)     {}
func (NoopDesignHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopDesignHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnHit(context.Context, string)   {}
func (NoopStoreHooks) OnMiss(context.Context, string)  {}
func (NoopStoreHooks) OnWrite(context.Context, string) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	designHooks DesignHooks = NoopDesignHooks{}
	storeHooks  StoreHooks  = NoopStoreHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetDesignHooks registers custom design hooks.
// This should be called once at application startup before any calculations.
func SetDesignHooks(h DesignHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		designHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving requests.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Design returns the registered design hooks.
func Design() DesignHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return designHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	designHooks = NoopDesignHooks{}
	storeHooks = NoopStoreHooks{}
	httpHooks = NoopHTTPHooks{}
}
