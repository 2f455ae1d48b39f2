// Package observability provides hooks for logging and metrics.
//
// The carousel core is pure; it does not log. Instead, the frame engine and
// the interactive view emit events through globally registered hooks. The
// defaults are no-ops, so nothing is emitted unless an application registers
// an implementation at startup (the CLI registers a charmbracelet/log backed
// one when --debug is set).
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCarouselHooks(&myCarouselHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Carousel().OnCardTransform(ctx, observability.CardEvent{Index: i, Scale: s})
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Carousel Hooks
// =============================================================================

// CardEvent describes the transform computed for one card in one frame.
type CardEvent struct {
	Index    int
	Progress float64
	Scale    float64
	Rotation float64 // degrees
	Offset   float64 // total horizontal offset
	ZIndex   int
}

// CarouselHooks receives events from the frame engine and the interactive view.
type CarouselHooks interface {
	// OnFrame records a computed frame.
	OnFrame(ctx context.Context, cards, current int, duration time.Duration)

	// OnCardTransform records the transform of a single card. It is only
	// called when per-card debugging is enabled.
	OnCardTransform(ctx context.Context, e CardEvent)

	// OnDrag records a drag gesture event.
	OnDrag(ctx context.Context, direction, phase string, translationX float64)

	// OnSnap records a committed page change.
	OnSnap(ctx context.Context, from, to int)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from frame rendering.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCarouselHooks is a no-op implementation of CarouselHooks.
type NoopCarouselHooks struct{}

func (NoopCarouselHooks) OnFrame(context.Context, int, int, time.Duration) {}
func (NoopCarouselHooks) OnCardTransform(context.Context, CardEvent)       {}
func (NoopCarouselHooks) OnDrag(context.Context, string, string, float64)  {}
func (NoopCarouselHooks) OnSnap(context.Context, int, int)                 {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string) {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	carouselHooks CarouselHooks = NoopCarouselHooks{}
	renderHooks   RenderHooks   = NoopRenderHooks{}
	hooksMu       sync.RWMutex
)

// SetCarouselHooks registers custom carousel hooks.
// This should be called once at application startup.
func SetCarouselHooks(h CarouselHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		carouselHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Carousel returns the registered carousel hooks.
func Carousel() CarouselHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return carouselHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	carouselHooks = NoopCarouselHooks{}
	renderHooks = NoopRenderHooks{}
}
