// Package cli implements the stackedcards command-line interface.
//
// This package provides commands for browsing the carousel interactively,
// rendering single frames, inspecting per-card transforms and managing the
// config file. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - view: Interactive terminal carousel
//   - render: Write a frame as SVG and/or JSON
//   - inspect: Print the transform table for a scroll position
//   - config: Create or print the TOML config file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. --debug additionally registers hooks that
// log every card transform, drag and snap.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackedcards/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 2 files (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Debug Hooks
// =============================================================================

// logHooks logs carousel and render events at debug level.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l.WithPrefix("carousel")}
}

func (h *logHooks) OnFrame(_ context.Context, cards, current int, d time.Duration) {
	h.logger.Debug("frame", "cards", cards, "current", current, "duration", d)
}

func (h *logHooks) OnCardTransform(_ context.Context, e observability.CardEvent) {
	h.logger.Debugf("card %d progress=%+.3f scale=%.3f rotation=%+.2f° offset=%+.1f z=%d",
		e.Index, e.Progress, e.Scale, e.Rotation, e.Offset, e.ZIndex)
}

func (h *logHooks) OnDrag(_ context.Context, direction, phase string, translationX float64) {
	h.logger.Debug("drag", "phase", phase, "direction", direction, "dx", translationX)
}

func (h *logHooks) OnSnap(_ context.Context, from, to int) {
	h.logger.Debug("snap", "from", from, "to", to)
}

func (h *logHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("render start", "format", format)
}

func (h *logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("render complete", "format", format, "bytes", size, "duration", d)
}
