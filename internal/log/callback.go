package log

import (
	"context"
	"log/slog"
	"sync"
)

// CallbackFunc is a function that receives log records
type CallbackFunc func(record slog.Record)

// CallbackHandler is a slog.Handler that forwards log records to a callback
// function, used to surface logs inside the TUI instead of stderr.
type CallbackHandler struct {
	level    slog.Level
	mu       sync.Mutex
	callback CallbackFunc
	attrs    []slog.Attr
}

// NewCallbackHandler creates a new slog handler that forwards logs to a callback
func NewCallbackHandler(callback CallbackFunc, level slog.Level) *CallbackHandler {
	return &CallbackHandler{
		level:    level,
		callback: callback,
	}
}

// Enabled reports whether the handler handles records at the given level
func (h *CallbackHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle handles the Record by forwarding to the callback
func (h *CallbackHandler) Handle(ctx context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.callback == nil {
		return nil
	}

	if len(h.attrs) > 0 {
		record.AddAttrs(h.attrs...)
	}

	h.callback(record)
	return nil
}

// WithAttrs returns a new Handler whose attributes consist of both the receiver's attributes and the arguments
func (h *CallbackHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CallbackHandler{
		level:    h.level,
		callback: h.callback,
		attrs:    append(h.attrs, attrs...),
	}
}

// WithGroup returns a new Handler with the given group name
func (h *CallbackHandler) WithGroup(name string) slog.Handler {
	// For simplicity, we don't support WithGroup
	return h
}

// NewCallbackLogger creates a logger that forwards logs to a callback function
func NewCallbackLogger(callback CallbackFunc, minLevel slog.Level) *slog.Logger {
	return slog.New(NewCallbackHandler(callback, minLevel))
}
