package errors

import (
	"log/slog"
)

// LogHandler is a Handler that logs through log/slog.
type LogHandler struct {
	// Logger receives the records; nil uses slog.Default().
	Logger *slog.Logger
	// Verbose adds stack traces to panic records.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleError logs a ViewError at error level.
func (h *LogHandler) HandleError(err *ViewError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String(), "error", err.Err}
	if err.Attr != "" {
		attrs = append(attrs, "attr", err.Attr)
	}
	h.logger().Error("volumeview error", attrs...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("volumeview panic", attrs...)
}
