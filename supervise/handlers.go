package supervise

import (
	"log/slog"

	"github.com/rs/zerolog"
	"github.com/safecall-io/safecall"
	"go.uber.org/zap"
)

// ZapHandler reports intercepted panics through lg at error level.
func ZapHandler(lg *zap.Logger) Handler {
	return func(id InvocationId, scope string, err *safecall.Error) {
		lg.Error("panic intercepted",
			zap.String("invocation", id.String()),
			zap.String("scope", scope),
			zap.String("category", err.Category),
			zap.String("description", err.Description),
			zap.ByteString("stack", err.Stack),
		)
	}
}

// ZerologHandler reports intercepted panics through lg at error level.
func ZerologHandler(lg *zerolog.Logger) Handler {
	return func(id InvocationId, scope string, err *safecall.Error) {
		lg.Error().
			Str("invocation", id.String()).
			Str("scope", scope).
			Str("category", err.Category).
			Bytes("stack", err.Stack).
			Msg(err.Description)
	}
}

// SlogHandler reports intercepted panics through lg at error level.
func SlogHandler(lg *slog.Logger) Handler {
	return func(id InvocationId, scope string, err *safecall.Error) {
		lg.Error("panic intercepted",
			slog.String("invocation", id.String()),
			slog.String("scope", scope),
			slog.String("category", err.Category),
			slog.String("description", err.Description),
			slog.String("stack", string(err.Stack)),
		)
	}
}
