package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type ctxKey int

const (
	ctxLoggerKey ctxKey = iota
	ctxFieldsKey
)

// fieldsHolder is stored by pointer so that SetCtxFields can append
// without deriving a new context.
type fieldsHolder struct {
	mu     sync.Mutex
	fields []zap.Field
}

// WrapInCtx attaches lg to the context for retrieval with NewFromCtx.
func WrapInCtx(ctx context.Context, lg *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey, lg)
}

// NewFromCtx returns the logger carried by ctx, or the global logger.
func NewFromCtx(ctx context.Context) *zap.Logger {
	if lg, ok := ctx.Value(ctxLoggerKey).(*zap.Logger); ok {
		return lg
	}
	return Global()
}

// CtxWithAttrs derives a context carrying a mutable set of log fields.
func CtxWithAttrs(ctx context.Context, fields ...zap.Field) context.Context {
	return context.WithValue(ctx, ctxFieldsKey, &fieldsHolder{fields: fields})
}

// SetCtxFields appends fields to the set carried by ctx, if any.
func SetCtxFields(ctx context.Context, fields ...zap.Field) {
	holder, ok := ctx.Value(ctxFieldsKey).(*fieldsHolder)
	if !ok {
		return
	}
	holder.mu.Lock()
	holder.fields = append(holder.fields, fields...)
	holder.mu.Unlock()
}

// GetCtxFields returns a copy of the fields carried by ctx.
func GetCtxFields(ctx context.Context) []zap.Field {
	holder, ok := ctx.Value(ctxFieldsKey).(*fieldsHolder)
	if !ok {
		return nil
	}
	holder.mu.Lock()
	defer holder.mu.Unlock()
	out := make([]zap.Field, len(holder.fields))
	copy(out, holder.fields)
	return out
}
