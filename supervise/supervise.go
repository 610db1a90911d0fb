// Package supervise runs units of work at goroutine and lifecycle
// boundaries under the safecall guard, reporting intercepted panics to a
// pluggable handler instead of crashing the process. The guard itself
// stays silent; all reporting lives here.
package supervise

import (
	"context"

	"github.com/safecall-io/safecall"
	"github.com/safecall-io/safecall/internal/core/defaults"
	"github.com/safecall-io/safecall/internal/core/ids"
	"github.com/safecall-io/safecall/internal/core/logger"
)

// InvocationId tags one supervised unit of work.
type InvocationId = ids.InvocationId

// Handler consumes one intercepted panic. Handlers are themselves run
// under the guard, so a misbehaving handler cannot take down the boundary
// it reports for.
type Handler func(id InvocationId, scope string, err *safecall.Error)

type Option func(*Supervisor)

// WithHandler replaces the default zap handler.
func WithHandler(h Handler) Option {
	return func(s *Supervisor) {
		s.handler = h
	}
}

// WithScope sets the scope reported for units that do not name their own.
func WithScope(scope string) Option {
	return func(s *Supervisor) {
		s.scope = scope
	}
}

// WithContext reports through the logger carried by ctx, including any
// fields attached to it.
func WithContext(ctx context.Context) Option {
	return func(s *Supervisor) {
		s.handler = ZapHandler(logger.NewFromCtx(ctx).With(logger.GetCtxFields(ctx)...))
	}
}

// Supervisor runs units of work under the guard. The zero-configuration
// form, New(), reports through the global logger.
type Supervisor struct {
	scope   string
	handler Handler
}

func New(opts ...Option) *Supervisor {
	s := &Supervisor{
		scope:   "supervise",
		handler: ZapHandler(logger.Named("supervise")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes work synchronously under the guard and reports whether it
// completed without panicking. An intercepted panic is handed to the
// handler with a fresh invocation id before Run returns false.
func (s *Supervisor) Run(scope string, work func()) bool {
	var intercepted safecall.Error
	if safecall.Execute(work, &intercepted) {
		return true
	}
	s.report(ids.NewInvocationId(), s.scopeFor(scope), &intercepted)
	return false
}

// Go runs work on a new goroutine under the same guard. There is no way
// to observe completion here; units that need one coordinate it
// themselves.
func (s *Supervisor) Go(scope string, work func()) {
	go s.Run(scope, work)
}

func (s *Supervisor) scopeFor(scope string) string {
	return defaults.StringOrDefault(scope, s.scope)
}

func (s *Supervisor) report(id InvocationId, scope string, err *safecall.Error) {
	safecall.Execute(func() {
		s.handler(id, scope, err)
	}, nil)
}
