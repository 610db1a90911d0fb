package safecall

import "sync/atomic"

// Catcher is a reusable interception point: it runs any number of
// functions, possibly from multiple goroutines, and retains the first
// intercepted panic. The zero value is ready to use.
type Catcher struct {
	recovered atomic.Pointer[Error]
}

// Try runs fn, keeping the intercepted panic if it is the first one seen.
func (c *Catcher) Try(fn func()) {
	defer func() {
		if recovered := recover(); recovered != nil {
			c.recovered.CompareAndSwap(nil, intercept(recovered))
		}
	}()

	fn()
}

// Recovered returns the first intercepted panic, or nil.
func (c *Catcher) Recovered() *Error {
	return c.recovered.Load()
}

// Repanic re-raises the first intercepted panic, if any. Propagation is
// always this explicit call, never automatic.
func (c *Catcher) Repanic() {
	if e := c.recovered.Load(); e != nil {
		panic(e)
	}
}
