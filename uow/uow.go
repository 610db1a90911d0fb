// Package uow tracks resources acquired inside a unit of work so they are
// released on every exit path, the intercepted-panic path included. The
// guard itself never cleans up on behalf of a unit; units that own
// resources bring their own Uow.
package uow

import (
	"errors"
	"fmt"

	"github.com/safecall-io/safecall"
)

// multiErr accumulates cleanup errors behind the primary failure.
type multiErr struct {
	primary error
	cleanup []error
}

func (m *multiErr) addCleanup(err error) {
	if err != nil {
		m.cleanup = append(m.cleanup, err)
	}
}

func (m *multiErr) error() error {
	if m.primary == nil {
		return nil
	}
	if len(m.cleanup) == 0 {
		return m.primary
	}
	return errors.Join(append([]error{m.primary}, m.cleanup...)...)
}

// Uow manages rollback of acquired resources when a unit of work fails.
type Uow struct {
	cleanups []func() error
}

func UnitOfWork() *Uow {
	return &Uow{}
}

// Add registers a cleanup for a resource the unit just acquired.
func (r *Uow) Add(name string, fn func() error) {
	r.cleanups = append(r.cleanups, func() error {
		if err := fn(); err != nil {
			return fmt.Errorf("cleanup %s: %w", name, err)
		}
		return nil
	})
}

// Rollback releases registered resources in reverse order (LIFO) and
// returns primary joined with any cleanup failures.
func (r *Uow) Rollback(primary error) error {
	me := &multiErr{primary: primary}
	for i := len(r.cleanups) - 1; i >= 0; i-- {
		me.addCleanup(r.cleanups[i]())
	}
	return me.error()
}

// Commit drops the registered cleanups; the resources outlive the unit.
func (r *Uow) Commit() {
	r.cleanups = nil
}

// Protect runs fn under the panic guard. On any failure, fn's own error
// or an intercepted panic, registered resources are rolled back before
// the failure is returned. On success the unit is committed.
func (r *Uow) Protect(fn func() error) error {
	if err := safecall.DoE(fn); err != nil {
		return r.Rollback(err)
	}
	r.Commit()
	return nil
}
