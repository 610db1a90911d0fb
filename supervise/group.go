package supervise

import (
	"sync"

	"github.com/safecall-io/safecall"
	"github.com/safecall-io/safecall/internal/core/ids"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"
)

// Result records the outcome of one unit run by a Group. Err is nil for
// units that completed normally.
type Result struct {
	Id    InvocationId
	Scope string
	Err   *safecall.Error
}

// Group runs a batch of units concurrently, each under its own guard.
// A failed unit stays failed; the Group never restarts or retries it.
type Group struct {
	sup  *Supervisor
	pool *pool.Pool

	mu      sync.Mutex
	results []Result
}

// Group creates a batch runner bound to the supervisor's handler.
// maxWorkers bounds parallelism only; it does not preempt running units.
func (s *Supervisor) Group(maxWorkers int) *Group {
	p := pool.New()
	if maxWorkers > 0 {
		p = p.WithMaxGoroutines(maxWorkers)
	}
	return &Group{sup: s, pool: p}
}

// Go submits one unit of work.
func (g *Group) Go(scope string, work func()) {
	g.pool.Go(func() {
		id := ids.NewInvocationId()
		scope = g.sup.scopeFor(scope)

		var intercepted safecall.Error
		result := Result{Id: id, Scope: scope}
		if !safecall.Execute(work, &intercepted) {
			result.Err = &intercepted
			g.sup.report(id, scope, &intercepted)
		}

		g.mu.Lock()
		g.results = append(g.results, result)
		g.mu.Unlock()
	})
}

// Wait blocks until every submitted unit finished and returns the
// intercepted failures.
func (g *Group) Wait() []Result {
	g.pool.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	return lo.Filter(g.results, func(r Result, _ int) bool {
		return r.Err != nil
	})
}
