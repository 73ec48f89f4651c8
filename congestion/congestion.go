// Package congestion implements the Congestion Loop (C7): the classic
// Pathfinder-style negotiated-congestion outer iteration that rips up
// non-fixed nets, hands them to the Scheduler, inflates the cost of
// nodes multiple nets still contend for, and retries until every net is
// bound without overuse or the iteration budget is exhausted.
package congestion

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/sarchlab/ocular/arbiter"
	"github.com/sarchlab/ocular/arch"
	"github.com/sarchlab/ocular/binder"
	"github.com/sarchlab/ocular/bufferpool"
	"github.com/sarchlab/ocular/config"
	"github.com/sarchlab/ocular/graph"
	"github.com/sarchlab/ocular/gpu"
	"github.com/sarchlab/ocular/hook"
	"github.com/sarchlab/ocular/netimport"
	"github.com/sarchlab/ocular/ocerr"
	"github.com/sarchlab/ocular/scheduler"
	"github.com/sarchlab/ocular/wavefront"
)

// Loop drives the negotiated-congestion outer iteration for one set of
// nets against one architecture database and graph.
type Loop struct {
	*hook.Base

	graph  *graph.Graph
	adb    arch.Database
	arb    *arbiter.Arbiter
	host   gpu.Host
	cfg    config.Config
	width  int
	height int
	pool   *bufferpool.Pool
}

// New creates a Loop. width and height are the device grid dimensions.
// pool is the Buffer Pool the Router allocated for this run; the Loop
// hands it down to every outer iteration's Scheduler.
func New(g *graph.Graph, adb arch.Database, arb *arbiter.Arbiter, host gpu.Host, cfg config.Config, width, height int, pool *bufferpool.Pool) *Loop {
	return &Loop{Base: hook.NewBase(), graph: g, adb: adb, arb: arb, host: host, cfg: cfg, width: width, height: height, pool: pool}
}

// Run routes every net in nets, returning nil once every net is bound
// without overuse, or an *ocerr.Error{Kind: Unroutable} if cfg.MaxOuterIters
// is exceeded with overused nodes still remaining.
func (l *Loop) Run(ctx context.Context, nets []*netimport.Net) error {
	cong := wavefront.NewCongestion(l.graph.W)

	fixedBound := fixedContribution(nets)

	currCongCost := 1.0
	pending := routableNets(nets)
	unrouted := len(pending)

	for iter := 0; iter < l.cfg.MaxOuterIters; iter++ {
		cong.ResetBoundCount(func(i int32) int32 { return fixedBound[i] })

		if err := ripUpPending(l.adb, pending); err != nil {
			return err
		}

		sortByCriticality(pending)

		sched := scheduler.New(l.arb, l.graph, l.host, l.cfg, l.width, l.height, cong, l.pool)
		l.ForwardTo(sched)

		bindFn := func(net *netimport.Net, state *wavefront.State) error {
			return binder.Bind(l.adb, l.graph, state, net, l.Base)
		}

		stillPending, err := sched.RunIteration(ctx, pending, currCongCost, bindFn)
		if err != nil {
			return err
		}

		overused := overusedNodes(cong, l.graph.W)
		if len(overused) == 0 && len(stillPending) == 0 {
			if l.pool != nil {
				// Pull the Grid Arbiter's final occupancy map back to
				// the host mirror now that every net is bound, the way
				// a real accelerator backend would sync device state
				// before the caller inspects it.
				_ = l.pool.Occupancy.Download(ctx)
			}

			return nil
		}

		for _, i := range overused {
			l.InvokeHook(hook.Ctx{Domain: l, Pos: hook.PosNodeOverused, Item: i})

			overuse := cong.BoundCount(i) - 1
			cong.InflateHistCost(i, overuse*l.cfg.HistCostInc)
		}

		currCongCost *= l.cfg.PresentCostGrowth

		unrouted = len(stillPending)
	}

	return ocerr.New(ocerr.Unroutable, "Run",
		fmt.Errorf("exceeded %d outer iterations with %d nets unrouted", l.cfg.MaxOuterIters, unrouted))
}

// ripUpPending unbinds every net about to be (re)routed this iteration,
// so a net that is being retried after a prior partial or abandoned
// attempt never leaves stale pips bound in adb. Ripping up a net with
// no existing bindings is a no-op.
func ripUpPending(adb arch.Database, pending []*netimport.Net) error {
	for _, n := range pending {
		if err := adb.RipupNet(n.ID); err != nil {
			return ocerr.New(ocerr.Graph, "ripUpPending", err)
		}
	}

	return nil
}

// routableNets drops fixed_routing and undriven nets: the former is
// already bound by definition, the latter has nothing to route.
func routableNets(nets []*netimport.Net) []*netimport.Net {
	var out []*netimport.Net

	for _, n := range nets {
		if n.FixedRouting || n.Undriven {
			continue
		}

		out = append(out, n)
	}

	return out
}

// fixedContribution computes, per graph node, how many fixed_routing
// nets already occupy it — the "contribution supplied by keep" that
// ResetBoundCount preserves across every rip-up.
func fixedContribution(nets []*netimport.Net) map[int32]int32 {
	contrib := make(map[int32]int32)

	for _, n := range nets {
		if !n.FixedRouting {
			continue
		}

		for _, w := range n.FixedWires {
			contrib[w]++
		}
	}

	return contrib
}

// sortByCriticality orders nets by descending fanout (sink count), a
// simple, well-known stand-in for a timing-driven criticality metric
// when no delay budget input is available, with a stable tiebreak on
// each net's original import order so equally-critical nets keep a
// deterministic admission order run to run.
func sortByCriticality(nets []*netimport.Net) {
	slices.SortStableFunc(nets, func(a, b *netimport.Net) int {
		if c := cmp.Compare(len(b.Sinks), len(a.Sinks)); c != 0 {
			return c
		}

		return cmp.Compare(a.Rank, b.Rank)
	})
}

// overusedNodes returns every node index whose bound_count exceeds 1,
// in ascending index order.
func overusedNodes(cong *wavefront.Congestion, w int) []int32 {
	var out []int32

	for i := int32(0); i < int32(w); i++ {
		if cong.BoundCount(i) > 1 {
			out = append(out, i)
		}
	}

	return out
}
