// Package binder implements the Backtrace & Binder (C6): once a net's
// sinks have all settled, it walks the predecessor edges recorded in
// wavefront.State back to the driver (or to any wire already claimed by
// an earlier sink of the same net, supporting Steiner-tree sharing),
// binds the walked pips into the architecture database, and resets the
// per-node routing state that the walk touched.
package binder

import (
	"fmt"

	"github.com/sarchlab/ocular/arch"
	"github.com/sarchlab/ocular/graph"
	"github.com/sarchlab/ocular/hook"
	"github.com/sarchlab/ocular/netimport"
	"github.com/sarchlab/ocular/ocerr"
	"github.com/sarchlab/ocular/wavefront"
)

// Bind walks every sink of net back to the driver (or an already-bound
// node of this net) and binds the traversed pips in adb. It increments
// state's bound_count on each newly visited node, then resets every
// node the exploration touched via state.ResetTouched. On success it
// fires hook.PosNetBound on hooks, which may be nil.
func Bind(adb arch.Database, g *graph.Graph, state *wavefront.State, net *netimport.Net, hooks *hook.Base) error {
	bound := make(map[int32]bool, len(net.FixedWires))

	for _, w := range net.FixedWires {
		bound[w] = true
	}

	for _, sink := range net.Sinks {
		if err := backtraceOne(adb, g, state, net, sink, bound); err != nil {
			return err
		}
	}

	state.ResetTouched()

	if hooks != nil {
		hooks.InvokeHook(hook.Ctx{Domain: hooks, Pos: hook.PosNetBound, Item: net})
	}

	return nil
}

// backtraceOne walks from sink toward the driver, stopping early at any
// node already marked bound — either a fixed wire or a node reached by
// an earlier sink of the same net — which is how sinks sharing part of
// a route end up sharing pips instead of each cutting an independent
// path to the driver.
func backtraceOne(adb arch.Database, g *graph.Graph, state *wavefront.State, net *netimport.Net, sink int32, bound map[int32]bool) error {
	v := sink

	for {
		if bound[v] {
			return nil
		}

		if v == net.Driver {
			state.IncrementBound(v)
			bound[v] = true

			return nil
		}

		edge := state.UphillEdge(v)
		if edge < 0 {
			return ocerr.New(ocerr.Graph, "backtraceOne",
				fmt.Errorf("net %s: node %d has no uphill edge and is not the driver", net.ID, v))
		}

		pip := g.EdgePip[edge]
		if err := adb.BindPip(pip, net.ID); err != nil {
			return ocerr.New(ocerr.Graph, "backtraceOne", err)
		}

		if !bound[v] {
			state.IncrementBound(v)
		}

		bound[v] = true

		u := predecessorOf(g, edge)
		v = u
	}
}

// predecessorOf returns the source node of the edge at index e. The CSR
// layout stores edges grouped by source but not the source index
// itself, so this does a binary search over the adjacency offsets — cheap
// relative to a kernel step, and only ever run once per bound edge
// during backtrace.
func predecessorOf(g *graph.Graph, edge int32) int32 {
	lo, hi := 0, g.W

	for lo < hi {
		mid := (lo + hi) / 2

		start, end := g.Edges(int32(mid))
		if edge < start {
			hi = mid
		} else if edge >= end {
			lo = mid + 1
		} else {
			return int32(mid)
		}
	}

	panic("binder: edge index out of range of any node's adjacency")
}
