// Package graph implements the Graph Builder (C1): it flattens an
// arbitrary FPGA routing graph exposed by an arch.Database into a
// GPU-friendly compressed sparse row (CSR) adjacency list with integer
// edge costs and per-wire centroid coordinates.
package graph

import (
	"fmt"
	"math"

	"github.com/sarchlab/ocular/arch"
	"github.com/sarchlab/ocular/config"
	"github.com/sarchlab/ocular/ocerr"
)

// Graph is the immutable, dense CSR adjacency produced by Build. It is
// a pure function of the architecture database snapshot it was built
// from.
type Graph struct {
	// W is the number of routing nodes.
	W int

	// AdjOffset has length W+1; AdjOffset[W] is the total edge count.
	AdjOffset []int32
	EdgeDst   []int32
	EdgeCost  []int32

	// EdgePip is host-side only: the opaque pip identifier behind each
	// edge, used by the Backtrace & Binder to bind pips.
	EdgePip []arch.PipID

	// WireX/WireY are 16-bit signed grid centroids, indexed by dense
	// node index.
	WireX []int16
	WireY []int16

	// Handle maps a dense node index back to the external wire handle.
	Handle []arch.WireID

	index map[arch.WireID]int32
}

// NodeOf returns the dense index of an external wire handle, and
// whether that wire was included in the graph (wires can be omitted
// only in pathological databases; Build indexes every enumerated wire).
func (g *Graph) NodeOf(w arch.WireID) (int32, bool) {
	i, ok := g.index[w]
	return i, ok
}

// Edges returns the half-open edge index range of node i's outgoing
// edges.
func (g *Graph) Edges(i int32) (start, end int32) {
	return g.AdjOffset[i], g.AdjOffset[i+1]
}

// Build flattens db into a CSR Graph. Indices are dense in [0, W) and
// assigned in database wire-enumeration order.
func Build(db arch.Database, cfg config.Config) (*Graph, error) {
	g := &Graph{index: make(map[arch.WireID]int32)}

	for w := range db.Wires() {
		idx := int32(len(g.Handle))
		g.index[w] = idx
		g.Handle = append(g.Handle, w)

		x, y := db.WireCentroid(w)
		g.WireX = append(g.WireX, x)
		g.WireY = append(g.WireY, y)
	}

	g.W = len(g.Handle)
	g.AdjOffset = make([]int32, g.W+1)

	for i, w := range g.Handle {
		g.AdjOffset[i] = int32(len(g.EdgeDst))

		if !db.WireAvailable(w) {
			continue
		}

		for p := range db.PipsDownhill(w) {
			if !db.PipAvailable(p) {
				continue
			}

			dstWire := db.PipDst(p)
			if !db.WireAvailable(dstWire) {
				continue
			}

			dstIdx, ok := g.index[dstWire]
			if !ok {
				return nil, ocerr.New(ocerr.Graph, "Build",
					fmt.Errorf("pip %v downhill of wire %v targets an unindexed wire %v", p, w, dstWire))
			}

			cost := edgeCost(db, p, dstWire, cfg.DelayScale)

			g.EdgeDst = append(g.EdgeDst, dstIdx)
			g.EdgeCost = append(g.EdgeCost, cost)
			g.EdgePip = append(g.EdgePip, p)
		}
	}

	g.AdjOffset[g.W] = int32(len(g.EdgeDst))

	if err := g.validate(); err != nil {
		return nil, err
	}

	return g, nil
}

func edgeCost(db arch.Database, p arch.PipID, dstWire arch.WireID, delayScale int) int32 {
	delay := db.PipDelayNs(p) + db.WireDelayNs(dstWire)
	return int32(math.Round(delay * float64(delayScale)))
}

// validate checks the CSR well-formedness invariant from the
// specification: AdjOffset[0] = 0, AdjOffset is non-decreasing,
// AdjOffset[W] = len(EdgeDst), and every EdgeDst[e] is in [0, W).
func (g *Graph) validate() error {
	if g.AdjOffset[0] != 0 {
		return ocerr.New(ocerr.Graph, "validate", fmt.Errorf("adj_offset[0] = %d, want 0", g.AdjOffset[0]))
	}

	for i := 0; i < g.W; i++ {
		if g.AdjOffset[i+1] < g.AdjOffset[i] {
			return ocerr.New(ocerr.Graph, "validate",
				fmt.Errorf("adj_offset not non-decreasing at %d: %d > %d", i, g.AdjOffset[i], g.AdjOffset[i+1]))
		}
	}

	if int(g.AdjOffset[g.W]) != len(g.EdgeDst) {
		return ocerr.New(ocerr.Graph, "validate",
			fmt.Errorf("adj_offset[W] = %d, want %d", g.AdjOffset[g.W], len(g.EdgeDst)))
	}

	for e, dst := range g.EdgeDst {
		if dst < 0 || int(dst) >= g.W {
			return ocerr.New(ocerr.Graph, "validate",
				fmt.Errorf("edge_dst[%d] = %d out of range [0, %d)", e, dst, g.W))
		}
	}

	return nil
}
