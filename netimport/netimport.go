// Package netimport implements the Net Importer (C2): it materializes
// per-net metadata (bounding box, driver, sinks, fixed/pre-routed
// state) from the net database, the architecture database, and the
// just-built routing graph.
package netimport

import (
	"fmt"
	"math"

	"github.com/sarchlab/ocular/arch"
	"github.com/sarchlab/ocular/graph"
	"github.com/sarchlab/ocular/netdb"
	"github.com/sarchlab/ocular/ocerr"
)

// BBox is an axis-aligned, inclusive bounding box in grid coordinates.
type BBox struct {
	X0, Y0, X1, Y1 int
}

// Empty reports whether b spans no cells.
func (b BBox) Empty() bool {
	return b.X1 < b.X0 || b.Y1 < b.Y0
}

// Union returns the smallest BBox containing both b and o. Unioning
// with an Empty BBox returns the other operand unchanged.
func (b BBox) Union(o BBox) BBox {
	if b.Empty() {
		return o
	}

	if o.Empty() {
		return b
	}

	return BBox{
		X0: min(b.X0, o.X0),
		Y0: min(b.Y0, o.Y0),
		X1: max(b.X1, o.X1),
		Y1: max(b.Y1, o.Y1),
	}
}

// Contains reports whether (x, y) falls inside b.
func (b BBox) Contains(x, y int16) bool {
	return int(x) >= b.X0 && int(x) <= b.X1 && int(y) >= b.Y0 && int(y) <= b.Y1
}

// Inflate grows b by n cells in each direction, clamped to the device
// grid [0, width) x [0, height).
func (b BBox) Inflate(n, width, height int) BBox {
	return BBox{
		X0: max(0, b.X0-n),
		Y0: max(0, b.Y0-n),
		X1: min(width-1, b.X1+n),
		Y1: min(height-1, b.Y1+n),
	}
}

// Area returns the number of grid cells spanned by b.
func (b BBox) Area() int {
	if b.Empty() {
		return 0
	}

	return (b.X1 - b.X0 + 1) * (b.Y1 - b.Y0 + 1)
}

// Net is the router's view of one signal net.
type Net struct {
	ID   arch.NetID
	Rank int // stable original order, used as a criticality tiebreak

	// Driver is the driver's node index in the graph, or -1 if the net
	// is undriven.
	Driver int32

	// Sinks are the sink node indices in the graph.
	Sinks []int32

	// FixedWires are the already-bound wires of a fixed_routing net, as
	// graph node indices.
	FixedWires []int32

	BBox         BBox
	FixedRouting bool
	Undriven     bool
}

// Import materializes every net's metadata from ndb/adb against g.
func Import(ndb netdb.Database, adb arch.Database, g *graph.Graph) ([]*Net, error) {
	var nets []*Net

	rank := 0
	for id := range ndb.Nets() {
		n, err := importOne(ndb, adb, g, id, rank)
		if err != nil {
			return nil, err
		}

		nets = append(nets, n)
		rank++
	}

	return nets, nil
}

func importOne(ndb netdb.Database, adb arch.Database, g *graph.Graph, id arch.NetID, rank int) (*Net, error) {
	n := &Net{ID: id, Rank: rank, Driver: -1}

	driverCell, hasDriver := ndb.Driver(id)
	if !hasDriver {
		n.Undriven = true
	} else {
		n.BBox = n.BBox.Union(cellBBox(adb, driverCell))

		if w, ok := adb.CellWire(driverCell); ok {
			idx, found := g.NodeOf(w)
			if !found {
				return nil, ocerr.New(ocerr.Graph, "importOne",
					fmt.Errorf("net %s driver wire %v is not a graph node", id, w))
			}

			n.Driver = idx
		} else {
			n.Undriven = true
		}
	}

	for _, sinkCell := range ndb.Sinks(id) {
		n.BBox = n.BBox.Union(cellBBox(adb, sinkCell))

		w, ok := adb.CellWire(sinkCell)
		if !ok {
			continue
		}

		idx, found := g.NodeOf(w)
		if !found {
			return nil, ocerr.New(ocerr.Graph, "importOne",
				fmt.Errorf("net %s sink wire %v is not a graph node", id, w))
		}

		n.Sinks = append(n.Sinks, idx)
	}

	if err := classifyExisting(adb, g, n, ndb.ExistingBindings(id)); err != nil {
		return nil, err
	}

	return n, nil
}

func cellBBox(adb arch.Database, cell arch.CellID) BBox {
	x, y, ok := adb.BelLocation(cell)
	if !ok {
		return BBox{X0: math.MaxInt, Y0: math.MaxInt, X1: math.MinInt, Y1: math.MinInt}
	}

	return BBox{int(x), int(y), int(x), int(y)}
}

// classifyExisting detects fixed vs. mixed vs. rip-up-able pre-existing
// routing, per the specification: a net whose wires are all bound at a
// strength greater than Strong is fixed_routing; a net with some but
// not all wires so bound is a fatal FixedRoutingConflict; anything else
// has stale, non-fixed routing (e.g. a global clock routed by an
// earlier pass) and is ripped up in adb so the congestion loop starts
// the net from a clean slate.
func classifyExisting(adb arch.Database, g *graph.Graph, n *Net, bindings []netdb.WireBinding) error {
	if len(bindings) == 0 {
		return nil
	}

	strongCount := 0

	for _, b := range bindings {
		if b.Strength > arch.Strong {
			strongCount++
		}
	}

	if strongCount == 0 {
		if err := adb.RipupNet(n.ID); err != nil {
			return ocerr.New(ocerr.Graph, "classifyExisting", err)
		}

		return nil
	}

	if strongCount != len(bindings) {
		return ocerr.New(ocerr.FixedRoutingConflict, "classifyExisting",
			fmt.Errorf("net %s has %d of %d wires fixed at strength > Strong", n.ID, strongCount, len(bindings)))
	}

	n.FixedRouting = true

	for _, b := range bindings {
		idx, ok := g.NodeOf(b.Wire)
		if !ok {
			return ocerr.New(ocerr.FixedRoutingConflict, "classifyExisting",
				fmt.Errorf("net %s fixed wire %v is not a graph node", n.ID, b.Wire))
		}

		n.FixedWires = append(n.FixedWires, idx)
	}

	return nil
}
