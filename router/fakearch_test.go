package router

import (
	"iter"

	"github.com/sarchlab/ocular/arch"
	"github.com/sarchlab/ocular/netdb"
)

// fakeArch is a small, entirely in-memory arch.Database used by the
// router package's own tests. It is not a mock: it holds real state
// (wires, pips, bindings) and answers queries from it, the way a real
// architecture database would, just at toy scale.
type fakeArch struct {
	wires     []arch.WireID
	pipsFrom  map[arch.WireID][]arch.PipID
	pipDst    map[arch.PipID]arch.WireID
	pipDelay  map[arch.PipID]float64
	wireDelay map[arch.WireID]float64
	centroid  map[arch.WireID][2]int16
	belLoc    map[arch.CellID][2]int16
	cellWire  map[arch.CellID]arch.WireID
	boundPips []arch.PipID
	boundNets []arch.NetID
}

func newFakeArch() *fakeArch {
	return &fakeArch{
		pipsFrom:  make(map[arch.WireID][]arch.PipID),
		pipDst:    make(map[arch.PipID]arch.WireID),
		pipDelay:  make(map[arch.PipID]float64),
		wireDelay: make(map[arch.WireID]float64),
		centroid:  make(map[arch.WireID][2]int16),
		belLoc:    make(map[arch.CellID][2]int16),
		cellWire:  make(map[arch.CellID]arch.WireID),
	}
}

func (a *fakeArch) addWire(w arch.WireID, x, y int16) {
	a.wires = append(a.wires, w)
	a.centroid[w] = [2]int16{x, y}
	a.wireDelay[w] = 0.1
}

func (a *fakeArch) addPip(p arch.PipID, src, dst arch.WireID) {
	a.pipsFrom[src] = append(a.pipsFrom[src], p)
	a.pipDst[p] = dst
	a.pipDelay[p] = 0.1
}

func (a *fakeArch) placeCell(c arch.CellID, w arch.WireID, x, y int16) {
	a.cellWire[c] = w
	a.belLoc[c] = [2]int16{x, y}
}

func (a *fakeArch) Wires() iter.Seq[arch.WireID] {
	return func(yield func(arch.WireID) bool) {
		for _, w := range a.wires {
			if !yield(w) {
				return
			}
		}
	}
}

func (a *fakeArch) PipsDownhill(w arch.WireID) iter.Seq[arch.PipID] {
	return func(yield func(arch.PipID) bool) {
		for _, p := range a.pipsFrom[w] {
			if !yield(p) {
				return
			}
		}
	}
}

func (a *fakeArch) PipAvailable(arch.PipID) bool   { return true }
func (a *fakeArch) WireAvailable(arch.WireID) bool { return true }

func (a *fakeArch) PipDelayNs(p arch.PipID) float64   { return a.pipDelay[p] }
func (a *fakeArch) WireDelayNs(w arch.WireID) float64 { return a.wireDelay[w] }

func (a *fakeArch) PipDst(p arch.PipID) arch.WireID { return a.pipDst[p] }

func (a *fakeArch) WireCentroid(w arch.WireID) (int16, int16) {
	c := a.centroid[w]
	return c[0], c[1]
}

func (a *fakeArch) BelLocation(cell arch.CellID) (int16, int16, bool) {
	c, ok := a.belLoc[cell]
	return c[0], c[1], ok
}

func (a *fakeArch) CellWire(cell arch.CellID) (arch.WireID, bool) {
	w, ok := a.cellWire[cell]
	return w, ok
}

func (a *fakeArch) BindPip(p arch.PipID, net arch.NetID) error {
	a.boundPips = append(a.boundPips, p)
	a.boundNets = append(a.boundNets, net)

	return nil
}

func (a *fakeArch) UnbindPip(arch.PipID) error { return nil }

func (a *fakeArch) BindWire(arch.WireID, arch.NetID, arch.Strength) error { return nil }

func (a *fakeArch) UnbindWire(arch.WireID) error { return nil }
func (a *fakeArch) RipupNet(arch.NetID) error    { return nil }

// fakeNetDB is the matching in-memory netdb.Database.
type fakeNetDB struct {
	order  []arch.NetID
	driver map[arch.NetID]arch.CellID
	sinks  map[arch.NetID][]arch.CellID
}

func newFakeNetDB() *fakeNetDB {
	return &fakeNetDB{driver: make(map[arch.NetID]arch.CellID), sinks: make(map[arch.NetID][]arch.CellID)}
}

func (n *fakeNetDB) addNet(id arch.NetID, driver arch.CellID, sinks ...arch.CellID) {
	n.order = append(n.order, id)
	n.driver[id] = driver
	n.sinks[id] = sinks
}

func (n *fakeNetDB) Nets() iter.Seq[arch.NetID] {
	return func(yield func(arch.NetID) bool) {
		for _, id := range n.order {
			if !yield(id) {
				return
			}
		}
	}
}

func (n *fakeNetDB) Driver(id arch.NetID) (arch.CellID, bool) {
	c, ok := n.driver[id]
	return c, ok
}

func (n *fakeNetDB) Sinks(id arch.NetID) []arch.CellID {
	return n.sinks[id]
}

func (n *fakeNetDB) ExistingBindings(arch.NetID) []netdb.WireBinding {
	return nil
}
