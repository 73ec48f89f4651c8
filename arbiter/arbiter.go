// Package arbiter implements the Grid Arbiter (C4): a flat occupancy
// map over the device's grid cells that lets the Scheduler test and
// claim a net's bounding box without two in-flight nets ever sharing a
// cell.
package arbiter

import (
	"fmt"

	"github.com/sarchlab/ocular/gpu"
	"github.com/sarchlab/ocular/netimport"
	"github.com/sarchlab/ocular/ocerr"
)

// Free is the occupancy value of an unclaimed cell.
const Free = -1

// Arbiter maps every grid cell to the in-flight slot currently
// occupying it, or Free. grid2net is a non-owning handle into the
// Buffer Pool's occupancy buffer; the Arbiter never allocates it.
type Arbiter struct {
	width, height int
	grid2net      gpu.Int32Buffer
}

// New wraps occ, a width*height Buffer Pool-owned occupancy buffer, as
// an Arbiter, stamping every cell Free.
func New(occ gpu.Int32Buffer, width, height int) *Arbiter {
	a := &Arbiter{width: width, height: height, grid2net: occ}

	for i := 0; i < occ.Len(); i++ {
		a.grid2net.Set(i, Free)
	}

	return a
}

func (a *Arbiter) index(x, y int) (int, error) {
	if x < 0 || x >= a.width || y < 0 || y >= a.height {
		return 0, ocerr.New(ocerr.Graph, "Arbiter",
			fmt.Errorf("cell (%d, %d) outside %dx%d grid", x, y, a.width, a.height))
	}

	return y*a.width + x, nil
}

// CheckRegion reports whether every cell in bb currently equals v. A
// caller testing "is this bounding box free" passes v = Free.
func (a *Arbiter) CheckRegion(bb netimport.BBox, v int32) bool {
	if bb.Empty() {
		return true
	}

	for y := bb.Y0; y <= bb.Y1; y++ {
		for x := bb.X0; x <= bb.X1; x++ {
			i, err := a.index(x, y)
			if err != nil || a.grid2net.Get(i) != v {
				return false
			}
		}
	}

	return true
}

// MarkRegion stamps every cell in bb with v.
func (a *Arbiter) MarkRegion(bb netimport.BBox, v int32) error {
	if bb.Empty() {
		return nil
	}

	for y := bb.Y0; y <= bb.Y1; y++ {
		for x := bb.X0; x <= bb.X1; x++ {
			i, err := a.index(x, y)
			if err != nil {
				return err
			}

			a.grid2net.Set(i, v)
		}
	}

	return nil
}

// Claim atomically checks that bb is free and, if so, marks it with
// slot. It reports whether the claim succeeded.
func (a *Arbiter) Claim(bb netimport.BBox, slot int32) bool {
	if !a.CheckRegion(bb, Free) {
		return false
	}

	_ = a.MarkRegion(bb, slot)

	return true
}

// Release marks bb Free again, the way the Scheduler vacates a slot
// once its net has been bound.
func (a *Arbiter) Release(bb netimport.BBox) {
	_ = a.MarkRegion(bb, Free)
}
