// Package arch declares the architecture-database collaborator trait
// that OCuLaR routes against. The FPGA architecture (wire/pip
// enumeration, delays, availability) is owned entirely by the caller;
// this package only names the shape OCuLaR expects.
package arch

import "iter"

// WireID names a routing node in the architecture database.
type WireID int32

// PipID names a programmable interconnect point (a directed edge).
type PipID int32

// CellID names a placed logic cell whose bel anchors a grid location.
type CellID int32

// NetID names a signal net by its stable, caller-assigned identifier.
type NetID string

// Strength orders the binding strength of a wire/pip. A net is
// considered to have fixed, pre-existing routing when every one of its
// wires is bound at a strength greater than Strong.
type Strength int

// The strength ladder. Strong is the threshold named by the
// specification ("strength greater than STRONG"); anything above it is
// treated as fixed routing that the router must preserve, not rip up.
const (
	StrengthNone Strength = iota
	StrengthWeak
	Strong
	StrengthUser
	StrengthFixed
)

// Database is the read-mostly architecture collaborator. Wires and the
// pips downhill of them are exposed as iterators so a caller backed by
// a very large device does not need to materialize a full slice.
type Database interface {
	// Wires enumerates every wire in the architecture in a stable,
	// caller-defined order. The Graph Builder assigns dense indices in
	// this order.
	Wires() iter.Seq[WireID]

	// PipsDownhill enumerates the pips leading out of w.
	PipsDownhill(w WireID) iter.Seq[PipID]

	PipAvailable(p PipID) bool
	WireAvailable(w WireID) bool

	// PipDelayNs and WireDelayNs report delay in nanoseconds.
	PipDelayNs(p PipID) float64
	WireDelayNs(w WireID) float64

	PipDst(p PipID) WireID

	// WireCentroid reports the 2-D grid centroid of a wire, in 16-bit
	// signed grid coordinates.
	WireCentroid(w WireID) (x, y int16)

	// BelLocation reports the grid location of a placed cell's bel, if
	// the cell has been placed.
	BelLocation(cell CellID) (x, y int16, ok bool)

	// CellWire reports the routing-graph node a placed cell attaches to
	// (its driving output wire, or the sink pin's wire), if the cell
	// has been placed and has a routable attachment point.
	CellWire(cell CellID) (WireID, bool)

	BindPip(p PipID, net NetID) error
	UnbindPip(p PipID) error
	BindWire(w WireID, net NetID, strength Strength) error
	UnbindWire(w WireID) error
	RipupNet(name NetID) error
}
