// Package netdb declares the net/cell bookkeeping collaborator trait.
// Net and cell mutation is entirely owned by the caller; OCuLaR only
// reads from this interface.
package netdb

import (
	"iter"

	"github.com/sarchlab/ocular/arch"
)

// WireBinding records that a wire is already bound to a net at some
// strength, as reported by the architecture database's own bookkeeping
// but surfaced here so the Net Importer does not need two collaborator
// round trips per wire.
type WireBinding struct {
	Wire     arch.WireID
	Strength arch.Strength
}

// Database is the read-mostly net collaborator.
type Database interface {
	// Nets enumerates every net by its stable name.
	Nets() iter.Seq[arch.NetID]

	// Driver returns the net's driver cell, if it has one. A net with
	// no driver is "undriven" and is skipped by the router.
	Driver(n arch.NetID) (arch.CellID, bool)

	// Sinks returns the net's sink cells.
	Sinks(n arch.NetID) []arch.CellID

	// ExistingBindings returns the net's pre-existing wire bindings,
	// used to detect fixed and partially-fixed routing.
	ExistingBindings(n arch.NetID) []WireBinding
}
