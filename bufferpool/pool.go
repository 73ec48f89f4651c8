// Package bufferpool implements the Buffer Pool (C3): it allocates
// every device and host-mirrored buffer the router needs, sized from
// the fixed configuration and the routing graph, and is the sole owner
// of their lifetime. The Scheduler, Wavefront Kernel, and Grid Arbiter
// hold non-owning handles into it.
package bufferpool

import (
	"context"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/ocular/config"
	"github.com/sarchlab/ocular/gpu"
	"github.com/sarchlab/ocular/graph"
	"github.com/sarchlab/ocular/wavefront"
)

// Pool owns every buffer allocated for one router run. The Scheduler,
// Wavefront Kernel, and Grid Arbiter hold non-owning references into
// it; only Pool may create or release the underlying gpu.Host buffers.
type Pool struct {
	host gpu.Host

	// EdgeDst/EdgeCost mirror the routing graph's CSR edge arrays as
	// device buffers, uploaded once at construction since the graph
	// never changes across nets or outer iterations. The kernel reads
	// edges through these instead of Graph's own slices whenever a
	// Pool is in play.
	EdgeDst  gpu.Int32Buffer
	EdgeCost gpu.Int32Buffer

	// NetConfigs is the in-flight net configuration table, one slot
	// per max_in_flight index; the Scheduler writes each slot's record
	// there as it launches that slot's step.
	NetConfigs []wavefront.NetConfig

	// WorkgroupConfigs is sized to G, the total workgroup count; the
	// Wavefront Kernel records each launch's per-workgroup partition
	// into it.
	WorkgroupConfigs []wavefront.WorkgroupConfig

	// Occupancy is the grid-occupancy scratch buffer, width*height,
	// that the Grid Arbiter reads and writes through.
	Occupancy gpu.Int32Buffer

	released bool
}

// New allocates a Pool from cfg and g against host, sized per
// specification §4.3: edge mirrors sized to g's edge count, per-group
// scratch sized to cfg.NumWorkgroups, an in-flight net configuration
// table sized to cfg.MaxNetsInFlight, and a grid-occupancy map sized to
// gridWidth * gridHeight. It uploads the edge mirrors once, since the
// routing graph is immutable for the life of a run, and registers its
// own release with atexit so an embedding process that never
// explicitly calls Close still frees device resources on exit.
func New(ctx context.Context, host gpu.Host, cfg config.Config, g *graph.Graph, gridWidth, gridHeight int) (*Pool, error) {
	numEdges := len(g.EdgeDst)

	p := &Pool{
		host:             host,
		EdgeDst:          host.NewBuffer(gpu.ReadWrite, numEdges, "edge_dst"),
		EdgeCost:         host.NewBuffer(gpu.ReadWrite, numEdges, "edge_cost"),
		NetConfigs:       make([]wavefront.NetConfig, cfg.MaxNetsInFlight),
		WorkgroupConfigs: make([]wavefront.WorkgroupConfig, cfg.NumWorkgroups),
		Occupancy:        host.NewBuffer(gpu.ReadWrite, gridWidth*gridHeight, "grid_occupancy"),
	}

	for i, dst := range g.EdgeDst {
		p.EdgeDst.Set(i, dst)
	}

	for i, cost := range g.EdgeCost {
		p.EdgeCost.Set(i, cost)
	}

	if err := p.EdgeDst.Upload(ctx); err != nil {
		return nil, err
	}

	if err := p.EdgeCost.Upload(ctx); err != nil {
		return nil, err
	}

	atexit.Register(p.Release)

	return p, nil
}

// Release frees every buffer the Pool owns. It is safe to call more
// than once.
func (p *Pool) Release() {
	if p.released {
		return
	}

	p.released = true
	_ = p.host.Close()
}
