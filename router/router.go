// Package router is OCuLaR's public entry point: it wires the Graph
// Builder, Net Importer, Grid Arbiter, Congestion Loop, Scheduler,
// Wavefront Kernel, and Backtrace & Binder together into one call that
// takes an architecture database, a net database, and a GPU host, and
// returns once every net is bound or the design is proven unroutable.
package router

import (
	"context"
	"fmt"

	"github.com/sarchlab/ocular/arbiter"
	"github.com/sarchlab/ocular/arch"
	"github.com/sarchlab/ocular/bufferpool"
	"github.com/sarchlab/ocular/config"
	"github.com/sarchlab/ocular/congestion"
	"github.com/sarchlab/ocular/graph"
	"github.com/sarchlab/ocular/gpu"
	"github.com/sarchlab/ocular/hook"
	"github.com/sarchlab/ocular/netdb"
	"github.com/sarchlab/ocular/netimport"
	"github.com/sarchlab/ocular/ocerr"
	"github.com/sarchlab/ocular/trace"
)

// Router routes every net of one design once built. It holds no global
// state; every dependency is supplied by the caller through Builder.
type Router struct {
	*hook.Base

	adb        arch.Database
	ndb        netdb.Database
	host       gpu.Host
	cfg        config.Config
	gridWidth  int
	gridHeight int
}

// Builder constructs a Router. Its zero value is not usable; start from
// MakeBuilder.
type Builder struct {
	adb        arch.Database
	ndb        netdb.Database
	host       gpu.Host
	cfg        config.Config
	gridWidth  int
	gridHeight int
	recorder   trace.Recorder
}

// MakeBuilder creates a Builder pre-populated with the specification's
// default configuration.
func MakeBuilder() Builder {
	return Builder{cfg: config.Default()}
}

// WithArch sets the architecture database.
func (b Builder) WithArch(adb arch.Database) Builder {
	b.adb = adb
	return b
}

// WithNetDB sets the net database.
func (b Builder) WithNetDB(ndb netdb.Database) Builder {
	b.ndb = ndb
	return b
}

// WithHost sets the GPU host abstraction. Use swdevice.New() for an
// in-process software device.
func (b Builder) WithHost(host gpu.Host) Builder {
	b.host = host
	return b
}

// WithConfig overrides the default configuration wholesale.
func (b Builder) WithConfig(cfg config.Config) Builder {
	b.cfg = cfg
	return b
}

// WithGridSize sets the device grid dimensions, used by the Grid
// Arbiter's occupancy map and bounding-box growth clamp.
func (b Builder) WithGridSize(width, height int) Builder {
	b.gridWidth = width
	b.gridHeight = height
	return b
}

// WithRecorder attaches a trace.Recorder to every hook position the
// Router itself fires (net admission, successful completion of the
// run, and unroutable termination). If host also accepts hooks, the same
// recorder is attached there too, so wavefront step completions show
// up in the same trace.
func (b Builder) WithRecorder(rec trace.Recorder) Builder {
	b.recorder = rec
	return b
}

// Build validates the builder's configuration and constructs a Router.
func (b Builder) Build() (*Router, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}

	if b.adb == nil || b.ndb == nil || b.host == nil {
		return nil, ocerr.New(ocerr.Config, "Build",
			fmt.Errorf("arch database, net database, and GPU host are all required"))
	}

	if b.gridWidth <= 0 || b.gridHeight <= 0 {
		return nil, ocerr.New(ocerr.Config, "Build",
			fmt.Errorf("grid size must be positive, got %dx%d", b.gridWidth, b.gridHeight))
	}

	r := &Router{
		Base:       hook.NewBase(),
		adb:        b.adb,
		ndb:        b.ndb,
		host:       b.host,
		cfg:        b.cfg,
		gridWidth:  b.gridWidth,
		gridHeight: b.gridHeight,
	}

	if b.recorder != nil {
		h := trace.NewHook(b.recorder)
		r.AcceptHook(h)

		if hookable, ok := b.host.(hook.Hookable); ok {
			hookable.AcceptHook(h)
		}
	}

	return r, nil
}

// RouteAll builds the routing graph, imports every net, and runs the
// negotiated-congestion loop to completion. It fires hook.PosNetAdmitted
// once per net that clears the initial import pass, and
// hook.PosIterationDone or hook.PosUnroutable when the run concludes.
func (r *Router) RouteAll(ctx context.Context) error {
	g, err := graph.Build(r.adb, r.cfg)
	if err != nil {
		return err
	}

	nets, err := netimport.Import(r.ndb, r.adb, g)
	if err != nil {
		return err
	}

	for _, n := range nets {
		r.InvokeHook(hook.Ctx{Domain: r, Pos: hook.PosNetAdmitted, Item: n})
	}

	pool, err := bufferpool.New(ctx, r.host, r.cfg, g, r.gridWidth, r.gridHeight)
	if err != nil {
		return err
	}

	arb := arbiter.New(pool.Occupancy, r.gridWidth, r.gridHeight)
	loop := congestion.New(g, r.adb, arb, r.host, r.cfg, r.gridWidth, r.gridHeight, pool)
	r.ForwardTo(loop)

	err = loop.Run(ctx, nets)

	if err != nil {
		r.InvokeHook(hook.Ctx{Domain: r, Pos: hook.PosUnroutable, Detail: err})
		return err
	}

	r.InvokeHook(hook.Ctx{Domain: r, Pos: hook.PosIterationDone})

	return nil
}
