// Package scheduler implements the Scheduler (C8): it keeps up to
// max_in_flight nets active at once, admitting them past the Grid
// Arbiter, pumping the Wavefront Kernel until every sink settles, and
// handing converged nets off to the Backtrace & Binder.
package scheduler

import (
	"context"

	"github.com/sarchlab/ocular/arbiter"
	"github.com/sarchlab/ocular/bufferpool"
	"github.com/sarchlab/ocular/config"
	"github.com/sarchlab/ocular/graph"
	"github.com/sarchlab/ocular/gpu"
	"github.com/sarchlab/ocular/hook"
	"github.com/sarchlab/ocular/netimport"
	"github.com/sarchlab/ocular/ocerr"
	"github.com/sarchlab/ocular/wavefront"
)

// BindFunc converges a settled net's state into architecture bindings.
// The Scheduler calls it once per net, after every sink has settled and
// before the net's slot is vacated.
type BindFunc func(net *netimport.Net, state *wavefront.State) error

// Scheduler runs one outer iteration's worth of net admission and
// stepping. It is not safe for concurrent use; the specification's
// concurrency model confines all scheduling decisions to a single host
// control thread.
type Scheduler struct {
	*hook.Base

	arb    *arbiter.Arbiter
	graph  *graph.Graph
	host   gpu.Host
	cfg    config.Config
	width  int
	height int
	cong   *wavefront.Congestion
	pool   *bufferpool.Pool

	slots []*slot
}

type slot struct {
	net          *netimport.Net
	state        *wavefront.State
	stuckSteps   int
	lastFrontier int
	stepsUsed    int

	// settled tracks, per index into net.Sinks, whether that sink has
	// already fired hook.PosSinkSettled, so a sink that stays settled
	// across further steps does not refire it every step.
	settled []bool

	// nearFarThresh is this slot's current near/far cutoff. It starts
	// at zero, so a newly admitted net's first step relaxes everything
	// into the far queue, and RefillFromFar establishes the first real
	// threshold from whatever that step actually discovered.
	nearFarThresh int32
}

// New creates a Scheduler bound to arb and g, driving kernel launches
// against host, sized by cfg.MaxNetsInFlight concurrent slots. width
// and height are the device grid dimensions, needed to clamp bounding
// box growth. cong is the run-wide bound_count/hist_cost table; the
// Congestion Loop owns it and shares it across every outer iteration.
// pool is the Buffer Pool the Router allocated for this run and the
// Congestion Loop hands down; the Scheduler holds only a non-owning
// reference to it.
func New(arb *arbiter.Arbiter, g *graph.Graph, host gpu.Host, cfg config.Config, width, height int, cong *wavefront.Congestion, pool *bufferpool.Pool) *Scheduler {
	return &Scheduler{
		Base:   hook.NewBase(),
		arb:    arb,
		graph:  g,
		host:   host,
		cfg:    cfg,
		width:  width,
		height: height,
		cong:   cong,
		pool:   pool,
		slots:  make([]*slot, cfg.MaxNetsInFlight),
	}
}

// RunIteration routes every net in pending to completion or back to a
// returned pending list. Nets already fully routed (fixed_routing) or
// with no driver are skipped without occupying a slot. Order is
// preserved as a FIFO admission queue, so callers should pass nets
// pre-sorted by criticality.
func (s *Scheduler) RunIteration(ctx context.Context, pending []*netimport.Net, currCongCost float64, bind BindFunc) ([]*netimport.Net, error) {
	queue := make([]*netimport.Net, 0, len(pending))

	for _, n := range pending {
		if n.FixedRouting || n.Undriven {
			continue
		}

		queue = append(queue, n)
	}

	var stillPending []*netimport.Net

	for len(queue) > 0 || s.activeCount() > 0 {
		queue = s.admit(queue)

		if s.activeCount() == 0 {
			// No slot is active and no queued net could claim its
			// bounding box (e.g. one that lies outside the grid), so
			// nothing more can be admitted this iteration.
			stillPending = append(stillPending, queue...)
			break
		}

		done, stuck, err := s.step(ctx, currCongCost, bind)
		if err != nil {
			return nil, err
		}

		stillPending = append(stillPending, stuck...)
		_ = done
	}

	return stillPending, nil
}

func (s *Scheduler) activeCount() int {
	n := 0

	for _, sl := range s.slots {
		if sl != nil {
			n++
		}
	}

	return n
}

// admit fills every free slot from the front of queue whose bounding
// box the Grid Arbiter currently reports clear, returning the nets
// that could not be admitted this pass.
func (s *Scheduler) admit(queue []*netimport.Net) []*netimport.Net {
	var deferred []*netimport.Net

	qi := 0

	for slotIdx := range s.slots {
		if s.slots[slotIdx] != nil {
			continue
		}

		for qi < len(queue) {
			n := queue[qi]

			if !s.arb.Claim(n.BBox, int32(slotIdx)) {
				deferred = append(deferred, n)
				qi++

				continue
			}

			state := wavefront.NewState(s.graph.W, s.cfg.InfCost, s.cfg.NearQueueLen, s.cfg.FarQueueLen, s.cfg.DirtyQueueLen, s.cong)
			state.SeedSource(n.Driver, 0)

			for _, fw := range n.FixedWires {
				state.SeedSource(fw, 0)
			}

			s.slots[slotIdx] = &slot{net: n, state: state, nearFarThresh: 0, settled: make([]bool, len(n.Sinks))}
			qi++

			break
		}
	}

	deferred = append(deferred, queue[qi:]...)

	return deferred
}

// step advances every active slot by one wavefront step, binding
// converged nets and evicting stuck ones back to pending with an
// enlarged bounding box.
func (s *Scheduler) step(ctx context.Context, currCongCost float64, bind BindFunc) (done, stuck []*netimport.Net, err error) {
	for slotIdx, sl := range s.slots {
		if sl == nil {
			continue
		}

		if sl.state.NearCur.Len() == 0 && sl.state.Far.Len() > 0 {
			sl.nearFarThresh, _ = sl.state.RefillFromFar(refillSlack)
		}

		groups, budget := s.workgroupBudget(sl.net)

		netCfg := wavefront.NewNetConfig(sl.net.BBox, currCongCost, sl.nearFarThresh, int32(groups), int32(budget), int32(slotIdx))

		args := &wavefront.StepArgs{
			Graph:           s.graph,
			State:           sl.state,
			NetCfg:          netCfg,
			BasePresentCost: s.cfg.BasePresentCost,
		}

		if s.pool != nil {
			s.pool.NetConfigs[slotIdx] = netCfg
			args.WorkgroupConfigs = s.pool.WorkgroupConfigs
			args.EdgeDst = s.pool.EdgeDst
			args.EdgeCost = s.pool.EdgeCost
		}

		stepErr := wavefront.LaunchStep(ctx, s.host, s.cfg.WorkgroupSize, args)

		frontier := sl.state.NearNxt.Len() + sl.state.Far.Len()

		if stepErr != nil {
			if !isCapacity(stepErr) {
				return nil, nil, stepErr
			}

			s.evict(slotIdx, sl, &stuck)

			continue
		}

		sl.state.SwapNearQueues()
		sl.stepsUsed++

		s.fireNewlySettled(sl)

		if sl.stepsUsed >= s.cfg.StepBudgetPerNet {
			s.evict(slotIdx, sl, &stuck)

			continue
		}

		if allSettled(sl.state, sl.net) {
			if err := bind(sl.net, sl.state); err != nil {
				return nil, nil, err
			}

			s.arb.Release(sl.net.BBox)
			s.slots[slotIdx] = nil

			done = append(done, sl.net)

			continue
		}

		if frontier <= sl.lastFrontier {
			sl.stuckSteps++
		} else {
			sl.stuckSteps = 0
		}

		sl.lastFrontier = frontier

		if sl.stuckSteps >= s.cfg.StuckStepLimit {
			s.evict(slotIdx, sl, &stuck)
		}
	}

	return done, stuck, nil
}

// fireNewlySettled invokes hook.PosSinkSettled for every sink of sl.net
// that has just become settled since the last step, so a sink that
// stays settled across further steps does not refire the hook.
func (s *Scheduler) fireNewlySettled(sl *slot) {
	for i, sink := range sl.net.Sinks {
		if sl.settled[i] {
			continue
		}

		if !sl.state.Settled(sink) {
			continue
		}

		sl.settled[i] = true

		s.InvokeHook(hook.Ctx{Domain: s, Pos: hook.PosSinkSettled, Item: sink, Detail: sl.net})
	}
}

func (s *Scheduler) evict(slotIdx int, sl *slot, stuck *[]*netimport.Net) {
	sl.state.ResetTouched()
	s.arb.Release(sl.net.BBox)

	sl.net.BBox = sl.net.BBox.Inflate(1, s.width, s.height)
	if sl.net.BBox.Area() > s.cfg.BBoxGrowCap*s.cfg.BBoxGrowCap {
		// Growth cap reached; leave the box at its capped extent and
		// let the caller's outer-iteration budget eventually give up.
		sl.net.BBox = clampArea(sl.net.BBox, s.cfg.BBoxGrowCap, s.width, s.height)
	}

	s.slots[slotIdx] = nil

	*stuck = append(*stuck, sl.net)
}

func clampArea(bb netimport.BBox, cap, width, height int) netimport.BBox {
	for bb.Area() > cap*cap {
		if bb.X1-bb.X0 <= 0 && bb.Y1-bb.Y0 <= 0 {
			break
		}

		bb = netimport.BBox{
			X0: bb.X0, Y0: bb.Y0,
			X1: max(bb.X0, bb.X1-1),
			Y1: max(bb.Y0, bb.Y1-1),
		}
	}

	return bb
}

func (s *Scheduler) workgroupBudget(n *netimport.Net) (groups, budget int) {
	area := n.BBox.Area()
	if area < 1 {
		area = 1
	}

	groups = area * s.cfg.NumWorkgroups / (s.width*s.height + 1)
	if groups < 1 {
		groups = 1
	}

	if groups > s.cfg.NumWorkgroups {
		groups = s.cfg.NumWorkgroups
	}

	budget = s.cfg.NearQueueLen / groups
	if budget < 1 {
		budget = 1
	}

	return groups, budget
}

func allSettled(state *wavefront.State, n *netimport.Net) bool {
	if n.Driver >= 0 && !state.Settled(n.Driver) && len(n.Sinks) == 0 {
		return false
	}

	for _, sink := range n.Sinks {
		if !state.Settled(sink) {
			return false
		}
	}

	return true
}

func isCapacity(err error) bool {
	oerr, ok := err.(*ocerr.Error)
	return ok && oerr.Kind == ocerr.Capacity
}

// refillSlack is the additive slack δ used when recomputing
// near_far_thresh from the far queue's minimum cost.
const refillSlack = 1
