package wavefront

import (
	"context"
	"sync"

	"github.com/sarchlab/ocular/gpu"
	"github.com/sarchlab/ocular/graph"
	"github.com/sarchlab/ocular/ocerr"
)

// KernelStep is the kernel identity the software device (and, in
// principle, a real accelerator backend) recognizes as "advance one
// net's exploration by one wavefront". Each launch steps only the net
// described by its StepArgs; the Scheduler launches it once per
// in-flight net, and no single launch steps several nets.
const KernelStep gpu.KernelID = "ocular.wavefront.step"

// StepArgs is the ordered argument the Scheduler passes to a step
// launch. NetCfg is exactly the "per-net configuration" the
// specification says is owned by the host and read-only inside the
// kernel; WorkgroupConfigs, EdgeDst, and EdgeCost are non-owning
// handles into Buffer Pool-owned device buffers.
type StepArgs struct {
	Graph *graph.Graph
	State *State

	NetCfg NetConfig

	// WorkgroupConfigs is the Buffer Pool's shared per-workgroup
	// scratch table. RunStep records this launch's group partition
	// into WorkgroupConfigs[0:groups] before draining, so a real
	// accelerator backend could read group assignments back from
	// device memory instead of recomputing them host-side.
	WorkgroupConfigs []WorkgroupConfig

	// EdgeDst/EdgeCost are the Buffer Pool's device-resident mirrors of
	// Graph's CSR edge arrays. A nil buffer falls back to reading
	// Graph's slices directly, which is what a caller that builds
	// StepArgs without a Buffer Pool (most tests) gets.
	EdgeDst  gpu.Int32Buffer
	EdgeCost gpu.Int32Buffer

	BasePresentCost int32
}

// LaunchStep asks host to run one wavefront step for args. It is the
// host-visible contract of the kernel: the actual per-workgroup drain
// logic (RunStep) is what a software device dispatches to; a real
// accelerator backend would instead run a compiled kernel binary that
// implements the same per-step procedure.
func LaunchStep(ctx context.Context, host gpu.Host, groupSize int, args *StepArgs) error {
	groups := int(args.NetCfg.Groups())
	if groups < 1 {
		groups = 1
	}

	return host.Launch(ctx, KernelStep, groups, groupSize, args)
}

type workgroupResult struct {
	nextNear []int32
	far      []int32
	dirty    []int32
}

// RunStep is the kernel body. A conforming Host implementation (see
// package swdevice) calls this once per Launch(KernelStep, ...) call.
//
// Per specification §4.5: drain up to groups*GroupNodeBudget nodes from
// the near queue this step (excess nodes stay queued for the next
// step), relax their outgoing edges within the net's bounding box, and
// atomically publish improvements to current_cost/uphill_edge, routing
// each improved node into the next-near or far queue by threshold.
func RunStep(ctx context.Context, args *StepArgs) error {
	if err := ctx.Err(); err != nil {
		return ocerr.New(ocerr.Device, "RunStep", err)
	}

	frontier := args.State.NearCur.Drain()
	if len(frontier) == 0 {
		return nil
	}

	groups := int(args.NetCfg.Groups())
	if groups < 1 {
		groups = 1
	}

	groupBudget := int(args.NetCfg.GroupNodeBudget)
	if groupBudget <= 0 {
		groupBudget = len(frontier)
	}

	totalBudget := groups * groupBudget

	processCount := len(frontier)
	if processCount > totalBudget {
		processCount = totalBudget
	}

	toProcess := frontier[:processCount]
	leftover := frontier[processCount:]

	results := make([]workgroupResult, groups)

	chunkSize := (len(toProcess) + groups - 1) / groups
	if chunkSize == 0 {
		chunkSize = 1
	}

	var wg sync.WaitGroup

	for g := 0; g < groups; g++ {
		start := g * chunkSize
		if start >= len(toProcess) {
			break
		}

		end := min(start+chunkSize, len(toProcess))

		if g < len(args.WorkgroupConfigs) {
			args.WorkgroupConfigs[g] = WorkgroupConfig{
				NetSlot:     args.NetCfg.Slot,
				GroupNodes:  int32(end - start),
				QueueOffset: int32(start),
			}
		}

		wg.Add(1)

		go func(g, start, end int) {
			defer wg.Done()
			drainWorkgroup(args, toProcess[start:end], &results[g])
		}(g, start, end)
	}

	wg.Wait()

	return mergeResults(args.State, results, leftover)
}

// drainWorkgroup is the per-work-item body: it processes the nodes
// assigned to one workgroup for this step, relaxing outgoing edges and
// staging discoveries locally so no cross-goroutine synchronization is
// needed except the atomic relax on shared per-node state.
func drainWorkgroup(args *StepArgs, nodes []int32, out *workgroupResult) {
	bbox := args.NetCfg.BBox()
	currCongCost := args.NetCfg.CongCost()

	for _, u := range nodes {
		costU := args.State.CurrentCost(u)

		start, end := args.Graph.Edges(u)
		for e := start; e < end; e++ {
			v := edgeDst(args, e)

			if !bbox.Contains(args.Graph.WireX[v], args.Graph.WireY[v]) {
				continue
			}

			penalty := CongestionPenalty(
				args.State.BoundCount(v),
				args.State.HistCost(v),
				currCongCost,
				args.BasePresentCost,
			)
			newCost := costU + edgeCost(args, e) + penalty

			prevCost, updated := args.State.cells[v].relax(newCost, e)
			if !updated {
				continue
			}

			if prevCost == args.State.infCost {
				out.dirty = append(out.dirty, v)
			}

			if newCost < args.NetCfg.NearFarThresh {
				out.nextNear = append(out.nextNear, v)
			} else {
				out.far = append(out.far, v)
			}
		}
	}
}

// edgeDst and edgeCost read through the Buffer Pool's device-mirrored
// CSR arrays when the Scheduler supplied them, falling back to Graph's
// own slices otherwise.
func edgeDst(args *StepArgs, e int32) int32 {
	if args.EdgeDst != nil {
		return args.EdgeDst.Get(int(e))
	}

	return args.Graph.EdgeDst[e]
}

func edgeCost(args *StepArgs, e int32) int32 {
	if args.EdgeCost != nil {
		return args.EdgeCost.Get(int(e))
	}

	return args.Graph.EdgeCost[e]
}

// mergeResults folds every workgroup's local discoveries into the
// shared queues. It is all-or-nothing: if the merge would overflow any
// queue, none of it is applied and a Capacity error is returned, so the
// Congestion Loop can retry the whole step with a larger bounding box.
func mergeResults(state *State, results []workgroupResult, leftover []int32) error {
	var totalNear, totalFar, totalDirty int

	for _, r := range results {
		totalNear += len(r.nextNear)
		totalFar += len(r.far)
		totalDirty += len(r.dirty)
	}

	if state.NearCur.Len()+len(leftover) > state.NearCur.Capacity() ||
		state.NearNxt.Len()+totalNear > state.NearNxt.Capacity() ||
		state.Far.Len()+totalFar > state.Far.Capacity() ||
		state.Dirty.Len()+totalDirty > state.Dirty.Capacity() {
		return ocerr.New(ocerr.Capacity, "mergeResults", errStepOverflow)
	}

	_ = state.NearCur.Merge(leftover)

	for _, r := range results {
		_ = state.NearNxt.Merge(r.nextNear)
		_ = state.Far.Merge(r.far)
		_ = state.Dirty.Merge(r.dirty)
	}

	return nil
}

var errStepOverflow = stepOverflowError{}

type stepOverflowError struct{}

func (stepOverflowError) Error() string {
	return "wavefront step would overflow a scratch queue"
}

// SwapNearQueues exchanges the roles of the current and next near
// queues, the way the host does after a kernel step returns.
func (s *State) SwapNearQueues() {
	s.NearCur, s.NearNxt = s.NearNxt, s.NearCur
}
