package wavefront

import (
	"math"
	"sync/atomic"
)

// cell packs a node's current_cost and uphill_edge into one 64-bit word
// so both fields can be updated together with a single compare-and-
// swap. This is what lets the kernel guarantee that uphill_edge is
// only ever written in the same atomic transaction that lowered
// current_cost (specification invariant 6).
type cell struct {
	packed atomic.Int64
}

func pack(cost, edge int32) int64 {
	return int64(uint32(cost))<<32 | int64(uint32(edge))
}

func unpack(v int64) (cost, edge int32) {
	return int32(uint32(v >> 32)), int32(uint32(v))
}

// relax attempts to lower cost/edge onto the cell with atomic min
// semantics. It reports the previous cost (to detect first-visit for
// the dirty list) and whether the update took effect.
func (c *cell) relax(newCost, newEdge int32) (prevCost int32, updated bool) {
	for {
		old := c.packed.Load()
		oldCost, _ := unpack(old)

		if newCost >= oldCost {
			return oldCost, false
		}

		if c.packed.CompareAndSwap(old, pack(newCost, newEdge)) {
			return oldCost, true
		}
	}
}

func (c *cell) load() (cost, edge int32) {
	return unpack(c.packed.Load())
}

func (c *cell) reset(infCost int32) {
	c.packed.Store(pack(infCost, -1))
}

// Congestion holds the per-node bound_count and hist_cost tables that
// the negotiated-congestion outer loop maintains across every net and
// every outer iteration of one run. Unlike State's cells and scratch
// queues, which are private to a single net's exploration, Congestion
// is shared by every net in flight, because bound_count and hist_cost
// are exactly what the Congestion Loop negotiates between nets.
type Congestion struct {
	boundCount []int32
	histCost   []int32
}

// NewCongestion allocates a zeroed Congestion table for a graph of w
// nodes.
func NewCongestion(w int) *Congestion {
	return &Congestion{
		boundCount: make([]int32, w),
		histCost:   make([]int32, w),
	}
}

// BoundCount returns the number of nets currently bound to node i.
func (c *Congestion) BoundCount(i int32) int32 {
	return c.boundCount[i]
}

// IncrementBound bumps node i's bound count; called only by the host,
// from the Backtrace & Binder, never from a kernel launch.
func (c *Congestion) IncrementBound(i int32) {
	c.boundCount[i]++
}

// ResetBoundCount zeros every node's bound count except the
// contribution supplied by keep, used at the start of each outer
// iteration ("rip up every non-fixed net").
func (c *Congestion) ResetBoundCount(keep func(i int32) int32) {
	for i := range c.boundCount {
		if keep != nil {
			c.boundCount[i] = keep(int32(i))
		} else {
			c.boundCount[i] = 0
		}
	}
}

// HistCost returns node i's accumulated historical congestion cost.
func (c *Congestion) HistCost(i int32) int32 {
	return c.histCost[i]
}

// InflateHistCost adds delta to node i's historical cost. Historical
// cost is monotonically non-decreasing across outer iterations.
func (c *Congestion) InflateHistCost(i int32, delta int32) {
	if delta < 0 {
		panic("wavefront: hist_cost may not decrease")
	}

	c.histCost[i] += delta
}

// State is one net's exploration scratch: its per-node current_cost and
// uphill_edge cells plus the near/far/dirty queues, alongside a
// reference to the run-wide Congestion table it reads and writes
// bound_count/hist_cost through. A fresh State is created per admitted
// net; Congestion outlives every State across the whole run.
type State struct {
	cells []cell
	*Congestion

	infCost int32

	NearCur *Queue
	NearNxt *Queue
	Far     *Queue
	Dirty   *Queue
}

// NewState allocates exploration scratch for a graph of w nodes against
// the shared cong table.
func NewState(w int, infCost int32, nearCap, farCap, dirtyCap int, cong *Congestion) *State {
	s := &State{
		cells:      make([]cell, w),
		Congestion: cong,
		infCost:    infCost,
		NearCur:    NewQueue(nearCap),
		NearNxt:    NewQueue(nearCap),
		Far:        NewQueue(farCap),
		Dirty:      NewQueue(dirtyCap),
	}

	for i := range s.cells {
		s.cells[i].reset(infCost)
	}

	return s
}

// CurrentCost returns node i's best known cost from the current source.
func (s *State) CurrentCost(i int32) int32 {
	cost, _ := s.cells[i].load()
	return cost
}

// UphillEdge returns the edge used to reach node i along its best known
// path. Only valid if CurrentCost(i) < InfCost.
func (s *State) UphillEdge(i int32) int32 {
	_, edge := s.cells[i].load()
	return edge
}

// SeedSource relaxes node src to the given cost and, if that lowers its
// cost, pushes it into the near queue. The Scheduler seeds a net's
// driver (and any fixed wires) this way with cost 0 before launching
// the first step.
func (s *State) SeedSource(src int32, cost int32) {
	prevCost, updated := s.cells[src].relax(cost, -1)

	if prevCost == s.infCost {
		s.Dirty.Push(src)
	}

	if updated {
		s.NearCur.Push(src)
	}
}

// ResetTouched restores every node visited during the preceding
// source's exploration back to "no source explored", using the dirty
// list so the cost is O(dirty) instead of O(W). This is invoked by the
// Backtrace & Binder once a net's exploration is fully consumed.
func (s *State) ResetTouched() {
	for _, i := range s.Dirty.items {
		s.cells[i].reset(s.infCost)
	}

	s.Dirty.Clear()
	s.NearCur.Clear()
	s.NearNxt.Clear()
	s.Far.Clear()
}

// RefillFromFar implements the host-side "refill from far" step: once
// the near queue is exhausted, the threshold advances to the cheapest
// far-queued cost plus slack, and every far entry now within threshold
// migrates back into the near queue. This preserves the Bellman-Ford-
// like relaxation invariant while guaranteeing the threshold advances
// monotonically.
func (s *State) RefillFromFar(slack int32) (newThresh int32, moved int) {
	if s.Far.Len() == 0 {
		return 0, 0
	}

	minCost := s.infCost

	for _, v := range s.Far.Items() {
		if c := s.CurrentCost(v); c < minCost {
			minCost = c
		}
	}

	newThresh = minCost + slack

	matched := s.Far.Partition(func(v int32) bool {
		return s.CurrentCost(v) <= newThresh
	})

	for _, v := range matched {
		_ = s.NearCur.Push(v)
	}

	return newThresh, len(matched)
}

// Settled reports whether node i's cost can no longer be improved by
// further exploration: it has been reached, and its cost is already at
// or below the cheapest cost of anything still queued anywhere for this
// net. Per specification §4.5 step 5, this is a sufficient stand-in for
// "popped from the near queue and not improved since": since costs only
// decrease and every queue only ever holds nodes whose cost could still
// improve a downstream relaxation, nothing left in any queue can beat a
// node whose cost is already the queues' minimum.
func (s *State) Settled(i int32) bool {
	cost := s.CurrentCost(i)
	if cost >= s.infCost {
		return false
	}

	minQueued := s.infCost

	for _, q := range [...]*Queue{s.NearCur, s.NearNxt, s.Far} {
		for _, v := range q.Items() {
			if c := s.CurrentCost(v); c < minQueued {
				minQueued = c
			}
		}
	}

	return cost <= minQueued
}

// CongestionPenalty computes the additive penalty a node contributes to
// a relaxed edge's cost: the present-cost component scales with how
// many nets already use the node and the current congestion multiplier,
// the historical component carries forward unconditionally from prior
// outer iterations.
func CongestionPenalty(boundCount, histCost int32, currCongCost float64, basePresentCost int32) int32 {
	present := math.Round(float64(basePresentCost) * float64(1+boundCount) * currCongCost)
	return int32(present) + histCost
}
