// Package config holds the tunables enumerated in the router's
// external-interface contract. Every field is integer unless noted,
// exactly as specified; defaults match the specification verbatim.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/sarchlab/ocular/ocerr"
)

// Config is the full set of tunables accepted by the router.
type Config struct {
	// DelayScale converts nanosecond delays to integer edge costs.
	DelayScale int

	// NumWorkgroups and WorkgroupSize size every kernel launch.
	NumWorkgroups int
	WorkgroupSize int

	// Scratch queue capacities, per workgroup.
	NearQueueLen  int
	FarQueueLen   int
	DirtyQueueLen int

	// MaxNetsInFlight bounds concurrent in-flight nets.
	MaxNetsInFlight int

	// MaxOuterIters bounds the negotiated-congestion loop.
	MaxOuterIters int

	// HistCostInc is added to hist_cost[i] per unit of overuse.
	HistCostInc int32

	// PresentCostGrowth multiplies curr_cong_cost each outer iteration.
	PresentCostGrowth float64

	// BBoxGrowCap bounds how far a bounding box may inflate.
	BBoxGrowCap int

	// BasePresentCost is the multiplicand in congestion_penalty(v).
	// Left as an explicit config field per the specification's open
	// question about the exact formula: the formula is pinned down in
	// wavefront.CongestionPenalty, but the constant it multiplies by is
	// caller-tunable.
	BasePresentCost int32

	// InfCost is the sentinel "unreached" cost.
	InfCost int32

	// StepBudgetPerNet bounds wavefront steps before a net is forced
	// back to pending with an enlarged bounding box.
	StepBudgetPerNet int

	// StuckStepLimit is how many consecutive steps of no near/far
	// progress force a slot's net back to pending.
	StuckStepLimit int
}

// Default returns the configuration documented in the specification.
func Default() Config {
	return Config{
		DelayScale:        1000,
		NumWorkgroups:     64,
		WorkgroupSize:     128,
		NearQueueLen:      15000,
		FarQueueLen:       100000,
		DirtyQueueLen:     100000,
		MaxNetsInFlight:   32,
		MaxOuterIters:     50,
		HistCostInc:       1,
		PresentCostGrowth: 2.0,
		BBoxGrowCap:       8,
		BasePresentCost:   1,
		InfCost:           0x07FFFFFF,
		StepBudgetPerNet:  10000,
		StuckStepLimit:    2,
	}
}

// Validate rejects structurally inconsistent configuration, returning
// an *ocerr.Error{Kind: ocerr.Config}.
func (c Config) Validate() error {
	switch {
	case c.NumWorkgroups <= 0:
		return ocerr.New(ocerr.Config, "Validate", fmt.Errorf("num_workgroups must be positive, got %d", c.NumWorkgroups))
	case c.WorkgroupSize <= 0:
		return ocerr.New(ocerr.Config, "Validate", fmt.Errorf("workgroup_size must be positive, got %d", c.WorkgroupSize))
	case c.NearQueueLen <= 0:
		return ocerr.New(ocerr.Config, "Validate", fmt.Errorf("near_queue_len must be positive, got %d", c.NearQueueLen))
	case c.FarQueueLen <= 0:
		return ocerr.New(ocerr.Config, "Validate", fmt.Errorf("far_queue_len must be positive, got %d", c.FarQueueLen))
	case c.DirtyQueueLen <= 0:
		return ocerr.New(ocerr.Config, "Validate", fmt.Errorf("dirty_queue_len must be positive, got %d", c.DirtyQueueLen))
	case c.MaxNetsInFlight <= 0:
		return ocerr.New(ocerr.Config, "Validate", fmt.Errorf("max_nets_in_flight must be positive, got %d", c.MaxNetsInFlight))
	case c.MaxOuterIters <= 0:
		return ocerr.New(ocerr.Config, "Validate", fmt.Errorf("max_outer_iters must be positive, got %d", c.MaxOuterIters))
	case c.PresentCostGrowth <= 1.0:
		return ocerr.New(ocerr.Config, "Validate", fmt.Errorf("present_cost_growth must exceed 1.0, got %f", c.PresentCostGrowth))
	case c.BBoxGrowCap < 0:
		return ocerr.New(ocerr.Config, "Validate", fmt.Errorf("bbox_grow_cap must not be negative, got %d", c.BBoxGrowCap))
	case c.DelayScale <= 0:
		return ocerr.New(ocerr.Config, "Validate", fmt.Errorf("delay_scale must be positive, got %d", c.DelayScale))
	}

	return nil
}

// FromEnv overlays OCULAR_*-prefixed environment variables onto the
// defaults. If a ".env" file is present in the working directory it is
// loaded first (silently ignored if absent), the way the teacher's
// example programs pick up local development overrides.
func FromEnv(prefix string) (Config, error) {
	_ = godotenv.Load()

	c := Default()

	overlayInt(prefix+"DELAY_SCALE", &c.DelayScale)
	overlayInt(prefix+"NUM_WORKGROUPS", &c.NumWorkgroups)
	overlayInt(prefix+"WORKGROUP_SIZE", &c.WorkgroupSize)
	overlayInt(prefix+"NEAR_QUEUE_LEN", &c.NearQueueLen)
	overlayInt(prefix+"FAR_QUEUE_LEN", &c.FarQueueLen)
	overlayInt(prefix+"DIRTY_QUEUE_LEN", &c.DirtyQueueLen)
	overlayInt(prefix+"MAX_NETS_IN_FLIGHT", &c.MaxNetsInFlight)
	overlayInt(prefix+"MAX_OUTER_ITERS", &c.MaxOuterIters)
	overlayInt(prefix+"BBOX_GROW_CAP", &c.BBoxGrowCap)
	overlayInt32(prefix+"HIST_COST_INC", &c.HistCostInc)
	overlayInt32(prefix+"BASE_PRESENT_COST", &c.BasePresentCost)
	overlayFloat(prefix+"PRESENT_COST_GROWTH", &c.PresentCostGrowth)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func overlayInt(key string, dst *int) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}

	n, err := strconv.Atoi(v)
	if err == nil {
		*dst = n
	}
}

func overlayInt32(key string, dst *int32) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}

	n, err := strconv.ParseInt(v, 10, 32)
	if err == nil {
		*dst = int32(n)
	}
}

func overlayFloat(key string, dst *float64) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}

	n, err := strconv.ParseFloat(v, 64)
	if err == nil {
		*dst = n
	}
}
