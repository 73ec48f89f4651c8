// Package wavefront implements the Wavefront Kernel (C5): the parallel
// near/far single-source shortest-path expansion that advances one
// in-flight net's exploration by one step per kernel launch.
package wavefront

import (
	"math"
	"unsafe"

	"github.com/sarchlab/ocular/netimport"
)

// NetConfig is the per-net configuration record read by the kernel. Its
// layout is fixed and tightly packed — fields in declaration order, no
// padding — because a real accelerator backend would marshal this
// struct byte-for-byte into device memory. init() asserts the size so a
// future field addition that breaks packing fails at process startup
// rather than corrupting a real device buffer.
type NetConfig struct {
	BBoxX0, BBoxY0, BBoxX1, BBoxY1 int16 // 8 bytes
	CurrCongCost                   int32 // present-cost multiplier, fixed-point x1000
	NearFarThresh                  int32
	NetStartGroup, NetEndGroup     int32 // [start, end) workgroup range
	GroupNodeBudget                int32
	Slot                           int32 // index into the in-flight configuration table
}

// WorkgroupConfig is the per-workgroup configuration record. Like
// NetConfig, its layout is fixed at design time.
type WorkgroupConfig struct {
	NetSlot     int32 // which NetConfig this workgroup belongs to
	GroupNodes  int32 // per-step node budget for this workgroup
	QueueOffset int32 // this workgroup's slice offset into the shared scratch buffers
}

// Layout size assertions, checked at package init. A little-endian 32-bit-int /
// 16-bit-coordinate layout with no padding gives NetConfig 32 bytes
// (four 16-bit coordinates plus six 32-bit fields) and WorkgroupConfig
// 12 bytes; if a future edit changes that, init below panics
// immediately instead of silently shipping a mismatched layout to a
// real device backend.
const (
	netConfigWireSize       = 32
	workgroupConfigWireSize = 12
)

func init() {
	if unsafe.Sizeof(NetConfig{}) != netConfigWireSize {
		panic("wavefront: NetConfig layout drifted from its fixed wire size")
	}

	if unsafe.Sizeof(WorkgroupConfig{}) != workgroupConfigWireSize {
		panic("wavefront: WorkgroupConfig layout drifted from its fixed wire size")
	}
}

// NewNetConfig builds the NetConfig record for one net's step launch.
// currCongCost is stored fixed-point (x1000), the way a real device
// buffer would carry it; slot is this net's index into the Buffer
// Pool's in-flight configuration table.
func NewNetConfig(bbox netimport.BBox, currCongCost float64, nearFarThresh int32, groups, groupNodeBudget, slot int32) NetConfig {
	return NetConfig{
		BBoxX0:          int16(bbox.X0),
		BBoxY0:          int16(bbox.Y0),
		BBoxX1:          int16(bbox.X1),
		BBoxY1:          int16(bbox.Y1),
		CurrCongCost:    int32(math.Round(currCongCost * 1000)),
		NearFarThresh:   nearFarThresh,
		NetStartGroup:   0,
		NetEndGroup:     groups,
		GroupNodeBudget: groupNodeBudget,
		Slot:            slot,
	}
}

// BBox unpacks the record's 16-bit grid coordinates back into a
// netimport.BBox.
func (c NetConfig) BBox() netimport.BBox {
	return netimport.BBox{X0: int(c.BBoxX0), Y0: int(c.BBoxY0), X1: int(c.BBoxX1), Y1: int(c.BBoxY1)}
}

// CongCost unpacks the record's fixed-point present-cost multiplier.
func (c NetConfig) CongCost() float64 {
	return float64(c.CurrCongCost) / 1000
}

// Groups reports the width of this net's assigned workgroup range.
func (c NetConfig) Groups() int32 {
	return c.NetEndGroup - c.NetStartGroup
}
