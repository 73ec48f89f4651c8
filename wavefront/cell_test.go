package wavefront

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("cell", func() {
	It("relaxes only when the new cost is strictly lower, keeping the paired edge atomic with cost", func() {
		var c cell
		c.reset(1000)

		prev, updated := c.relax(50, 3)
		Expect(prev).To(Equal(int32(1000)))
		Expect(updated).To(BeTrue())

		cost, edge := c.load()
		Expect(cost).To(Equal(int32(50)))
		Expect(edge).To(Equal(int32(3)))

		prev, updated = c.relax(80, 7)
		Expect(updated).To(BeFalse())
		Expect(prev).To(Equal(int32(50)))

		cost, edge = c.load()
		Expect(cost).To(Equal(int32(50)))
		Expect(edge).To(Equal(int32(3)))

		prev, updated = c.relax(20, 9)
		Expect(updated).To(BeTrue())
		Expect(prev).To(Equal(int32(50)))

		cost, edge = c.load()
		Expect(cost).To(Equal(int32(20)))
		Expect(edge).To(Equal(int32(9)))
	})

	It("resets to infinity with no uphill edge", func() {
		var c cell
		c.reset(1000)

		cost, edge := c.load()
		Expect(cost).To(Equal(int32(1000)))
		Expect(edge).To(Equal(int32(-1)))
	})
})

var _ = Describe("CongestionPenalty", func() {
	It("scales the present component by bound_count and curr_cong_cost, and adds hist_cost unconditionally", func() {
		Expect(CongestionPenalty(0, 0, 1.0, 10)).To(Equal(int32(10)))
		Expect(CongestionPenalty(1, 0, 1.0, 10)).To(Equal(int32(20)))
		Expect(CongestionPenalty(1, 5, 2.0, 10)).To(Equal(int32(45)))
	})

	It("rounds the present component rather than truncating it", func() {
		// present = round(1 * (1+2) * 1.5) = round(4.5) = 5
		Expect(CongestionPenalty(2, 0, 1.5, 1)).To(Equal(int32(5)))
	})
})

var _ = Describe("Congestion", func() {
	It("increments and resets bound_count while preserving a fixed contribution", func() {
		c := NewCongestion(3)

		c.IncrementBound(1)
		c.IncrementBound(1)
		c.IncrementBound(2)

		Expect(c.BoundCount(1)).To(Equal(int32(2)))
		Expect(c.BoundCount(2)).To(Equal(int32(1)))

		c.ResetBoundCount(func(i int32) int32 {
			if i == 2 {
				return 1
			}
			return 0
		})

		Expect(c.BoundCount(0)).To(Equal(int32(0)))
		Expect(c.BoundCount(1)).To(Equal(int32(0)))
		Expect(c.BoundCount(2)).To(Equal(int32(1)))
	})

	It("accumulates hist_cost monotonically and panics on a negative delta", func() {
		c := NewCongestion(2)

		c.InflateHistCost(0, 4)
		c.InflateHistCost(0, 6)
		Expect(c.HistCost(0)).To(Equal(int32(10)))

		Expect(func() { c.InflateHistCost(0, -1) }).To(Panic())
	})
})
