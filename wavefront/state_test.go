package wavefront

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("State", func() {
	Describe("SeedSource", func() {
		It("pushes the source onto the near queue and marks it dirty on first visit", func() {
			cong := NewCongestion(3)
			s := NewState(3, 1000, 10, 10, 10, cong)

			s.SeedSource(0, 5)

			Expect(s.CurrentCost(0)).To(Equal(int32(5)))
			Expect(s.NearCur.Items()).To(ConsistOf(int32(0)))
			Expect(s.Dirty.Items()).To(ConsistOf(int32(0)))
		})

		It("does not requeue a source that is already cheaper", func() {
			cong := NewCongestion(3)
			s := NewState(3, 1000, 10, 10, 10, cong)

			s.SeedSource(0, 5)
			s.NearCur.Drain()

			s.SeedSource(0, 9)

			Expect(s.NearCur.Len()).To(Equal(0))
			Expect(s.CurrentCost(0)).To(Equal(int32(5)))
		})
	})

	Describe("ResetTouched", func() {
		It("restores every dirty node to infinity and clears every scratch queue", func() {
			cong := NewCongestion(3)
			s := NewState(3, 1000, 10, 10, 10, cong)

			s.SeedSource(0, 0)
			s.cells[1].relax(4, 0)
			s.Dirty.Push(1)
			s.Far.Push(1)

			s.ResetTouched()

			Expect(s.CurrentCost(0)).To(Equal(int32(1000)))
			Expect(s.CurrentCost(1)).To(Equal(int32(1000)))
			Expect(s.NearCur.Len()).To(Equal(0))
			Expect(s.NearNxt.Len()).To(Equal(0))
			Expect(s.Far.Len()).To(Equal(0))
			Expect(s.Dirty.Len()).To(Equal(0))
		})
	})

	Describe("RefillFromFar", func() {
		It("returns zero and moves nothing when the far queue is empty", func() {
			cong := NewCongestion(3)
			s := NewState(3, 1000, 10, 10, 10, cong)

			thresh, moved := s.RefillFromFar(5)

			Expect(thresh).To(Equal(int32(0)))
			Expect(moved).To(Equal(0))
		})

		It("advances the threshold to the cheapest far cost plus slack and migrates only matches", func() {
			cong := NewCongestion(4)
			s := NewState(4, 1000, 10, 10, 10, cong)

			s.cells[1].relax(20, -1)
			s.cells[2].relax(35, -1)
			s.cells[3].relax(50, -1)
			s.Far.Push(1)
			s.Far.Push(2)
			s.Far.Push(3)

			thresh, moved := s.RefillFromFar(10)

			Expect(thresh).To(Equal(int32(30)))
			Expect(moved).To(Equal(1))
			Expect(s.Far.Len()).To(Equal(2))
			Expect(s.Far.Items()).To(ConsistOf(int32(2), int32(3)))
			Expect(s.NearCur.Items()).To(ConsistOf(int32(1)))
		})
	})

	Describe("Settled", func() {
		It("reports false for a node that was never reached", func() {
			cong := NewCongestion(2)
			s := NewState(2, 1000, 10, 10, 10, cong)

			Expect(s.Settled(1)).To(BeFalse())
		})

		It("reports true only once a node's cost is at or below every still-queued cost", func() {
			cong := NewCongestion(3)
			s := NewState(3, 1000, 10, 10, 10, cong)

			s.SeedSource(0, 0)
			s.cells[1].relax(5, 0)
			s.NearCur.Push(1)

			Expect(s.Settled(0)).To(BeTrue())
			Expect(s.Settled(1)).To(BeFalse())
		})
	})
})
