package arbiter

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ocular/gpu"
	"github.com/sarchlab/ocular/netimport"
	"github.com/sarchlab/ocular/swdevice"
)

var _ = Describe("Arbiter", func() {
	var a *Arbiter

	BeforeEach(func() {
		host := swdevice.New()
		occ := host.NewBuffer(gpu.ReadWrite, 8*8, "grid_occupancy")
		a = New(occ, 8, 8)
	})

	bb := func(x0, y0, x1, y1 int) netimport.BBox {
		return netimport.BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}
	}

	It("reports every cell free initially", func() {
		Expect(a.CheckRegion(bb(0, 0, 7, 7), Free)).To(BeTrue())
	})

	It("claims a free region and marks it occupied", func() {
		Expect(a.Claim(bb(0, 0, 2, 2), 3)).To(BeTrue())
		Expect(a.CheckRegion(bb(0, 0, 2, 2), 3)).To(BeTrue())
		Expect(a.CheckRegion(bb(0, 0, 2, 2), Free)).To(BeFalse())
	})

	It("refuses to claim an overlapping region", func() {
		Expect(a.Claim(bb(0, 0, 2, 2), 1)).To(BeTrue())
		Expect(a.Claim(bb(2, 2, 4, 4), 2)).To(BeFalse())
		Expect(a.CheckRegion(bb(2, 2, 4, 4), 1)).To(BeFalse())
	})

	It("frees a region on Release", func() {
		Expect(a.Claim(bb(1, 1, 3, 3), 5)).To(BeTrue())
		a.Release(bb(1, 1, 3, 3))
		Expect(a.CheckRegion(bb(1, 1, 3, 3), Free)).To(BeTrue())
	})

	It("treats an Empty bounding box as trivially free and markable", func() {
		empty := netimport.BBox{X0: 1, Y0: 1, X1: 0, Y1: 0}
		Expect(a.CheckRegion(empty, Free)).To(BeTrue())
		Expect(a.Claim(empty, 9)).To(BeTrue())
	})

	It("rejects a region outside the grid", func() {
		Expect(a.CheckRegion(bb(0, 0, 100, 100), Free)).To(BeFalse())
	})
})
