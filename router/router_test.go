package router

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ocular/arch"
	"github.com/sarchlab/ocular/config"
	"github.com/sarchlab/ocular/hook"
	"github.com/sarchlab/ocular/swdevice"
)

var _ = Describe("Router", func() {
	var (
		adb *fakeArch
		ndb *fakeNetDB
	)

	BeforeEach(func() {
		adb = newFakeArch()
		adb.addWire(0, 0, 0)
		adb.addWire(1, 1, 0)
		adb.addWire(2, 2, 0)
		adb.addPip(100, 0, 1)
		adb.addPip(101, 1, 2)

		adb.placeCell(10, 0, 0, 0)
		adb.placeCell(11, 2, 2, 0)

		ndb = newFakeNetDB()
		ndb.addNet("N0", 10, 11)
	})

	It("rejects a builder missing required collaborators", func() {
		_, err := MakeBuilder().WithArch(adb).Build()
		Expect(err).To(HaveOccurred())
	})

	It("rejects a non-positive grid size", func() {
		_, err := MakeBuilder().
			WithArch(adb).
			WithNetDB(ndb).
			WithHost(swdevice.New()).
			WithGridSize(0, 0).
			Build()
		Expect(err).To(HaveOccurred())
	})

	It("routes a single net end to end and binds every pip on its path", func() {
		host := swdevice.New()

		r, err := MakeBuilder().
			WithArch(adb).
			WithNetDB(ndb).
			WithHost(host).
			WithGridSize(4, 1).
			Build()
		Expect(err).NotTo(HaveOccurred())

		err = r.RouteAll(context.Background())
		Expect(err).NotTo(HaveOccurred())

		Expect(adb.boundPips).To(ConsistOf(arch.PipID(100), arch.PipID(101)))
		for _, net := range adb.boundNets {
			Expect(net).To(Equal(arch.NetID("N0")))
		}
	})

	It("fires PosUnroutable and does not panic when a net has no path to its sink", func() {
		isolated := newFakeArch()
		isolated.addWire(0, 0, 0)
		isolated.addWire(1, 5, 0)
		isolated.placeCell(20, 0, 0, 0)
		isolated.placeCell(21, 1, 5, 0)

		isolatedNets := newFakeNetDB()
		isolatedNets.addNet("M0", 20, 21)

		cfg := config.Default()
		cfg.MaxOuterIters = 2
		cfg.NumWorkgroups = 2
		cfg.WorkgroupSize = 4
		cfg.NearQueueLen = 16
		cfg.FarQueueLen = 16
		cfg.DirtyQueueLen = 16
		cfg.MaxNetsInFlight = 2
		cfg.StuckStepLimit = 2

		r, err := MakeBuilder().
			WithArch(isolated).
			WithNetDB(isolatedNets).
			WithHost(swdevice.New()).
			WithConfig(cfg).
			WithGridSize(6, 1).
			Build()
		Expect(err).NotTo(HaveOccurred())

		var unroutable bool
		r.AcceptHook(hook.FuncHook(func(ctx hook.Ctx) {
			if ctx.Pos == hook.PosUnroutable {
				unroutable = true
			}
		}))

		err = r.RouteAll(context.Background())
		Expect(err).To(HaveOccurred())
		Expect(unroutable).To(BeTrue())
	})
})
