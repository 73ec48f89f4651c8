package congestion

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/ocular/arbiter"
	"github.com/sarchlab/ocular/arch"
	"github.com/sarchlab/ocular/arch/archmock"
	"github.com/sarchlab/ocular/bufferpool"
	"github.com/sarchlab/ocular/config"
	"github.com/sarchlab/ocular/graph"
	"github.com/sarchlab/ocular/netimport"
	"github.com/sarchlab/ocular/ocerr"
	"github.com/sarchlab/ocular/swdevice"
)

var _ = Describe("Loop", func() {
	var (
		ctrl *gomock.Controller
		adb  *archmock.MockDatabase
		g    *graph.Graph
		host *swdevice.Host
		arb  *arbiter.Arbiter
		pool *bufferpool.Pool
		cfg  config.Config
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		adb = archmock.NewMockDatabase(ctrl)
		host = swdevice.New()

		cfg = config.Default()
		cfg.MaxNetsInFlight = 4
		cfg.NumWorkgroups = 4
		cfg.WorkgroupSize = 8
		cfg.NearQueueLen = 32
		cfg.FarQueueLen = 32
		cfg.DirtyQueueLen = 32
		cfg.StuckStepLimit = 2
		cfg.InfCost = 1000
		cfg.MaxOuterIters = 3

		g = &graph.Graph{
			W:         8,
			AdjOffset: []int32{0, 1, 2, 2, 3, 4, 4, 4, 4},
			EdgeDst:   []int32{1, 2, 4, 5},
			EdgeCost:  []int32{1, 1, 1, 1},
			EdgePip:   []arch.PipID{100, 101, 200, 201},
			WireX:     []int16{0, 1, 2, 5, 6, 7, 9, 9},
			WireY:     []int16{0, 0, 0, 0, 0, 0, 0, 0},
			Handle:    []arch.WireID{0, 1, 2, 3, 4, 5, 6, 7},
		}

		var err error
		pool, err = bufferpool.New(context.Background(), host, cfg, g, 10, 1)
		Expect(err).NotTo(HaveOccurred())

		arb = arbiter.New(pool.Occupancy, 10, 1)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("binds every net when their bounding boxes never contend", func() {
		netA := &netimport.Net{ID: "A", Rank: 0, Driver: 0, Sinks: []int32{2}, BBox: netimport.BBox{X0: 0, Y0: 0, X1: 2, Y1: 0}}
		netB := &netimport.Net{ID: "B", Rank: 1, Driver: 3, Sinks: []int32{5}, BBox: netimport.BBox{X0: 5, Y0: 0, X1: 7, Y1: 0}}

		adb.EXPECT().RipupNet(gomock.Any()).Return(nil).AnyTimes()
		adb.EXPECT().BindPip(gomock.Any(), gomock.Any()).Return(nil).Times(4)

		loop := New(g, adb, arb, host, cfg, 10, 1, pool)
		err := loop.Run(context.Background(), []*netimport.Net{netA, netB})

		Expect(err).NotTo(HaveOccurred())
	})

	It("skips fixed_routing and undriven nets without touching the architecture database", func() {
		fixed := &netimport.Net{ID: "F", Rank: 0, FixedRouting: true, FixedWires: []int32{1}}
		undriven := &netimport.Net{ID: "U", Rank: 1, Undriven: true}

		loop := New(g, adb, arb, host, cfg, 10, 1, pool)
		err := loop.Run(context.Background(), []*netimport.Net{fixed, undriven})

		Expect(err).NotTo(HaveOccurred())
	})

	It("reports Unroutable once a net can never settle within the iteration budget", func() {
		netC := &netimport.Net{ID: "C", Rank: 0, Driver: 7, Sinks: []int32{6}, BBox: netimport.BBox{X0: 9, Y0: 0, X1: 9, Y1: 0}}

		adb.EXPECT().RipupNet(gomock.Any()).Return(nil).AnyTimes()

		loop := New(g, adb, arb, host, cfg, 10, 1, pool)
		err := loop.Run(context.Background(), []*netimport.Net{netC})

		Expect(err).To(HaveOccurred())

		var oerr *ocerr.Error
		Expect(errors.As(err, &oerr)).To(BeTrue())
		Expect(oerr.Kind).To(Equal(ocerr.Unroutable))
	})
})
