package bufferpool

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ocular/arch"
	"github.com/sarchlab/ocular/config"
	"github.com/sarchlab/ocular/graph"
	"github.com/sarchlab/ocular/swdevice"
)

var _ = Describe("Pool", func() {
	var (
		ctx  context.Context
		host *swdevice.Host
		cfg  config.Config
		g    *graph.Graph
	)

	BeforeEach(func() {
		ctx = context.Background()
		host = swdevice.New()
		cfg = config.Default()
		cfg.NumWorkgroups = 4
		cfg.MaxNetsInFlight = 3

		g = &graph.Graph{
			W:         3,
			AdjOffset: []int32{0, 1, 2, 2},
			EdgeDst:   []int32{1, 2},
			EdgeCost:  []int32{5, 7},
			EdgePip:   []arch.PipID{10, 20},
			WireX:     []int16{0, 0, 0},
			WireY:     []int16{0, 0, 0},
			Handle:    []arch.WireID{0, 1, 2},
		}
	})

	It("sizes every buffer per configuration and mirrors the graph's edges", func() {
		p, err := New(ctx, host, cfg, g, 16, 16)
		Expect(err).NotTo(HaveOccurred())

		Expect(p.EdgeDst.Len()).To(Equal(2))
		Expect(p.EdgeCost.Len()).To(Equal(2))
		Expect(p.EdgeDst.Get(0)).To(Equal(int32(1)))
		Expect(p.EdgeDst.Get(1)).To(Equal(int32(2)))
		Expect(p.EdgeCost.Get(0)).To(Equal(int32(5)))
		Expect(p.EdgeCost.Get(1)).To(Equal(int32(7)))
		Expect(p.NetConfigs).To(HaveLen(3))
		Expect(p.WorkgroupConfigs).To(HaveLen(4))
		Expect(p.Occupancy.Len()).To(Equal(256))
	})

	It("releases the host exactly once", func() {
		p, err := New(ctx, host, cfg, g, 4, 4)
		Expect(err).NotTo(HaveOccurred())

		p.Release()
		p.Release()

		Expect(p.released).To(BeTrue())
	})
})
