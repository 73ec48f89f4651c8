package trace

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SQLiteRecorder", func() {
	var (
		dir     string
		origDir string
	)

	BeforeEach(func() {
		var err error

		dir, err = os.MkdirTemp("", "ocular-trace-sqlite-")
		Expect(err).NotTo(HaveOccurred())

		origDir, err = os.Getwd()
		Expect(err).NotTo(HaveOccurred())

		Expect(os.Chdir(dir)).To(Succeed())
	})

	AfterEach(func() {
		Expect(os.Chdir(origDir)).To(Succeed())
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	It("batches events into the trace table and commits on Flush", func() {
		rec := NewSQLiteRecorder("run")

		rec.Record(Event{Pos: "Net Admitted", Net: "N0"})
		rec.Record(Event{Pos: "Net Bound", Net: "N0", Detail: "3 pips"})

		rec.Flush()

		var count int
		row := rec.db.QueryRow("SELECT COUNT(*) FROM trace")
		Expect(row.Scan(&count)).To(Succeed())
		Expect(count).To(Equal(2))

		Expect(rec.Close()).To(Succeed())
	})

	It("flushes automatically once the batch size is reached", func() {
		rec := NewSQLiteRecorder("overflow")
		rec.batchSize = 1

		rec.Record(Event{Pos: "A"})

		Expect(rec.buffered).To(BeEmpty())

		Expect(rec.Close()).To(Succeed())
	})
})
