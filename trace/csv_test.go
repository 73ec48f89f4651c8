package trace

import (
	"bufio"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CSVRecorder", func() {
	var (
		dir     string
		origDir string
	)

	BeforeEach(func() {
		var err error

		dir, err = os.MkdirTemp("", "ocular-trace-csv-")
		Expect(err).NotTo(HaveOccurred())

		origDir, err = os.Getwd()
		Expect(err).NotTo(HaveOccurred())

		Expect(os.Chdir(dir)).To(Succeed())
	})

	AfterEach(func() {
		Expect(os.Chdir(origDir)).To(Succeed())
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	It("writes a header and one row per recorded event on Close", func() {
		rec := NewCSVRecorder("run")

		rec.Record(Event{Pos: "Net Admitted", Net: "N0"})
		rec.Record(Event{Pos: "Net Bound", Net: "N0"})

		Expect(rec.Close()).To(Succeed())

		f, err := os.Open(filepath.Join(dir, "run.csv"))
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		var lines []string
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}

		Expect(lines).To(HaveLen(3))
		Expect(lines[0]).To(ContainSubstring("Pos"))
		Expect(lines[1]).To(ContainSubstring("Net Admitted"))
		Expect(lines[2]).To(ContainSubstring("Net Bound"))
	})

	It("flushes automatically once the buffer fills", func() {
		rec := NewCSVRecorder("overflow")
		rec.bufferSize = 2

		rec.Record(Event{Pos: "A"})
		rec.Record(Event{Pos: "B"})

		Expect(rec.events).To(BeEmpty())

		Expect(rec.Close()).To(Succeed())
	})
})
