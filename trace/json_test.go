package trace

import (
	"encoding/json"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JSONRecorder", func() {
	var (
		dir     string
		origDir string
	)

	BeforeEach(func() {
		var err error

		dir, err = os.MkdirTemp("", "ocular-trace-json-")
		Expect(err).NotTo(HaveOccurred())

		origDir, err = os.Getwd()
		Expect(err).NotTo(HaveOccurred())

		Expect(os.Chdir(dir)).To(Succeed())
	})

	AfterEach(func() {
		Expect(os.Chdir(origDir)).To(Succeed())
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	It("produces a parseable JSON array of every recorded event", func() {
		rec := NewJSONRecorder()

		rec.Record(Event{Pos: "Net Admitted", Net: "N0"})
		rec.Record(Event{Pos: "Net Bound", Net: "N0"})

		Expect(rec.Close()).To(Succeed())

		entries, err := os.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))

		data, err := os.ReadFile(dir + string(os.PathSeparator) + entries[0].Name())
		Expect(err).NotTo(HaveOccurred())

		var events []Event
		Expect(json.Unmarshal(data, &events)).To(Succeed())
		Expect(events).To(HaveLen(2))
		Expect(events[0].Pos).To(Equal("Net Admitted"))
		Expect(events[1].Pos).To(Equal("Net Bound"))
	})
})
