package trace

import (
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// CSVRecorder buffers Events and flushes them to a CSV file. If path is
// empty, NewCSVRecorder generates one from a random id, the way the
// teacher's CSVTraceWriter does.
type CSVRecorder struct {
	path string
	file *os.File

	events     []Event
	bufferSize int
}

// NewCSVRecorder creates the trace file and registers an atexit flush
// so a caller that forgets to Close still gets its buffered events on
// disk.
func NewCSVRecorder(path string) *CSVRecorder {
	if path == "" {
		path = "ocular_trace_" + xid.New().String()
	}

	r := &CSVRecorder{path: path, bufferSize: 1000}

	filename := r.path + ".csv"

	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}

	r.file = file

	fmt.Fprintf(file, "Time, Pos, Net, Detail\n")

	atexit.Register(func() {
		r.Flush()

		if err := r.file.Close(); err != nil {
			panic(err)
		}
	})

	return r
}

// Record implements Recorder.
func (r *CSVRecorder) Record(e Event) {
	r.events = append(r.events, e)

	if len(r.events) >= r.bufferSize {
		r.Flush()
	}
}

// Flush writes every buffered event to the CSV file.
func (r *CSVRecorder) Flush() {
	for _, e := range r.events {
		fmt.Fprintf(r.file, "%s, %s, %s, %s\n",
			e.Time.Format("15:04:05.000000"), e.Pos, e.Net, e.Detail)
	}

	r.events = nil
}

// Close flushes and releases the underlying file.
func (r *CSVRecorder) Close() error {
	r.Flush()
	return r.file.Close()
}
