package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// JSONRecorder writes Events as a single JSON array, one object per
// line, streamed as they arrive rather than buffered whole in memory.
type JSONRecorder struct {
	w         io.WriteCloser
	lock      sync.Mutex
	firstItem bool
}

// NewJSONRecorder creates a new trace file named after a random id and
// opens the JSON array.
func NewJSONRecorder() *JSONRecorder {
	filename := xid.New().String() + ".json"

	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}

	fmt.Printf("recording trace events in %s\n", filename)

	if _, err := f.Write([]byte("[\n")); err != nil {
		panic(err)
	}

	r := &JSONRecorder{w: f, firstItem: true}

	atexit.Register(func() { _ = r.Close() })

	return r
}

// Record implements Recorder.
func (r *JSONRecorder) Record(e Event) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.firstItem {
		r.firstItem = false
	} else if _, err := r.w.Write([]byte(",\n")); err != nil {
		panic(err)
	}

	b, err := json.Marshal(e)
	if err != nil {
		panic(err)
	}

	if _, err := r.w.Write(b); err != nil {
		panic(err)
	}
}

// Flush is a no-op: every Record call already writes through.
func (r *JSONRecorder) Flush() {}

// Close terminates the JSON array and releases the underlying writer.
func (r *JSONRecorder) Close() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, err := r.w.Write([]byte("\n]")); err != nil {
		return err
	}

	return r.w.Close()
}
