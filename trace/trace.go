// Package trace turns the hook.Ctx events fired across the router into
// durable records. It is a direct descendant of sarchlab/akita's
// tracing package: the same event-then-writer split, the same
// buffer-and-flush writers, retargeted at OCuLaR's own hook positions
// instead of akita's task lifecycle.
package trace

import (
	"fmt"
	"time"

	"github.com/sarchlab/ocular/hook"
)

// Event is one recorded hook firing, flattened into a shape every
// Recorder backend can serialize without knowing about hook.Ctx.
type Event struct {
	Pos    string
	Net    string
	Detail string
	Time   time.Time
}

// Recorder consumes Events. CSVRecorder and SQLiteRecorder buffer
// internally and write on Flush; JSONRecorder writes each event through
// as it is recorded, so its Flush does nothing. Close drains and
// releases resources.
type Recorder interface {
	Record(e Event)
	Flush()
	Close() error
}

// NewHook adapts a Recorder into a hook.Hook that router components can
// AcceptHook. Item and Detail are best-effort stringified; callers that
// need the original values should hook the component directly instead.
func NewHook(r Recorder) hook.Hook {
	return hook.FuncHook(func(ctx hook.Ctx) {
		r.Record(Event{
			Pos:    ctx.Pos.Name,
			Net:    stringify(ctx.Item),
			Detail: stringify(ctx.Detail),
			Time:   time.Now(),
		})
	})
}

func stringify(v interface{}) string {
	if v == nil {
		return ""
	}

	switch t := v.(type) {
	case string:
		return t
	case interface{ String() string }:
		return t.String()
	case error:
		return t.Error()
	default:
		return fmt.Sprintf("%v", t)
	}
}
