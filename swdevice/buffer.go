// Package swdevice implements the Software Device (C9): an in-process
// gpu.Host that runs OCuLaR's kernels as goroutines instead of on real
// accelerator hardware. It exists so the router, its tests, and small
// deployments never require a physical GPU.
package swdevice

import (
	"context"

	"github.com/sarchlab/ocular/gpu"
	"github.com/sarchlab/ocular/ocerr"
)

// buffer is the software device's Int32Buffer: the "device" memory and
// the host mirror are literally the same slice, so Upload/Download are
// no-ops that only exist to satisfy the interface and to make the
// buffer's access-pattern intent explicit at call sites.
type buffer struct {
	name string
	kind gpu.BufferKind
	data []int32
}

func newBuffer(kind gpu.BufferKind, elems int, name string) *buffer {
	return &buffer{name: name, kind: kind, data: make([]int32, elems)}
}

func (b *buffer) Upload(ctx context.Context) error {
	return ctx.Err()
}

func (b *buffer) Download(ctx context.Context) error {
	return ctx.Err()
}

func (b *buffer) Len() int {
	return len(b.data)
}

func (b *buffer) Kind() gpu.BufferKind {
	return b.kind
}

func (b *buffer) Get(i int) int32 {
	return b.data[i]
}

func (b *buffer) Set(i int, v int32) {
	if b.kind == gpu.ReadOnly {
		panic(ocerr.New(ocerr.Device, "buffer.Set",
			bufferWriteError{name: b.name}))
	}

	b.data[i] = v
}

type bufferWriteError struct{ name string }

func (e bufferWriteError) Error() string {
	return "write to read-only buffer " + e.name
}
