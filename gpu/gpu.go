// Package gpu declares the GPU host abstraction collaborator trait:
// typed device buffers with host-mirrored staging and a kernel-launch
// primitive. Device discovery, kernel compilation, and buffer
// marshaling are all owned by the caller-supplied Host implementation;
// OCuLaR never talks to hardware directly.
package gpu

import "context"

// BufferKind records the access pattern a buffer will see from device
// code, so a real backend can pick an appropriate memory type. The
// software device (package swdevice) treats all three identically
// except that any Set on a ReadOnly buffer panics.
type BufferKind int

// The buffer access-pattern kinds.
const (
	ReadOnly BufferKind = iota
	ReadWrite
	WriteOnly
)

// KernelID names a kernel a Host knows how to launch. OCuLaR defines
// the kernel identities its own components need (see package
// wavefront); a Host implementation maps them to whatever it actually
// runs.
type KernelID string

// Buffer is a typed, host-mirrored device buffer.
type Buffer interface {
	// Upload copies the host mirror to the device.
	Upload(ctx context.Context) error
	// Download copies the device buffer back to the host mirror.
	Download(ctx context.Context) error
	// Len reports the buffer's element count.
	Len() int
	// Kind reports the buffer's declared access pattern.
	Kind() BufferKind
}

// Int32Buffer is a Buffer whose host mirror is addressable as int32
// values, used for cost/edge/offset tables.
type Int32Buffer interface {
	Buffer
	Get(i int) int32
	Set(i int, v int32)
}

// Host is the GPU host abstraction: it creates buffers and launches
// kernels against them. Integer atomics (atomic_min, atomic_add) are
// assumed available to code running inside a Launch call; the
// interface itself has no atomics because they are a property of
// kernel code, not of the host.
type Host interface {
	// NewBuffer allocates a buffer of elems 32-bit elements.
	NewBuffer(kind BufferKind, elems int, name string) Int32Buffer

	// Launch runs kernel across groups workgroups of groupSize
	// work-items each, blocking until the kernel has completed. args
	// is an ordered, kernel-defined argument list.
	Launch(ctx context.Context, kernel KernelID, groups, groupSize int, args ...any) error

	// Close releases every resource the Host owns.
	Close() error
}
