package swdevice

import (
	"context"
	"fmt"

	"github.com/sarchlab/ocular/gpu"
	"github.com/sarchlab/ocular/hook"
	"github.com/sarchlab/ocular/ocerr"
	"github.com/sarchlab/ocular/wavefront"
)

// KernelFunc is a kernel body a Host can dispatch to. groups/groupSize
// are informational for a software device (real parallelism comes from
// the kernel body itself, e.g. wavefront.RunStep's per-workgroup
// goroutines); a kernel that ignores them still runs correctly.
type KernelFunc func(ctx context.Context, groups, groupSize int, args []any) error

// Host is the software device: a gpu.Host that executes every launch
// in-process. It ships with the wavefront step kernel pre-registered;
// callers may register additional kernels with Register for testing.
type Host struct {
	*hook.Base

	kernels map[gpu.KernelID]KernelFunc
	buffers []*buffer
}

// New creates a software device with the built-in kernels registered.
func New() *Host {
	h := &Host{
		Base:    hook.NewBase(),
		kernels: make(map[gpu.KernelID]KernelFunc),
	}

	h.Register(wavefront.KernelStep, runWavefrontStep)

	return h
}

// Register adds or replaces the kernel body dispatched for id.
func (h *Host) Register(id gpu.KernelID, fn KernelFunc) {
	h.kernels[id] = fn
}

// NewBuffer implements gpu.Host.
func (h *Host) NewBuffer(kind gpu.BufferKind, elems int, name string) gpu.Int32Buffer {
	b := newBuffer(kind, elems, name)
	h.buffers = append(h.buffers, b)

	return b
}

// Launch implements gpu.Host by looking up and running the registered
// kernel body, then firing hook.PosStepDrained so recorders can observe
// per-launch timing without the kernel itself knowing about them.
func (h *Host) Launch(ctx context.Context, kernel gpu.KernelID, groups, groupSize int, args ...any) error {
	fn, ok := h.kernels[kernel]
	if !ok {
		return ocerr.New(ocerr.Device, "Host.Launch", unknownKernelError{kernel: kernel})
	}

	if err := fn(ctx, groups, groupSize, args); err != nil {
		return err
	}

	h.InvokeHook(hook.Ctx{Domain: h, Pos: hook.PosStepDrained, Item: kernel})

	return nil
}

// Close releases every buffer the device allocated. Software buffers
// hold no external resource, so this only drops references.
func (h *Host) Close() error {
	h.buffers = nil
	return nil
}

func runWavefrontStep(ctx context.Context, _, _ int, args []any) error {
	if len(args) != 1 {
		return ocerr.New(ocerr.Device, "runWavefrontStep",
			fmt.Errorf("want 1 arg, got %d", len(args)))
	}

	stepArgs, ok := args[0].(*wavefront.StepArgs)
	if !ok {
		return ocerr.New(ocerr.Device, "runWavefrontStep",
			fmt.Errorf("want *wavefront.StepArgs, got %T", args[0]))
	}

	return wavefront.RunStep(ctx, stepArgs)
}

type unknownKernelError struct{ kernel gpu.KernelID }

func (e unknownKernelError) Error() string {
	return fmt.Sprintf("unregistered kernel %q", e.kernel)
}
