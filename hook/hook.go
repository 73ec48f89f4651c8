// Package hook provides the instrumentation seam used across OCuLaR.
// It is a direct port of sarchlab/akita's sim.Hookable /
// sim.HookableBase: a component that wants to be observable embeds
// Base and gains AcceptHook / InvokeHook without taking a dependency on
// any particular recorder.
package hook

// Pos names a point in the router's execution where a hook may fire.
type Pos struct {
	Name string
}

// Predefined hook positions fired by the router components. Recorders
// switch on these to decide what to do with a Ctx.
var (
	PosNetAdmitted   = &Pos{Name: "Net Admitted"}
	PosStepDrained   = &Pos{Name: "Wavefront Step Drained"}
	PosSinkSettled   = &Pos{Name: "Sink Settled"}
	PosNetBound      = &Pos{Name: "Net Bound"}
	PosNodeOverused  = &Pos{Name: "Node Overused"}
	PosIterationDone = &Pos{Name: "Outer Iteration Done"}
	PosUnroutable    = &Pos{Name: "Run Unroutable"}
)

// Ctx carries the information available at the site a hook fires.
type Ctx struct {
	Domain Hookable
	Pos    *Pos
	Item   interface{}
	Detail interface{}
}

// Hookable is implemented by anything that accepts hooks.
type Hookable interface {
	AcceptHook(h Hook)
}

// Hook is invoked by a Hookable object at each of its hook positions.
type Hook interface {
	Func(ctx Ctx)
}

// Base provides AcceptHook/InvokeHook to embedding types.
type Base struct {
	hooks []Hook
}

// NewBase creates an empty Base.
func NewBase() *Base {
	return &Base{hooks: make([]Hook, 0)}
}

// AcceptHook registers a hook.
func (b *Base) AcceptHook(h Hook) {
	b.hooks = append(b.hooks, h)
}

// NumHooks returns how many hooks are currently registered.
func (b *Base) NumHooks() int {
	return len(b.hooks)
}

// InvokeHook triggers every registered hook with ctx.
func (b *Base) InvokeHook(ctx Ctx) {
	for _, h := range b.hooks {
		h.Func(ctx)
	}
}

// ForwardTo registers every hook already accepted by b onto dst, so a
// component that owns several shorter-lived collaborators (one outer
// iteration's Scheduler, one net's Bind call) can share its recorders
// with them without dst needing to know who originally attached them.
func (b *Base) ForwardTo(dst Hookable) {
	for _, h := range b.hooks {
		dst.AcceptHook(h)
	}
}

// FuncHook adapts a plain function to the Hook interface, the way
// callers usually want to attach a one-off recorder without declaring
// a named type.
type FuncHook func(ctx Ctx)

// Func implements Hook.
func (f FuncHook) Func(ctx Ctx) {
	f(ctx)
}
