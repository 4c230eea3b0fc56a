package nav

import "github.com/google/uuid"

// Panel is the capability a screen must provide to live on the stack.
// Close runs the panel's own teardown; the controller invokes it at most
// once per registration. Lockable marks panels that must stay open while
// the external lock reports active.
type Panel interface {
	Close()
	Lockable() bool
}

// Handle is a single-use token returned by Open. Remove and Close require
// it so the controller can verify the caller really is the current top of
// the stack instead of trusting call order.
type Handle string

type entry struct {
	handle Handle
	panel  Panel
}

// Controller keeps the ordered set of open panels. The element at the end
// of the stack is the most recently opened panel still open and the sole
// recipient of dismiss requests. All operations are defensive no-ops on
// malformed call sequences; nothing here returns an error.
//
// Not safe for concurrent use. Every mutation must come from the single
// event loop that owns the controller.
type Controller struct {
	stack  []entry
	locked func() bool
	diag   func(format string, args ...any)
}

// Option configures a Controller at construction.
type Option func(*Controller)

// WithDiagnostics installs a printf-style hook that fires whenever an
// operation is refused. Refusals stay silent no-ops either way; the hook
// exists for development-time detection of bad call sequences.
func WithDiagnostics(f func(format string, args ...any)) Option {
	return func(c *Controller) { c.diag = f }
}

// New returns a controller that reads the external lock through locked.
// A nil locked func means the lock is never active.
func New(locked func() bool, opts ...Option) *Controller {
	c := &Controller{locked: locked}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open pushes panel onto the top of the stack and returns its handle.
// A nil panel is ignored and yields the zero handle. Open never refuses:
// duplicate registrations are the caller's responsibility.
func (c *Controller) Open(panel Panel) Handle {
	if panel == nil {
		c.refused("open: nil panel")
		return ""
	}
	h := Handle(uuid.NewString())
	c.stack = append(c.stack, entry{handle: h, panel: panel})
	return h
}

// Remove pops the top panel without running its teardown. It is the
// bookkeeping half of a panel closing itself through its own control:
// the panel hands back the handle it got from Open, and runs its own
// Close only after Remove accepts.
func (c *Controller) Remove(h Handle) bool {
	_, ok := c.pop(h)
	return ok
}

// Close pops the top panel and runs its teardown, validating h the same
// way Remove does.
func (c *Controller) Close(h Handle) bool {
	panel, ok := c.pop(h)
	if ok {
		panel.Close()
	}
	return ok
}

// CloseTop pops and tears down whatever panel is on top. This is the path
// a dismiss signal takes; it needs no handle because the signal is aimed
// at "the top", not at a specific panel.
func (c *Controller) CloseTop() bool {
	if len(c.stack) == 0 {
		c.refused("close-top: stack empty")
		return false
	}
	panel, ok := c.pop(c.stack[len(c.stack)-1].handle)
	if ok {
		panel.Close()
	}
	return ok
}

// Top returns the panel currently on top, or nil when the stack is empty.
func (c *Controller) Top() Panel {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1].panel
}

// TopHandle returns the handle of the panel currently on top, or the zero
// handle when the stack is empty.
func (c *Controller) TopHandle() Handle {
	if len(c.stack) == 0 {
		return ""
	}
	return c.stack[len(c.stack)-1].handle
}

// Len reports how many panels are open.
func (c *Controller) Len() int {
	return len(c.stack)
}

// pop validates h against the top of the stack and removes the top entry
// when every check passes. Refusal reasons, in check order: empty stack,
// handle not naming the top (stale or out-of-order close), top panel
// locked open. A popped handle is gone for good, so a second Remove or
// Close with the same handle lands in the stale case.
func (c *Controller) pop(h Handle) (Panel, bool) {
	if len(c.stack) == 0 {
		c.refused("pop: stack empty")
		return nil, false
	}
	top := c.stack[len(c.stack)-1]
	if h == "" || h != top.handle {
		c.refused("pop: handle %q is not the top of the stack", h)
		return nil, false
	}
	if top.panel.Lockable() && c.lockActive() {
		c.refused("pop: top panel is locked open")
		return nil, false
	}
	c.stack = c.stack[:len(c.stack)-1]
	return top.panel, true
}

func (c *Controller) lockActive() bool {
	return c.locked != nil && c.locked()
}

func (c *Controller) refused(format string, args ...any) {
	if c.diag != nil {
		c.diag(format, args...)
	}
}
