package trap

// entire.go defines the entire path facade: the typed surface exposed to
// the entire handler once a fast handler escalates, and the FastMail
// payload ferried between them.

import "sync"

// EntireHandler is the entire path's fixed signature: a single typed
// argument, the entire context carrying the payload chosen at
// ContinueWith, returning a discriminant. T is bound by the ContinueWith
// call that names this handler; the dispatcher never constructs an
// EntireContext itself.
type EntireHandler[T any] func(EntireContext[T]) EntireResult

// EntireContext is the entire handler's argument: the full flow context,
// now completely populated, and the FastMail payload ferried from the fast
// path, aliased together until Split separates them.
type EntireContext[T any] struct {
	sep  EntireContextSeparated
	mail *T
}

// Split separates the register-access half of the context from its
// FastMail payload, so both can be used at once. Because the two parts are
// conceptually disjoint -- the handler either inspects registers or
// consumes the payload, never the same memory for both -- Split is the only
// way to reach both in the same call.
func (c EntireContext[T]) Split() (EntireContextSeparated, FastMail[T]) {
	return c.sep, FastMail[T]{value: c.mail, consumed: new(sync.Once)}
}

// EntireContextSeparated is an EntireContext with its FastMail payload
// already split off.
type EntireContextSeparated struct {
	thb *trapHandlerBlock
}

// Regs returns the full flow context, by now a complete register image.
func (sep EntireContextSeparated) Regs() *FlowContext { return sep.thb.context }

// Restore switches to (or resumes) whatever flow context Regs currently
// targets, restoring every register.
func (sep EntireContextSeparated) Restore() EntireResult {
	return EntireResultRestore
}

// FastMail is a typed payload carried from the fast path to the entire
// path. Exactly one exists per escalation. It may be read and written
// through the pointer Deref returns without being consumed, or taken
// exactly once with Get.
type FastMail[T any] struct {
	value    *T
	consumed *sync.Once
}

// Deref returns the payload without consuming it.
func (m FastMail[T]) Deref() *T { return m.value }

// Get moves T out of the payload. Calling Get more than once -- including
// after the payload's value has already been taken by an earlier Get on a
// copy of the same FastMail -- panics, mirroring the aliasing invariant in
// spec.md §8 (taking the payload and returning Restore must not drop it a
// second time).
func (m FastMail[T]) Get() T {
	taken := true

	m.consumed.Do(func() { taken = false })

	if taken {
		panic("trap: FastMail already consumed")
	}

	return *m.value
}
