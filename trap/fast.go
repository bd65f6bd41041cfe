package trap

// fast.go defines the fast path facade: the typed surface exposed to the
// fast handler, and the terminators that turn it into a FastResult.

import (
	"github.com/YdrMaster/fast-trap/csr"
	"github.com/YdrMaster/fast-trap/word"
)

// FastHandler is the fast path's fixed signature: an opaque context plus the
// seven argument registers a1-a7 untouched by the dispatcher's minimal
// save, returning a discriminant.
type FastHandler func(ctx FastContext, a1, a2, a3, a4, a5, a6, a7 word.Word) FastResult

// FastContext is the surface a fast handler operates through. It grants
// access to the stashed a0, the saved temporaries, and the flow context --
// but registers s0-s11 are not part of this surface, since they have not
// been saved and still hold whatever the trapped-in flow last put there.
type FastContext struct {
	thb  *trapHandlerBlock
	hart *csr.File
	hw   *HardwareRegs
}

// A0 returns the trapped-in a0, stashed by the dispatcher before the fast
// handler ran (a0 itself was needed to pass the trap handler block as the
// handler's first argument).
func (c FastContext) A0() word.Word { return c.thb.a0 }

// T returns temporary register i (0-6), already saved into the flow
// context by the dispatcher's minimal save.
func (c FastContext) T(i int) word.Word { return c.thb.context.T[i] }

// SetT writes temporary register i (0-6) in the flow context.
func (c FastContext) SetT(i int, v word.Word) { c.thb.context.T[i] = v }

// SetA writes argument register i (0-7) in the flow context.
func (c FastContext) SetA(i int, v word.Word) { c.thb.context.A[i] = v }

// Regs returns the full flow context for mutation. Used when the handler
// already knows it will terminate in a broad-restore mode (Restore or
// Switch) and wants to set registers directly rather than through SetA/SetT.
func (c FastContext) Regs() *FlowContext { return c.thb.context }

// SaveArgs copies all eight argument values -- a1-a7 as given, plus the
// stashed a0 -- into the flow context's argument registers.
func (c FastContext) SaveArgs(a1, a2, a3, a4, a5, a6, a7 word.Word) {
	a := c.thb.context.Arguments()
	*a = [8]word.Word{c.A0(), a1, a2, a3, a4, a5, a6, a7}
}

// SwapContext atomically replaces the flow context the trap handler block
// targets and returns the one it replaced.
func (c FastContext) SwapContext(new *FlowContext) *FlowContext {
	old := c.thb.context
	c.thb.context = new

	return old
}

// Restore resumes the current flow. The caller must have set the argument
// registers itself, via SaveArgs or direct writes, since the restore prefix
// for this result includes a0-a7.
func (c FastContext) Restore() FastResult {
	return FastResultRestore
}

// Call installs newFC as the trap handler block's target and loads its
// non-ABI registers onto the (simulated) hart immediately, then returns the
// result that restores as many argument registers as argc requires.
func (c FastContext) Call(newFC *FlowContext, argc int) FastResult {
	c.thb.context = newFC
	newFC.LoadOthers(c.hart, c.hw)

	if argc <= 2 {
		return FastResultFastCall
	}

	return FastResultCall
}

// SwitchTo discards the current flow and installs other as the trap handler
// block's new target, loading its non-ABI registers onto the hart
// immediately.
func (c FastContext) SwitchTo(other *FlowContext) FastResult {
	other.LoadOthers(c.hart, c.hw)
	c.thb.context = other

	return FastResultSwitch
}

// ContinueWith escalates to the entire path. value is ferried to the entire
// handler as its FastMail payload; entire is invoked exactly once, by
// Dispatch, after the dispatcher finishes saving the callee-saved
// registers. The caller must have set the argument registers itself first,
// just as with Restore, since escalation eventually resumes via the same
// broad restore paths.
func ContinueWith[T any](c FastContext, entire EntireHandler[T], value T) FastResult {
	mail := new(T)
	*mail = value

	c.thb.escalation = &escalationImpl[T]{handler: entire, mail: mail}

	return FastResultContinue
}

// escalation is the type-erased form of an EntireHandler[T] paired with its
// FastMail payload. It stands in for the ABI's scratch-cell reuse, which
// assembly expresses by overwriting an integer register with a function
// pointer; Go requires a typed indirection to keep the payload's type safe.
type escalation interface {
	invoke(sep EntireContextSeparated) EntireResult
}

type escalationImpl[T any] struct {
	handler EntireHandler[T]
	mail    *T
}

func (e *escalationImpl[T]) invoke(sep EntireContextSeparated) EntireResult {
	return e.handler(EntireContext[T]{sep: sep, mail: e.mail})
}
