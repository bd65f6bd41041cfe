package trap

// dispatch.go implements the trap entry trampoline.

import (
	"github.com/YdrMaster/fast-trap/csr"
	"github.com/YdrMaster/fast-trap/word"
)

// TrapRegs is the hardware-visible register state at the trap boundary: the
// values a trap delivers to Dispatch, and the values Dispatch hands back
// for the caller (standing in for hardware) to apply on return. Only the
// fields covered by the RestorePrefix Dispatch returns are meaningful in
// the output value; the others carry whatever Dispatch happened to leave in
// them and must not be relied upon.
type TrapRegs struct {
	Ra word.Word
	T  [7]word.Word
	A  [8]word.Word
	S  [12]word.Word
	Gp word.Word
	Tp word.Word
	Sp word.Word
	Pc word.Word
}

// EntryFunc is the type of the exported trap-entry symbol: Dispatch itself.
// It exists so Install has something concrete to hand to csr.File.SetTvec,
// which stores the trampoline as an opaque any to avoid an import cycle
// between csr and trap.
type EntryFunc func(hart *csr.File, in TrapRegs) (TrapRegs, RestorePrefix)

// Install places Dispatch into hart's trap-vector register, completing the
// host integration interface's step 5 (spec.md §6): install the exported
// trap-entry symbol into the privileged trap-vector CSR. Nothing in this
// package ever reads Tvec back -- Dispatch is always the entry point a real
// trap delivers control to -- but installing it documents, and lets a caller
// verify by inspection, that a hart has been wired up before its first trap
// stack is loaded.
func Install(hart *csr.File) {
	hart.SetTvec(EntryFunc(Dispatch))
}

// Dispatch is the trap entry trampoline. hart's scratch register must
// already hold the identity of a loaded trap stack's trap handler block --
// the precondition hardware guarantees by construction, since a trap only
// reaches the trampoline after a LoadedTrapStack installed it there. in
// carries the register values live at the moment of the trap.
//
// Dispatch performs, in order: the stack swap (exchanging the trapped-in
// stack pointer for the trap handler block identity), the minimal save (ra
// and t0-t6 into the flow context), the fast-handler call, and then walks
// the restoration ladder the fast (and, on escalation, entire) handler's
// result selects. It returns the register values to restore and which
// prefix of them is authoritative.
func Dispatch(hart *csr.File, in TrapRegs) (TrapRegs, RestorePrefix) {
	// Hardware captures the trapped-in program counter before the
	// trampoline runs at all; the exception program counter holds it from
	// here on, and only load_others (Call, SwitchTo) ever overwrites it.
	hart.SetEPC(in.Pc)

	// Step 1: stack swap. The scratch register holds the trap handler
	// block identity (precondition); exchanging in.Sp into it leaves the
	// trapped-in stack pointer there for the epilogue to restore, and
	// recovers the identity we need to address the trap handler block.
	thbWord := hart.ExchangeScratch(in.Sp)
	thb := wordToThb(thbWord)

	// Step 2: stash a0, load the flow context pointer.
	thb.a0 = in.A[0]
	fc := thb.context

	// Step 3: minimal save. s0-s11 are deliberately left alone.
	fc.Ra = in.Ra
	fc.T = in.T

	hw := &HardwareRegs{Gp: in.Gp, Tp: in.Tp}
	ctx := FastContext{thb: thb, hart: hart, hw: hw}

	// Step 4: fast call.
	result := thb.fastHandler(ctx, in.A[1], in.A[2], in.A[3], in.A[4], in.A[5], in.A[6], in.A[7])

	// Reload the flow context pointer: Call, SwitchTo and SwapContext may
	// have retargeted the trap handler block, and the epilogue restores
	// from whichever flow it targets now.
	fc = thb.context

	var prefix RestorePrefix

	if result == FastResultContinue {
		// Step 5.4: escalate. Complete the register image, then hand it
		// to the entire handler chosen by ContinueWith. The entire
		// handler may itself request a narrow restore (FastCall/Call) by
		// mutating the flow context and returning early, or a full
		// restore (Restore).
		fc.S = in.S

		esc := thb.escalation
		thb.escalation = nil

		entireResult := esc.invoke(EntireContextSeparated{thb: thb})
		prefix = entireResult.restorePrefix()
	} else {
		prefix = result.restorePrefix()
	}

	// Step 6: epilogue. The value exchanged out of the scratch register is
	// the stack pointer to resume with: the trapped-in sp, untouched,
	// unless Call or SwitchTo loaded a different flow's sp into it along
	// the way. Restoring the trap handler block identity leaves the next
	// trap able to find it there again.
	restoredSP := hart.ExchangeScratch(thbWord)

	return buildTrapRegs(fc, hw, restoredSP, hart.EPC()), prefix
}

func buildTrapRegs(fc *FlowContext, hw *HardwareRegs, sp, pc word.Word) TrapRegs {
	return TrapRegs{
		Ra: fc.Ra,
		T:  fc.T,
		A:  fc.A,
		S:  fc.S,
		Gp: hw.Gp,
		Tp: hw.Tp,
		Sp: sp,
		Pc: pc,
	}
}
