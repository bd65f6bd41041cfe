package trap

// context.go defines the flow context: the fixed-layout register image of a
// suspended execution flow.

import (
	"fmt"
	"strings"

	"github.com/YdrMaster/fast-trap/csr"
	"github.com/YdrMaster/fast-trap/word"
)

// FlowContext is a C-layout record of the 32 registers that make up a
// suspended flow: the return address, seven temporaries, eight argument
// registers, twelve callee-saved registers, the global and thread pointers,
// the stack pointer and the program counter. Field order is part of the
// dispatcher's ABI and must not change.
//
// A zero-valued FlowContext is a valid, empty flow.
//
// The caller of this package owns every FlowContext it creates; the
// dispatcher holds a non-owning pointer to at most one per hart at a time.
type FlowContext struct {
	Ra word.Word
	T  [7]word.Word
	A  [8]word.Word
	S  [12]word.Word
	Gp word.Word
	Tp word.Word
	Sp word.Word
	Pc word.Word
}

// ZeroFlowContext is the constant-zero flow: an empty, inert register image.
var ZeroFlowContext = FlowContext{}

// Temporaries returns the temporary registers t0-t6, the subset the fast
// path saves and may freely read and write.
func (fc *FlowContext) Temporaries() *[7]word.Word { return &fc.T }

// Arguments returns the argument registers a0-a7.
func (fc *FlowContext) Arguments() *[8]word.Word { return &fc.A }

// LoadOthers writes the registers that are not covered by the fast-path ABI
// directly to the (simulated) hart: gp and tp into regs, the stack pointer
// into the scratch register, and the program counter into the exception
// program counter. It is called whenever a transition installs a new flow --
// [FastContext.Call] and [FastContext.SwitchTo] -- since those registers
// must be live before the new flow's first instruction runs, not merely
// staged for the next epilogue.
func (fc *FlowContext) LoadOthers(hart *csr.File, regs *HardwareRegs) {
	regs.Gp = fc.Gp
	regs.Tp = fc.Tp
	hart.SetScratch(fc.Sp)
	hart.SetEPC(fc.Pc)
}

func (fc *FlowContext) String() string {
	b := strings.Builder{}

	fmt.Fprintf(&b, "ra:%#x pc:%#x sp:%#x gp:%#x tp:%#x\n", fc.Ra, fc.Pc, fc.Sp, fc.Gp, fc.Tp)

	for i, t := range fc.T {
		fmt.Fprintf(&b, "t%d:%#x ", i, t)
	}

	b.WriteByte('\n')

	for i, a := range fc.A {
		fmt.Fprintf(&b, "a%d:%#x ", i, a)
	}

	b.WriteByte('\n')

	for i, s := range fc.S {
		fmt.Fprintf(&b, "s%d:%#x ", i, s)
	}

	return b.String()
}

// HardwareRegs models the live register state outside the flow context's
// direct control: gp and tp, which load_others writes immediately rather
// than staging for a later restore, since the stack pointer and program
// counter already have dedicated CSRs to carry them.
type HardwareRegs struct {
	Gp word.Word
	Tp word.Word
}
