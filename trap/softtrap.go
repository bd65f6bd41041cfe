package trap

// softtrap.go provides a way to exercise the dispatcher without waiting for
// real hardware to deliver a trap.

import (
	"github.com/YdrMaster/fast-trap/csr"
	"github.com/YdrMaster/fast-trap/word"
)

// SoftTrap fakes a trap with the given cause: it records cause in the
// hart's cause register and runs Dispatch with in as the register state at
// the fault. It exists to test the dispatcher without hardware cooperation,
// exactly as spec.md's soft_trap does for the assembly original.
func SoftTrap(hart *csr.File, cause word.Word, in TrapRegs) (TrapRegs, RestorePrefix) {
	hart.SetCause(cause)

	return Dispatch(hart, in)
}
