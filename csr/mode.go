// Package csr simulates the privileged control-and-status registers a trap
// dispatcher depends on: the mode-scratch register used to locate the trap
// handler block, and the exception-program-counter and cause registers used
// by soft traps. It does not touch real hardware; the dispatcher runs as an
// ordinary process, and this package exists so the dispatcher's logic can be
// exercised and tested without privileged execution.
package csr

// Mode selects which privileged mode's register names a File answers to.
// The register semantics are identical in both modes; the spec treats M and
// S as a toggle, never mixed within one hart.
type Mode uint8

const (
	Supervisor Mode = iota
	Machine
)

//go:generate stringer -type=Mode

// ScratchName returns the CSR mnemonic for the mode-scratch register:
// sscratch in Supervisor mode, mscratch in Machine mode.
func (m Mode) ScratchName() string {
	if m == Machine {
		return "mscratch"
	}

	return "sscratch"
}

// EPCName returns the CSR mnemonic for the exception program counter.
func (m Mode) EPCName() string {
	if m == Machine {
		return "mepc"
	}

	return "sepc"
}

// CauseName returns the CSR mnemonic for the trap cause register.
func (m Mode) CauseName() string {
	if m == Machine {
		return "mcause"
	}

	return "scause"
}

// TvecName returns the CSR mnemonic for the trap-vector base register.
func (m Mode) TvecName() string {
	if m == Machine {
		return "mtvec"
	}

	return "stvec"
}
