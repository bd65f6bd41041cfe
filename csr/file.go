package csr

import (
	"fmt"
	"sync"

	"github.com/YdrMaster/fast-trap/word"
)

// File is a hart's simulated set of privileged registers relevant to trap
// dispatch: the mode-scratch register, the exception program counter and the
// trap cause register. Real hardware has exactly one of these per hart; a
// File models exactly one hart's worth of state.
//
// The scratch register is the single point of communication between
// hardware and runtime: the trap-stack lifecycle and the dispatcher mutate
// it through ExchangeScratch, which is this package's atomicity primitive,
// and installing a new flow overwrites it through SetScratch.
type File struct {
	mode Mode

	mu      sync.Mutex
	scratch word.Word
	epc     word.Word
	cause   word.Word
	tvec    any
}

// NewFile creates a register file for a hart running in the given mode. The
// scratch register starts at zero, as if no trap stack were loaded.
func NewFile(mode Mode) *File {
	return &File{mode: mode}
}

// Mode returns the privileged mode this file's registers are named for.
func (f *File) Mode() Mode { return f.mode }

// ExchangeScratch atomically swaps the mode-scratch register with new,
// returning its previous value. This is the primitive by which the
// scratch register changes hands: the trap-entry trampoline uses it to swap
// the trapped-in stack pointer for the trap handler block pointer (and back,
// at the epilogue); the trap-stack lifecycle uses it to install and remove a
// loaded stack, preserving LIFO nesting.
func (f *File) ExchangeScratch(new word.Word) word.Word {
	f.mu.Lock()
	defer f.mu.Unlock()

	old := f.scratch
	f.scratch = new

	return old
}

// SetScratch directly overwrites the scratch register, discarding its
// previous value. Used by FlowContext.LoadOthers, which installs a new flow
// by storing its stack pointer into this register outright -- not swapping
// it, since there is nothing to preserve once a flow is installed.
func (f *File) SetScratch(v word.Word) {
	f.mu.Lock()
	f.scratch = v
	f.mu.Unlock()
}

// Scratch reads the current value of the scratch register without modifying
// it. Exists for observation in tests; the dispatcher itself only ever reads
// scratch through ExchangeScratch.
func (f *File) Scratch() word.Word {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.scratch
}

// EPC returns the exception program counter.
func (f *File) EPC() word.Word {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.epc
}

// SetEPC sets the exception program counter.
func (f *File) SetEPC(v word.Word) {
	f.mu.Lock()
	f.epc = v
	f.mu.Unlock()
}

// Cause returns the trap cause register.
func (f *File) Cause() word.Word {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.cause
}

// SetCause sets the trap cause register.
func (f *File) SetCause(v word.Word) {
	f.mu.Lock()
	f.cause = v
	f.mu.Unlock()
}

// SetTvec installs the trap-entry trampoline. Real hardware stores an
// address here; since this package cannot address the trap package's
// Dispatch function without an import cycle, v is typed opaquely (any) and
// the trap package's Install helper is responsible for giving it a concrete,
// callable type on the way back out through Tvec.
func (f *File) SetTvec(v any) {
	f.mu.Lock()
	f.tvec = v
	f.mu.Unlock()
}

// Tvec returns whatever was last installed by SetTvec, or nil if nothing
// has been installed yet.
func (f *File) Tvec() any {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.tvec
}

func (f *File) String() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return fmt.Sprintf("%s{%s: %#x, %s: %#x, %s: %#x}",
		f.mode, f.mode.ScratchName(), f.scratch, f.mode.EPCName(), f.epc, f.mode.CauseName(), f.cause)
}
