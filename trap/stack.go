package trap

// stack.go implements the trap stack lifecycle: free, loaded, and back
// again, installing and removing a trap handler block from a hart's
// scratch register.

import (
	"fmt"
	"io"

	"github.com/YdrMaster/fast-trap/csr"
	"github.com/YdrMaster/fast-trap/word"
)

// FreeTrapStack is a trap stack that has been constructed but is not
// installed in any hart's scratch register.
type FreeTrapStack struct {
	thb *trapHandlerBlock
}

// NewFreeTrapStack constructs a trap stack over block, targeting ctx and
// dispatching traps to fast. It fails with ErrIllegalStack if block cannot
// host a trap handler block (too small, or insufficiently aligned).
func NewFreeTrapStack(block Block, ctx *FlowContext, fast FastHandler) (FreeTrapStack, error) {
	thb, err := newTrapHandlerBlock(block, ctx, fast)
	if err != nil {
		return FreeTrapStack{}, err
	}

	return FreeTrapStack{thb: thb}, nil
}

// thbWord returns the value to install in the scratch register: a stable
// identity for this stack's trap handler block.
func (s FreeTrapStack) thbWord() word.Word {
	return thbToWord(s.thb)
}

// Load installs this stack into the hart's scratch register, returning a
// LoadedTrapStack that remembers the register's previous contents so Unload
// can restore them.
func (s FreeTrapStack) Load(hart *csr.File) LoadedTrapStack {
	previous := hart.ExchangeScratch(s.thbWord())

	return LoadedTrapStack{thb: s.thb, hart: hart, previous: previous}
}

// Close releases the backing block. Calling Close on a stack that has been
// loaded without first unloading it is a programming error; use
// LoadedTrapStack.Unload or LoadedTrapStack.Close instead. Blocks that need
// no explicit release (HeapBlock; the Go garbage collector reclaims it)
// simply don't implement io.Closer, so this is a no-op for them.
func (s FreeTrapStack) Close() error {
	if closer, ok := s.thb.block.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}

// LoadedTrapStack is a trap stack currently installed in a hart's scratch
// register.
type LoadedTrapStack struct {
	thb      *trapHandlerBlock
	hart     *csr.File
	previous word.Word
}

// Previous returns the value that was exchanged out of the scratch register
// when this stack was loaded.
func (s LoadedTrapStack) Previous() word.Word { return s.previous }

// Unload removes this stack from the hart's scratch register, restoring the
// value that was there before Load, and returns it to the Free state. It
// returns ErrForeignLoader if the scratch register no longer holds this
// stack's identity -- a foreign loader intervened, and the two disagree
// about who owns the hart.
func (s LoadedTrapStack) Unload() (FreeTrapStack, error) {
	exchanged := s.hart.ExchangeScratch(s.previous)
	if exchanged != thbToWord(s.thb) {
		return FreeTrapStack{}, fmt.Errorf("%w: expected %#x, observed %#x",
			ErrForeignLoader, thbToWord(s.thb), exchanged)
	}

	return FreeTrapStack{thb: s.thb}, nil
}

// Close unloads this stack and releases its backing block. If Unload
// reports a foreign-loader mismatch, Close returns that error and does not
// release the block. This mirrors the teacher's WithXxxDriver cancellation-function
// pattern in lieu of Go destructors.
func (s LoadedTrapStack) Close() error {
	free, err := s.Unload()
	if err != nil {
		return err
	}

	return free.Close()
}

// thbToWord and wordToThb give the trap handler block pointer a stable,
// round-trippable word-sized identity for the scratch register to carry,
// the software analogue of storing a raw pointer in sscratch/mscratch.
func thbToWord(thb *trapHandlerBlock) word.Word {
	return word.Word(pointerToUintptr(thb))
}
