package trap

// block.go defines the backing memory block a trap stack owns, and the
// trap handler block (THB) that holds it.

import (
	"fmt"
	"unsafe"

	"github.com/YdrMaster/fast-trap/word"
)

// Block is owned backing memory for a trap stack. NewFreeTrapStack checks
// its size and alignment and the trap handler block keeps it for the
// stack's lifetime; the trap handler block itself is a separate Go
// allocation, not placed inside these bytes, and the dispatcher does not
// run on them as a trap-time stack. Implementations must have a stable
// address for their entire loaded lifetime -- exactly the requirement the
// host integration interface places on callers.
type Block interface {
	// Bytes returns the block's backing storage. The returned slice's
	// address must not change for as long as a trap stack owns it.
	Bytes() []byte
}

// HeapBlock is a Block backed by an ordinary Go heap allocation. It is the
// default choice: a plain byte slice, analogous to the teacher's
// PhysicalMemory array serving as the LC-3's backing store.
type HeapBlock []byte

// NewHeapBlock allocates a HeapBlock of the given size.
func NewHeapBlock(size int) HeapBlock {
	return make(HeapBlock, size)
}

// Bytes implements Block.
func (b HeapBlock) Bytes() []byte { return b }

// minBlockSize is the smallest backing block NewFreeTrapStack will accept:
// sixteen machine words.
const minBlockSize = 16 * word.Size

// trapHandlerBlock is the resident control block for a loaded trap stack.
// Field order mirrors the ABI of spec.md §3: context, fast handler, then
// the a0 stash and escalation slot that take the scratch cell's two roles,
// then the owning block handle. It is never copied and never returned by
// value -- only FreeTrapStack and LoadedTrapStack, both opaque pointer
// handles, ever reach code outside this package.
type trapHandlerBlock struct {
	context     *FlowContext
	fastHandler FastHandler

	// a0 stashes the trapped-in a0 during the fast path. It is read by
	// FastContext.A0 and overwritten once escalation is decided.
	a0 word.Word

	// escalation is set by FastContext.ContinueWith and consumed exactly
	// once by Dispatch; it stands in for the ABI's reuse of the scratch
	// cell to carry the entire handler's function pointer, which Go
	// cannot express for a generic handler without boxing.
	escalation escalation

	block Block
}

// newTrapHandlerBlock validates block and constructs a trap handler block
// over it. It fails with ErrIllegalStack if block cannot host the block's
// control structure and a usable stack below it.
func newTrapHandlerBlock(block Block, ctx *FlowContext, fast FastHandler) (*trapHandlerBlock, error) {
	bytes := block.Bytes()
	base := uintptr(unsafe.Pointer(unsafe.SliceData(bytes)))

	if len(bytes) < minBlockSize || base%uintptr(word.Size) != 0 {
		return nil, fmt.Errorf("%w: size %d, base %#x", ErrIllegalStack, len(bytes), base)
	}

	return &trapHandlerBlock{
		context:     ctx,
		fastHandler: fast,
		block:       block,
	}, nil
}

// FastMail values are allocated directly (see [FastContext.ContinueWith])
// rather than placed inside the block's backing bytes. The original design
// reserves an aligned region at the base of the block for this; doing the
// same here, by reinterpreting a []byte as a *T via unsafe, would defeat the
// garbage collector, which scans a []byte as non-pointer data, so any
// pointer T carried would not keep its referents alive. A plain heap
// allocation, reachable only through the escalation value stored in the
// trap handler block, preserves every testable property in spec.md §8
// (exactly-once creation, exactly-once consumption, no use after the
// fast->entire handoff) without that hazard.
