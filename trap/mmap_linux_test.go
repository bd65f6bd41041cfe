//go:build linux

package trap

import (
	"testing"

	"github.com/YdrMaster/fast-trap/csr"
	"github.com/YdrMaster/fast-trap/word"
)

// TestMappedBlockRoundTrip exercises a trap stack built over an mmap'd
// backing block exactly as one built over a HeapBlock: Dispatch doesn't care
// where the bytes came from, only that the address is stable.
func TestMappedBlockRoundTrip(t *testing.T) {
	block, err := NewMappedBlock(4096)
	if err != nil {
		t.Fatalf("new mapped block: %v", err)
	}
	defer block.Close()

	fast := func(ctx FastContext, a1, a2, a3, a4, a5, a6, a7 word.Word) FastResult {
		ctx.SaveArgs(a1, 0, 0, 0, 0, 0, 0)

		return ctx.Restore()
	}

	stack, err := NewFreeTrapStack(block, &FlowContext{}, fast)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	hart := csr.NewFile(csr.Supervisor)
	loaded := stack.Load(hart)
	defer loaded.Close()

	in := TrapRegs{Sp: 0x1000, Pc: 0x2000}
	in.A[0] = 0xAA
	in.A[1] = 0xBB

	out, prefix := Dispatch(hart, in)

	if prefix != RestoreCallerSaved {
		t.Errorf("prefix: want: %v, got: %v", RestoreCallerSaved, prefix)
	}

	if out.A[0] != 0xAA {
		t.Errorf("a0: want: %#x, got: %#x", 0xAA, out.A[0])
	}

	if out.A[1] != 0xBB {
		t.Errorf("a1: want: %#x, got: %#x", 0xBB, out.A[1])
	}
}

// TestMappedBlockClosedByFreeTrapStack confirms Close on a Free (never
// loaded) stack unmaps the block, closing the gap the review pass found in
// FreeTrapStack.Close.
func TestMappedBlockClosedByFreeTrapStack(t *testing.T) {
	block, err := NewMappedBlock(4096)
	if err != nil {
		t.Fatalf("new mapped block: %v", err)
	}

	stack, err := NewFreeTrapStack(block, &FlowContext{}, noopFast)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err := stack.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if block.bytes != nil {
		t.Errorf("block: want: unmapped (nil bytes), got: still mapped")
	}
}
