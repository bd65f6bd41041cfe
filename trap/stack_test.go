package trap

import (
	"errors"
	"testing"

	"github.com/YdrMaster/fast-trap/csr"
	"github.com/YdrMaster/fast-trap/word"
)

func noopFast(ctx FastContext, a1, a2, a3, a4, a5, a6, a7 word.Word) FastResult {
	return ctx.Restore()
}

func TestNewFreeTrapStack(t *testing.T) {
	t.Run("accepts a block large enough for the handler", func(t *testing.T) {
		block := NewHeapBlock(256)
		fc := &FlowContext{}

		_, err := NewFreeTrapStack(block, fc, noopFast)
		if err != nil {
			t.Errorf("new: want: nil, got: %v", err)
		}
	})

	t.Run("rejects a block too small to host the handler", func(t *testing.T) {
		block := NewHeapBlock(4)
		fc := &FlowContext{}

		_, err := NewFreeTrapStack(block, fc, noopFast)
		if !errors.Is(err, ErrIllegalStack) {
			t.Errorf("new: want: %v, got: %v", ErrIllegalStack, err)
		}
	})
}

// TestLoadUnloadRestoresScratch is invariant 2 from spec.md §8: load then
// unload leaves the scratch register bitwise identical to its pre-load
// value.
func TestLoadUnloadRestoresScratch(t *testing.T) {
	hart := csr.NewFile(csr.Supervisor)
	hart.SetScratch(0x5050)

	stack, err := NewFreeTrapStack(NewHeapBlock(256), &FlowContext{}, noopFast)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if got := hart.Scratch(); got != 0x5050 {
		t.Errorf("new must not touch scratch: want: %#x, got: %#x", 0x5050, got)
	}

	loaded := stack.Load(hart)

	if _, err := loaded.Unload(); err != nil {
		t.Errorf("unload: %v", err)
	}

	if got := hart.Scratch(); got != 0x5050 {
		t.Errorf("scratch: want: %#x, got: %#x", 0x5050, got)
	}
}

// TestNestedLoadUnloadIsLIFO is invariant 3 from spec.md §8.
func TestNestedLoadUnloadIsLIFO(t *testing.T) {
	hart := csr.NewFile(csr.Supervisor)
	hart.SetScratch(0x1111)

	outer, err := NewFreeTrapStack(NewHeapBlock(256), &FlowContext{}, noopFast)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	inner, err := NewFreeTrapStack(NewHeapBlock(256), &FlowContext{}, noopFast)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	loadedOuter := outer.Load(hart)
	loadedInner := inner.Load(hart)

	if _, err := loadedInner.Unload(); err != nil {
		t.Errorf("unload inner: %v", err)
	}

	if _, err := loadedOuter.Unload(); err != nil {
		t.Errorf("unload outer: %v", err)
	}

	if got := hart.Scratch(); got != 0x1111 {
		t.Errorf("scratch: want: %#x, got: %#x", 0x1111, got)
	}
}

// TestForeignLoaderDetected exercises the "forget"-analogue from scenario
// S5: a second load whose Unload is never called leaves the scratch
// register pointing somewhere else, so unloading the first stack observes
// a foreign loader.
func TestForeignLoaderDetected(t *testing.T) {
	hart := csr.NewFile(csr.Supervisor)
	hart.SetScratch(0x5050)

	first, err := NewFreeTrapStack(NewHeapBlock(256), &FlowContext{}, noopFast)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	second, err := NewFreeTrapStack(NewHeapBlock(256), &FlowContext{}, noopFast)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	loadedFirst := first.Load(hart)
	_ = second.Load(hart) // loaded, intentionally never unloaded

	if _, err := loadedFirst.Unload(); !errors.Is(err, ErrForeignLoader) {
		t.Errorf("unload: want: %v, got: %v", ErrForeignLoader, err)
	}

	if got := hart.Scratch(); got == 0x5050 {
		t.Errorf("scratch: want: != %#x, got: %#x", 0x5050, got)
	}
}
