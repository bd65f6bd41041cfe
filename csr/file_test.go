package csr

import (
	"testing"

	"github.com/YdrMaster/fast-trap/word"
)

func TestExchangeScratch(t *testing.T) {
	f := NewFile(Supervisor)

	old := f.ExchangeScratch(word.Word(0x100))
	if old != 0 {
		t.Errorf("old: want: 0, got: %#x", old)
	}

	old = f.ExchangeScratch(word.Word(0x200))
	if old != 0x100 {
		t.Errorf("old: want: %#x, got: %#x", 0x100, old)
	}

	if got := f.Scratch(); got != 0x200 {
		t.Errorf("scratch: want: %#x, got: %#x", 0x200, got)
	}
}

func TestSetScratchDiscardsPrevious(t *testing.T) {
	f := NewFile(Machine)
	f.SetScratch(word.Word(0xAAA))
	f.SetScratch(word.Word(0xBBB))

	if got := f.Scratch(); got != 0xBBB {
		t.Errorf("scratch: want: %#x, got: %#x", 0xBBB, got)
	}
}

func TestModeNames(t *testing.T) {
	cases := []struct {
		mode                      Mode
		scratch, epc, cause, tvec string
	}{
		{Supervisor, "sscratch", "sepc", "scause", "stvec"},
		{Machine, "mscratch", "mepc", "mcause", "mtvec"},
	}

	for _, c := range cases {
		t.Run(c.mode.String(), func(t *testing.T) {
			if got := c.mode.ScratchName(); got != c.scratch {
				t.Errorf("ScratchName: want: %s, got: %s", c.scratch, got)
			}

			if got := c.mode.EPCName(); got != c.epc {
				t.Errorf("EPCName: want: %s, got: %s", c.epc, got)
			}

			if got := c.mode.CauseName(); got != c.cause {
				t.Errorf("CauseName: want: %s, got: %s", c.cause, got)
			}

			if got := c.mode.TvecName(); got != c.tvec {
				t.Errorf("TvecName: want: %s, got: %s", c.tvec, got)
			}
		})
	}
}

func TestSetTvec(t *testing.T) {
	f := NewFile(Supervisor)

	if got := f.Tvec(); got != nil {
		t.Errorf("tvec: want: nil, got: %#v", got)
	}

	type entryFunc func(int) int
	f.SetTvec(entryFunc(func(x int) int { return x + 1 }))

	fn, ok := f.Tvec().(entryFunc)
	if !ok {
		t.Fatalf("tvec: want: entryFunc, got: %T", f.Tvec())
	}

	if got := fn(41); got != 42 {
		t.Errorf("tvec: want: 42, got: %d", got)
	}
}

func TestEPCAndCause(t *testing.T) {
	f := NewFile(Supervisor)

	f.SetEPC(word.Word(0x4000))
	if got := f.EPC(); got != 0x4000 {
		t.Errorf("epc: want: %#x, got: %#x", 0x4000, got)
	}

	f.SetCause(word.Word(7))
	if got := f.Cause(); got != 7 {
		t.Errorf("cause: want: 7, got: %d", got)
	}
}
