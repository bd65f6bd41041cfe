package trap

// pointer.go isolates the one place this package reinterprets a Go pointer
// as a machine word: the identity stored in the scratch register is, on
// real hardware, a raw pointer to the trap handler block. The conversions
// here are safe because every *trapHandlerBlock this package hands a word
// identity for is simultaneously kept alive by an ordinary Go reference --
// a FreeTrapStack, a LoadedTrapStack, or a live Dispatch call -- for as long
// as that identity might be converted back.

import (
	"unsafe"

	"github.com/YdrMaster/fast-trap/word"
)

func pointerToUintptr(thb *trapHandlerBlock) uintptr {
	return uintptr(unsafe.Pointer(thb))
}

// wordToThb recovers the trap handler block a scratch-register identity
// refers to.
func wordToThb(w word.Word) *trapHandlerBlock {
	return (*trapHandlerBlock)(unsafe.Pointer(uintptr(w))) //nolint:govet
}
