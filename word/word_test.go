package word_test

import (
	"testing"
	"unsafe"

	"github.com/YdrMaster/fast-trap/word"
)

func TestSizeMatchesWordWidth(t *testing.T) {
	var w word.Word

	if got := int(unsafe.Sizeof(w)); got != word.Size {
		t.Errorf("Size: want: %d, got: %d", word.Size, got)
	}
}
