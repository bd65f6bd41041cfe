//go:build linux

package trap

// mmap_linux.go re-wires the teacher's golang.org/x/sys dependency (there,
// used for raw terminal I/O on a UART console, which is explicitly out of
// scope here) to a genuinely new concern: a page-aligned, syscall-backed
// trap-stack allocation. Real trap stacks want a guard page and a stable,
// page-aligned address; a plain Go slice gives neither.

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// MappedBlock is a Block backed by an anonymous, page-aligned mmap
// allocation. Unlike HeapBlock, its address is guaranteed stable for as
// long as it is mapped: the Go runtime never moves mmap'd memory, which
// matters more here than for ordinary heap allocations since a trap stack's
// address is burned into the scratch register for its entire loaded
// lifetime.
type MappedBlock struct {
	bytes []byte
}

// NewMappedBlock maps size bytes, rounded up to a whole number of pages.
func NewMappedBlock(size int) (*MappedBlock, error) {
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("trap: mmap: %w", err)
	}

	return &MappedBlock{bytes: b}, nil
}

// Bytes implements Block.
func (b *MappedBlock) Bytes() []byte { return b.bytes }

// Close unmaps the block. It must not be called while a trap stack still
// has this block loaded.
func (b *MappedBlock) Close() error {
	if b.bytes == nil {
		return nil
	}

	err := unix.Munmap(b.bytes)
	b.bytes = nil

	return err
}
