//go:build riscv32

package word

// Word is the machine register width: 32 bits, for rv32 targets.
type Word = uint32

// Size is sizeof(Word) in bytes, used for offset and alignment arithmetic.
const Size = 4
