// Package word defines the machine word width that every register, offset and
// alignment computation in the trap dispatcher is expressed in terms of.
//
// RISC-V is bi-width: the same dispatcher logic applies whether XLEN is 32 or
// 64. Rather than parameterize every type with a generic width, the width is
// selected once, at build time, with a type-alias-behind-a-build-tag trick:
// one file per width, mutually exclusive build tags, a single exported name.
package word
