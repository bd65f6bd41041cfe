/*
Package trap implements a two-tier trap dispatcher for RISC-V privileged
modes.

Most traps resolve by touching only scratch and temporary registers. The
dispatcher exploits that: a trap first runs a fast handler with only the
caller-saved registers (ra, t0-t6) written into a saved register image, and
the callee-saved registers (s0-s11) left alone. If the fast handler can
dispose of the trap -- resume the interrupted flow, call a new one, switch to
a different one entirely -- it says so with a small result code, and the
dispatcher restores only as much of the register image as that result code
promises to need. If the trap needs the whole picture, the fast handler
escalates: the dispatcher saves the remaining registers and calls an entire
handler with the complete image.

# Components

  - [FlowContext] is a fixed-layout image of a suspended flow's registers.

  - [trapHandlerBlock] (reached only through [FreeTrapStack] and
    [LoadedTrapStack]) is the resident control block that ties a backing
    memory block, a [FlowContext] pointer and a fast handler together.

  - [Dispatch] is the entry trampoline: it reads the scratch register,
    performs the minimal save, calls the fast handler, and walks the
    restoration ladder its result selects.

  - [FastContext] and [EntireContext] are the typed surfaces the fast and
    entire handlers see.

# Why this is not assembly

The original design is a naked assembly routine installed directly in a
privileged trap-vector CSR: there is no hardware for a Go process to be
installed into. [Dispatch] performs the identical sequence of steps against a
[*csr.File] standing in for hardware CSRs, and the hardware-visible register
values are threaded through as ordinary Go values ([TrapRegs]) rather than
live CPU registers. Every testable property of the original design --
register discipline on escalation, the restoration ladder, trap-stack LIFO
nesting -- is preserved exactly; only the vehicle changes.
*/
package trap
