package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/YdrMaster/fast-trap/csr"
	"github.com/YdrMaster/fast-trap/internal/cli"
	"github.com/YdrMaster/fast-trap/internal/log"
	"github.com/YdrMaster/fast-trap/trap"
	"github.com/YdrMaster/fast-trap/word"
)

// Demo is a demonstration command.
func Demo() cli.Command {
	return new(demo)
}

type demo struct {
	debug bool
	quiet bool
}

func (demo) Description() string {
	return "dispatch a scripted soft trap and show the resulting register state"
}

func (d demo) Usage(out io.Writer) error {
	var err error
	_, err = fmt.Fprintln(out, `
demo [ -debug | -quiet ]

Run a single scripted soft trap against a simulated hart, logging the
dispatcher's decisions and the register state it restores.`)

	return err
}

func (d *demo) FlagSet() *cli.FlagSet {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)

	fs.BoolVar(&d.debug, "debug", false, "enable debug logging")
	fs.BoolVar(&d.quiet, "quiet", false, "enable quiet output, machine display only")

	return fs
}

func (d demo) Run(_ context.Context, args []string, out io.Writer, _ *log.Logger) int {
	if d.quiet {
		log.LogLevel.Set(log.Error)
	}

	if d.debug {
		log.LogLevel.Set(log.Debug)
	}

	logger := log.NewFormattedLogger(os.Stdout)
	log.SetDefault(logger)

	logger.Info("Initializing hart")

	hart := csr.NewFile(csr.Supervisor)

	trap.Install(hart)
	logger.Info("Installed the trap-entry trampoline", "tvec", hart.Mode().TvecName())

	logger.Info("Loading a trap stack")

	fc := &trap.FlowContext{}

	stack, err := trap.NewFreeTrapStack(trap.NewHeapBlock(256), fc, d.fastHandler(logger))
	if err != nil {
		logger.Error("failed to build trap stack", "err", err)
		return 2
	}

	loaded := stack.Load(hart)
	defer loaded.Close()

	logger.Info("Dispatching soft traps", "scratch", fmt.Sprintf("%#x", hart.Scratch()))

	regs, prefix := trap.SoftTrap(hart, word.Word(0x18), trap.TrapRegs{Sp: 0x7ff0, Pc: 0x80001000})

	logger.Info("Soft trap dispatched",
		"cause", hart.Cause(),
		"prefix", prefix.String(),
		"a0", fmt.Sprintf("%#x", regs.A[0]),
		"sp", fmt.Sprintf("%#x", regs.Sp),
	)

	logger.Info("Demo completed")

	return 0
}

// fastHandler builds a fast handler that logs its invocation and resumes the
// trapped-in flow, unchanged.
func (d demo) fastHandler(logger *log.Logger) trap.FastHandler {
	return func(ctx trap.FastContext, a1, a2, a3, a4, a5, a6, a7 word.Word) trap.FastResult {
		logger.Debug("fast handler invoked", "a0", fmt.Sprintf("%#x", ctx.A0()), "a1", fmt.Sprintf("%#x", a1))
		ctx.SaveArgs(a1, a2, a3, a4, a5, a6, a7)

		return ctx.Restore()
	}
}
