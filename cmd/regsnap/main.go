// Package main implements regsnap, which captures a register snapshot from
// a register dump and prints what the unwinder would see.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/wnxd/probedbg/core/dump"
	"github.com/wnxd/probedbg/debugger"
	"github.com/wnxd/probedbg/internal/config"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type optionFlags struct {
	input   string
	debug   bool
	quiet   bool
	version bool
}

func main() {
	options := readArguments()
	if options.version {
		fmt.Printf("version: %s\n", buildinfo.Version(version, commit, date))
		return
	}

	logger := config.CreateLogger(options.debug, options.quiet)
	if err := run(os.Stdout, logger, options.input); err != nil {
		logger.Error("Capturing registers failed", log.Err(err))
		os.Exit(1)
	}
}

func readArguments() optionFlags {
	flags := flag.NewFlagSet("regsnap", flag.ExitOnError)
	var options optionFlags
	flags.BoolVar(&options.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&options.quiet, "q", false, "only log errors")
	flags.BoolVar(&options.version, "v", false, "print version and exit")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if options.version {
		return options
	}
	if err != nil || len(args) == 0 {
		fmt.Printf("usage: regsnap [options] <register dump>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	options.input = args[0]
	return options
}

func run(w io.Writer, logger *log.Logger, input string) error {
	session, err := dump.Open(input)
	if err != nil {
		return err
	}

	regs, failures := debugger.ReadRegisters(session, logger)
	printRoles(w, regs)
	fmt.Fprintln(w, regs)
	if len(failures) > 0 {
		fmt.Fprintf(w, "unreadable: %v\n", debugger.FailedNumbers(failures))
	}
	return nil
}

func printRoles(w io.Writer, regs *debugger.Registers) {
	for _, role := range debugger.Roles() {
		number, _ := regs.RoleNumber(role)
		value, ok := regs.RoleValue(role)
		if !ok {
			fmt.Fprintf(w, "%-16s r%-3d unknown (%s)\n", role, number, regs.State(number))
			continue
		}
		fmt.Fprintf(w, "%-16s r%-3d 0x%08x\n", role, number, value)
	}
}
