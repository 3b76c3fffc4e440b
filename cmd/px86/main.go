// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/ezrec/px86/config"
	"github.com/ezrec/px86/cpu"
	"github.com/ezrec/px86/emulator"
	"github.com/ezrec/px86/io"
	"github.com/ezrec/px86/snapshot"
)

func main() {
	var configFile string
	var assemble string
	var verbose bool
	var quiet bool
	var steps int
	var snapFile string

	flag.StringVar(&configFile, "c", "", ".toml configuration file")
	flag.StringVar(&assemble, "a", "", ".asm file to assemble and run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&quiet, "q", false, "Do not trace each instruction fetch")
	flag.IntVar(&steps, "n", -1, "Step limit; 0 for no limit")
	flag.StringVar(&snapFile, "s", "", ".cbor file to save the halt snapshot to")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [options] <image>|-a <source>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	cfg := config.Default()
	if len(configFile) != 0 {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	if verbose {
		cfg.Verbose = true
	}
	if steps >= 0 {
		cfg.StepLimit = steps
	}

	var image io.Image
	prog := &cpu.Program{}

	switch {
	case len(assemble) != 0:
		if flag.NArg() != 0 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}

		inf, err := os.Open(assemble)
		if err != nil {
			log.Fatalf("%v: %v", assemble, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: cfg.Verbose}
		prog, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", assemble, err)
		}
	case flag.NArg() == 1 && flag.Arg(0) == "-":
		image = &io.Tape{Input: os.Stdin}
	case flag.NArg() == 1:
		image = &io.File{Path: flag.Arg(0)}
	default:
		flag.Usage()
		os.Exit(1)
	}

	emu := emulator.NewEmulator(cfg, nil)
	defer emu.Close()

	emu.Program = prog

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	if !quiet {
		emu.Trace = func(eip uint32, opcode uint8) {
			fmt.Fprintf(stdout, "EIP = %08x, CODE = %02x\n", eip, opcode)
		}
	}

	err := emu.Reset(image)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	halt, err := emu.Run(ctx)
	if halt == nil {
		log.Fatal(err)
	}

	switch halt.Reason {
	case emulator.HALT_PROGRAM_END:
		fmt.Fprintf(stdout, "\n\nend of program.\n\n")
	case emulator.HALT_UNIMPLEMENTED:
		fmt.Fprintf(stdout, "\n\nNot Implemented: %x\n", halt.Opcode)
	default:
		fmt.Fprintf(stdout, "\n\n%v\n", err)
	}

	fmt.Fprint(stdout, emu.Cpu.String())
	stdout.Flush()

	if len(snapFile) != 0 {
		data, err := snapshot.Marshal(snapshot.Capture(emu))
		if err != nil {
			log.Fatalf("%v: %v", snapFile, err)
		}

		err = os.WriteFile(snapFile, data, 0o644)
		if err != nil {
			log.Fatalf("%v: %v", snapFile, err)
		}
	}

	if halt.Reason != emulator.HALT_PROGRAM_END {
		os.Exit(1)
	}
}
