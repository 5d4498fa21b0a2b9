package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/gameboy"
	"github.com/thelolagemann/gbcore/internal/trace"
	"github.com/thelolagemann/gbcore/pkg/log"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load (.gb, .gz, .zip or .7z)")
	cycles := flag.Uint64("cycles", 0, "Stop after this many machine cycles, 0 runs until interrupted")
	level := flag.String("log", "info", "The log level. Can be debug, info, warn or error")
	traceFlag := flag.Bool("trace", false, "Log every executed instruction, implies -log debug")
	serialFlag := flag.Bool("serial", false, "Print the serial output on exit")
	stopOn := flag.String("stop", "", "Comma separated words that stop the emulator once sent over serial, e.g. Passed,Failed")
	noBoot := flag.Bool("noboot", true, "Start from the state the boot rom leaves behind")
	flag.Parse()

	if *romFile == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *traceFlag {
		*level = "debug"
	}

	logger, err := log.NewWithLevel(*level)
	if err != nil {
		fatal(err)
	}

	rom, err := cartridge.LoadFile(*romFile)
	if err != nil {
		fatal(err)
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger), gameboy.StopOnBreakpoint()}
	if *noBoot {
		opts = append(opts, gameboy.NoBoot())
	}
	if *traceFlag {
		opts = append(opts, gameboy.WithObserver(trace.NewLogger(logger)))
	}
	if *stopOn != "" {
		opts = append(opts, gameboy.StopOnSerial(strings.Split(*stopOn, ",")...))
	}

	gb, err := gameboy.New(rom, opts...)
	if err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *cycles > 0 {
		err = gb.RunCycles(*cycles)
	} else {
		err = gb.Run(ctx)
	}

	if *serialFlag {
		fmt.Println(gb.SerialOutput.String())
	}
	if gb.MooneyePassed() {
		logger.Infof("registers hold the mooneye pass sequence")
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
