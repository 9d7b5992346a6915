package main

import (
	"flag"
	"fmt"
	"os"

	"vmm/console"
	"vmm/logger"
	"vmm/store"
	"vmm/system"
)

var (
	guiMode = flag.Bool("gui", false, "run with the gocui front panel")
	strict  = flag.Bool("strict", false,
		"reject malformed address lines instead of resolving them to address 0")
	logPath = flag.String("log", "", "append the run log to this file instead of stderr")
)

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage : %s [flags] <backing store> <address file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	backingStore, err := store.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer backingStore.Close()

	addresses, err := os.Open(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "address file: %v\n", err)
		os.Exit(1)
	}
	defer addresses.Close()

	runLog := logger.New(*logPath)

	if *guiMode {
		runGui(backingStore, addresses, runLog)
		return
	}

	sys := system.InitializeSystem(backingStore, console.NewSimple(), runLog, *strict)
	if err := sys.Run(addresses); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
