package system

import (
	"fmt"
	"io"
	"log"

	"vmm/console"
	"vmm/mmu"
	"vmm/trace"
)

// System wires the translation engine to its collaborators: the backing
// store behind the MMU, the address trace in front of it, and the console
// the results go to.
type System struct {
	MMU *mmu.MMU

	console console.Console
	log     *log.Logger
	strict  bool

	processed int
	failed    int
}

// InitializeSystem builds a simulator reading faulted pages from store and
// reporting through c. strict selects the rejecting address-line policy.
func InitializeSystem(store mmu.BackingStore, c console.Console, logger *log.Logger, strict bool) *System {
	sys := new(System)
	sys.MMU = mmu.New(store, logger)
	sys.console = c
	sys.log = logger
	sys.strict = strict
	return sys
}

// Run translates every address in the trace, one line of output per
// successfully translated address, then writes the run summary. Per-address
// failures are logged and counted but do not stop the run.
func (sys *System) Run(addresses io.Reader) error {
	scanner := trace.NewScanner(addresses, sys.strict)
	for scanner.Scan() {
		sys.processed++
		logical := scanner.Address()

		physical, value, err := sys.MMU.Translate(logical)
		if err != nil {
			sys.failed++
			sys.log.Printf("address %d: %v", logical, err)
			continue
		}

		err = sys.console.WriteConsole(fmt.Sprintf(
			"logical address : %d  physical address : %d  value : %d\n",
			logical, physical, value))
		if err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("address list: %w", err)
	}
	if n := scanner.Rejected(); n > 0 {
		sys.log.Printf("rejected %d malformed address lines", n)
	}

	return sys.console.WriteConsole(sys.Summary())
}

// Summary returns the end-of-run counter lines.
func (sys *System) Summary() string {
	stats := sys.MMU.Stats()
	return fmt.Sprintf("Page Faults : %d\nTLB hits : %d\n",
		stats.PageFaults(), stats.TLBHits())
}

// StatusReport returns a readable snapshot of the run so far, for the
// status pane and for anyone curious about the rates behind the raw
// counters.
func (sys *System) StatusReport() string {
	stats := sys.MMU.Stats()
	report := fmt.Sprintf("addresses : %d  failed : %d\n", sys.processed, sys.failed)
	report += fmt.Sprintf("page faults : %d  TLB hits : %d\n",
		stats.PageFaults(), stats.TLBHits())
	if sys.processed > 0 {
		report += fmt.Sprintf("TLB hit rate : %.2f%%  fault rate : %.2f%%\n",
			100*float64(stats.TLBHits())/float64(sys.processed),
			100*float64(stats.PageFaults())/float64(sys.processed))
	}
	return report
}

// Processed returns how many addresses the run has attempted so far.
func (sys *System) Processed() int {
	return sys.processed
}

// Failed returns how many addresses failed to translate.
func (sys *System) Failed() int {
	return sys.failed
}
