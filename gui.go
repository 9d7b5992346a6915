package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"vmm/console"
	"vmm/store"
	"vmm/system"

	"github.com/jroimartin/gocui"
)

// runGui drives the simulation behind a three-pane front panel:
// translations on top, live statistics in the middle, status at the bottom.
func runGui(backingStore *store.Store, addresses *os.File, runLog *log.Logger) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln("Couldn't create gui!")
	}
	defer g.Close()

	g.SetManagerFunc(layout)

	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		log.Panicln(err)
	}

	// start the simulation once the views exist
	g.Update(func(g *gocui.Gui) error {
		return startRun(g, backingStore, addresses, runLog)
	})

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
}

func startRun(g *gocui.Gui, backingStore *store.Store, addresses *os.File, runLog *log.Logger) error {
	statusView, err := g.View("status")
	if err != nil {
		return err
	}
	statusView.Clear()
	fmt.Fprintf(statusView, "Starting virtual memory simulation..\n")

	sys := system.InitializeSystem(
		backingStore, console.NewGui(g, "translations"), runLog, *strict)

	updateStatistics(sys, g)

	go func() {
		err := sys.Run(addresses)
		g.Update(func(g *gocui.Gui) error {
			v, verr := g.View("status")
			if verr != nil {
				return verr
			}
			if err != nil {
				fmt.Fprintf(v, "Run failed: %v\n", err)
			} else {
				fmt.Fprintf(v, "Address list exhausted. Ctrl-C to quit.\n")
			}
			return nil
		})
	}()

	return nil
}

// refresh the statistics pane once a second
// has to run in a goroutine -> gocui allows updating views only through
// Update closures
func updateStatistics(sys *system.System, g *gocui.Gui) {
	ticker := time.NewTicker(time.Second * 1)

	go func() {
		for range ticker.C {
			g.Update(func(g *gocui.Gui) error {
				v, err := g.View("statistics")
				if err != nil {
					return err
				}
				v.Clear()
				fmt.Fprint(v, sys.StatusReport())
				return nil
			})
		}
	}()
}

// gocui layout
func layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// up -> translation output
	if v, err := g.SetView("translations", 0, 0, maxX-1, maxY-12); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Translations"
		v.Autoscroll = true
	}

	// middle -> counters and rates
	if v, err := g.SetView("statistics", 0, maxY-11, maxX-1, maxY-6); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Statistics"
	}

	// down -> status
	if v, err := g.SetView("status", 0, maxY-5, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
