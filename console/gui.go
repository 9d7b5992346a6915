package console

import (
	"fmt"

	"github.com/jroimartin/gocui"
)

// Gui routes console output into a gocui view. gocui only allows view
// updates from inside Update closures, so writes go through a channel
// drained by a dedicated goroutine.
type Gui struct {
	consoleOut chan string
	g          *gocui.Gui
	view       string
}

// NewGui returns a console feeding the named view and starts the drain
// goroutine.
func NewGui(g *gocui.Gui, view string) *Gui {
	c := &Gui{
		consoleOut: make(chan string, 64),
		g:          g,
		view:       view,
	}
	go func() {
		for s := range c.consoleOut {
			msg := s
			c.g.Update(func(g *gocui.Gui) error {
				v, err := g.View(c.view)
				if err != nil {
					return err
				}
				fmt.Fprint(v, msg)
				return nil
			})
		}
	}()
	return c
}

// WriteConsole displays a string on the console
func (c *Gui) WriteConsole(msg string) error {
	c.consoleOut <- msg
	return nil
}
