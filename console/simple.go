package console

import (
	"fmt"
	"io"
	"os"
)

// Simple writes console output straight to an io.Writer. This is the
// default sink when the simulator runs without the front panel.
type Simple struct {
	w io.Writer
}

// NewSimple returns a console writing to stdout.
func NewSimple() *Simple {
	return &Simple{w: os.Stdout}
}

// NewSimpleWriter returns a console writing to w.
func NewSimpleWriter(w io.Writer) *Simple {
	return &Simple{w: w}
}

// WriteConsole displays a string on the console
func (c *Simple) WriteConsole(msg string) error {
	_, err := fmt.Fprint(c.w, msg)
	return err
}
