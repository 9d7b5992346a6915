// Package console carries the simulator's user-facing output: per-address
// translation lines and the run summary. Everything else goes to the
// logger, not here.
package console

// Console is the output sink for translation results.
type Console interface {
	WriteConsole(msg string) error
}
