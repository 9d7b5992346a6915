// Package trace reads logical addresses from an address list, one decimal
// integer per line.
package trace

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Scanner yields one logical address per input line. Under the permissive
// policy a malformed or empty line resolves to address 0 and an
// out-of-range value is masked to 16 bits. Under the strict policy such
// lines are skipped and counted instead.
type Scanner struct {
	scanner  *bufio.Scanner
	strict   bool
	address  uint16
	line     int
	rejected int
}

// NewScanner returns a Scanner over r. strict selects the rejecting policy.
func NewScanner(r io.Reader, strict bool) *Scanner {
	return &Scanner{scanner: bufio.NewScanner(r), strict: strict}
}

// Scan advances to the next address. It returns false when the input is
// exhausted.
func (s *Scanner) Scan() bool {
	for s.scanner.Scan() {
		s.line++
		address, ok := parseLine(s.scanner.Text())
		if !ok && s.strict {
			s.rejected++
			continue
		}
		s.address = address
		return true
	}
	return false
}

// Address returns the address read by the last successful Scan.
func (s *Scanner) Address() uint16 {
	return s.address
}

// Line returns the number of input lines consumed so far.
func (s *Scanner) Line() int {
	return s.line
}

// Rejected returns how many lines the strict policy threw away.
func (s *Scanner) Rejected() int {
	return s.rejected
}

// Err returns the first I/O error hit by the underlying scanner.
func (s *Scanner) Err() error {
	return s.scanner.Err()
}

// parseLine resolves a line to its permissive-policy address. ok reports
// whether the line would also pass the strict policy.
func parseLine(line string) (uint16, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || v < 0 {
		return 0, false
	}
	if v > 0xFFFF {
		// numeric but out of range: keep the low 16 bits, the way a
		// 16 bit address register would
		return uint16(v), false
	}
	return uint16(v), true
}
