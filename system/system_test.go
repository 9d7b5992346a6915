package system

import (
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	"vmm/console"
	"vmm/mmu"
)

// patternStore fills page p with the byte value p+1, so page 0 reads as 1s
// and page 1 as 2s.
type patternStore struct{}

func (patternStore) ReadPage(page uint8) ([]byte, error) {
	block := make([]byte, mmu.PageSize)
	for i := range block {
		block[i] = page + 1
	}
	return block, nil
}

// brokenStore fails every read.
type brokenStore struct{}

func (brokenStore) ReadPage(page uint8) ([]byte, error) {
	return nil, fmt.Errorf("backing store: page %d: broken", page)
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestSystem_Run(t *testing.T) {
	var out strings.Builder
	sys := InitializeSystem(patternStore{}, console.NewSimpleWriter(&out),
		testLogger(), false)

	if err := sys.Run(strings.NewReader("1\n256\n1\n")); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	want := "logical address : 1  physical address : 1  value : 1\n" +
		"logical address : 256  physical address : 256  value : 2\n" +
		"logical address : 1  physical address : 1  value : 1\n" +
		"Page Faults : 2\nTLB hits : 1\n"
	if out.String() != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", out.String(), want)
	}

	if sys.Processed() != 3 || sys.Failed() != 0 {
		t.Errorf("Processed, Failed = %d, %d, want 3, 0", sys.Processed(), sys.Failed())
	}
}

func TestSystem_RunContinuesPastFailures(t *testing.T) {
	var out strings.Builder
	sys := InitializeSystem(brokenStore{}, console.NewSimpleWriter(&out),
		testLogger(), false)

	if err := sys.Run(strings.NewReader("1\n2\n3\n")); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if sys.Failed() != 3 {
		t.Errorf("Failed() = %d, want 3", sys.Failed())
	}
	want := "Page Faults : 0\nTLB hits : 0\n"
	if out.String() != want {
		t.Errorf("output:\n%s\nwant only the summary:\n%s", out.String(), want)
	}
}

func TestSystem_StrictPolicy(t *testing.T) {
	var out strings.Builder
	sys := InitializeSystem(patternStore{}, console.NewSimpleWriter(&out),
		testLogger(), true)

	if err := sys.Run(strings.NewReader("1\nfoo\n1\n")); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if sys.Processed() != 2 {
		t.Errorf("Processed() = %d, want 2 with the malformed line rejected", sys.Processed())
	}
	if !strings.Contains(out.String(), "TLB hits : 1") {
		t.Errorf("unexpected summary:\n%s", out.String())
	}
}

func TestSystem_StatusReport(t *testing.T) {
	var out strings.Builder
	sys := InitializeSystem(patternStore{}, console.NewSimpleWriter(&out),
		testLogger(), false)

	if err := sys.Run(strings.NewReader("0\n0\n0\n0\n")); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	report := sys.StatusReport()
	for _, fragment := range []string{
		"addresses : 4",
		"failed : 0",
		"page faults : 1",
		"TLB hits : 3",
		"TLB hit rate : 75.00%",
		"fault rate : 25.00%",
	} {
		if !strings.Contains(report, fragment) {
			t.Errorf("StatusReport() missing %q:\n%s", fragment, report)
		}
	}
}
