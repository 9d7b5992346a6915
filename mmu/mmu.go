package mmu

import (
	"fmt"
	"log"
)

// Fixed geometry of the simulated machine. The logical address space and
// the physical memory are the same size, so a single pass can touch every
// page at most once before the frame pool runs dry.
const (
	// PageSize : bytes per page and per frame
	PageSize = 256

	// NumPages : pages in the logical address space
	NumPages = 256

	// NumFrames : frames in physical memory
	NumFrames = 256
)

// BackingStore provides the content of a page on demand. The returned slice
// must hold exactly PageSize bytes.
type BackingStore interface {
	ReadPage(page uint8) ([]byte, error)
}

// MMU implements the demand-paged translation path: TLB first, page table
// second, backing store on a miss of both. It owns all mutable state of the
// simulation and is not safe for concurrent use.
type MMU struct {

	// Memory : physical memory, indexed by frame number and offset
	Memory [NumFrames][PageSize]byte

	tlb       TLB
	pageTable PageTable
	frames    FrameAllocator
	stats     Statistics

	store BackingStore
	log   *log.Logger
}

// New returns an MMU with an empty TLB, an unmapped page table and a full
// frame pool, reading missing pages from store.
func New(store BackingStore, logger *log.Logger) *MMU {
	m := MMU{}
	m.pageTable.init()
	m.frames.init()
	m.tlb.stats = &m.stats
	m.store = store
	m.log = logger
	return &m
}

// Translate maps a 16 bit logical address to a physical address and returns
// the byte stored there. A failed translation leaves the page table, the
// frame pool and the TLB exactly as they were.
func (m *MMU) Translate(address uint16) (uint32, int8, error) {
	page, offset := Decode(address)

	frame, ok := m.tlb.Lookup(page)
	if !ok {
		// a page table hit does not refresh the TLB: only resolved
		// faults insert entries
		frame, ok = m.pageTable.Lookup(page)
	}
	if !ok {
		var err error
		if frame, err = m.faultIn(page); err != nil {
			return 0, 0, err
		}
	}

	physical := uint32(frame)*PageSize + uint32(offset)
	return physical, int8(m.Memory[frame][offset]), nil
}

// faultIn resolves a page fault: fetch the page from the backing store,
// claim a frame, copy the block in and publish the mapping. The backing
// store is read before a frame is claimed, so an I/O error costs nothing.
func (m *MMU) faultIn(page uint8) (uint8, error) {
	block, err := m.store.ReadPage(page)
	if err != nil {
		return 0, fmt.Errorf("page fault on page %d: %w", page, err)
	}

	frame, err := m.frames.Allocate()
	if err != nil {
		return 0, fmt.Errorf("page fault on page %d: %w", page, err)
	}

	copy(m.Memory[frame][:], block)
	m.pageTable.Bind(page, frame)
	m.tlb.Insert(page, frame)
	m.stats.pageFaults++

	if m.log != nil {
		m.log.Printf("page fault: page %d -> frame %d", page, frame)
	}
	return frame, nil
}

// Stats returns a snapshot of the fault and hit counters.
func (m *MMU) Stats() Statistics {
	return m.stats
}
