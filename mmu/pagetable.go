package mmu

// unmapped marks a page table entry with no frame bound to it
const unmapped = -1

// PageTable is the authoritative page to frame mapping. Entries start
// unmapped and are bound at most once, on the first fault for the page.
type PageTable struct {
	entries [NumPages]int16
}

func (p *PageTable) init() {
	for i := range p.entries {
		p.entries[i] = unmapped
	}
}

// Lookup returns the frame bound to page, if any.
func (p *PageTable) Lookup(page uint8) (uint8, bool) {
	if p.entries[page] == unmapped {
		return 0, false
	}
	return uint8(p.entries[page]), true
}

// Bind maps page to frame. Once bound an entry is never rebound; callers
// only reach this from the fault path, which runs at most once per page.
func (p *PageTable) Bind(page, frame uint8) {
	p.entries[page] = int16(frame)
}
