package mmu

// TLBSize : number of TLB slots
const TLBSize = 16

type tlbEntry struct {
	page  uint8
	frame uint8
	valid bool
}

// TLB is a fixed-capacity cache of page to frame mappings with positional
// FIFO replacement: a write cursor walks the slots modulo TLBSize and
// overwrites whatever it finds. Entries are never invalidated by content,
// so a stale duplicate for a page can sit in the table until the cursor
// comes round again.
type TLB struct {
	entries [TLBSize]tlbEntry
	cursor  int

	stats *Statistics
}

// Lookup scans all slots for a valid entry matching page. A hit bumps the
// TLB hit counter.
func (t *TLB) Lookup(page uint8) (uint8, bool) {
	for i := 0; i < TLBSize; i++ {
		if t.entries[i].valid && t.entries[i].page == page {
			if t.stats != nil {
				t.stats.tlbHits++
			}
			return t.entries[i].frame, true
		}
	}
	return 0, false
}

// Insert writes the mapping into the slot under the cursor, marks it valid
// and advances the cursor. No deduplication: an existing valid entry for
// the same page elsewhere in the table stays put.
func (t *TLB) Insert(page, frame uint8) {
	t.entries[t.cursor] = tlbEntry{page: page, frame: frame, valid: true}
	t.cursor = (t.cursor + 1) % TLBSize
}
