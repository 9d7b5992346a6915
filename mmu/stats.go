package mmu

// Statistics holds the monotone counters of the run. Counters are bumped
// by the translation path only and never reset.
type Statistics struct {
	pageFaults uint64
	tlbHits    uint64
}

// PageFaults returns the number of resolved page faults.
func (s Statistics) PageFaults() uint64 {
	return s.pageFaults
}

// TLBHits returns the number of TLB hits.
func (s Statistics) TLBHits() uint64 {
	return s.tlbHits
}
