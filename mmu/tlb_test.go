package mmu

import (
	"testing"
)

func TestTLB_Lookup(t *testing.T) {
	var stats Statistics
	tlb := TLB{stats: &stats}

	if _, ok := tlb.Lookup(5); ok {
		t.Error("lookup on empty TLB should miss")
	}
	if stats.TLBHits() != 0 {
		t.Errorf("miss must not bump hit counter, got %d", stats.TLBHits())
	}

	tlb.Insert(5, 42)
	frame, ok := tlb.Lookup(5)
	if !ok || frame != 42 {
		t.Errorf("Lookup(5) = (%d, %v), want (42, true)", frame, ok)
	}
	if stats.TLBHits() != 1 {
		t.Errorf("hit counter = %d, want 1", stats.TLBHits())
	}
}

func TestTLB_FIFOReplacement(t *testing.T) {
	var stats Statistics
	tlb := TLB{stats: &stats}

	// fill all 16 slots with pages 0..15
	for i := 0; i < TLBSize; i++ {
		tlb.Insert(uint8(i), uint8(i+100))
	}
	if _, ok := tlb.Lookup(0); !ok {
		t.Fatal("page 0 should still be cached after 16 inserts")
	}

	// the 17th distinct insert overwrites the slot written first,
	// regardless of page 0 having just been used
	tlb.Insert(16, 116)
	if _, ok := tlb.Lookup(0); ok {
		t.Error("page 0 should have been replaced by the 17th insert")
	}
	for i := 1; i <= 16; i++ {
		if frame, ok := tlb.Lookup(uint8(i)); !ok || frame != uint8(i+100) {
			t.Errorf("Lookup(%d) = (%d, %v), want (%d, true)", i, frame, ok, i+100)
		}
	}
}

func TestTLB_StaleDuplicate(t *testing.T) {
	var stats Statistics
	tlb := TLB{stats: &stats}

	// inserting the same page twice leaves two valid entries; the scan
	// finds the first one
	tlb.Insert(7, 1)
	tlb.Insert(7, 2)
	if frame, ok := tlb.Lookup(7); !ok || frame != 1 {
		t.Errorf("Lookup(7) = (%d, %v), want (1, true)", frame, ok)
	}
}

func TestTLB_CursorWraps(t *testing.T) {
	var stats Statistics
	tlb := TLB{stats: &stats}

	for i := 0; i < 2*TLBSize; i++ {
		tlb.Insert(uint8(i), uint8(i))
	}
	// first generation fully overwritten
	for i := 0; i < TLBSize; i++ {
		if _, ok := tlb.Lookup(uint8(i)); ok {
			t.Errorf("page %d from the first generation should be gone", i)
		}
	}
	for i := TLBSize; i < 2*TLBSize; i++ {
		if _, ok := tlb.Lookup(uint8(i)); !ok {
			t.Errorf("page %d from the second generation should be cached", i)
		}
	}
}
