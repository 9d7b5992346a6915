package mmu

import "errors"

// ErrNoFreeFrames is returned by Allocate once the frame pool is exhausted.
// There is no release path, so after the first occurrence every later
// allocation fails the same way.
var ErrNoFreeFrames = errors.New("no free frames")

// FrameAllocator hands out physical frames, lowest index first. Frames are
// never returned to the pool.
type FrameAllocator struct {
	free      [NumFrames]bool
	freeCount int
}

func (f *FrameAllocator) init() {
	for i := range f.free {
		f.free[i] = true
	}
	f.freeCount = NumFrames
}

// Allocate claims the lowest-indexed free frame.
func (f *FrameAllocator) Allocate() (uint8, error) {
	if f.freeCount == 0 {
		return 0, ErrNoFreeFrames
	}
	i := 0
	for !f.free[i] {
		i++
	}
	f.free[i] = false
	f.freeCount--
	return uint8(i), nil
}

// FreeFrames reports how many frames are still unclaimed.
func (f *FrameAllocator) FreeFrames() int {
	return f.freeCount
}
