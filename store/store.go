// Package store reads page blocks from a backing store image file.
package store

import (
	"fmt"
	"os"

	"vmm/mmu"
)

// ImageLength : exact size of a backing store image,
// mmu.NumPages * mmu.PageSize bytes
const ImageLength = mmu.NumPages * mmu.PageSize

// Store is a read-only, page-addressable view of the image file. The file
// stays open for the life of the run and is read by computed offset, so
// concurrent translations would be safe here even though the engine never
// issues them.
type Store struct {
	file *os.File
	path string
}

// Open opens the image at path and checks its geometry. A short or oversized
// image is rejected here rather than surfacing as a read error mid-run.
func Open(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("backing store: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("backing store: %w", err)
	}
	if info.Size() != ImageLength {
		f.Close()
		return nil, fmt.Errorf("backing store %s: image is %d bytes, want %d",
			path, info.Size(), ImageLength)
	}

	return &Store{file: f, path: path}, nil
}

// ReadPage returns the 256 byte block for page.
func (s *Store) ReadPage(page uint8) ([]byte, error) {
	block := make([]byte, mmu.PageSize)
	if _, err := s.file.ReadAt(block, int64(page)*mmu.PageSize); err != nil {
		return nil, fmt.Errorf("backing store %s: page %d: %w", s.path, page, err)
	}
	return block, nil
}

// Close releases the image file.
func (s *Store) Close() error {
	return s.file.Close()
}
