// Package arena implements a bump-style region allocator for the
// short-lived buffers carved out while staging a ROM image: the PRG-ROM
// and CHR-ROM slices copied out of the file image. Nothing
// allocated from an Arena is freed individually; the whole region is
// dropped at once when the cartridge is unloaded.
//
// Ported from original_source/src/alloc.c's bump-pointer allocator to
// Go slice semantics: a backing []byte and a cursor offset stand in
// for the C version's beg/end pointers.
package arena

import "fmt"

// Arena is a fixed-capacity bump allocator.
type Arena struct {
	buf    []byte
	cursor int
}

// New creates an Arena backed by a freshly allocated buffer of the
// given capacity.
func New(capacity int) *Arena {
	return &Arena{buf: make([]byte, capacity)}
}

// Alloc carves out and returns a zeroed n-byte slice from the arena.
// It returns an error if the arena doesn't have n bytes remaining.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if n < 0 || a.cursor+n > len(a.buf) {
		return nil, fmt.Errorf("arena: requested %d bytes, only %d remain of %d", n, len(a.buf)-a.cursor, len(a.buf))
	}
	s := a.buf[a.cursor : a.cursor+n : a.cursor+n]
	a.cursor += n
	return s, nil
}

// Remaining returns the number of bytes still available to Alloc.
func (a *Arena) Remaining() int {
	return len(a.buf) - a.cursor
}

// Reset rewinds the cursor to the beginning, making the whole backing
// buffer available again. Used when an arena is reused across loads
// instead of being released wholesale.
func (a *Arena) Reset() {
	clear(a.buf[:a.cursor])
	a.cursor = 0
}
