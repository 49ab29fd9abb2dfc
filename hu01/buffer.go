// Copyright © 2026 The hu01 Authors.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package hu01

// inputBuffer is a growable byte queue with a cursor, the compressed-side
// counterpart of buf.Reassembly: bytes accumulate between len() and cap()
// until append compacts the already-read prefix away.
type inputBuffer struct {
	data []byte
	pos  int
}

func newInputBuffer(initialSize int) *inputBuffer {
	if initialSize <= 0 {
		initialSize = 4096
	}
	return &inputBuffer{data: make([]byte, 0, initialSize)}
}

// append adds bytes to the tail, compacting the consumed prefix and
// growing the backing array (doubling) if there isn't room.
func (b *inputBuffer) append(p []byte) {
	if len(p) == 0 {
		return
	}

	if b.pos > 0 {
		remaining := copy(b.data, b.data[b.pos:])
		b.data = b.data[:remaining]
		b.pos = 0
	}

	need := len(b.data) + len(p)
	if need > cap(b.data) {
		newCap := cap(b.data)
		if newCap == 0 {
			newCap = 4096
		}
		for newCap < need {
			newCap *= 2
		}
		grown := make([]byte, len(b.data), newCap)
		copy(grown, b.data)
		b.data = grown
	}

	b.data = append(b.data, p...)
}

// remaining reports how many unconsumed bytes sit between the cursor and
// the tail.
func (b *inputBuffer) remaining() int {
	return len(b.data) - b.pos
}

// peekLEUint32 reads a little-endian uint32 at offset bytes past the
// cursor without advancing it. The caller must have already checked
// remaining() >= offset+4.
func (b *inputBuffer) peekLEUint32(offset int) uint32 {
	p := b.data[b.pos+offset:]
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 | uint32(p[3])<<24
}

// advance moves the cursor forward by n bytes, which must not exceed
// remaining().
func (b *inputBuffer) advance(n int) {
	if n > b.remaining() {
		panic("hu01: advancing input buffer past its tail")
	}
	b.pos += n
}

// slice returns an immutable view of the next n bytes starting at the
// cursor, without advancing it. The caller must have already checked
// remaining() >= n.
func (b *inputBuffer) slice(n int) []byte {
	return b.data[b.pos : b.pos+n]
}

// reset discards all buffered bytes, retaining the backing array.
func (b *inputBuffer) reset() {
	b.data = b.data[:0]
	b.pos = 0
}
