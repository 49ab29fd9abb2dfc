// Copyright © 2026 The hu01 Authors.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package hu01

import (
	"hash/crc32"
)

const defaultInitialBufferSize = 8192

// Option configures a Decompressor at construction time.
type Option func(*Decompressor)

// WithInitialBufferSize sets the initial capacity of the decoder's
// internal input buffer. It is a sizing hint only; the buffer still
// grows as needed.
func WithInitialBufferSize(n int) Option {
	return func(d *Decompressor) {
		d.initialBufferSize = n
	}
}

// WithLogger overrides the package logger used by a single Decompressor,
// primarily for tests that want to capture log output.
func WithLogger(l logger) Option {
	return func(d *Decompressor) {
		d.log = l
	}
}

// logger is the subset of *logging.Logger the decoder uses, so tests can
// substitute a stub without pulling in a real backend.
type logger interface {
	Debugf(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Decompressor is the incremental push-style HU01 decoder (spec.md §4.6).
// It is not safe for concurrent use: callers requiring parallelism should
// allocate one Decompressor per stream.
type Decompressor struct {
	initialBufferSize int
	log               logger

	input *inputBuffer
	table []uint16

	inHeader     bool
	declaredSize uint64
	produced     uint64

	decoded    []byte
	decodedPos int

	fault error
}

// New constructs a Decompressor ready to accept AddInput calls.
func New(opts ...Option) *Decompressor {
	d := &Decompressor{
		initialBufferSize: defaultInitialBufferSize,
		log:               log,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.table = make([]uint16, tableSize)
	d.Reset()
	return d
}

// Reset returns the decoder to the state of a freshly constructed one,
// retaining its allocated buffers.
func (d *Decompressor) Reset() {
	if d.input == nil {
		d.input = newInputBuffer(d.initialBufferSize)
	} else {
		d.input.reset()
	}
	d.inHeader = true
	d.declaredSize = 0
	d.produced = 0
	d.decoded = nil
	d.decodedPos = 0
	d.fault = nil
}

// AddInput appends compressed bytes to the decoder's internal buffer. It
// never blocks and never fails except when the decoder is already
// faulted.
func (d *Decompressor) AddInput(p []byte) error {
	if d.fault != nil {
		return ErrFaulted
	}
	d.input.append(p)
	return nil
}

// Finished reports whether the decoder has emitted exactly declaredSize
// plaintext bytes. It never toggles back to false once true.
func (d *Decompressor) Finished() bool {
	return d.fault == nil && !d.inHeader && d.produced == d.declaredSize
}

// Decompress copies up to len(out) decoded plaintext bytes into out,
// decoding further input as needed. It returns the number of bytes
// written; a return of (0, nil) with Finished() still false means more
// input is needed via AddInput before further progress can be made.
func (d *Decompressor) Decompress(out []byte) (int, error) {
	if d.fault != nil {
		return 0, ErrFaulted
	}
	if d.Finished() {
		return 0, nil
	}

	if d.inHeader {
		declared, consumed, ok, err := readFileHeader(d.input)
		if err != nil {
			d.fault = err
			d.log.Errorf("file header rejected: %v", err)
			return 0, err
		}
		if !ok {
			return 0, nil
		}
		d.input.advance(consumed)
		d.declaredSize = declared
		d.inHeader = false
		d.log.Debugf("file header parsed, declared size %d", declared)
	}

	if d.decodedPos >= len(d.decoded) {
		block, ok, err := d.decodeNextBlock()
		if err != nil {
			d.fault = err
			d.log.Errorf("block decode failed: %v", err)
			return 0, err
		}
		if !ok {
			return 0, nil
		}
		d.decoded = block
		d.decodedPos = 0
	}

	n := copy(out, d.decoded[d.decodedPos:])
	d.decodedPos += n
	d.produced += uint64(n)
	if d.produced > d.declaredSize {
		// Never emit more than declared: clip, matching the boundary
		// policy applied inside decodeBlock itself.
		over := int(d.produced - d.declaredSize)
		n -= over
		d.decodedPos -= over
		d.produced = d.declaredSize
	}
	return n, nil
}

// decodeNextBlock parses and decodes one block from the input buffer, or
// reports ok=false if more input is needed first.
func (d *Decompressor) decodeNextBlock() (decoded []byte, ok bool, err error) {
	info, ok, err := readBlockHeader(d.input)
	if err != nil || !ok {
		return nil, ok, err
	}

	var plain []byte
	if info.isRawBlock() {
		plain = make([]byte, len(info.payload))
		copy(plain, info.payload)
	} else {
		plain, err = decodeBlock(info.payload, info.decompressedSize, d.table)
		if err != nil {
			return nil, false, err
		}
	}

	if crc32.ChecksumIEEE(plain) != info.expectedCRC {
		return nil, false, newError(CrcMismatch, "block payload does not match header CRC")
	}

	d.input.advance(info.consumed)
	d.log.Debugf("block decoded, %d bytes", len(plain))
	return plain, true, nil
}
