// Copyright © 2026 The hu01 Authors.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package hu01

import (
	"bufio"
	"io"
)

// Writer adapts a Decompressor into a byte sink: compressed bytes handed
// to Write are fed to an internal Decompressor, and the resulting
// plaintext is forwarded to an inner io.Writer. It contributes no
// decoding logic of its own (spec.md §2's "adapter... contributes no
// additional logic"), and shares the Decompressor's single-threaded,
// single-owner contract (spec.md §5). The inner sink is wrapped in a
// bufio.Writer so that many small decode chunks (a block's worth at a
// time, per Decompress call) coalesce into fewer underlying Write calls;
// callers must Close to flush the tail.
type Writer struct {
	dec  *Decompressor
	sink *bufio.Writer
	buf  []byte
}

// NewWriter wraps sink with an HU01 decompressing adapter.
func NewWriter(sink io.Writer, opts ...Option) *Writer {
	return &Writer{
		dec:  New(opts...),
		sink: bufio.NewWriter(sink),
		buf:  make([]byte, 4096),
	}
}

// Write accepts compressed bytes and forwards whatever plaintext they
// unlock to the inner sink. It returns len(p) on success, matching
// io.Writer's contract that a short count implies a non-nil error.
func (w *Writer) Write(p []byte) (int, error) {
	if err := w.dec.AddInput(p); err != nil {
		return 0, err
	}

	for {
		n, err := w.dec.Decompress(w.buf)
		if err != nil {
			return 0, err
		}
		if n == 0 {
			break
		}
		if _, werr := w.sink.Write(w.buf[:n]); werr != nil {
			return 0, werr
		}
	}

	return len(p), nil
}

// Close drains any final decoded bytes and flushes the buffered sink. It
// does not Close the inner io.Writer; the caller owns that lifecycle.
func (w *Writer) Close() error {
	for {
		n, err := w.dec.Decompress(w.buf)
		if err != nil {
			return err
		}
		if n == 0 {
			return w.sink.Flush()
		}
		if _, werr := w.sink.Write(w.buf[:n]); werr != nil {
			return werr
		}
	}
}
