// Copyright © 2026 The hu01 Authors.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package hu01

const (
	fileMagic  = 0x31305548 // "HU01" little-endian
	blockMagic = 0x48424353 // "SCBH" little-endian

	minFileHeaderSize  = 40
	blockHeaderSize    = 20
	rawBlockSizeCutoff = 2048
)

// readFileHeader inspects the file header at the cursor without advancing
// it. ok is false when more bytes are needed; err is non-nil when the
// header is malformed outright.
func readFileHeader(in *inputBuffer) (declaredSize uint64, consumed int, ok bool, err error) {
	if in.remaining() < minFileHeaderSize {
		return 0, 0, false, nil
	}

	magic := in.peekLEUint32(0)
	if magic != fileMagic {
		return 0, 0, false, newError(BadFileHeader, "magic mismatch")
	}

	headerSize := in.peekLEUint32(4)
	if headerSize < minFileHeaderSize {
		return 0, 0, false, newError(BadFileHeader, "header size too small")
	}

	if in.remaining() < int(headerSize) {
		return 0, 0, false, nil
	}

	declaredSize = uint64(in.peekLEUint32(32))
	return declaredSize, int(headerSize), true, nil
}

// blockInfo describes one parsed SCBH block header and a view of its
// payload, still positioned inside the input buffer's backing array.
type blockInfo struct {
	decompressedSize uint32
	compressedSize   uint32
	expectedCRC      uint32
	payload          []byte
	consumed         int
}

// readBlockHeader inspects one block header + payload at the cursor
// without advancing it. ok is false when more bytes are needed.
func readBlockHeader(in *inputBuffer) (info blockInfo, ok bool, err error) {
	if in.remaining() < blockHeaderSize {
		return blockInfo{}, false, nil
	}

	magic := in.peekLEUint32(0)
	if magic != blockMagic {
		return blockInfo{}, false, newError(BadBlockHeader, "magic mismatch")
	}

	headerSize := in.peekLEUint32(4)
	if headerSize < blockHeaderSize {
		return blockInfo{}, false, newError(BadBlockHeader, "header size too small")
	}

	decompressedSize := in.peekLEUint32(8)
	expectedCRC := in.peekLEUint32(12)
	compressedSize := in.peekLEUint32(16)

	total := int(headerSize) + int(compressedSize)
	if in.remaining() < total {
		return blockInfo{}, false, nil
	}

	payload := in.slice(total)[headerSize:]
	return blockInfo{
		decompressedSize: decompressedSize,
		compressedSize:   compressedSize,
		expectedCRC:      expectedCRC,
		payload:          payload,
		consumed:         total,
	}, true, nil
}

// isRawBlock implements the empirical raw-vs-compressed heuristic exactly
// as the reference implementation applies it: preserved as-is, not
// "improved", per DESIGN.md's Open Questions decision.
func (bi blockInfo) isRawBlock() bool {
	return bi.compressedSize == bi.decompressedSize && bi.decompressedSize < rawBlockSizeCutoff
}
