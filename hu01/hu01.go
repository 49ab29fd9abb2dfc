// Copyright © 2026 The hu01 Authors.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

/*
Package hu01 implements a streaming decoder for Microsoft's HU01
compressed container, the format DeltaSync uses to transport email
bodies. A Decompressor accepts compressed bytes in arbitrary chunks
through AddInput and yields plaintext bytes through Decompress as soon
as a full block has been decoded, validating each block's CRC-32
along the way.

The encoder side is not implemented; HU01 payloads are only ever
decoded here, never produced.
*/
package hu01

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("hu01")
