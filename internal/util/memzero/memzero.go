// Package memzero provides best-effort wiping of sensitive buffers.
package memzero

import "crypto/subtle"

// Zero overwrites b with zeros. The subtle copy keeps the write from
// being elided by the compiler.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
