//go:build !amd64 && !arm64

package zc

import "github.com/rawbytedev/b64"

// Portable fallback: the engine writes the exact padded length, so
// grow and point it at the new region.
func appendEncode(dst, src []byte) []byte {
	n := b64.EncodedLen(len(src))
	out := grow(dst, n)
	// out is sized exactly, the engine cannot fail here
	_, _ = b64.Encode(out[len(out)-n:], src)
	return out
}
