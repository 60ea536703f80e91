// Package b64url provides URL-safe base64 string helpers the way JOSE
// consumers use them: Encode strips the pad symbols from its output
// and Decode accepts both padded and unpadded input. Both are thin
// wrappers over the engine's URL alphabet.
package b64url

import (
	"fmt"

	"github.com/rawbytedev/b64"
)

// Encode returns the unpadded URL-safe encoding of data.
func Encode(data []byte) string {
	dst := make([]byte, b64.EncodedLen(len(data)))
	// dst is sized exactly, the engine cannot fail here
	n, _ := b64.URL.Encode(dst, data)
	for n > 0 && dst[n-1] == b64.Padding {
		n--
	}
	return string(dst[:n])
}

// Decode reverses Encode. The engine's tail handler treats a final
// group with missing pad symbols like its padded form, so padded and
// unpadded spellings of the same data decode identically.
func Decode(s string) ([]byte, error) {
	dst := make([]byte, b64.DecodedLen(len(s)))
	n, err := b64.URL.Decode(dst, []byte(s))
	if err != nil {
		return nil, fmt.Errorf("b64url: %w", err)
	}
	return dst[:n:n], nil
}
