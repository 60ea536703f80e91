// Package zc holds an opt-in fast path for standard-alphabet encoding
// that emits each output quartet as a single 32-bit store through raw
// pointers. It assumes a little-endian machine, so only amd64 and
// arm64 get the unsafe path; every other platform falls back to the
// portable engine. Output is byte-identical to b64.Encode either way.
//
// Decoding has no fast path here; use the engine directly.
package zc

// Append appends the standard-alphabet base64 encoding of src to dst,
// growing it as needed, and returns the extended slice.
func Append(dst, src []byte) []byte {
	return appendEncode(dst, src)
}

// grow extends dst by n bytes, reallocating when capacity runs out.
func grow(dst []byte, n int) []byte {
	if cap(dst)-len(dst) >= n {
		return dst[:len(dst)+n]
	}
	out := make([]byte, len(dst)+n)
	copy(out, dst)
	return out
}
