//go:build amd64 || arm64

package zc

import (
	"unsafe"

	"github.com/rawbytedev/b64"
)

// Local copy of the standard table so the hot loop indexes a flat
// array instead of reaching through the engine's Alphabet.
var encodeMap = [64]byte{
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P',
	'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', 'a', 'b', 'c', 'd', 'e', 'f',
	'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v',
	'w', 'x', 'y', 'z', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '+', '/',
}

// appendEncode packs three source bytes into a 24-bit word and emits
// the four symbols with one little-endian 32-bit store. The tail
// quartet is a full 4-byte store too, so the destination is grown by
// the exact padded length up front and every store stays in bounds.
func appendEncode(dst, src []byte) []byte {
	if len(src) == 0 {
		return dst
	}
	n := b64.EncodedLen(len(src))
	out := grow(dst, n)
	srcPtr := unsafe.Pointer(&src[0])
	dstPtr := unsafe.Pointer(&out[len(out)-n])
	encPtr := unsafe.Pointer(&encodeMap[0])
	for i := 0; i < len(src)/3; i++ {
		word := uint32(*(*byte)(srcPtr))<<16 | uint32(*(*byte)(unsafe.Add(srcPtr, 1)))<<8 |
			uint32(*(*byte)(unsafe.Add(srcPtr, 2)))
		srcPtr = unsafe.Add(srcPtr, 3)
		*(*uint32)(dstPtr) = uint32(*(*byte)(unsafe.Add(encPtr, (word>>18)&0x3F))) |
			uint32(*(*byte)(unsafe.Add(encPtr, (word>>12)&0x3F)))<<8 |
			uint32(*(*byte)(unsafe.Add(encPtr, (word>>6)&0x3F)))<<16 |
			uint32(*(*byte)(unsafe.Add(encPtr, word&0x3F)))<<24
		dstPtr = unsafe.Add(dstPtr, 4)
	}
	switch len(src) % 3 {
	case 1:
		word := uint32(*(*byte)(srcPtr)) << 16
		*(*uint32)(dstPtr) = uint32(*(*byte)(unsafe.Add(encPtr, (word>>18)&0x3F))) |
			uint32(*(*byte)(unsafe.Add(encPtr, (word>>12)&0x3F)))<<8 |
			uint32(b64.Padding)<<16 |
			uint32(b64.Padding)<<24
	case 2:
		word := uint32(*(*byte)(srcPtr))<<16 | uint32(*(*byte)(unsafe.Add(srcPtr, 1)))<<8
		*(*uint32)(dstPtr) = uint32(*(*byte)(unsafe.Add(encPtr, (word>>18)&0x3F))) |
			uint32(*(*byte)(unsafe.Add(encPtr, (word>>12)&0x3F)))<<8 |
			uint32(*(*byte)(unsafe.Add(encPtr, (word>>6)&0x3F)))<<16 |
			uint32(b64.Padding)<<24
	}
	return out
}
