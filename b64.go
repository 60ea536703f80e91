// Package b64 is a base64 codec with pluggable alphabets. The engine
// works on caller-provided buffers, checks destination capacity up
// front and allocates nothing on the encode/decode paths, so it also
// suits contexts where the destination is a fixed preallocated region.
//
// Std and URL cover RFC 4648; NewAlphabet accepts any 64-symbol table.
// The pad symbol '=' is fixed and shared by every alphabet.
package b64

import (
	"errors"
	"fmt"
)

var (
	// ErrDstTooSmall reports a destination buffer smaller than the
	// computed required length. Nothing is written before the check.
	ErrDstTooSmall = errors.New("destination buffer too small")
	// ErrInvalidChar reports a decode input symbol outside the
	// alphabet. Destination contents are undefined after it.
	ErrInvalidChar = errors.New("invalid base64 character")
	// ErrMalformedInput reports a decode input whose final group
	// strips down to a single symbol, which cannot represent a whole
	// number of bytes.
	ErrMalformedInput = errors.New("malformed base64 input")
)

// EncodedLen returns the number of bytes an encode of n source bytes
// produces, padding included. Always a multiple of 4.
func EncodedLen(n int) int { return (n + 2) / 3 * 4 }

// DecodedLen returns the destination capacity required to decode n
// encoded bytes. It is an upper bound, not the decoded size; the exact
// size is only known once Decode returns.
func DecodedLen(n int) int { return (n + 3) / 4 * 3 }

// Encode encodes src into dst using alphabet a and returns the number
// of bytes written, which is always EncodedLen(len(src)). dst must
// hold at least that many bytes or the call fails with ErrDstTooSmall
// and writes nothing. Destination space beyond the written region is
// zeroed out to len(dst).
func (a *Alphabet) Encode(dst, src []byte) (int, error) {
	if need := EncodedLen(len(src)); len(dst) < need {
		return 0, fmt.Errorf("%w: encode needs %d bytes, have %d", ErrDstTooSmall, need, len(dst))
	}
	var d, s int
	for len(src)-s >= 3 {
		a.EncodeTriplet(dst[d:], src[s:])
		s += 3
		d += 4
	}
	if len(src)-s > 0 {
		a.EncodeTail(dst[d:], src[s:])
		d += 4
	}
	clear(dst[d:])
	return d, nil
}

// Decode decodes src into dst using alphabet a and returns the number
// of bytes written. dst must hold at least DecodedLen(len(src)) bytes
// or the call fails with ErrDstTooSmall and writes nothing. A symbol
// outside the alphabet fails the whole call with ErrInvalidChar and a
// final group of one stripped symbol with ErrMalformedInput; dst
// contents are undefined after either. Trailing pad symbols are
// consumed, and a final group that simply omits them decodes the same
// as its padded form. Destination space beyond the written region is
// zeroed out to len(dst).
func (a *Alphabet) Decode(dst, src []byte) (int, error) {
	if need := DecodedLen(len(src)); len(dst) < need {
		return 0, fmt.Errorf("%w: decode needs %d bytes, have %d", ErrDstTooSmall, need, len(dst))
	}
	var d, s int
	// Every full quartet except the last group, which may carry
	// padding and belongs to the tail handler.
	for len(src)-s > 4 {
		if err := a.DecodeQuartet(dst[d:], src[s:]); err != nil {
			return 0, err
		}
		s += 4
		d += 3
	}
	n, err := a.DecodeTail(dst[d:], src[s:])
	if err != nil {
		return 0, err
	}
	d += n
	clear(dst[d:])
	return d, nil
}

// Encode encodes src into dst with the standard RFC 4648 alphabet.
func Encode(dst, src []byte) (int, error) { return Std.Encode(dst, src) }

// Decode decodes src into dst with the standard RFC 4648 alphabet.
func Decode(dst, src []byte) (int, error) { return Std.Decode(dst, src) }
