package b64

import "fmt"

// EncodeTriplet packs the first 3 bytes of src into 4 symbols at the
// start of dst. dst must hold at least 4 bytes and src at least 3.
func (a *Alphabet) EncodeTriplet(dst, src []byte) {
	b0, b1, b2 := src[0], src[1], src[2]
	_ = dst[3]
	dst[0] = a.encode[b0>>2]
	dst[1] = a.encode[(b0&0x03)<<4|b1>>4]
	dst[2] = a.encode[(b1&0x0f)<<2|b2>>6]
	dst[3] = a.encode[b2&0x3f]
}

// DecodeQuartet unpacks the first 4 symbols of src into 3 bytes at the
// start of dst. All four symbols are resolved before anything is
// written, so dst stays untouched when any of them is outside the
// alphabet and ErrInvalidChar is returned.
func (a *Alphabet) DecodeQuartet(dst, src []byte) error {
	v0 := a.decode[src[0]]
	v1 := a.decode[src[1]]
	v2 := a.decode[src[2]]
	v3 := a.decode[src[3]]
	if v0 == -1 || v1 == -1 || v2 == -1 || v3 == -1 {
		return a.invalidChar(src[:4])
	}
	_ = dst[2]
	dst[0] = byte(v0)<<2 | byte(v1)>>4
	dst[1] = byte(v1&0x0f)<<4 | byte(v2)>>2
	dst[2] = byte(v2&0x03)<<6 | byte(v3)
	return nil
}

// EncodeTail encodes the 1 or 2 leftover bytes at the end of a source
// buffer into a full quartet, with the unused symbol positions set to
// the pad symbol. dst must hold at least 4 bytes; len(src) must be 1
// or 2.
func (a *Alphabet) EncodeTail(dst, src []byte) {
	var block [3]byte
	n := copy(block[:], src)
	a.EncodeTriplet(dst, block[:])
	for i := 1 + n; i < 4; i++ {
		dst[i] = Padding
	}
}

// DecodeTail decodes the final chunk of an encoded buffer, up to 4
// symbols which may end in pad symbols, and returns the number of
// bytes written to dst. A chunk that strips down to a single symbol
// cannot represent a whole byte and fails with ErrMalformedInput; a
// chunk that strips down to nothing decodes to zero bytes. dst must
// hold at least 3 bytes. Panics when len(src) > 4.
func (a *Alphabet) DecodeTail(dst, src []byte) (int, error) {
	if len(src) > 4 {
		panic("b64: decode tail longer than a quartet")
	}
	insize := len(src)
	for insize > 0 && src[insize-1] == Padding {
		insize--
	}
	if insize == 0 {
		return 0, nil
	}
	if insize == 1 {
		return 0, fmt.Errorf("%w: lone symbol in final group", ErrMalformedInput)
	}
	// Fill the stripped chunk back out to a quartet with the symbol
	// for value 0, then drop the bytes the filler contributed.
	var block [4]byte
	copy(block[:], src[:insize])
	for i := insize; i < 4; i++ {
		block[i] = a.encode[0]
	}
	var out [3]byte
	if err := a.DecodeQuartet(out[:], block[:]); err != nil {
		return 0, err
	}
	return copy(dst, out[:insize-1]), nil
}

func (a *Alphabet) invalidChar(quartet []byte) error {
	for _, c := range quartet {
		if a.decode[c] == -1 {
			return fmt.Errorf("%w: %q", ErrInvalidChar, c)
		}
	}
	return ErrInvalidChar
}
