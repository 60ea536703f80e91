package b64

const (
	// Padding is the symbol appended to bring encoded output up to a
	// multiple of 4. It is fixed across all alphabets and is never a
	// member of one.
	Padding = '='

	stdTable = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlTable = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// Alphabet is a bidirectional mapping between 6-bit values and the 64
// symbols that represent them. Build one with NewAlphabet; the zero
// value is not usable. An Alphabet is never mutated after construction
// and may be shared between goroutines without locking.
type Alphabet struct {
	encode [64]byte
	decode [256]int8
}

var (
	// Std is the standard RFC 4648 alphabet (A-Z a-z 0-9 + /).
	Std = NewAlphabet(stdTable)
	// URL is the RFC 4648 URL-safe alphabet, with '-' and '_' in the
	// two positions Std fills with '+' and '/'.
	URL = NewAlphabet(urlTable)
)

// NewAlphabet builds an Alphabet from a table of 64 symbols, in order
// of their 6-bit values. Supplying distinct symbols is the caller's
// contract: duplicates are not rejected, the later entry silently wins
// in the decode direction. Panics when len(table) != 64.
func NewAlphabet(table string) *Alphabet {
	if len(table) != 64 {
		panic("b64: alphabet table must hold exactly 64 symbols")
	}
	a := &Alphabet{}
	copy(a.encode[:], table)
	for i := range a.decode {
		a.decode[i] = -1
	}
	for i := 0; i < len(table); i++ {
		a.decode[table[i]] = int8(i)
	}
	return a
}

// Contains reports whether c can appear in data encoded with a. The
// pad symbol is not considered a member.
func (a *Alphabet) Contains(c byte) bool {
	return a.decode[c] != -1
}
