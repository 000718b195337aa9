package langid

import (
	"math/bits"

	"github.com/maxbolgarin/errm"
)

// TinyStr8 is a string of 1 to 8 non-NUL ASCII characters packed into a
// single uint64. The first character of the text occupies the low-order byte,
// unused high-order bytes are zero. The zero value means "no value": a valid
// TinyStr8 is never zero because NUL bytes are rejected at parse time.
//
// All derived operations (case conversion, classification, ordering) work on
// the packed word with whole-word bit arithmetic, so they are branchless and
// allocation-free.
type TinyStr8 uint64

// TinyStr4 is the 4-byte counterpart of TinyStr8 packed into a uint32.
type TinyStr4 uint32

// ParseTinyStr8 packs text into a TinyStr8.
// It returns ErrInvalidSize, ErrNonASCII or ErrInvalidNull on bad input.
func ParseTinyStr8(text string) (TinyStr8, error) {
	if len(text) < 1 || len(text) > 8 {
		return 0, errm.Wrap(ErrInvalidSize, "parse tiny str", "len", len(text))
	}
	var word uint64
	for i := 0; i < len(text); i++ {
		word |= uint64(text[i]) << (8 * i)
	}
	// High bits of the used bytes only. Unused bytes are zero and pass both checks.
	mask := uint64(0x8080808080808080) >> (8 * (8 - len(text)))
	if word&mask != 0 {
		return 0, errm.Wrap(ErrNonASCII, "parse tiny str")
	}
	// 0x80-x keeps the high bit only for x == 0. ASCII bytes never borrow,
	// so each byte is checked independently.
	if (mask-word)&mask != 0 {
		return 0, errm.Wrap(ErrInvalidNull, "parse tiny str")
	}
	return TinyStr8(word), nil
}

// ParseTinyStr4 packs text into a TinyStr4.
// It returns ErrInvalidSize, ErrNonASCII or ErrInvalidNull on bad input.
func ParseTinyStr4(text string) (TinyStr4, error) {
	if len(text) < 1 || len(text) > 4 {
		return 0, errm.Wrap(ErrInvalidSize, "parse tiny str", "len", len(text))
	}
	var word uint32
	for i := 0; i < len(text); i++ {
		word |= uint32(text[i]) << (8 * i)
	}
	mask := uint32(0x80808080) >> (8 * (4 - len(text)))
	if word&mask != 0 {
		return 0, errm.Wrap(ErrNonASCII, "parse tiny str")
	}
	if (mask-word)&mask != 0 {
		return 0, errm.Wrap(ErrInvalidNull, "parse tiny str")
	}
	return TinyStr4(word), nil
}

// TinyStr8Unchecked reconstructs a TinyStr8 from its raw packed form without
// validation. The caller must guarantee that raw was previously produced by
// ParseTinyStr8 or one of the derived operations; feeding untrusted data here
// breaks every invariant the rest of the package relies on.
func TinyStr8Unchecked(raw uint64) TinyStr8 {
	return TinyStr8(raw)
}

// TinyStr4Unchecked reconstructs a TinyStr4 from its raw packed form without
// validation. Same caller obligations as TinyStr8Unchecked.
func TinyStr4Unchecked(raw uint32) TinyStr4 {
	return TinyStr4(raw)
}

// Len returns the number of characters. O(1): no interior NUL is allowed, so
// the length is fully determined by the leading zero bytes of the word.
func (t TinyStr8) Len() int {
	return 8 - bits.LeadingZeros64(uint64(t))/8
}

// Len returns the number of characters.
func (t TinyStr4) Len() int {
	return 4 - bits.LeadingZeros32(uint32(t))/8
}

func (t TinyStr8) String() string {
	if t == 0 {
		return ""
	}
	var b [8]byte
	n := t.Len()
	for i := 0; i < n; i++ {
		b[i] = byte(t >> (8 * i))
	}
	return string(b[:n])
}

func (t TinyStr4) String() string {
	if t == 0 {
		return ""
	}
	var b [4]byte
	n := t.Len()
	for i := 0; i < n; i++ {
		b[i] = byte(t >> (8 * i))
	}
	return string(b[:n])
}

// ToUpper returns a copy with every [a-z] byte uppercased.
// For each byte x, (x+0x1f)&^(x+0x05) carries into the high bit exactly when
// x is in [a-z]; shifting that bit onto the 0x20 position and clearing it
// flips the case of all matching bytes at once.
func (t TinyStr8) ToUpper() TinyStr8 {
	word := uint64(t)
	return TinyStr8(word &^ (((word + 0x1f1f1f1f1f1f1f1f) &^ (word + 0x0505050505050505) & 0x8080808080808080) >> 2))
}

// ToLower returns a copy with every [A-Z] byte lowercased.
func (t TinyStr8) ToLower() TinyStr8 {
	word := uint64(t)
	return TinyStr8(word | (((word + 0x3f3f3f3f3f3f3f3f) &^ (word + 0x2525252525252525) & 0x8080808080808080) >> 2))
}

// ToUpper returns a copy with every [a-z] byte uppercased.
func (t TinyStr4) ToUpper() TinyStr4 {
	word := uint32(t)
	return TinyStr4(word &^ (((word + 0x1f1f1f1f) &^ (word + 0x05050505) & 0x80808080) >> 2))
}

// ToLower returns a copy with every [A-Z] byte lowercased.
func (t TinyStr4) ToLower() TinyStr4 {
	word := uint32(t)
	return TinyStr4(word | (((word + 0x3f3f3f3f) &^ (word + 0x25252525) & 0x80808080) >> 2))
}

// ToTitle uppercases the first byte and lowercases the rest. The bias of the
// low-order byte differs from the others, so the single mask detects [a-z] in
// the first position and [A-Z] everywhere else; the final clear applies only
// to the first byte.
func (t TinyStr4) ToTitle() TinyStr4 {
	word := uint32(t)
	mask := ((word + 0x3f3f3f1f) &^ (word + 0x25252505) & 0x80808080) >> 2
	return TinyStr4((word | mask) &^ (0x20 & mask))
}

// IsAlphabetic reports whether all characters are ASCII letters.
func (t TinyStr8) IsAlphabetic() bool {
	word := uint64(t)
	mask := (word + 0x7f7f7f7f7f7f7f7f) & 0x8080808080808080 // used (nonzero) bytes only
	lower := word | 0x2020202020202020
	return (^(lower+0x1f1f1f1f1f1f1f1f)|(lower+0x0505050505050505))&mask == 0
}

// IsNumeric reports whether all characters are ASCII digits.
func (t TinyStr8) IsNumeric() bool {
	word := uint64(t)
	mask := (word + 0x7f7f7f7f7f7f7f7f) & 0x8080808080808080
	return (^(word+0x5050505050505050)|(word+0x4646464646464646))&mask == 0
}

// IsAlphanumeric reports whether all characters are ASCII letters or digits.
func (t TinyStr8) IsAlphanumeric() bool {
	word := uint64(t)
	mask := (word + 0x7f7f7f7f7f7f7f7f) & 0x8080808080808080
	lower := word | 0x2020202020202020
	notAlpha := ^(lower + 0x1f1f1f1f1f1f1f1f) | (lower + 0x0505050505050505)
	notDigit := ^(word + 0x5050505050505050) | (word + 0x4646464646464646)
	return notAlpha&notDigit&mask == 0
}

// IsAlphabetic reports whether all characters are ASCII letters.
func (t TinyStr4) IsAlphabetic() bool {
	word := uint32(t)
	mask := (word + 0x7f7f7f7f) & 0x80808080
	lower := word | 0x20202020
	return (^(lower+0x1f1f1f1f)|(lower+0x05050505))&mask == 0
}

// IsNumeric reports whether all characters are ASCII digits.
func (t TinyStr4) IsNumeric() bool {
	word := uint32(t)
	mask := (word + 0x7f7f7f7f) & 0x80808080
	return (^(word+0x50505050)|(word+0x46464646))&mask == 0
}

// IsAlphanumeric reports whether all characters are ASCII letters or digits.
func (t TinyStr4) IsAlphanumeric() bool {
	word := uint32(t)
	mask := (word + 0x7f7f7f7f) & 0x80808080
	lower := word | 0x20202020
	notAlpha := ^(lower + 0x1f1f1f1f) | (lower + 0x05050505)
	notDigit := ^(word + 0x50505050) | (word + 0x46464646)
	return notAlpha&notDigit&mask == 0
}

// Less reports byte-lexicographic order. Reversing the bytes moves the first
// character into the most significant position, so numeric comparison on the
// reversed words matches string comparison.
func (t TinyStr8) Less(other TinyStr8) bool {
	return bits.ReverseBytes64(uint64(t)) < bits.ReverseBytes64(uint64(other))
}

// Less reports byte-lexicographic order.
func (t TinyStr4) Less(other TinyStr4) bool {
	return bits.ReverseBytes32(uint32(t)) < bits.ReverseBytes32(uint32(other))
}
