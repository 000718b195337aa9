package langid

import "github.com/maxbolgarin/errm"

var (
	// ErrInvalidSize is returned when a subtag length is outside the allowed range.
	ErrInvalidSize = errm.New("invalid size")
	// ErrNonASCII is returned when a byte outside 7-bit ASCII is encountered.
	ErrNonASCII = errm.New("non ascii byte")
	// ErrInvalidNull is returned when an embedded NUL byte is encountered.
	ErrInvalidNull = errm.New("embedded null byte")

	// ErrInvalidLanguage is returned when a language subtag violates its shape.
	ErrInvalidLanguage = errm.New("invalid language subtag")
	// ErrInvalidSubtag is returned when a script, region or variant subtag violates its shape.
	ErrInvalidSubtag = errm.New("invalid subtag")

	// ErrInvalidExtension is returned when an extension tail is malformed.
	ErrInvalidExtension = errm.New("invalid extension tail")
	// ErrExtraInput is returned when the identifier grammar is exhausted but tokens remain.
	ErrExtraInput = errm.New("extra input after identifier")
)
