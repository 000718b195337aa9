package langid

import "github.com/maxbolgarin/errm"

// undValue is the packed form of "und", the designated "unspecified language"
// code. It is never stored: an unspecified language is the zero value.
const undValue = TinyStr8(0x646e75)

// parseLanguageSubtag validates and lowercases a language subtag.
// A zero result means the language is unspecified ("und").
func parseLanguageSubtag(subtag string) (TinyStr8, error) {
	if len(subtag) < 2 || len(subtag) > 8 || len(subtag) == 4 {
		// Length 4 is reserved: it collides with the script-only shape.
		return 0, errm.Wrap(ErrInvalidLanguage, "language", "subtag", subtag)
	}
	s, err := ParseTinyStr8(subtag)
	if err != nil {
		return 0, errm.Wrap(ErrInvalidLanguage, "language", "subtag", subtag)
	}
	if !s.IsAlphabetic() {
		return 0, errm.Wrap(ErrInvalidLanguage, "language", "subtag", subtag)
	}
	s = s.ToLower()
	if s == undValue {
		return 0, nil
	}
	return s, nil
}

// parseScriptSubtag validates a script subtag and normalizes it to title case.
func parseScriptSubtag(subtag string) (TinyStr4, error) {
	if len(subtag) != 4 {
		return 0, errm.Wrap(ErrInvalidSubtag, "script", "subtag", subtag)
	}
	s, err := ParseTinyStr4(subtag)
	if err != nil {
		return 0, errm.Wrap(ErrInvalidSubtag, "script", "subtag", subtag)
	}
	if !s.IsAlphabetic() {
		return 0, errm.Wrap(ErrInvalidSubtag, "script", "subtag", subtag)
	}
	return s.ToTitle(), nil
}

// parseRegionSubtag validates a region subtag: 2 letters (uppercased) or
// 3 digits (already canonical).
func parseRegionSubtag(subtag string) (TinyStr4, error) {
	switch len(subtag) {
	case 2:
		s, err := ParseTinyStr4(subtag)
		if err != nil || !s.IsAlphabetic() {
			return 0, errm.Wrap(ErrInvalidSubtag, "region", "subtag", subtag)
		}
		return s.ToUpper(), nil
	case 3:
		s, err := ParseTinyStr4(subtag)
		if err != nil || !s.IsNumeric() {
			return 0, errm.Wrap(ErrInvalidSubtag, "region", "subtag", subtag)
		}
		return s, nil
	default:
		return 0, errm.Wrap(ErrInvalidSubtag, "region", "subtag", subtag)
	}
}

// parseVariantSubtag validates a variant subtag and lowercases it.
// Registered variants are 5-8 alphanumerics, or exactly 4 characters starting
// with a digit; a 4-length subtag is rejected only when its first byte is not
// a digit and its tail contains a non-alphanumeric character.
func parseVariantSubtag(subtag string) (TinyStr8, error) {
	if len(subtag) < 4 || len(subtag) > 8 {
		return 0, errm.Wrap(ErrInvalidSubtag, "variant", "subtag", subtag)
	}
	s, err := ParseTinyStr8(subtag)
	if err != nil {
		return 0, errm.Wrap(ErrInvalidSubtag, "variant", "subtag", subtag)
	}
	if len(subtag) >= 5 && !s.IsAlphanumeric() {
		return 0, errm.Wrap(ErrInvalidSubtag, "variant", "subtag", subtag)
	}
	if len(subtag) == 4 && !isASCIIDigit(subtag[0]) {
		tail, err := ParseTinyStr8(subtag[1:])
		if err != nil || !tail.IsAlphanumeric() {
			return 0, errm.Wrap(ErrInvalidSubtag, "variant", "subtag", subtag)
		}
	}
	return s.ToLower(), nil
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isASCIIAlphanumeric(c byte) bool {
	return isASCIIDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isScriptShaped reports whether the token can occupy the script slot.
func isScriptShaped(token string) bool {
	if len(token) != 4 {
		return false
	}
	s, err := ParseTinyStr4(token)
	return err == nil && s.IsAlphabetic()
}

// isRegionShaped reports whether the token can occupy the region slot.
func isRegionShaped(token string) bool {
	s, err := ParseTinyStr4(token)
	if err != nil {
		return false
	}
	switch len(token) {
	case 2:
		return s.IsAlphabetic()
	case 3:
		return s.IsNumeric()
	}
	return false
}
