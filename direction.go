package langid

// Direction is the character direction implied by an identifier's language.
type Direction int

const (
	// DirectionLTR is left-to-right, used by languages such as English,
	// Spanish, German or Russian.
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left, used by languages such as Arabic,
	// Hebrew, Persian or Urdu.
	DirectionRTL
)

func (d Direction) String() string {
	if d == DirectionRTL {
		return "RTL"
	}
	return "LTR"
}

// rtlLanguages is the set of language codes written in right-to-left scripts,
// derived from CLDR script metadata.
var rtlLanguages = map[string]struct{}{
	"ae":  {},
	"ar":  {},
	"arc": {},
	"bcc": {},
	"bqi": {},
	"ckb": {},
	"dv":  {},
	"fa":  {},
	"glk": {},
	"he":  {},
	"ks":  {},
	"mzn": {},
	"nqo": {},
	"pnb": {},
	"ps":  {},
	"sd":  {},
	"ug":  {},
	"ur":  {},
	"yi":  {},
}

// Direction returns the character direction of the identifier's language.
// Unspecified languages are treated as left-to-right.
func (id LanguageIdentifier) Direction() Direction {
	if id.language == 0 {
		return DirectionLTR
	}
	if _, ok := rtlLanguages[id.language.String()]; ok {
		return DirectionRTL
	}
	return DirectionLTR
}
