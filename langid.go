// Package langid parses, validates, normalizes, compares and serializes
// Unicode language identifiers (language-script-region-variants, e.g. "en-US",
// "zh-Hans-CN", "ca-ES-valencia").
//
// Identifiers are stored in a compact allocation-free form: every subtag is
// packed into a single machine word (TinyStr4/TinyStr8), so parsing a tag once
// and comparing or re-serializing it later costs no heap traffic beyond the
// variants slice.
//
// Parsing checks syntactic well-formedness only. Subtag registry membership
// (whether "xx" is a real ISO language) is never verified.
package langid

import (
	"strings"

	"github.com/maxbolgarin/errm"
)

// und is what an unspecified language serializes to.
const und = "und"

// LanguageIdentifier is a parsed Unicode language identifier.
//
// The zero value is the root identifier "und". Each field, when present, is
// already validated and case-normalized: language lowercase, script title
// case, region uppercase, variants lowercase, sorted and deduplicated. Any
// extension tail ("-x-..." and friends) is preserved verbatim and never
// interpreted.
//
// Values are cheap to copy and safe to use from multiple goroutines: nothing
// is shared between instances except the read-only variants backing array,
// which no method mutates in place.
type LanguageIdentifier struct {
	language  TinyStr8
	script    TinyStr4
	region    TinyStr4
	variants  []TinyStr8
	extension string
}

// Parse parses an identifier from text. Subtags may be separated by '-' or
// '_' and are case-insensitive:
//
//	id, err := langid.Parse("eN_latn_Us-Valencia")
//	// id.String() == "en-Latn-US-valencia"
//
// Parse never panics on malformed input.
func Parse(input string) (LanguageIdentifier, error) {
	return parseLanguageIdentifier(input)
}

// MustParse is like Parse but panics on error. It simplifies initialization
// of package-level identifiers from literals known to be valid.
func MustParse(input string) LanguageIdentifier {
	id, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return id
}

// MustParseAll parses a list of literals, panicking on the first error.
func MustParseAll(inputs ...string) []LanguageIdentifier {
	ids := make([]LanguageIdentifier, 0, len(inputs))
	for _, input := range inputs {
		ids = append(ids, MustParse(input))
	}
	return ids
}

// FromParts builds an identifier from already-split subtags. Empty strings
// mean the subtag is absent. The result equals parsing the joined form:
//
//	id, err := langid.FromParts("ca", "", "ES", []string{"valencia"})
//	// id.String() == "ca-ES-valencia"
func FromParts(language, script, region string, variants []string) (LanguageIdentifier, error) {
	var id LanguageIdentifier
	var err error

	if language != "" {
		if id.language, err = parseLanguageSubtag(language); err != nil {
			return LanguageIdentifier{}, err
		}
	}
	if script != "" {
		if id.script, err = parseScriptSubtag(script); err != nil {
			return LanguageIdentifier{}, err
		}
	}
	if region != "" {
		if id.region, err = parseRegionSubtag(region); err != nil {
			return LanguageIdentifier{}, err
		}
	}
	if len(variants) > 0 {
		parsed := make([]TinyStr8, 0, len(variants))
		for _, variant := range variants {
			v, err := parseVariantSubtag(variant)
			if err != nil {
				return LanguageIdentifier{}, err
			}
			parsed = append(parsed, v)
		}
		id.variants = normalizeVariants(parsed)
	}
	return id, nil
}

// Canonicalize parses input and returns its canonical serialization.
// Canonicalizing an already-canonical string reproduces it exactly.
func Canonicalize(input string) (string, error) {
	id, err := Parse(input)
	if err != nil {
		return "", errm.Wrap(err, "canonicalize")
	}
	return id.String(), nil
}

// Language returns the language subtag, or "und" when unspecified.
func (id LanguageIdentifier) Language() string {
	if id.language == 0 {
		return und
	}
	return id.language.String()
}

// Script returns the script subtag, or "" when absent.
func (id LanguageIdentifier) Script() string {
	return id.script.String()
}

// Region returns the region subtag, or "" when absent.
func (id LanguageIdentifier) Region() string {
	return id.region.String()
}

// Variants returns the variant subtags in canonical (sorted) order.
func (id LanguageIdentifier) Variants() []string {
	if len(id.variants) == 0 {
		return nil
	}
	out := make([]string, 0, len(id.variants))
	for _, v := range id.variants {
		out = append(out, v.String())
	}
	return out
}

// Extension returns the opaque extension tail, or "" when absent.
func (id LanguageIdentifier) Extension() string {
	return id.extension
}

// SetLanguage replaces the language subtag. An empty string or "und" clears
// it. On failure the identifier is left unchanged.
func (id *LanguageIdentifier) SetLanguage(language string) error {
	if language == "" {
		id.language = 0
		return nil
	}
	parsed, err := parseLanguageSubtag(language)
	if err != nil {
		return err
	}
	id.language = parsed
	return nil
}

// SetScript replaces the script subtag. An empty string clears it.
// On failure the identifier is left unchanged.
func (id *LanguageIdentifier) SetScript(script string) error {
	if script == "" {
		id.script = 0
		return nil
	}
	parsed, err := parseScriptSubtag(script)
	if err != nil {
		return err
	}
	id.script = parsed
	return nil
}

// SetRegion replaces the region subtag. An empty string clears it.
// On failure the identifier is left unchanged.
func (id *LanguageIdentifier) SetRegion(region string) error {
	if region == "" {
		id.region = 0
		return nil
	}
	parsed, err := parseRegionSubtag(region)
	if err != nil {
		return err
	}
	id.region = parsed
	return nil
}

// SetVariants replaces all variant subtags, sorting and deduplicating them.
// On failure the identifier is left unchanged.
func (id *LanguageIdentifier) SetVariants(variants []string) error {
	if len(variants) == 0 {
		id.variants = nil
		return nil
	}
	parsed := make([]TinyStr8, 0, len(variants))
	for _, variant := range variants {
		v, err := parseVariantSubtag(variant)
		if err != nil {
			return err
		}
		parsed = append(parsed, v)
	}
	id.variants = normalizeVariants(parsed)
	return nil
}

// Matches compares two identifiers field by field, optionally treating absent
// fields of either side as wildcards.
//
// With selfAsRange the receiver's absent fields match anything, so "en"
// behaves as "en-*-*-*" and matches "en-US". With both flags false the
// comparison is exact. An empty variant set is the wildcard case for its
// side; otherwise variant sets must be equal as sorted sequences. Extension
// tails are ignored.
func (id LanguageIdentifier) Matches(other LanguageIdentifier, selfAsRange, otherAsRange bool) bool {
	return subtagMatches(uint64(id.language), uint64(other.language), selfAsRange, otherAsRange) &&
		subtagMatches(uint64(id.script), uint64(other.script), selfAsRange, otherAsRange) &&
		subtagMatches(uint64(id.region), uint64(other.region), selfAsRange, otherAsRange) &&
		variantsMatch(id.variants, other.variants, selfAsRange, otherAsRange)
}

func subtagMatches(a, b uint64, aAsRange, bAsRange bool) bool {
	return (aAsRange && a == 0) || (bAsRange && b == 0) || a == b
}

func variantsMatch(a, b []TinyStr8, aAsRange, bAsRange bool) bool {
	if (aAsRange && len(a) == 0) || (bAsRange && len(b) == 0) {
		return true
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Equal reports whether two identifiers are structurally equal in every
// field, including the extension tail.
func (id LanguageIdentifier) Equal(other LanguageIdentifier) bool {
	return id.language == other.language &&
		id.script == other.script &&
		id.region == other.region &&
		id.extension == other.extension &&
		variantsEqual(id.variants, other.variants)
}

func variantsEqual(a, b []TinyStr8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String returns the canonical serialization: language (or "und"), script,
// region and variants in sorted order, joined with '-'. There is exactly one
// output for any given field combination.
func (id LanguageIdentifier) String() string {
	var b strings.Builder
	b.WriteString(id.Language())
	if id.script != 0 {
		b.WriteByte('-')
		b.WriteString(id.script.String())
	}
	if id.region != 0 {
		b.WriteByte('-')
		b.WriteString(id.region.String())
	}
	for _, v := range id.variants {
		b.WriteByte('-')
		b.WriteString(v.String())
	}
	if id.extension != "" {
		b.WriteByte('-')
		b.WriteString(id.extension)
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (id LanguageIdentifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *LanguageIdentifier) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// RawParts is the raw packed representation of an identifier. Zero means the
// subtag is absent; nonzero values decode via the TinyStr packing rule. The
// encoding is a stable contract: anything produced by RawParts round-trips
// through FromRawPartsUnchecked.
type RawParts struct {
	Language  uint64
	Script    uint32
	Region    uint32
	Variants  []uint64
	Extension string
}

// RawParts exposes the packed subtag values for storage or embedding.
func (id LanguageIdentifier) RawParts() RawParts {
	raw := RawParts{
		Language:  uint64(id.language),
		Script:    uint32(id.script),
		Region:    uint32(id.region),
		Extension: id.extension,
	}
	if len(id.variants) > 0 {
		raw.Variants = make([]uint64, 0, len(id.variants))
		for _, v := range id.variants {
			raw.Variants = append(raw.Variants, uint64(v))
		}
	}
	return raw
}

// FromRawPartsUnchecked rebuilds an identifier from packed subtag values
// without validation. The caller must guarantee the parts were produced by
// RawParts on a valid identifier; this path must never see untrusted input.
func FromRawPartsUnchecked(raw RawParts) LanguageIdentifier {
	id := LanguageIdentifier{
		language:  TinyStr8Unchecked(raw.Language),
		script:    TinyStr4Unchecked(raw.Script),
		region:    TinyStr4Unchecked(raw.Region),
		extension: raw.Extension,
	}
	if len(raw.Variants) > 0 {
		id.variants = make([]TinyStr8, 0, len(raw.Variants))
		for _, v := range raw.Variants {
			id.variants = append(id.variants, TinyStr8Unchecked(v))
		}
	}
	return id
}
