package langid

import (
	"sort"
	"strings"

	"github.com/maxbolgarin/errm"
)

// Grammar positions. Each token is assigned to the first slot whose shape it
// satisfies, scanned left to right; there is no backtracking because the
// script, region and variant shapes are mutually exclusive by length and
// character class.
const (
	posScript = iota
	posRegion
	posVariant
)

// splitTags splits an identifier on '-' and '_'. Both separators are
// accepted on input; serialization always uses '-'. Empty tokens are kept so
// that doubled separators fail validation instead of being swallowed.
func splitTags(input string) []string {
	tokens := make([]string, 0, 4)
	start := 0
	for i := 0; i < len(input); i++ {
		if input[i] == '-' || input[i] == '_' {
			tokens = append(tokens, input[start:i])
			start = i + 1
		}
	}
	return append(tokens, input[start:])
}

// parseLanguageIdentifier parses a full identifier: language, then optional
// script, region and variants, then an optional opaque extension tail
// introduced by a single-character subtag.
func parseLanguageIdentifier(input string) (LanguageIdentifier, error) {
	var id LanguageIdentifier
	if input == "" {
		return id, errm.Wrap(ErrInvalidLanguage, "parse", "input", input)
	}

	tokens := splitTags(input)

	language, err := parseLanguageSubtag(tokens[0])
	if err != nil {
		return id, err
	}
	id.language = language

	var variants []TinyStr8
	pos := posScript
	for i := 1; i < len(tokens); i++ {
		token := tokens[i]

		if len(token) == 1 && isASCIIAlphanumeric(token[0]) {
			tail, err := parseExtensionTail(tokens[i:])
			if err != nil {
				return LanguageIdentifier{}, err
			}
			id.extension = tail
			break
		}

		if pos == posScript {
			pos = posRegion
			if isScriptShaped(token) {
				script, err := parseScriptSubtag(token)
				if err != nil {
					return LanguageIdentifier{}, err
				}
				id.script = script
				continue
			}
		}
		if pos == posRegion {
			pos = posVariant
			if isRegionShaped(token) {
				region, err := parseRegionSubtag(token)
				if err != nil {
					return LanguageIdentifier{}, err
				}
				id.region = region
				continue
			}
		}

		variant, err := parseVariantSubtag(token)
		if err != nil {
			return LanguageIdentifier{}, errm.Wrap(ErrExtraInput, "parse", "subtag", token)
		}
		variants = append(variants, variant)
	}

	id.variants = normalizeVariants(variants)
	return id, nil
}

// parseExtensionTail validates the shape of an extension tail (a singleton
// followed by at least one subtag) and rejoins it with '-'. The content is
// preserved verbatim for round-tripping, never interpreted.
func parseExtensionTail(tokens []string) (string, error) {
	if len(tokens) < 2 {
		return "", errm.Wrap(ErrInvalidExtension, "parse", "singleton", tokens[0])
	}
	for _, token := range tokens[1:] {
		if token == "" || len(token) > 8 {
			return "", errm.Wrap(ErrInvalidExtension, "parse", "subtag", token)
		}
	}
	return strings.Join(tokens, "-"), nil
}

// normalizeVariants sorts variants by byte value and removes duplicates,
// producing the canonical order used by serialization and comparison.
func normalizeVariants(variants []TinyStr8) []TinyStr8 {
	if len(variants) == 0 {
		return nil
	}
	sort.Slice(variants, func(i, j int) bool {
		return variants[i].Less(variants[j])
	})
	deduped := variants[:1]
	for _, v := range variants[1:] {
		if v != deduped[len(deduped)-1] {
			deduped = append(deduped, v)
		}
	}
	return deduped
}
