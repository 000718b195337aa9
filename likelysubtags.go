package langid

// CLDRVersion is the release of the CLDR likely-subtags data compiled into
// likelysubtags_data.go.
const CLDRVersion = cldrVersion

// likelyTriple is one resolved (language, script, region) combination copied
// out of the data table.
type likelyTriple struct {
	language TinyStr8
	script   TinyStr4
	region   TinyStr4
}

// AddLikelySubtags extends the identifier with the most likely values of its
// missing subtags based on the CLDR likely-subtags table.
// It reports whether the identifier was modified:
//
//	id := langid.MustParse("en-US")
//	id.AddLikelySubtags() // true, id is now "en-Latn-US"
//
// Variants and extension tails are not consulted and not changed.
func (id *LanguageIdentifier) AddLikelySubtags() bool {
	resolved, ok := addLikelySubtags(id.language, id.script, id.region)
	if !ok {
		return false
	}
	id.language = resolved.language
	id.script = resolved.script
	id.region = resolved.region
	return true
}

// RemoveLikelySubtags removes the subtags that AddLikelySubtags would
// re-derive, producing the most reduced equivalent identifier.
// It reports whether the identifier was modified:
//
//	id := langid.MustParse("en-Latn-US")
//	id.RemoveLikelySubtags() // true, id is now "en"
func (id *LanguageIdentifier) RemoveLikelySubtags() bool {
	resolved, ok := removeLikelySubtags(id.language, id.script, id.region)
	if !ok {
		return false
	}
	id.language = resolved.language
	id.script = resolved.script
	id.region = resolved.region
	return true
}

// addLikelySubtags looks up the most specific matching key shape and merges
// the result with the fields already present; present fields always win.
// Returns false when the triple is already fully specified or no table entry
// matches.
func addLikelySubtags(language TinyStr8, script, region TinyStr4) (likelyTriple, bool) {
	if language != 0 && script != 0 && region != 0 {
		return likelyTriple{}, false
	}

	entry, ok := lookupLikelyEntry(language, script, region)
	if !ok {
		return likelyTriple{}, false
	}

	resolved, err := Parse(entry)
	if err != nil {
		return likelyTriple{}, false
	}
	if language == 0 {
		language = resolved.language
	}
	if script == 0 {
		script = resolved.script
	}
	if region == 0 {
		region = resolved.region
	}
	return likelyTriple{language: language, script: script, region: region}, true
}

func lookupLikelyEntry(language TinyStr8, script, region TinyStr4) (string, bool) {
	if language != 0 {
		if region != 0 {
			if entry, ok := likelyLangRegion[language.String()+"-"+region.String()]; ok {
				return entry, true
			}
		}
		if script != 0 {
			if entry, ok := likelyLangScript[language.String()+"-"+script.String()]; ok {
				return entry, true
			}
		}
		entry, ok := likelyLang[language.String()]
		return entry, ok
	}
	if script != 0 {
		if region != 0 {
			if entry, ok := likelyScriptRegion[script.String()+"-"+region.String()]; ok {
				return entry, true
			}
		}
		if entry, ok := likelyScript[script.String()]; ok {
			return entry, true
		}
	}
	if region != 0 {
		if entry, ok := likelyRegion[region.String()]; ok {
			return entry, true
		}
	}
	if language == 0 && script == 0 && region == 0 {
		return likelyRoot, true
	}
	return "", false
}

// removeLikelySubtags maximizes the triple, then probes reduced candidates in
// order (language, language-region, language-script) and returns the first
// whose expansion reproduces the maximum. Returns false when nothing can be
// reduced.
func removeLikelySubtags(language TinyStr8, script, region TinyStr4) (likelyTriple, bool) {
	max, ok := addLikelySubtags(language, script, region)
	if !ok {
		if language == 0 || script == 0 || region == 0 {
			return likelyTriple{}, false
		}
		max = likelyTriple{language: language, script: script, region: region}
	}

	candidates := []likelyTriple{
		{language: max.language},
		{language: max.language, region: max.region},
		{language: max.language, script: max.script},
	}
	for _, candidate := range candidates {
		expanded, ok := addLikelySubtags(candidate.language, candidate.script, candidate.region)
		if ok && expanded == max {
			if candidate.language == language && candidate.script == script && candidate.region == region {
				return likelyTriple{}, false
			}
			return candidate, true
		}
	}
	if max.language == language && max.script == script && max.region == region {
		return likelyTriple{}, false
	}
	return max, true
}
