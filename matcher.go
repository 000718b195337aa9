package langid

// BestMatch picks the available identifier that best satisfies the requested
// ones, in request priority order. For each requested identifier it tries, in
// order: exact structural equality, range matching with the request's absent
// fields as wildcards, and finally wildcard matching after both sides are
// maximized with likely subtags, so "zh-TW" still finds "zh-Hant".
func BestMatch(requested, available []LanguageIdentifier) (LanguageIdentifier, bool) {
	for _, req := range requested {
		for _, av := range available {
			if req.Equal(av) {
				return av, true
			}
		}
		for _, av := range available {
			if req.Matches(av, true, false) {
				return av, true
			}
		}
		maxReq := req
		maxReq.AddLikelySubtags()
		for _, av := range available {
			maxAv := av
			maxAv.AddLikelySubtags()
			if maxReq.Matches(maxAv, true, true) {
				return av, true
			}
		}
	}
	return LanguageIdentifier{}, false
}

// Filter returns every available identifier matched by any requested one,
// in availability order and without duplicates. Matching rules are the same
// as in BestMatch.
func Filter(requested, available []LanguageIdentifier) []LanguageIdentifier {
	var out []LanguageIdentifier
	for _, av := range available {
		if matchesAny(av, requested) {
			out = append(out, av)
		}
	}
	return out
}

func matchesAny(av LanguageIdentifier, requested []LanguageIdentifier) bool {
	for _, req := range requested {
		if req.Matches(av, true, false) {
			return true
		}
		maxReq, maxAv := req, av
		maxReq.AddLikelySubtags()
		maxAv.AddLikelySubtags()
		if maxReq.Matches(maxAv, true, true) {
			return true
		}
	}
	return false
}
