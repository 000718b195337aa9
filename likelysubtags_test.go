package langid_test

import (
	"testing"

	"github.com/maxbolgarin/langid"
	"github.com/stretchr/testify/assert"
)

func TestCLDRVersion(t *testing.T) {
	assert.Equal(t, "35.1", langid.CLDRVersion)
}

func TestAddLikelySubtags(t *testing.T) {
	cases := []struct {
		in       string
		want     string
		modified bool
	}{
		// language only
		{"en", "en-Latn-US", true},
		{"es", "es-Latn-ES", true},
		{"it", "it-Latn-IT", true},
		{"pl", "pl-Latn-PL", true},
		{"sr", "sr-Cyrl-RS", true},
		{"uk", "uk-Cyrl-UA", true},
		{"zh", "zh-Hans-CN", true},
		{"yue", "yue-Hant-HK", true},
		// language + region: region is kept, script derived
		{"en-US", "en-Latn-US", true},
		{"en-GB", "en-Latn-GB", true},
		{"pl-FR", "pl-Latn-FR", true},
		{"de-CH", "de-Latn-CH", true},
		// language + region pairs with their own entry
		{"zh-TW", "zh-Hant-TW", true},
		{"zh-HK", "zh-Hant-HK", true},
		{"sr-ME", "sr-Latn-ME", true},
		{"kk-CN", "kk-Arab-CN", true},
		// language + script pairs with their own entry
		{"zh-Hant", "zh-Hant-TW", true},
		{"yue-Hans", "yue-Hans-CN", true},
		{"sr-Latn", "sr-Latn-RS", true},
		{"ug-Cyrl", "ug-Cyrl-KZ", true},
		// script or region only
		{"und-Latn", "en-Latn-US", true},
		{"und-Cyrl", "ru-Cyrl-RU", true},
		{"und-Arab", "ar-Arab-EG", true},
		{"und-PL", "pl-Latn-PL", true},
		{"und-DE", "de-Latn-DE", true},
		{"und-Latn-AM", "ku-Latn-AM", true},
		{"und-Thai-CN", "lcp-Thai-CN", true},
		// present fields always win over the table entry
		{"und-Cyrl-UK", "ru-Cyrl-UK", true},
		// fully unspecified resolves to the global default
		{"und", "en-Latn-US", true},
		// no region in the table entry leaves the region absent
		{"tuq", "tuq-Latn", true},
		// fully specified identifiers are never modified
		{"en-Latn-US", "en-Latn-US", false},
		{"zh-Hant-TW", "zh-Hant-TW", false},
		// unknown subtags with no table entry are left alone
		{"qaa", "qaa", false},
	}
	for _, c := range cases {
		id := langid.MustParse(c.in)
		assert.Equal(t, c.modified, id.AddLikelySubtags(), "add(%q)", c.in)
		assert.Equal(t, c.want, id.String(), "add(%q)", c.in)
	}
}

func TestRemoveLikelySubtags(t *testing.T) {
	cases := []struct {
		in       string
		want     string
		modified bool
	}{
		{"en-Latn-US", "en", true},
		{"en-US", "en", true},
		{"de-Latn-DE", "de", true},
		{"zh-Hans-CN", "zh", true},
		// the region form is preferred over the script form
		{"zh-Hant", "zh-TW", true},
		{"zh-Hant-TW", "zh-TW", true},
		// the script form survives when no region candidate reproduces it
		{"sr-Latn-RS", "sr-Latn", true},
		// already minimal
		{"en", "en", false},
		{"zh-TW", "zh-TW", false},
		{"und", "en", true},
	}
	for _, c := range cases {
		id := langid.MustParse(c.in)
		assert.Equal(t, c.modified, id.RemoveLikelySubtags(), "remove(%q)", c.in)
		assert.Equal(t, c.want, id.String(), "remove(%q)", c.in)
	}
}

func TestLikelySubtagsKeepVariants(t *testing.T) {
	id := langid.MustParse("sl-nedis")
	assert.True(t, id.AddLikelySubtags())
	assert.Equal(t, "sl-Latn-SI-nedis", id.String())

	assert.True(t, id.RemoveLikelySubtags())
	assert.Equal(t, "sl-nedis", id.String())

	id = langid.MustParse("en-US-x-twain")
	assert.True(t, id.AddLikelySubtags())
	assert.Equal(t, "en-Latn-US-x-twain", id.String())
}
