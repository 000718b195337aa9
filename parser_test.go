package langid

import (
	"testing"

	"github.com/maxbolgarin/errm"
)

func TestParseGrammar(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"en-US", "en-US"},
		{"en_US", "en-US"},
		{"EN-us", "en-US"},
		{"zh-Hans-CN", "zh-Hans-CN"},
		{"zh_hans_cn", "zh-Hans-CN"},
		{"ca-ES-valencia", "ca-ES-valencia"},
		{"eN_latn_Us-Valencia", "en-Latn-US-valencia"},
		{"und", "und"},
		{"und-US", "und-US"},
		{"und-Latn", "und-Latn"},
		{"es-419", "es-419"},
		{"sl-nedis", "sl-nedis"},
		{"sl-IT-nedis", "sl-IT-nedis"},
		{"de-CH-1996", "de-CH-1996"},
		// variants are sorted and deduplicated
		{"en-nedis-fonipa", "en-fonipa-nedis"},
		{"en-fonipa-fonipa", "en-fonipa"},
		{"en-Latn-US-1996", "en-Latn-US-1996"},
		// once the script slot is filled, a second 4-alpha token falls
		// through to the variant slot
		{"en-Latn-Latn", "en-Latn-latn"},
	}
	for _, c := range cases {
		id, err := parseLanguageIdentifier(c.in)
		if err != nil {
			t.Fatalf("parse(%q) unexpected error: %v", c.in, err)
		}
		if got := id.String(); got != c.want {
			t.Fatalf("parse(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseExtensionTail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"en-x-private", "en-x-private"},
		{"en-US-x-twain", "en-US-x-twain"},
		{"de-u-co-phonebk", "de-u-co-phonebk"},
		{"zh-Hant-u-nu-hanidec", "zh-Hant-u-nu-hanidec"},
	}
	for _, c := range cases {
		id, err := parseLanguageIdentifier(c.in)
		if err != nil {
			t.Fatalf("parse(%q) unexpected error: %v", c.in, err)
		}
		if got := id.String(); got != c.want {
			t.Fatalf("parse(%q) = %q, want %q", c.in, got, c.want)
		}
		if id.Extension() == "" {
			t.Fatalf("parse(%q): extension tail not preserved", c.in)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in  string
		err error
	}{
		{"", ErrInvalidLanguage},
		{"a", ErrInvalidLanguage},
		{"toolonglanguagetag", ErrInvalidLanguage},
		{"1984", ErrInvalidLanguage},
		{"en--US", ErrExtraInput},
		{"en-US-", ErrExtraInput},
		{"en-US-US", ErrExtraInput},       // second region slot
		{"en-valencia-US", ErrExtraInput}, // region after variants started
		{"en-x", ErrInvalidExtension},     // singleton without tail
		{"en-!!", ErrExtraInput},
	}
	for _, c := range cases {
		_, err := parseLanguageIdentifier(c.in)
		if err == nil {
			t.Fatalf("parse(%q) expected error", c.in)
		}
		if !errm.Is(err, c.err) {
			t.Fatalf("parse(%q) = %v, want %v", c.in, err, c.err)
		}
	}
}

func TestSplitTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"en", []string{"en"}},
		{"en-US", []string{"en", "US"}},
		{"en_US", []string{"en", "US"}},
		{"en-Latn_US", []string{"en", "Latn", "US"}},
		{"en--US", []string{"en", "", "US"}},
		{"-en", []string{"", "en"}},
	}
	for _, c := range cases {
		got := splitTags(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("splitTags(%q) = %v, want %v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("splitTags(%q) = %v, want %v", c.in, got, c.want)
			}
		}
	}
}
