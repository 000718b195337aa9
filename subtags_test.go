package langid

import (
	"testing"

	"github.com/maxbolgarin/errm"
)

func TestParseLanguageSubtag(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"en", "en", true},
		{"EN", "en", true},
		{"fil", "fil", true},
		{"longlang", "longlang", true},
		{"und", "", true},
		{"UND", "", true},
		{"a", "", false},
		{"", "", false},
		{"lang", "", false}, // length 4 is reserved for scripts
		{"toolonglang", "", false},
		{"e2", "", false},
		{"en-", "", false},
	}
	for _, c := range cases {
		got, err := parseLanguageSubtag(c.in)
		if !c.ok {
			if err == nil {
				t.Fatalf("parseLanguageSubtag(%q) expected error", c.in)
			}
			if !errm.Is(err, ErrInvalidLanguage) {
				t.Fatalf("parseLanguageSubtag(%q) = %v, want ErrInvalidLanguage", c.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseLanguageSubtag(%q) unexpected error: %v", c.in, err)
		}
		if got.String() != c.want {
			t.Fatalf("parseLanguageSubtag(%q) = %q, want %q", c.in, got.String(), c.want)
		}
	}
}

func TestParseScriptSubtag(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"latn", "Latn", true},
		{"LATN", "Latn", true},
		{"hAnS", "Hans", true},
		{"lat", "", false},
		{"latin", "", false},
		{"la1n", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, err := parseScriptSubtag(c.in)
		if !c.ok {
			if err == nil {
				t.Fatalf("parseScriptSubtag(%q) expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseScriptSubtag(%q) unexpected error: %v", c.in, err)
		}
		if got.String() != c.want {
			t.Fatalf("parseScriptSubtag(%q) = %q, want %q", c.in, got.String(), c.want)
		}
	}
}

func TestParseRegionSubtag(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"us", "US", true},
		{"GB", "GB", true},
		{"419", "419", true},
		{"001", "001", true},
		{"1", "", false},
		{"12", "", false},
		{"USA", "", false},
		{"1234", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, err := parseRegionSubtag(c.in)
		if !c.ok {
			if err == nil {
				t.Fatalf("parseRegionSubtag(%q) expected error", c.in)
			}
			if !errm.Is(err, ErrInvalidSubtag) {
				t.Fatalf("parseRegionSubtag(%q) = %v, want ErrInvalidSubtag", c.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseRegionSubtag(%q) unexpected error: %v", c.in, err)
		}
		if got.String() != c.want {
			t.Fatalf("parseRegionSubtag(%q) = %q, want %q", c.in, got.String(), c.want)
		}
	}
}

func TestParseVariantSubtag(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"valencia", "valencia", true},
		{"VALENCIA", "valencia", true},
		{"1996", "1996", true},
		{"1abc", "1abc", true},
		{"posix", "posix", true},
		{"fonipa", "fonipa", true},
		{"abc", "", false},      // too short
		{"overlong9", "", false}, // too long
		{"val!ncia", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, err := parseVariantSubtag(c.in)
		if !c.ok {
			if err == nil {
				t.Fatalf("parseVariantSubtag(%q) expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseVariantSubtag(%q) unexpected error: %v", c.in, err)
		}
		if got.String() != c.want {
			t.Fatalf("parseVariantSubtag(%q) = %q, want %q", c.in, got.String(), c.want)
		}
	}
}
