package main

import (
	"fmt"

	"github.com/maxbolgarin/langid"
)

func main() {
	// Parsing accepts '-' or '_' separators and any casing.
	id, err := langid.Parse("eN_latn_Us-Valencia")
	if err != nil {
		panic(err)
	}
	fmt.Println(id.String()) // en-Latn-US-valencia
	fmt.Println(id.Language(), id.Script(), id.Region(), id.Variants())

	// Likely subtags: expand to the most probable full form and back.
	id = langid.MustParse("zh-TW")
	id.AddLikelySubtags()
	fmt.Println(id.String()) // zh-Hant-TW
	id.RemoveLikelySubtags()
	fmt.Println(id.String()) // zh-TW

	// Negotiation: pick the best available identifier for a request.
	available := langid.MustParseAll("de-DE", "en-GB", "zh-Hant")
	if best, ok := langid.BestMatch(langid.MustParseAll("zh-TW", "en"), available); ok {
		fmt.Println(best.String()) // zh-Hant
	}

	// A parse cache for hot identifiers, warmed at startup.
	cache, err := langid.NewParseCacheFromConfig(langid.Config{
		Preload: []string{"en-US", "de-DE", "fr-FR"},
	})
	if err != nil {
		panic(err)
	}
	defer cache.Close()

	id, _ = cache.Parse("en-US")
	fmt.Println(id.String(), id.Direction()) // en-US LTR
}
