package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlnum   = regexp.MustCompile(`[^a-z0-9-]+`)
	multiDash  = regexp.MustCompile(`-{2,}`)
	foldAccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Make converts a title into a URL slug: accents are folded, everything that is
// not a latin letter or digit becomes a dash and runs of dashes are collapsed.
// The result may be empty.
func Make(s string) string {
	folded, _, err := transform.String(foldAccent, s)
	if err != nil {
		folded = s
	}

	out := strings.ToLower(folded)
	out = nonAlnum.ReplaceAllString(out, "-")
	out = multiDash.ReplaceAllString(out, "-")

	return strings.Trim(out, "-")
}
