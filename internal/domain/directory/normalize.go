package directory

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName folds a display name into its search key: Vietnamese
// diacritics stripped, đ mapped to d, lowercased, whitespace collapsed.
// "Công ty TNHH Trần Anh" and "cong ty tnhh tran anh" normalize identically.
func NormalizeName(name string) string {
	// Transformers carry state, so the chain is built per call
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, name)
	if err != nil {
		folded = name
	}
	folded = strings.ReplaceAll(folded, "đ", "d")
	folded = strings.ReplaceAll(folded, "Đ", "d")
	return strings.ToLower(strings.Join(strings.Fields(folded), " "))
}
