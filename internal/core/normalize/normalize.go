// Package normalize provides a deterministic folder for GitHub handles and
// search queries. The remote service treats handles case-insensitively, so
// cache keys fold through this pipeline before rendering
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization
// 3 Case folding
// 4 Remove zero-width and format characters
// 5 Width fold fullwidth to ASCII
// 6 Trim surrounding whitespace
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// Fold returns the canonical folded form of s following the pipeline above
func Fold(s string) string {
	if s == "" {
		return ""
	}

	// 1 repair UTF-8 drop invalid bytes
	s = strings.ToValidUTF8(s, "")

	// 2-5 transform via pooled chain then reset and return it
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	// 6 trim
	return strings.TrimSpace(ns)
}

// Handle folds a GitHub handle for use in cache keys. The caller's spelling
// is still sent to the API unchanged, the server is case-insensitive anyway
func Handle(s string) string { return Fold(s) }

// Query folds a search query and collapses internal whitespace runs so two
// visually identical queries share one cache entry
func Query(s string) string {
	return strings.Join(strings.Fields(Fold(s)), " ")
}
