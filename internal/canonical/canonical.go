// Package canonical maps free-text statement labels to the fixed metric
// vocabulary.
package canonical

import (
	"strings"
	"unicode"

	"github.com/mwwazup/cfo-app-azure-di-sub001/internal/model"
)

// Entry is the canonical mapping for one normalized label.
type Entry struct {
	Key  string
	Type model.MetricType
}

// Normalize lowercases a label, strips punctuation and collapses internal
// whitespace runs, producing the lookup form used by the vocabulary table.
func Normalize(label string) string {
	var b strings.Builder
	b.Grow(len(label))

	lastSpace := false
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace && b.Len() > 0 {
				b.WriteByte(' ')
				lastSpace = true
			}
		default:
			// Punctuation is dropped entirely.
		}
	}

	return strings.TrimSpace(b.String())
}

// Lookup resolves a raw label to its canonical entry. The bool is false for
// labels outside the supported vocabulary; such labels are dropped from
// canonical metrics but stay visible in the raw extraction list.
func Lookup(label string) (Entry, bool) {
	e, ok := vocabulary[Normalize(label)]
	return e, ok
}
