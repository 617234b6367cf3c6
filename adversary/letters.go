package adversary

import (
	"sort"
	"strings"
	"unicode"
)

// Letters is a set of guessed letters, case-normalized to lowercase.
type Letters map[rune]bool

// NewLetters returns an empty guessed-letter set.
func NewLetters() Letters {
	return make(Letters)
}

// Has reports whether the letter has been guessed, ignoring case.
func (ls Letters) Has(letter rune) bool {
	return ls[unicode.ToLower(letter)]
}

// With returns a copy of the set with the letter added. The receiver is not
// modified, so callers can build a trial set before committing it.
func (ls Letters) With(letter rune) Letters {
	next := make(Letters, len(ls)+1)
	for l := range ls {
		next[l] = true
	}
	next[unicode.ToLower(letter)] = true
	return next
}

// String renders the set in sorted order for display, e.g. "a, e, t".
func (ls Letters) String() string {
	sorted := make([]string, 0, len(ls))
	for l := range ls {
		sorted = append(sorted, string(l))
	}
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}
