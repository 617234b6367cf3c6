// Package adversary implements the selection engine for a hangman game that
// never commits to a single secret word. It partitions the remaining
// candidate words by the hint each one would produce for the guessed letters,
// and picks the hint that keeps the guesser's job as hard as possible.
package adversary

import "strings"

// Placeholder marks an unrevealed position in a Pattern.
const Placeholder = '-'

// A Pattern is a positional hint: the word's letter where it has been
// guessed, Placeholder everywhere else.
type Pattern string

// Blank returns the all-placeholder pattern of length n.
func Blank(n int) Pattern {
	return Pattern(strings.Repeat(string(Placeholder), n))
}

// Revealed returns the number of non-placeholder positions.
func (p Pattern) Revealed() int {
	return len(p) - strings.Count(string(p), string(Placeholder))
}

// Complete reports whether every position has been revealed.
func (p Pattern) Complete() bool {
	return !strings.ContainsRune(string(p), Placeholder)
}

// Has reports whether the letter appears at any revealed position.
func (p Pattern) Has(letter rune) bool {
	return strings.ContainsRune(string(p), letter)
}
