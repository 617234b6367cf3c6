package adversary

import "unicode"

// Mask returns the hint the word would show for the guessed letters: the
// letter itself where it has been guessed, Placeholder elsewhere. It is a
// pure function; the guessed set is never modified.
func Mask(word string, guessed Letters) Pattern {
	masked := make([]rune, 0, len(word))
	for _, letter := range word {
		letter = unicode.ToLower(letter)
		if guessed.Has(letter) {
			masked = append(masked, letter)
		} else {
			masked = append(masked, Placeholder)
		}
	}
	return Pattern(masked)
}
