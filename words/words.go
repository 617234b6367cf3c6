// Package words loads the newline-delimited word list the game draws from.
package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

// A List is the full word list, loaded once per process and read-only
// afterwards, so it can be shared across rounds without synchronization.
type List struct {
	byLength map[int][]string
	total    int
}

// Load reads a word list from a file, one word per line. Lines are trimmed
// and lowercased; blank lines are skipped. A missing or unreadable file is
// an error, and the caller must not start a game without a list.
func Load(filename string) (*List, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening word file: %w", err)
	}
	defer f.Close()
	l := FromReader(f)
	log.Debug().Str("file", filename).Int("words", l.total).Msg("loaded word list")
	return l, nil
}

// FromReader builds a List from any reader; used directly by tests.
func FromReader(r io.Reader) *List {
	l := &List{byLength: make(map[int][]string)}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		n := len([]rune(word))
		l.byLength[n] = append(l.byLength[n], word)
		l.total++
	}
	for n := range l.byLength {
		slices.Sort(l.byLength[n])
		l.byLength[n] = slices.Compact(l.byLength[n])
	}
	return l
}

// OfLength returns the distinct words of the given length, sorted. The
// caller owns the returned slice.
func (l *List) OfLength(n int) []string {
	return slices.Clone(l.byLength[n])
}

// Len returns the number of lines loaded, duplicates included.
func (l *List) Len() int {
	return l.total
}
