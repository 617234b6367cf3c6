package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/duffman188/Hang-Man/game"
)

func TestLoadWordList(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "good.txt")
	is.NoErr(os.WriteFile(good, []byte("bat\ncat\n"), 0644))
	list, err := loadWordList(good)
	is.NoErr(err)
	is.Equal(list.Len(), 2)

	// A readable file with no words must not start a game, same as a
	// missing one.
	blank := filepath.Join(dir, "blank.txt")
	is.NoErr(os.WriteFile(blank, []byte("\n \n\t\n"), 0644))
	_, err = loadWordList(blank)
	is.Equal(err, errEmptyWordList)

	_, err = loadWordList(filepath.Join(dir, "nope.txt"))
	is.True(err != nil)
}

func TestPromptForPhase(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		phase game.Phase
		exp   string
	}
	cases := []testdata{
		{game.LengthSelection, lengthPrompt},
		{game.Playing, letterPrompt},
		{game.Replay, replayPrompt},
		{game.Won, lengthPrompt},
		{game.Lost, lengthPrompt},
		{game.Terminated, lengthPrompt},
	}
	for _, c := range cases {
		is.Equal(promptForPhase(c.phase), c.exp)
	}
}

func TestParseReplay(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line  string
		again bool
		ok    bool
	}
	cases := []testdata{
		{"y", true, true},
		{"Y", true, true},
		{" n ", false, true},
		{"N", false, true},
		{"yes", false, false},
		{"maybe", false, false},
		{"", false, false},
	}
	for _, c := range cases {
		again, ok := parseReplay(c.line)
		is.Equal(again, c.again)
		is.Equal(ok, c.ok)
	}
}
