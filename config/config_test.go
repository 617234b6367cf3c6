package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestLoad(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"--word-file", "/tmp/w.txt", "--max-guesses", "7", "--debug"}))
	is.Equal(c.GetString("word-file"), "/tmp/w.txt")
	is.Equal(c.GetInt("max-guesses"), 7)
	is.True(c.GetBool("debug"))
}

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.GetString("word-file"), "./data/words.txt")
	is.Equal(c.GetInt("max-guesses"), 5)
	is.Equal(c.GetInt64("seed"), int64(0))
	is.True(!c.GetBool("debug"))
}

func TestLoadEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("HANGMAN_MAX_GUESSES", "9")
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.GetInt("max-guesses"), 9)
}

func TestAdjustRelativePaths(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load(nil))
	c.AdjustRelativePaths("/opt/hangman")
	is.Equal(c.GetString("word-file"), "/opt/hangman/data/words.txt")

	c = &Config{}
	is.NoErr(c.Load([]string{"--word-file", "/abs/w.txt"}))
	c.AdjustRelativePaths("/opt/hangman")
	is.Equal(c.GetString("word-file"), "/abs/w.txt")
}
