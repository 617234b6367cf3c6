package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromReader(t *testing.T) {
	in := "Cat\n\n  bat \nDOG\nhat\ncat\n"
	l := FromReader(strings.NewReader(in))

	assert.Equal(t, 5, l.Len())
	assert.Equal(t, []string{"bat", "cat", "dog", "hat"}, l.OfLength(3))
	assert.Empty(t, l.OfLength(5))
}

func TestOfLengthReturnsCopy(t *testing.T) {
	l := FromReader(strings.NewReader("bat\ncat"))
	first := l.OfLength(3)
	first[0] = "zzz"
	assert.Equal(t, []string{"bat", "cat"}, l.OfLength(3))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	err := os.WriteFile(path, []byte("apple\nbanana\npear\n"), 0644)
	assert.NoError(t, err)

	l, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"apple"}, l.OfLength(5))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
