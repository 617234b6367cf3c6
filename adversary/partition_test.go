package adversary

import (
	"testing"

	"github.com/matryer/is"
)

func TestPartition(t *testing.T) {
	is := is.New(t)
	candidates := []string{"bat", "cat", "hat", "can"}
	guessed := NewLetters().With('a')

	partitions := Partition(candidates, guessed)
	is.Equal(len(partitions), 2)
	is.Equal(partitions["-a-"], []string{"bat", "cat", "hat"})
	is.Equal(partitions["ca-"], []string{"can"})
}

func TestPartitionInvariants(t *testing.T) {
	is := is.New(t)
	candidates := []string{"bat", "cat", "hat", "can", "dog", "cot"}
	guessed := NewLetters().With('a').With('c')

	partitions := Partition(candidates, guessed)

	// Buckets are disjoint, lossless, and keyed by their members' masks.
	total := 0
	seen := map[string]bool{}
	for pattern, bucket := range partitions {
		for _, word := range bucket {
			is.True(!seen[word])
			seen[word] = true
			is.Equal(Mask(word, guessed), pattern)
		}
		total += len(bucket)
	}
	is.Equal(total, len(candidates))
}

func TestPartitionEmpty(t *testing.T) {
	is := is.New(t)
	partitions := Partition(nil, NewLetters().With('a'))
	is.Equal(len(partitions), 0)
}

func TestPartitionDeterministic(t *testing.T) {
	is := is.New(t)
	candidates := []string{"bat", "cat", "hat", "can"}
	guessed := NewLetters().With('a').With('t')

	first := Partition(candidates, guessed)
	second := Partition(candidates, guessed)
	is.Equal(first, second)
}
