package adversary

// Partition groups the candidate words by the pattern each one would show
// for the guessed letters. Every candidate lands in exactly one bucket, and
// an empty candidate slice yields an empty map. Bucket contents preserve the
// order of the input slice, so a deterministic input gives a deterministic
// partition.
func Partition(candidates []string, guessed Letters) map[Pattern][]string {
	partitions := make(map[Pattern][]string)
	for _, word := range candidates {
		masked := Mask(word, guessed)
		partitions[masked] = append(partitions[masked], word)
	}
	return partitions
}
