package grid

// bitset is a fixed-size membership mask over cell indices.
type bitset struct {
	words []uint64
	count int
}

func newBitset(size int) bitset {
	return bitset{words: make([]uint64, (size+63)/64)}
}

// set marks i and reports whether it was newly added.
func (b *bitset) set(i int) bool {
	w, m := i>>6, uint64(1)<<(uint(i)&63)
	if b.words[w]&m != 0 {
		return false
	}
	b.words[w] |= m
	b.count++
	return true
}

func (b *bitset) has(i int) bool {
	return b.words[i>>6]&(uint64(1)<<(uint(i)&63)) != 0
}

func (b *bitset) clone() bitset {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return bitset{words: words, count: b.count}
}
