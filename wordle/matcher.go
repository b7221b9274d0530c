package wordle

import (
	"github.com/bits-and-blooms/bitset"
)

/*
Matcher indexes the dictionary so each filter step is a set operation.

letters[0]['A'-'A'] all words whose first letter is an A, [1] second letter is an A, ...
count['B'-'A'][0] words with 1 or more B, count['B'-'A'][1] words with 2 or more B, ...

a word is represented by its index into the dictionary
*/
type Matcher struct {
	size    uint
	letters [][26]*bitset.BitSet
	count   [26][]*bitset.BitSet
}

func newMatcher(words []string, length int) *Matcher {
	size := uint(len(words))
	ret := &Matcher{
		size:    size,
		letters: make([][26]*bitset.BitSet, length),
	}
	for w, word := range words {
		var wordLetters [26]int
		for l := 0; l < length; l++ {
			letter := word[l] - 'A'
			if ret.letters[l][letter] == nil {
				ret.letters[l][letter] = bitset.New(size)
			}
			ret.letters[l][letter].Set(uint(w))
			wordLetters[letter]++
		}
		for letter, count := range wordLetters {
			for len(ret.count[letter]) < count {
				ret.count[letter] = append(ret.count[letter], bitset.New(size))
			}
			for c := 0; c < count; c++ {
				ret.count[letter][c].Set(uint(w))
			}
		}
	}
	return ret
}

// all returns a new set containing every word
func (m *Matcher) all() *bitset.BitSet {
	return bitset.New(m.size).Complement()
}

// atPosition is the set of words with letter at position, nil when there are none
func (m *Matcher) atPosition(position int, letter byte) *bitset.BitSet {
	return m.letters[position][letter-'A']
}

// atLeast is the set of words with n or more copies of letter, nil when there are none
func (m *Matcher) atLeast(letter byte, n int) *bitset.BitSet {
	counts := m.count[letter-'A']
	if n < 1 || n > len(counts) {
		return nil
	}
	return counts[n-1]
}
