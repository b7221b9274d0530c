package wordle

import (
	"iter"
	"strings"

	"github.com/bits-and-blooms/bitset"
	mapset "github.com/deckarep/golang-set"
)

// Dictionary is the candidate word list for one word length.  Words are upper
// case, alphabetic and unique.  It is read only after NewDictionary and can be
// shared by concurrent pipeline runs.
type Dictionary struct {
	length       int
	words        []string
	stringToWord map[string]int
	matcher      *Matcher
}

// NewDictionary keeps the words of the given length.  Case variants of the same
// word are one candidate, the first one seen keeps its place in the order.
func NewDictionary(strings []string, length int) *Dictionary {
	ret := &Dictionary{length: length, stringToWord: make(map[string]int)}
	seen := mapset.NewThreadUnsafeSet()
	for _, word := range strings {
		word = normalizeWord(word)
		if len(word) != length || !isWord(word) {
			continue
		}
		if !seen.Add(word) {
			continue
		}
		ret.stringToWord[word] = len(ret.words)
		ret.words = append(ret.words, word)
	}
	ret.matcher = newMatcher(ret.words, length)
	return ret
}

func normalizeWord(word string) string {
	return upperASCII(strings.TrimSpace(word))
}

func isWord(word string) bool {
	for i := 0; i < len(word); i++ {
		if !isLetter(word[i]) {
			return false
		}
	}
	return len(word) > 0
}

// WordLen is the length of every word in the dictionary
func (d *Dictionary) WordLen() int {
	return d.length
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// Word returns the index of a word, any case
func (d *Dictionary) Word(word string) (int, bool) {
	ret, ok := d.stringToWord[normalizeWord(word)]
	return ret, ok
}

func (d *Dictionary) String(word int) string {
	return d.words[word]
}

// Words returns a copy of the words in dictionary order
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.words...)
}

// Candidates returns a new set holding every word of the dictionary
func (d *Dictionary) Candidates() *CandidateSet {
	return &CandidateSet{dictionary: d, set: d.matcher.all()}
}

// CandidateSet is the working set of one filter run.  Filters only remove words.
type CandidateSet struct {
	dictionary *Dictionary
	set        *bitset.BitSet
}

func (cs *CandidateSet) Len() int {
	return int(cs.set.Count())
}

// Contains reports whether word, any case, is still a candidate
func (cs *CandidateSet) Contains(word string) bool {
	w, ok := cs.dictionary.Word(word)
	return ok && cs.set.Test(uint(w))
}

// Range yields the remaining words in dictionary order
func (cs *CandidateSet) Range(yield func(i int, word string) bool) {
	i := 0
	for w, ok := cs.set.NextSet(0); ok; w, ok = cs.set.NextSet(w + 1) {
		if !yield(i, cs.dictionary.String(int(w))) {
			return
		}
		i++
	}
}

// All yields the remaining words in dictionary order
func (cs *CandidateSet) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, word := range cs.Range {
			if !yield(word) {
				return
			}
		}
	}
}

func (cs *CandidateSet) Words() []string {
	ret := []string{}
	for _, word := range cs.Range {
		ret = append(ret, word)
	}
	return ret
}

// keep removes every word not in other, a nil other removes everything
func (cs *CandidateSet) keep(other *bitset.BitSet) {
	if other == nil {
		cs.set.ClearAll()
		return
	}
	cs.set.InPlaceIntersection(other)
}

// remove removes every word in other, nil is a no-op
func (cs *CandidateSet) remove(other *bitset.BitSet) {
	if other == nil {
		return
	}
	cs.set.InPlaceDifference(other)
}
