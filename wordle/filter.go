package wordle

import (
	"iter"
)

// ExcludeGrey removes the words that contain a grey letter at least as many
// times as its threshold (grey reports plus green copies of the letter).
func (cs *CandidateSet) ExcludeGrey(c *Constraints) {
	for _, letter := range c.greyLetters() {
		cs.remove(cs.dictionary.matcher.atLeast(letter, c.Threshold(letter)))
	}
}

// ExcludeYellow removes the words missing a yellow letter and then the words
// that have a yellow letter at the position it was reported.
func (cs *CandidateSet) ExcludeYellow(c *Constraints) {
	m := cs.dictionary.matcher
	// presence, the position does not matter
	for _, y := range c.yellow {
		if y != 0 {
			cs.keep(m.atLeast(y, 1))
		}
	}
	// displacement, it would have been green
	for i, y := range c.yellow {
		if y != 0 {
			cs.remove(m.atPosition(i, y))
		}
	}
}

// SelectGreen yields the remaining words with every confirmed letter in place.
// The set is read when the sequence is ranged over, not when SelectGreen is called.
func (cs *CandidateSet) SelectGreen(c *Constraints) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, word := range cs.Range {
			if !c.GreenAllows(word) {
				continue
			}
			if !yield(word) {
				return
			}
		}
	}
}
