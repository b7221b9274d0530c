package wordle

import (
	"fmt"
	"sort"
	"strings"
)

// Wildcard marks a green position with no constraint
const Wildcard = '.'

// ValidationError is returned when the green, yellow and grey feedback can not
// be turned into Constraints. Nothing is filtered when it is returned.
type ValidationError struct {
	Field    string // green, yellow, grey or words
	Position int    // index into the field, -1 when the whole field is wrong
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s at position %d: %s", e.Field, e.Position, e.Reason)
}

func invalid(field string, position int, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Position: position, Reason: fmt.Sprintf(format, args...)}
}

// Constraints is the normalized green/yellow/grey feedback.
//
//	green  A....      one symbol per position, letter or Wildcard
//	yellow _L__P      one entry per position, 0 means no letter
//	grey   PP         letter -> number of grey reports
type Constraints struct {
	green  []byte
	yellow []byte
	grey   map[byte]int
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// upper only folds ASCII, other bytes are left to fail isLetter
func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func upperASCII(s string) string {
	b := []byte(s)
	for i := range b {
		b[i] = upper(b[i])
	}
	return string(b)
}

// ParseConstraints upper cases and validates the raw feedback.  The word length
// is the length of green and yellow must have one entry for each position.
func ParseConstraints(green string, yellow []string, grey string) (*Constraints, error) {
	green = upperASCII(green)
	grey = upperASCII(grey)
	if len(green) == 0 {
		return nil, invalid("green", -1, "pattern is empty")
	}
	if len(green) != len(yellow) {
		return nil, invalid("yellow", -1, "has %d entries, green pattern has %d positions", len(yellow), len(green))
	}

	ret := &Constraints{
		green:  make([]byte, len(green)),
		yellow: make([]byte, len(green)),
		grey:   make(map[byte]int),
	}
	for i := 0; i < len(green); i++ {
		c := green[i]
		if c != Wildcard && !isLetter(c) {
			return nil, invalid("green", i, "%q is not a letter or %q", c, Wildcard)
		}
		ret.green[i] = c
	}
	for i, entry := range yellow {
		entry = upperASCII(entry)
		if len(entry) > 1 {
			return nil, invalid("yellow", i, "%q has more than one letter", entry)
		}
		if len(entry) == 0 {
			continue
		}
		c := entry[0]
		if !isLetter(c) {
			return nil, invalid("yellow", i, "%q is not a letter", c)
		}
		if ret.green[i] == c {
			return nil, invalid("yellow", i, "%q is also green at this position", c)
		}
		ret.yellow[i] = c
	}
	for i := 0; i < len(grey); i++ {
		c := grey[i]
		if !isLetter(c) {
			return nil, invalid("grey", i, "%q is not a letter", c)
		}
		ret.grey[c]++
	}
	return ret, nil
}

// Len is the word length the constraints apply to
func (c *Constraints) Len() int {
	return len(c.green)
}

// Green returns the pattern, Wildcard where unconstrained
func (c *Constraints) Green() string {
	return string(c.green)
}

// Yellow returns one entry per position, "" where unconstrained
func (c *Constraints) Yellow() []string {
	ret := make([]string, len(c.yellow))
	for i, y := range c.yellow {
		if y != 0 {
			ret[i] = string(y)
		}
	}
	return ret
}

// Grey returns a copy of the grey report counts
func (c *Constraints) Grey() map[byte]int {
	ret := make(map[byte]int, len(c.grey))
	for letter, count := range c.grey {
		ret[letter] = count
	}
	return ret
}

// greyLetters in alphabetical order so filtering and logging are deterministic
func (c *Constraints) greyLetters() []byte {
	ret := make([]byte, 0, len(c.grey))
	for letter := range c.grey {
		ret = append(ret, letter)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

// GreenCount is the number of positions where green confirms letter
func (c *Constraints) GreenCount(letter byte) int {
	ret := 0
	for _, g := range c.green {
		if g == letter {
			ret++
		}
	}
	return ret
}

// Threshold is the adjusted grey frequency for letter: a word containing the
// letter this many times or more is excluded.  A grey report next to a green
// copy of the same letter only says there are no more copies than the greens.
// Zero means the letter was never reported grey.
func (c *Constraints) Threshold(letter byte) int {
	count, ok := c.grey[letter]
	if !ok {
		return 0
	}
	return count + c.GreenCount(letter)
}

// GreyAllows reports whether word has fewer copies of every grey letter than its threshold
func (c *Constraints) GreyAllows(word string) bool {
	for letter := range c.grey {
		if strings.Count(word, string(letter)) >= c.Threshold(letter) {
			return false
		}
	}
	return true
}

// YellowAllows reports whether word contains every yellow letter, none of them at
// the position they were reported
func (c *Constraints) YellowAllows(word string) bool {
	if len(word) != len(c.yellow) {
		return false
	}
	for i, y := range c.yellow {
		if y == 0 {
			continue
		}
		if word[i] == y || strings.IndexByte(word, y) < 0 {
			return false
		}
	}
	return true
}

// GreenAllows reports whether word has the confirmed letter at every non wildcard position
func (c *Constraints) GreenAllows(word string) bool {
	if len(word) != len(c.green) {
		return false
	}
	for i, g := range c.green {
		if g != Wildcard && word[i] != g {
			return false
		}
	}
	return true
}

// Matches is true if word passes all three filters.  word must already be upper case.
func (c *Constraints) Matches(word string) bool {
	return c.GreyAllows(word) && c.YellowAllows(word) && c.GreenAllows(word)
}

func (c *Constraints) String() string {
	var b strings.Builder
	b.WriteString("green=")
	b.Write(c.green)
	b.WriteString(" yellow=")
	for _, y := range c.yellow {
		if y == 0 {
			b.WriteByte('_')
		} else {
			b.WriteByte(y)
		}
	}
	b.WriteString(" grey=")
	for _, letter := range c.greyLetters() {
		b.WriteString(strings.Repeat(string(letter), c.grey[letter]))
	}
	return b.String()
}
