package wordle

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWords = []string{
	"APPLE", "ALARM", "ALIGN", "AXIOM", "PLANE", "LAPSE", "PIZZA", "SPELL", "HELLO",
	"LLAMA", "PAPER", "PUPPY", "ABBEY", "EERIE", "CRANE", "SLATE", "TRACE", "ULTRA",
	"NAVAL", "LEAPT", "PLEAT", "PETAL", "PALER", "SPLAT", "ZESTY", "QUIRK",
}

func matches(t *testing.T, green string, yellow []string, grey string, words []string) []string {
	t.Helper()
	seq, err := FindMatches(green, yellow, grey, words)
	require.NoError(t, err)
	return slices.Collect(seq)
}

func TestScenarioA(t *testing.T) {
	green, yellow, grey := "A....", []string{"", "L", "", "", "P"}, "PP"
	words := []string{"APPLE", "ALARM", "ALIGN", "AXIOM"}
	assert.Empty(t, matches(t, green, yellow, grey, words))

	// stage by stage
	c, err := ParseConstraints(green, yellow, grey)
	require.NoError(t, err)
	cs := NewDictionary(words, 5).Candidates()
	cs.ExcludeGrey(c)
	assert.Equal(t, []string{"ALARM", "ALIGN", "AXIOM"}, cs.Words()) // APPLE has two P
	cs.ExcludeYellow(c)
	assert.Empty(t, cs.Words()) // none of them have a P

	// ALIGN has its L at the yellow position
	assert.False(t, c.YellowAllows("ALIGN"))
}

func TestScenarioB(t *testing.T) {
	words := []string{"APPLE", "alarm", "TOOLONG", "AXE", "ZESTY"}
	assert.Equal(t,
		[]string{"APPLE", "ALARM", "ZESTY"},
		matches(t, ".....", []string{"", "", "", "", ""}, "", words))
}

func TestScenarioC(t *testing.T) {
	got := matches(t, ".....", []string{"", "", "", "", ""}, "Z", testWords)
	for _, word := range testWords {
		assert.Equal(t, !strings.Contains(word, "Z"), slices.Contains(got, word), word)
	}
}

func TestScenarioD(t *testing.T) {
	got := matches(t, "A....", []string{"", "", "", "", ""}, "", []string{"apple", "APPLE", "Apple", "alarm"})
	assert.Equal(t, []string{"APPLE", "ALARM"}, got)
}

func TestEmptyWordList(t *testing.T) {
	assert.Empty(t, matches(t, "A....", []string{"", "L", "", "", ""}, "Z", nil))
	assert.Empty(t, matches(t, "A....", []string{"", "L", "", "", ""}, "Z", []string{}))
}

func TestValidationBeforeFiltering(t *testing.T) {
	seq, err := FindMatches("A....", []string{"", ""}, "", testWords)
	assert.Nil(t, seq)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestGreenAndGrey(t *testing.T) {
	// guessed PAPER, first P green, second P grey: exactly one P
	got := matches(t, "P....", []string{"", "", "", "", ""}, "P", testWords)
	assert.Equal(t, []string{"PLANE", "PIZZA", "PLEAT", "PETAL", "PALER"}, got)

	// L green at position 2, one grey L: no second L
	got = matches(t, "..L..", []string{"", "", "", "", ""}, "L", testWords)
	assert.Equal(t, []string{"PALER", "SPLAT"}, got)
}

func TestYellowTwice(t *testing.T) {
	got := matches(t, ".....", []string{"L", "", "", "L", ""}, "", testWords)
	for _, word := range got {
		assert.Contains(t, word, "L")
		assert.NotEqual(t, byte('L'), word[0])
		assert.NotEqual(t, byte('L'), word[3])
	}
	assert.Equal(t, []string{
		"ALARM", "ALIGN", "PLANE", "SLATE", "ULTRA", "NAVAL", "PLEAT", "PETAL", "PALER", "SPLAT",
	}, got)
}

func TestPipelineProperties(t *testing.T) {
	feedback := []struct {
		green  string
		yellow []string
		grey   string
	}{
		{"A....", []string{"", "L", "", "", "P"}, "PP"},
		{".....", []string{"", "", "", "", ""}, ""},
		{"..A..", []string{"P", "", "", "", ""}, "ZQ"},
		{"P....", []string{"", "", "", "", "L"}, "PPE"},
		{".L...", []string{"", "", "L", "", ""}, "LLT"},
		{"....E", []string{"", "P", "", "", ""}, "A"},
	}
	for _, f := range feedback {
		t.Run(f.green+"/"+f.grey, func(t *testing.T) {
			c, err := ParseConstraints(f.green, f.yellow, f.grey)
			require.NoError(t, err)
			p := NewPipeline(NewDictionary(testWords, 5))
			seq, err := p.Run(c)
			require.NoError(t, err)
			got := slices.Collect(seq)

			// exactly the words passing every predicate, in input order
			var want []string
			for _, word := range testWords {
				if c.Matches(word) {
					want = append(want, word)
				}
			}
			assert.Equal(t, want, got)

			for _, word := range got {
				assert.Contains(t, testWords, word)
				for letter := range c.Grey() {
					assert.Less(t, strings.Count(word, string(letter)), c.Threshold(letter))
				}
			}

			// ranging again and running again give the same words
			assert.Equal(t, got, slices.Collect(seq))
			again, err := p.Run(c)
			require.NoError(t, err)
			assert.Equal(t, got, slices.Collect(again))
		})
	}
}

func TestStagesOnlyShrink(t *testing.T) {
	c, err := ParseConstraints("..A..", []string{"P", "", "", "", ""}, "Z")
	require.NoError(t, err)
	cs := NewDictionary(testWords, 5).Candidates()
	before := cs.Words()
	cs.ExcludeGrey(c)
	afterGrey := cs.Words()
	assert.Subset(t, before, afterGrey)
	cs.ExcludeYellow(c)
	afterYellow := cs.Words()
	assert.Subset(t, afterGrey, afterYellow)
	assert.Subset(t, afterYellow, slices.Collect(cs.SelectGreen(c)))
}

func TestPipelineWordLength(t *testing.T) {
	c, err := ParseConstraints("....", []string{"", "", "", ""}, "")
	require.NoError(t, err)
	_, err = NewPipeline(NewDictionary(testWords, 5)).Run(c)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	got := matches(t, "...", []string{"", "", ""}, "", []string{"axe", "ZOO", "APPLE"})
	assert.Equal(t, []string{"AXE", "ZOO"}, got)
}

func TestEarlyBreak(t *testing.T) {
	seq, err := FindMatches(".....", []string{"", "", "", "", ""}, "", testWords)
	require.NoError(t, err)
	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}
