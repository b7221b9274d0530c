package wordle

import (
	"iter"

	"go.uber.org/zap"
)

// Pipeline runs the grey, yellow and green filters, in that order, over a fresh
// candidate set for each set of constraints.
type Pipeline struct {
	dictionary *Dictionary
	log        *zap.Logger
}

type Option func(*Pipeline)

// WithLogger logs the number of surviving candidates after each stage at debug level
func WithLogger(log *zap.Logger) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

func NewPipeline(dictionary *Dictionary, opts ...Option) *Pipeline {
	ret := &Pipeline{dictionary: dictionary, log: zap.NewNop()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (p *Pipeline) Dictionary() *Dictionary {
	return p.dictionary
}

// Run filters the dictionary.  The returned sequence belongs to this run only,
// ranging over it again yields the same words.
func (p *Pipeline) Run(c *Constraints) (iter.Seq[string], error) {
	if c.Len() != p.dictionary.WordLen() {
		return nil, invalid("green", -1, "pattern has %d positions, dictionary words have %d letters", c.Len(), p.dictionary.WordLen())
	}
	candidates := p.dictionary.Candidates()
	log := p.log.With(zap.Stringer("constraints", c))
	log.Debug("start", zap.Int("candidates", candidates.Len()))

	candidates.ExcludeGrey(c)
	log.Debug("grey filtered", zap.Int("candidates", candidates.Len()))

	candidates.ExcludeYellow(c)
	log.Debug("yellow filtered", zap.Int("candidates", candidates.Len()))

	return candidates.SelectGreen(c), nil
}

// FindMatches returns the words consistent with the feedback.  The feedback is
// validated before any word is looked at.  words may be in any case, words of the
// wrong length are ignored and an empty list is not an error.
func FindMatches(green string, yellow []string, grey string, words []string) (iter.Seq[string], error) {
	c, err := ParseConstraints(green, yellow, grey)
	if err != nil {
		return nil, err
	}
	return NewPipeline(NewDictionary(words, c.Len())).Run(c)
}
