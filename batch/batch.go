// Package batch runs many independent sets of feedback against one word list.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/powellquiring/wordlehelper/wordle"
)

// Puzzle is one set of feedback
type Puzzle struct {
	Name   string   `yaml:"name"`
	Green  string   `yaml:"green"`
	Yellow []string `yaml:"yellow"`
	Grey   string   `yaml:"grey"`
}

type File struct {
	Puzzles []Puzzle `yaml:"puzzles"`
}

// Result of one puzzle, Error is set instead of Matches when the feedback is invalid
type Result struct {
	Name    string   `yaml:"name"`
	Matches []string `yaml:"matches,omitempty"`
	Count   int      `yaml:"count"`
	Error   string   `yaml:"error,omitempty"`
}

// Decode reads a puzzle file
//
//	puzzles:
//	  - name: first
//	    green: A....
//	    yellow: ["", L, "", "", P]
//	    grey: PP
func Decode(r io.Reader) ([]Puzzle, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return []Puzzle{}, nil
		}
		return nil, fmt.Errorf("decode puzzles: %w", err)
	}
	for i := range f.Puzzles {
		if f.Puzzles[i].Name == "" {
			f.Puzzles[i].Name = fmt.Sprintf("puzzle-%d", i+1)
		}
	}
	return f.Puzzles, nil
}

// Encode writes the results as yaml
func Encode(w io.Writer, results []Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return enc.Close()
}

type Options struct {
	Workers  int  // concurrent puzzles, 0 is one per puzzle
	Progress bool // progress bar on stderr
	Log      *zap.Logger
}

// Run evaluates each puzzle against words.  Each puzzle gets its own candidate
// set, dictionaries are built once per word length and shared.  Results are in
// puzzle order.  Only a cancelled context stops the run.
func Run(ctx context.Context, puzzles []Puzzle, words []string, opts Options) ([]Result, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.Default(int64(len(puzzles)), "puzzles")
	} else {
		bar = progressbar.DefaultSilent(int64(len(puzzles)))
	}

	// parse everything first so dictionaries are built before the fan out
	constraints := make([]*wordle.Constraints, len(puzzles))
	results := make([]Result, len(puzzles))
	pipelines := make(map[int]*wordle.Pipeline)
	for i, puzzle := range puzzles {
		results[i].Name = puzzle.Name
		c, err := wordle.ParseConstraints(puzzle.Green, puzzle.Yellow, puzzle.Grey)
		if err != nil {
			log.Info("invalid puzzle", zap.String("name", puzzle.Name), zap.Error(err))
			results[i].Error = err.Error()
			continue
		}
		constraints[i] = c
		if _, ok := pipelines[c.Len()]; !ok {
			pipelines[c.Len()] = wordle.NewPipeline(wordle.NewDictionary(words, c.Len()), wordle.WithLogger(log))
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i, c := range constraints {
		if c == nil {
			bar.Add(1)
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seq, err := pipelines[c.Len()].Run(c)
			if err != nil {
				return err
			}
			matches := slices.Collect(seq)
			results[i].Matches = matches
			results[i].Count = len(matches)
			bar.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	bar.Finish()
	return results, nil
}
