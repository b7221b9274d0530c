package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3" // imports as package "cli"
	"github.com/vyevs/ansi"
	"go.uber.org/zap"

	"github.com/powellquiring/wordlehelper/batch"
	"github.com/powellquiring/wordlehelper/source"
	"github.com/powellquiring/wordlehelper/wordle"
)

type GlobalConfiguration struct {
	wordsPath string
	color     bool
	progress  bool
	log       *zap.Logger
}

// newLogger is a development logger at debug level when verbose, otherwise a
// production logger writing warnings to stderr as console lines
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.DisableStacktrace = true
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}

// parseYellow accepts one entry per position either comma separated, ",L,,,P",
// or as a pattern with _ or . for no letter, "_L__P"
func parseYellow(yellow string, length int) []string {
	if yellow == "" {
		return make([]string, length)
	}
	if strings.Contains(yellow, ",") {
		ret := strings.Split(yellow, ",")
		for i := range ret {
			ret[i] = strings.TrimSpace(ret[i])
		}
		return ret
	}
	ret := make([]string, 0, len(yellow))
	for _, c := range yellow {
		if c == '_' || c == wordle.Wildcard {
			ret = append(ret, "")
		} else {
			ret = append(ret, string(c))
		}
	}
	return ret
}

// renderConstraints shows the feedback the way the game colors it
func renderConstraints(c *wordle.Constraints, color bool) string {
	if !color {
		return c.String()
	}
	var b strings.Builder
	b.WriteString(ansi.FGColorName("green"))
	b.WriteString(c.Green())
	b.WriteByte(' ')
	b.WriteString(ansi.FGColorName("yellow"))
	for _, y := range c.Yellow() {
		if y == "" {
			b.WriteByte('_')
		} else {
			b.WriteString(y)
		}
	}
	b.WriteByte(' ')
	b.WriteString(ansi.FGColorName("light gray"))
	grey := c.Grey()
	for letter := byte('A'); letter <= 'Z'; letter++ {
		b.WriteString(strings.Repeat(string(letter), grey[letter]))
	}
	b.WriteString(ansi.Clear)
	return b.String()
}

func match(globalConfig GlobalConfiguration, out, summary io.Writer, green, yellow, grey string) error {
	c, err := wordle.ParseConstraints(green, parseYellow(yellow, len(green)), grey)
	if err != nil {
		return err
	}
	fmt.Fprintln(summary, renderConstraints(c, globalConfig.color))
	words := source.Load(globalConfig.wordsPath, c.Len(), globalConfig.log)
	pipeline := wordle.NewPipeline(wordle.NewDictionary(words, c.Len()), wordle.WithLogger(globalConfig.log))
	matching, err := pipeline.Run(c)
	if err != nil {
		return err
	}
	count := 0
	for word := range matching {
		fmt.Fprintln(out, word)
		count++
	}
	globalConfig.log.Info("matches", zap.Int("count", count), zap.Int("words", len(words)))
	return nil
}

func runBatch(ctx context.Context, globalConfig GlobalConfiguration, out io.Writer, path string, workers int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open puzzles: %w", err)
	}
	defer f.Close()
	puzzles, err := batch.Decode(f)
	if err != nil {
		return err
	}
	words := source.Load(globalConfig.wordsPath, 0, globalConfig.log)
	results, err := batch.Run(ctx, puzzles, words, batch.Options{
		Workers:  workers,
		Progress: globalConfig.progress,
		Log:      globalConfig.log,
	})
	if err != nil {
		return err
	}
	return batch.Encode(out, results)
}

func cpuProfile() func() {
	f, err := os.Create("cpu.prof")
	if err != nil {
		panic(err)
	}
	pprof.StartCPUProfile(f)
	return pprof.StopCPUProfile
}

func main() {
	wordsPath := ""
	verbose := false
	color := false
	progress := false
	profile := false
	// command specific flags
	green := ""
	yellow := ""
	grey := ""
	workers := 0
	var log *zap.Logger

	globalConfiguration := func() GlobalConfiguration {
		log = newLogger(verbose)
		return GlobalConfiguration{
			wordsPath: wordsPath,
			color:     color,
			progress:  progress,
			log:       log,
		}
	}

	cmd := &cli.Command{
		Name:  "wdl",
		Usage: "narrow a word list with wordle feedback",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "words",
				Aliases:     []string{"w"},
				Usage:       "file with one word per line, default is the built in five letter list",
				Sources:     cli.EnvVars("WDL_WORDS"),
				Destination: &wordsPath,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "debug logging",
				Sources:     cli.EnvVars("WDL_VERBOSE"),
				Destination: &verbose,
			},
			&cli.BoolFlag{
				Name:        "color",
				Usage:       "color the feedback summary",
				Sources:     cli.EnvVars("WDL_COLOR"),
				Destination: &color,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Aliases:     []string{"p"},
				Usage:       "show progress bar",
				Destination: &progress,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Value:       false,
				Usage:       "store profile data to analyze",
				Destination: &profile,
			},
		},
		Commands: []*cli.Command{
			{
				Name: "match",
				Usage: `match -g A.... -y ,L,,,P -r PP
				print the words consistent with the green, yellow and grey letters.
				Green has a letter or . for each position.  Yellow has one entry for each position,
				comma separated or a pattern like _L__P.  Grey letters may repeat, PP is two grey P.
				`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "green",
						Aliases:     []string{"g"},
						Value:       ".....",
						Usage:       "confirmed letters, . for unknown",
						Destination: &green,
					},
					&cli.StringFlag{
						Name:        "yellow",
						Aliases:     []string{"y"},
						Usage:       "letters in the word but not at this position",
						Destination: &yellow,
					},
					&cli.StringFlag{
						Name:        "grey",
						Aliases:     []string{"r"},
						Usage:       "letters reported absent",
						Destination: &grey,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def := cpuProfile()
						defer def()
					}
					if cmd.NArg() != 0 {
						return cli.Exit("match takes no arguments, use -g -y -r", 1)
					}
					return match(globalConfiguration(), os.Stdout, os.Stderr, green, yellow, grey)
				},
			},
			{
				Name: "batch",
				Usage: `batch puzzles.yaml
				Evaluate every puzzle in the file and print the matches as yaml.
				`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "workers",
						Value:       0,
						Usage:       "puzzles evaluated at the same time, 0 is all",
						Destination: &workers,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def := cpuProfile()
						defer def()
					}
					if cmd.NArg() != 1 {
						return cli.Exit("must have one puzzle file", 2)
					}
					return runBatch(ctx, globalConfiguration(), os.Stdout, cmd.Args().First(), workers)
				},
			},
			{
				Name: "words",
				Usage: `words [length]
				Print the word list after normalization
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					length := 0
					if cmd.NArg() > 0 {
						n, err := strconv.Atoi(cmd.Args().First())
						if err != nil || n < 0 {
							return cli.Exit("length must be a number", 1)
						}
						length = n
					}
					globalConfig := globalConfiguration()
					for _, word := range source.Load(globalConfig.wordsPath, length, globalConfig.log) {
						fmt.Println(word)
					}
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if log == nil {
			log = newLogger(verbose)
		}
		log.Fatal("wdl", zap.Error(err))
	}
	if log != nil {
		log.Sync()
	}
}
