// Package source supplies candidate words: upper case, letters only, one length,
// no duplicates.  Failing to get words is not an error for the caller, it is an
// empty list.
package source

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"go.uber.org/zap"
)

//go:embed words.txt
var embedded []byte

// Embedded returns the built in five letter word list
func Embedded() []string {
	words, err := Read(bytes.NewReader(embedded), 0)
	if err != nil {
		// bytes.Reader does not fail
		panic(err)
	}
	return words
}

// Read reads one word per line.  Words are upper cased, lines with anything other
// than letters are dropped, and when length is not 0 only words of that length
// are kept.  The first copy of a word keeps its place.
func Read(r io.Reader, length int) ([]string, error) {
	sc := bufio.NewScanner(r)

	words := []string{}
	seen := mapset.NewThreadUnsafeSet()
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word == "" || !letters(word) {
			continue
		}
		word = strings.ToUpper(word)
		if length != 0 && len(word) != length {
			continue
		}
		if seen.Add(word) {
			words = append(words, word)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return words, nil
}

// letters is true for ASCII letters only, strings.ToUpper would fold some
// other runes into A-Z
func letters(word string) bool {
	for i := 0; i < len(word); i++ {
		c := word[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}

// Load reads the word file at path, the embedded list when path is empty.  Any
// failure is logged and an empty list returned.
func Load(path string, length int, log *zap.Logger) []string {
	if log == nil {
		log = zap.NewNop()
	}
	if path == "" {
		words, _ := Read(bytes.NewReader(embedded), length)
		log.Debug("embedded words", zap.Int("count", len(words)))
		return words
	}
	f, err := os.Open(path)
	if err != nil {
		log.Warn("word source unavailable", zap.String("path", path), zap.Error(err))
		return []string{}
	}
	defer f.Close()

	words, err := Read(f, length)
	if err != nil {
		log.Warn("word source unreadable", zap.String("path", path), zap.Error(err))
		return []string{}
	}
	log.Debug("loaded words", zap.String("path", path), zap.Int("count", len(words)))
	return words
}
