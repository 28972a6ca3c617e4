// Package textproc provides text normalization and tokenization for resume analysis.
package textproc

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

// Tokenizer turns raw text into a normalized, stemmed token sequence.
// It holds only an immutable stopword set, so a single instance is safe
// for concurrent use.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a tokenizer with the given stopword list.
// Stopwords are matched case-insensitively against tokens before stemming.
func NewTokenizer(stopwords []string) *Tokenizer {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return &Tokenizer{stopwords: set}
}

// Tokenize lowercases the input, splits it into alphabetic runs, drops
// stopwords and tokens that are not purely a-z or are 2 characters or
// shorter, and stems each surviving token. Empty input yields an empty
// slice, never an error.
func (t *Tokenizer) Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	lower := strings.ToLower(text)
	runs := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	tokens := make([]string, 0, len(runs))
	for _, run := range runs {
		if len(run) <= 2 || !isASCIIAlpha(run) {
			continue
		}
		if _, stop := t.stopwords[run]; stop {
			continue
		}
		tokens = append(tokens, Stem(run))
	}
	return tokens
}

// Stem reduces a single lowercase word to its Snowball (Porter2) English
// stem. Words the stemmer cannot shorten are returned unchanged.
func Stem(word string) string {
	return english.Stem(word, false)
}

func isASCIIAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
