// Package extract finds controlled-vocabulary skill mentions in free text.
//
// Extraction is purely lexical: text is tokenized, then scanned with a
// longest-match-first n-gram window against the vocabulary's surface forms.
// The same input always yields the same output, in first-mention order.
package extract

import (
	"strings"

	"github.com/careeriq/engine/internal/vocab"
)

// Characters stripped from token boundaries. Interior punctuation is kept so
// surface forms like "node.js", "c++", "c#" and "ci/cd" survive tokenization.
const boundaryCutset = ".,;:!?()[]{}\"'`<>|*"

// Extractor matches text against a skill vocabulary.
type Extractor struct {
	vocab *vocab.Vocabulary
}

// New returns an Extractor backed by the given vocabulary.
func New(v *vocab.Vocabulary) *Extractor {
	return &Extractor{vocab: v}
}

// Extract returns the canonical skills mentioned in text, deduplicated, in
// order of first mention. Text containing no vocabulary terms yields an
// empty, non-nil slice.
func (e *Extractor) Extract(text string) []string {
	tokens := Tokenize(text)
	found := make([]string, 0, 16)
	seen := make(map[string]struct{})

	maxWindow := e.vocab.MaxPhraseTokens()
	for i := 0; i < len(tokens); {
		matched := false
		// Longest phrases first so "machine learning" wins over "machine".
		for n := min(maxWindow, len(tokens)-i); n >= 1 && !matched; n-- {
			phrase := strings.Join(tokens[i:i+n], " ")
			canonical, ok := e.vocab.Canonical(phrase)
			if !ok && n == 1 {
				canonical, ok = e.vocab.Canonical(singular(phrase))
			}
			if !ok {
				continue
			}
			if _, dup := seen[canonical]; !dup {
				seen[canonical] = struct{}{}
				found = append(found, canonical)
			}
			i += n
			matched = true
		}
		if !matched {
			i++
		}
	}

	return found
}

// ExtractSet returns the extracted skills as a membership set, for callers
// that only need containment checks.
func (e *Extractor) ExtractSet(text string) map[string]struct{} {
	skills := e.Extract(text)
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[s] = struct{}{}
	}
	return set
}

// Tokenize splits text into lowercase tokens with boundary punctuation
// stripped. Tokens that are entirely punctuation are dropped.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.Trim(f, boundaryCutset)
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// singular strips a trailing plural "s" from tokens longer than three
// characters, so "containers" still matches a "container" alias. Tokens
// ending in "ss" are left alone.
func singular(tok string) string {
	if len(tok) > 3 && strings.HasSuffix(tok, "s") && !strings.HasSuffix(tok, "ss") {
		return tok[:len(tok)-1]
	}
	return tok
}
