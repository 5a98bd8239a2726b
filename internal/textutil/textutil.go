// Package textutil splits list-valued cells into category entries.
package textutil

import (
	"regexp"
	"strings"
)

var tokenizeRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize extracts word tokens from text (Unicode-aware, \w+ runs).
func Tokenize(text string) []string {
	return tokenizeRe.FindAllString(text, -1)
}

// TokenNgrams returns n-grams from a list of tokens, joined by space.
func TokenNgrams(tokens []string, minN, maxN int) []string {
	tLen := len(tokens)
	var res []string
	for n := minN; n <= maxN && n <= tLen; n++ {
		for i := 0; i <= tLen-n; i++ {
			res = append(res, strings.Join(tokens[i:i+n], " "))
		}
	}
	return res
}

// SplitList splits cell on sep, trims every entry and drops empty ones.
// An empty cell is an empty list.
func SplitList(cell, sep string) []string {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	parts := strings.Split(cell, sep)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Splitter turns a cell into list entries, either by separator or as
// lowercased word n-grams.
type Splitter struct {
	Sep    string
	Tokens bool
	// MaxN is the largest n-gram size in token mode; values below 1 mean 1.
	MaxN int
}

// Split returns the list entries of cell.
func (s Splitter) Split(cell string) []string {
	if !s.Tokens {
		return SplitList(cell, s.Sep)
	}
	maxN := s.MaxN
	if maxN < 1 {
		maxN = 1
	}
	return TokenNgrams(Tokenize(strings.ToLower(cell)), 1, maxN)
}
