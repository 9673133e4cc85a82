package services

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// NormalizeInput strips diacritics and case so "Khách Sạn" and "khach san"
// compare equal.
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// NewNameMatcher builds a fuzzy matcher over normalized hotel names.
func NewNameMatcher(names []string) *closestmatch.ClosestMatch {
	normalized := make([]string, len(names))
	for i, name := range names {
		normalized[i] = NormalizeInput(name)
	}
	return closestmatch.New(normalized, []int{2, 3})
}

// Similarity scores two normalized strings in [0, 1] by Levenshtein
// distance over the longer length.
func Similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// NameScore ranks how well a hotel name answers a free-text query: exact
// substring beats fuzzy similarity.
func NameScore(query, name string) float64 {
	q := NormalizeInput(query)
	n := NormalizeInput(name)
	if q == "" {
		return 0
	}
	if strings.Contains(n, q) {
		return 1.0
	}
	return Similarity(q, n)
}
