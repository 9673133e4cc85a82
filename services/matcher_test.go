package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "khach san bien xanh", NormalizeInput("  Khách Sạn Biển Xanh "))
	assert.Equal(t, "hotel", NormalizeInput("HOTEL"))
	assert.Equal(t, "", NormalizeInput("   "))
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("seaside", "seaside"))
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("abc", "xyz"))

	// One substitution over seven characters.
	assert.InDelta(t, 1.0-1.0/7.0, Similarity("seaside", "seasida"), 1e-9)
}

func TestNameScore(t *testing.T) {
	assert.Equal(t, 1.0, NameScore("biển", "Khách Sạn Biển Xanh"))
	assert.Equal(t, 0.0, NameScore("", "Khách Sạn Biển Xanh"))

	fuzzy := NameScore("bien xank", "Biển Xanh")
	assert.Greater(t, fuzzy, 0.5)
	assert.Less(t, fuzzy, 1.0)
}

func TestNameMatcherFindsClosest(t *testing.T) {
	names := []string{"Seaside Resort", "Mountain Lodge", "City Central"}
	matcher := NewNameMatcher(names)

	assert.Equal(t, "seaside resort", matcher.Closest("seasid resort"))
	assert.Equal(t, "mountain lodge", matcher.Closest("montain lodge"))
}
