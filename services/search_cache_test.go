package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayhub/dto"
)

func int64Ptr(v int64) *int64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestMergeFiltersKeepsOldValues(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	old := &dto.SearchFilters{
		Name:     "seaside",
		Province: "Da Nang",
		CheckIn:  timePtr(checkIn),
		PriceMin: int64Ptr(5000),
		PriceMax: int64Ptr(20000),
	}
	next := &dto.SearchFilters{Province: "Hue"}

	merged := MergeFilters(old, next)

	assert.Equal(t, "seaside", merged.Name)
	assert.Equal(t, "Hue", merged.Province)
	assert.Equal(t, checkIn, *merged.CheckIn)
	assert.Equal(t, int64(5000), *merged.PriceMin)
	assert.Equal(t, int64(20000), *merged.PriceMax)
}

func TestMergeFiltersNewValuesWin(t *testing.T) {
	old := &dto.SearchFilters{Name: "seaside", PriceMin: int64Ptr(5000)}
	next := &dto.SearchFilters{Name: "mountain", PriceMin: int64Ptr(8000)}

	merged := MergeFilters(old, next)

	assert.Equal(t, "mountain", merged.Name)
	assert.Equal(t, int64(8000), *merged.PriceMin)
}

func TestMergeFiltersDropsStalePriceMax(t *testing.T) {
	// The remembered ceiling no longer brackets the new floor, so it must go.
	old := &dto.SearchFilters{PriceMax: int64Ptr(10000)}
	next := &dto.SearchFilters{PriceMin: int64Ptr(15000)}

	merged := MergeFilters(old, next)

	assert.Equal(t, int64(15000), *merged.PriceMin)
	assert.Nil(t, merged.PriceMax)
}

func TestMergeFiltersDropsStalePriceMin(t *testing.T) {
	old := &dto.SearchFilters{PriceMin: int64Ptr(15000)}
	next := &dto.SearchFilters{PriceMax: int64Ptr(10000)}

	merged := MergeFilters(old, next)

	assert.Equal(t, int64(10000), *merged.PriceMax)
	assert.Nil(t, merged.PriceMin)
}
