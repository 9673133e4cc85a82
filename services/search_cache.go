package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"stayhub/dto"
)

// Remembered search filters expire after half an hour of inactivity.
const filtersTTL = 30 * time.Minute

// SaveLastFilters stores a user's latest search filters.
func SaveLastFilters(ctx context.Context, rdb *redis.Client, key string, filters *dto.SearchFilters) error {
	b, err := json.Marshal(filters)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, "last_filters:"+key, b, filtersTTL).Err()
}

// GetLastFilters loads a user's remembered search filters.
func GetLastFilters(ctx context.Context, rdb *redis.Client, key string) (*dto.SearchFilters, error) {
	val, err := rdb.Get(ctx, "last_filters:"+key).Result()
	if err != nil {
		return nil, err
	}
	var filters dto.SearchFilters
	if err := json.Unmarshal([]byte(val), &filters); err != nil {
		return nil, err
	}
	return &filters, nil
}

// ClearLastFilters forgets a user's search state.
func ClearLastFilters(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, "last_filters:"+key).Err()
}

// MergeFilters overlays a new request on the remembered one: fields the new
// request leaves empty keep their previous value.
func MergeFilters(old, next *dto.SearchFilters) *dto.SearchFilters {
	next.Name = orString(next.Name, old.Name)
	next.Province = orString(next.Province, old.Province)
	next.District = orString(next.District, old.District)
	next.CheckIn = orTimePointer(next.CheckIn, old.CheckIn)
	next.CheckOut = orTimePointer(next.CheckOut, old.CheckOut)

	// A re-entered bound invalidates a remembered opposite bound that no
	// longer brackets it.
	if next.PriceMin != nil && old.PriceMax != nil && *next.PriceMin > *old.PriceMax {
		next.PriceMax = nil
	} else {
		next.PriceMax = orInt64Pointer(next.PriceMax, old.PriceMax)
	}
	if next.PriceMax != nil && old.PriceMin != nil && *next.PriceMax < *old.PriceMin {
		next.PriceMin = nil
	} else {
		next.PriceMin = orInt64Pointer(next.PriceMin, old.PriceMin)
	}
	return next
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orInt64Pointer(newVal, oldVal *int64) *int64 {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orTimePointer(newVal, oldVal *time.Time) *time.Time {
	if newVal != nil {
		return newVal
	}
	return oldVal
}
