package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("")
	assert.Error(t, err)
	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	days := DaysBetween(MustParseDate("2024-02-27"), MustParseDate("2024-03-01"))
	assert.Equal(t, []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01"}, days)

	assert.Empty(t, DaysBetween(MustParseDate("2024-03-02"), MustParseDate("2024-03-01")))
}

func TestSlices(t *testing.T) {
	nums := []int{1, 2, 3, 4}

	assert.Equal(t, []int{2, 4}, Filter(nums, func(n int) bool { return n%2 == 0 }))
	assert.Equal(t, []string{"1", "2", "3", "4"}, Map(nums, func(n int) string { return string(rune('0' + n)) }))
	assert.Equal(t, 10.0, SumBy(nums, func(n int) float64 { return float64(n) }))

	found, ok := Find(nums, func(n int) bool { return n > 2 })
	require.True(t, ok)
	assert.Equal(t, 3, found)
	_, ok = Find(nums, func(n int) bool { return n > 10 })
	assert.False(t, ok)
	assert.Empty(t, Filter([]int(nil), func(int) bool { return true }))
	assert.Empty(t, Map([]int(nil), func(n int) int { return n }))

	groups := GroupBy(nums, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{1, 3}, groups[false])
	assert.Equal(t, []int{2, 4}, groups[true])

	assert.Equal(t, 5, *Ptr(5))
}
