// Package lists holds small slice helpers: filtering, sorting, totals,
// extrema and de-duplication. None of them mutate their input.
package lists

import (
	"cmp"
	"errors"
	"slices"
)

// Number is the set of element types the numeric helpers accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Threshold is the exclusive lower bound applied by ProcessList.
const Threshold = 5

// Errors returned for empty input.
var (
	ErrEmptyMax = errors.New("cannot find maximum in empty slice")
	ErrEmptyMin = errors.New("cannot find minimum in empty slice")
)

// ProcessList keeps the values greater than Threshold and returns them in
// descending order. The input slice is not modified.
func ProcessList[T Number](numbers []T) []T {
	out := make([]T, 0, len(numbers))
	for _, n := range numbers {
		if n > Threshold {
			out = append(out, n)
		}
	}
	slices.SortFunc(out, func(a, b T) int { return cmp.Compare(b, a) })
	return out
}

// CalculateTotal returns the sum of numbers, or zero for an empty slice.
func CalculateTotal[T Number](numbers []T) T {
	var total T
	for _, n := range numbers {
		total += n
	}
	return total
}

// FindMax returns the largest value.
//
// Returns:
//   - T: The maximum.
//   - error: ErrEmptyMax if numbers is empty.
func FindMax[T Number](numbers []T) (T, error) {
	if len(numbers) == 0 {
		var zero T
		return zero, ErrEmptyMax
	}
	return slices.Max(numbers), nil
}

// FindMin returns the smallest value.
//
// Returns:
//   - T: The minimum.
//   - error: ErrEmptyMin if numbers is empty.
func FindMin[T Number](numbers []T) (T, error) {
	if len(numbers) == 0 {
		var zero T
		return zero, ErrEmptyMin
	}
	return slices.Min(numbers), nil
}

// RemoveDuplicates returns the distinct items in first-seen order.
func RemoveDuplicates[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
