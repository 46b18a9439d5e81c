package lists

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestProcessList_PropertyBased checks that the output keeps exactly the
// values above the threshold, in non-increasing order.
func TestProcessList_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("output is filtered and sorted descending", prop.ForAll(
		func(numbers []int) bool {
			out := ProcessList(numbers)
			want := 0
			for _, n := range numbers {
				if n > Threshold {
					want++
				}
			}
			if len(out) != want {
				return false
			}
			for i, n := range out {
				if n <= Threshold {
					return false
				}
				if i > 0 && out[i-1] < n {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-50, 50)),
	))

	properties.TestingRun(t)
}

// TestRemoveDuplicates_PropertyBased checks uniqueness and first-seen order.
func TestRemoveDuplicates_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("distinct items in first-seen order", prop.ForAll(
		func(items []int) bool {
			out := RemoveDuplicates(items)
			seen := map[int]bool{}
			for _, v := range out {
				if seen[v] {
					return false
				}
				seen[v] = true
			}
			for _, v := range items {
				if !seen[v] {
					return false
				}
			}
			// Every kept item appears at its first index in the input.
			last := -1
			for _, v := range out {
				idx := slices.Index(items, v)
				if idx <= last {
					return false
				}
				last = idx
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 10)),
	))

	properties.Property("extrema bound every element", prop.ForAll(
		func(numbers []int) bool {
			if len(numbers) == 0 {
				return true
			}
			hi, errMax := FindMax(numbers)
			lo, errMin := FindMin(numbers)
			if errMax != nil || errMin != nil {
				return false
			}
			for _, n := range numbers {
				if n > hi || n < lo {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}
