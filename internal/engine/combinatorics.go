package engine

import "sort"

// ============================================================================
// Small Shared Helpers - Deterministic Iteration and Combinations
// ============================================================================
//
// forEachCombination enumerates order-k subsets in ascending index order,
// the same incremental-index technique the teacher's board combination
// helper used for candidate elimination groups, generalized to operate on
// an arbitrary slice of cell indices rather than a fixed 3x3 box.
//
// ============================================================================

// sortedKeys returns the keys of an intersection map in lexical order, so
// B-rule application order is deterministic regardless of map iteration.
func sortedKeys(m map[string][]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// splitIntersectionKey reverses intersectionKey's "A,B" canonical join.
func splitIntersectionKey(key string) (a, b string) {
	for i := 0; i < len(key); i++ {
		if key[i] == ',' {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}

// toCellSet builds a membership-test map from a slice of cell indices.
func toCellSet(cells []int) map[int]bool {
	set := make(map[int]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return set
}

// forEachCombination calls visit once for every order-k subset of items,
// in ascending-index lexicographic order, stopping early if visit returns
// false. items is assumed already sorted ascending.
func forEachCombination(items []int, k int, visit func(subset []int) bool) {
	n := len(items)
	if k <= 0 || k > n {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		subset := make([]int, k)
		for i, pos := range idx {
			subset[i] = items[pos]
		}
		if !visit(subset) {
			return
		}

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
