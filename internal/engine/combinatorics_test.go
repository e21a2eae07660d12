package engine

import (
	"reflect"
	"testing"
)

func TestForEachCombination(t *testing.T) {
	var got [][]int
	forEachCombination([]int{1, 2, 3, 4}, 2, func(subset []int) bool {
		got = append(got, append([]int(nil), subset...))
		return true
	})

	want := [][]int{
		{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("forEachCombination order-2 subsets = %v, want %v", got, want)
	}
}

func TestForEachCombinationEarlyStop(t *testing.T) {
	count := 0
	forEachCombination([]int{1, 2, 3}, 2, func(subset []int) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("visit called %d times, want exactly 1 after returning false", count)
	}
}

func TestForEachCombinationKEqualsN(t *testing.T) {
	var got []int
	forEachCombination([]int{5, 6, 7}, 3, func(subset []int) bool {
		got = subset
		return true
	})
	if !reflect.DeepEqual(got, []int{5, 6, 7}) {
		t.Errorf("got %v, want [5 6 7]", got)
	}
}

func TestIntersectionKeyCanonical(t *testing.T) {
	if intersectionKey("b", "a") != intersectionKey("a", "b") {
		t.Errorf("intersectionKey should be symmetric regardless of argument order")
	}
	a, b := splitIntersectionKey(intersectionKey("row0", "box1"))
	if a != "box1" || b != "row0" {
		t.Errorf("splitIntersectionKey = (%q, %q), want (\"box1\", \"row0\")", a, b)
	}
}
