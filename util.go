package sentimently

import (
	"maps"
	"slices"
)

// sortedKeys never returns nil, so empty sets still encode as lists.
func sortedKeys(m map[string]bool) []string {
	if len(m) == 0 {
		return []string{}
	}
	return slices.Sorted(maps.Keys(m))
}

// abs returns the magnitude of an integer score.
func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
