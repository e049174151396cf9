package binpack

import "cmp"

// SortFunc is a prototype for a function that compares two areas, returning
// standard comparer result of -1 for less-than, 1 for greater-than, or 0 for
// equal to.
type SortFunc func(a, b Area) int

// SortArea sorts two areas in descending order (greatest to least) by
// comparing the total area of each.
func SortArea(a, b Area) int {
	return cmp.Compare(b.Total(), a.Total())
}

// SortPerimeter sorts two areas in descending order (greatest to least) by
// comparing the perimeter of each.
func SortPerimeter(a, b Area) int {
	return cmp.Compare(b.Perimeter(), a.Perimeter())
}

// SortDiff sorts two areas in descending order (greatest to least) by
// comparing the difference between the width/height of each.
func SortDiff(a, b Area) int {
	return cmp.Compare(abs(b.Width-b.Height), abs(a.Width-a.Height))
}

// SortMinSide sorts two areas in descending order (greatest to least) by
// comparing the shortest side of each.
func SortMinSide(a, b Area) int {
	return cmp.Compare(b.MinSide(), a.MinSide())
}

// SortMaxSide sorts two areas in descending order (greatest to least) by
// comparing the longest side of each.
func SortMaxSide(a, b Area) int {
	return cmp.Compare(b.MaxSide(), a.MaxSide())
}

// SortRatio sorts two areas in descending order (greatest to least) by
// comparing the ratio between the width/height of each.
func SortRatio(a, b Area) int {
	return cmp.Compare(b.Ratio(), a.Ratio())
}

func abs(x int) int {
	if x >= 0 {
		return x
	}
	return -x
}

// vim: ts=4
