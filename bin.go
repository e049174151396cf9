package binpack

import (
	"math"
	"slices"
)

// Bin records available space within a growable 2D region. Areas are packed
// by fitting them into the corners of existing empty regions, scoring each
// candidate by how many rectangular empty spaces would result from splitting
// the regions it intersects, weighted by the amount of space left behind.
//
// The bin tracks only empty space. Rectangles returned by TryPackArea are not
// retained, and callers are responsible for remembering their own placements.
// A Bin provides no synchronization and must not be shared between goroutines
// without external locking.
//
// The zero value is an empty bin with no dimensions, ready for use.
type Bin struct {
	dimensions   Area
	emptyRegions []Rect
}

// GetDimensions returns the dimensions of the bin, empty or not.
func (b *Bin) GetDimensions() Area {
	return b.dimensions
}

// GetEmptyRegions returns the rectangles of available empty space within the
// bin. The regions are ordered approximately by distance from the origin, but
// callers must not rely on any particular geometric ordering.
//
// The backing memory is owned by the bin, and a copy should be made if
// modification or persistence is required.
func (b *Bin) GetEmptyRegions() []Rect {
	return b.emptyRegions
}

// TryPackArea attempts to locate an optimal position in the bin for packing
// area, trying both the given orientation and its 90-degree rotation. On
// success the chosen location is returned and the tracked empty space shrinks
// accordingly; the caller can detect rotation by comparing the dimensions of
// the result against the request.
//
// InvalidRect is returned when the area has a zero dimension, when it exceeds
// the current bin dimensions, or when no empty region can accommodate it. The
// oversize check applies only to the unrotated orientation.
func (b *Bin) TryPackArea(area Area) Rect {
	if area.Width <= 0 || area.Height <= 0 ||
		area.Width > b.dimensions.Width || area.Height > b.dimensions.Height {
		return InvalidRect
	}

	orientations := [2]Area{area, area.Rotated()}
	count := 2
	if area.Width == area.Height {
		count = 1
	}

	// Try to fit the area into every corner of every empty region and compare
	// the placement against every empty region to see which position and
	// orientation results in the lowest clip score.
	minScore := math.MaxInt
	best := InvalidRect

search:
	for _, size := range orientations[:count] {
		for _, r := range b.emptyRegions {
			if r.Width() < size.Width || r.Height() < size.Height {
				continue
			}

			// Candidate placements flush against each corner: NW, NE, SW, SE.
			corners := [4]Rect{
				NewRect(r.Left, r.Top, r.Left+size.Width-1, r.Top+size.Height-1),
				NewRect(r.Right-size.Width+1, r.Top, r.Right, r.Top+size.Height-1),
				NewRect(r.Left, r.Bottom-size.Height+1, r.Left+size.Width-1, r.Bottom),
				NewRect(r.Right-size.Width+1, r.Bottom-size.Height+1, r.Right, r.Bottom),
			}
			for _, clip := range corners {
				var score int
				for _, region := range b.emptyRegions {
					score += clipScore(region, clip)
				}
				if score < minScore {
					minScore = score
					best = clip
					if score == 0 {
						// A zero score means the placement costs nothing
						// beyond trivial splitting; it cannot be beaten.
						break search
					}
				}
			}
		}
	}

	if !best.IsValid() {
		return InvalidRect
	}
	b.place(best)
	return best
}

// ExtendDimensions increases the dimensions of the bin by extension on the
// right and bottom edges. Empty regions along an extended edge are widened in
// place, and a new empty region is created for the added strip when no single
// region spans the full extent of that edge.
func (b *Bin) ExtendDimensions(extension Area) {
	rightEdge := max(b.dimensions.Width-1, 0)
	bottomEdge := max(b.dimensions.Height-1, 0)

	if extension.Width > 0 && b.dimensions.Height > 0 {
		// If one empty region spans the entire height, just expand that one
		// to the right.
		if i := b.findEdgeSpan(rightEdge, bottomEdge, false); i >= 0 {
			b.emptyRegions[i].Right += extension.Width
		} else {
			// Otherwise expand all regions along the right edge and create a
			// new empty region that spans the added area.
			for i := range b.emptyRegions {
				if b.emptyRegions[i].Right == rightEdge {
					b.emptyRegions[i].Right += extension.Width
				}
			}
			left := b.dimensions.Width
			b.emptyRegions = append(b.emptyRegions, NewRect(left, 0, left+extension.Width-1, bottomEdge))
		}
	}
	b.dimensions.Width += extension.Width
	rightEdge = b.dimensions.Width - 1

	if extension.Height > 0 && b.dimensions.Width > 0 {
		if i := b.findEdgeSpan(rightEdge, bottomEdge, true); i >= 0 {
			b.emptyRegions[i].Bottom += extension.Height
		} else {
			for i := range b.emptyRegions {
				if b.emptyRegions[i].Bottom == bottomEdge {
					b.emptyRegions[i].Bottom += extension.Height
				}
			}
			top := b.dimensions.Height
			b.emptyRegions = append(b.emptyRegions, NewRect(0, top, rightEdge, top+extension.Height-1))
		}
	}
	b.dimensions.Height += extension.Height

	b.resolveOverlaps()
}

// findEdgeSpan returns the index of a region that touches the right edge of
// the bin while spanning its full height, or with horizontal set, touches the
// bottom edge while spanning its full width. Returns -1 when no such region
// exists.
func (b *Bin) findEdgeSpan(rightEdge, bottomEdge int, horizontal bool) int {
	for i, r := range b.emptyRegions {
		if horizontal {
			if r.Bottom == bottomEdge && r.Right-r.Left == rightEdge {
				return i
			}
		} else if r.Right == rightEdge && r.Bottom-r.Top == bottomEdge {
			return i
		}
	}
	return -1
}

// clipScore scores the result of clipping region by clip, based on the number
// of empty spaces that would result from the split and the amount of space
// left behind. A region that clip does not touch scores 0, as does one that
// clip consumes entirely.
func clipScore(region, clip Rect) int {
	if clip.Left > region.Right || clip.Right < region.Left ||
		clip.Top > region.Bottom || clip.Bottom < region.Top {
		return 0
	}

	// Each clip edge that falls strictly inside the region produces a new
	// split edge; an edge pair flush with the region avoids a split on that
	// axis entirely.
	score := 2
	if clip.Left > region.Left && clip.Left <= region.Right {
		score++
	}
	if clip.Top > region.Top && clip.Top <= region.Bottom {
		score++
	}
	if clip.Right < region.Right && clip.Right >= region.Left {
		score++
	}
	if clip.Bottom < region.Bottom && clip.Bottom >= region.Top {
		score++
	}
	if clip.Top == region.Top && clip.Bottom == region.Bottom {
		score--
	}
	if clip.Left == region.Left && clip.Right == region.Right {
		score--
	}

	// Scale by the amount of empty area that remains. (A perfect 0 if none.)
	intersection := region.Intersect(clip)
	return score * (region.Area() - intersection.Area())
}

// place removes every empty region that clip intersects and re-inserts what
// remains of each as residual strips, each spanning the full extent of its
// source region on the perpendicular axis. The strips may overlap one another
// until resolveOverlaps runs.
func (b *Bin) place(clip Rect) {
	var residual []Rect
	for i := 0; i < len(b.emptyRegions); {
		r := b.emptyRegions[i]
		if !clip.Intersects(r) {
			i++
			continue
		}
		if clip.Left > r.Left && clip.Left <= r.Right {
			residual = append(residual, NewRect(r.Left, r.Top, clip.Left-1, r.Bottom))
		}
		if clip.Top > r.Top && clip.Top <= r.Bottom {
			residual = append(residual, NewRect(r.Left, r.Top, r.Right, clip.Top-1))
		}
		if clip.Right < r.Right && clip.Right >= r.Left {
			residual = append(residual, NewRect(clip.Right+1, r.Top, r.Right, r.Bottom))
		}
		if clip.Bottom < r.Bottom && clip.Bottom >= r.Top {
			residual = append(residual, NewRect(r.Left, clip.Bottom+1, r.Right, r.Bottom))
		}
		b.emptyRegions = slices.Delete(b.emptyRegions, i, i+1)
	}

	for _, region := range residual {
		b.insertRegion(region)
	}
	b.resolveOverlaps()
}

// insertRegion inserts a region into the empty-region sequence. If an
// existing region shares the same left/right pair and touches or overlaps it
// vertically, or likewise with the top/bottom pair horizontally, the two are
// merged instead. The insertion position is ordered by the region's
// approximate distance from the origin.
func (b *Bin) insertRegion(region Rect) {
	for i, r := range b.emptyRegions {
		if (region.Left == r.Left && region.Right == r.Right && region.Top <= r.Bottom && region.Bottom >= r.Top) ||
			(region.Top == r.Top && region.Bottom == r.Bottom && region.Left <= r.Right && region.Right >= r.Left) {
			// The shared edge pair makes the bounding union exact.
			region = region.Union(r)
			b.emptyRegions = slices.Delete(b.emptyRegions, i, i+1)
			break
		}
	}

	key := region.Left * region.Top
	idx := len(b.emptyRegions)
	for i, r := range b.emptyRegions {
		if key < r.Left*r.Top {
			idx = i
			break
		}
	}
	b.emptyRegions = slices.Insert(b.emptyRegions, idx, region)
}

// resolveOverlaps restores pairwise disjointness after residual strips or
// edge extensions leave overlapping regions behind. The earlier region of an
// overlapping pair is kept whole, and the later one is cut down to the
// disjoint remainder outside it and re-inserted. The union of empty space is
// unchanged. Each pass strictly reduces the total overlapping area, so the
// loop terminates.
func (b *Bin) resolveOverlaps() {
	for again := true; again; {
		again = false
	scan:
		for i := 0; i < len(b.emptyRegions); i++ {
			for j := i + 1; j < len(b.emptyRegions); j++ {
				keep := b.emptyRegions[i]
				r := b.emptyRegions[j]
				if !keep.Intersects(r) {
					continue
				}
				b.emptyRegions = slices.Delete(b.emptyRegions, j, j+1)
				for _, piece := range subtract(r, keep) {
					b.insertRegion(piece)
				}
				again = true
				break scan
			}
		}
	}
}

// subtract returns the area of r not covered by cut as up to four disjoint
// rectangles: full-height strips to the left and right of cut, and top and
// bottom strips spanning only the columns cut occupies. The result is empty
// when cut contains r.
func subtract(r, cut Rect) []Rect {
	var pieces []Rect
	if cut.Left > r.Left {
		pieces = append(pieces, NewRect(r.Left, r.Top, cut.Left-1, r.Bottom))
	}
	if cut.Right < r.Right {
		pieces = append(pieces, NewRect(cut.Right+1, r.Top, r.Right, r.Bottom))
	}
	left := max(r.Left, cut.Left)
	right := min(r.Right, cut.Right)
	if cut.Top > r.Top {
		pieces = append(pieces, NewRect(left, r.Top, right, cut.Top-1))
	}
	if cut.Bottom < r.Bottom {
		pieces = append(pieces, NewRect(left, cut.Bottom+1, right, r.Bottom))
	}
	return pieces
}

// vim: ts=4
