package binpack

import "slices"

// growRetryLimit is the maximum number of growth rounds attempted for a
// single insertion before giving up. Sensible growth policies fit within one
// or two rounds; the limit only guards against policies whose increments
// never catch up with a heavily fragmented bin.
const growRetryLimit = 8

// GrowFunc decides how much to extend a bin when a request fails to pack.
// It receives the current bin dimensions and the area that failed, and
// returns the extension to apply. Returning an area with no positive
// dimension refuses growth and fails the insertion.
type GrowFunc func(current, failed Area) Area

// GrowDouble extends the bin by its current dimensions on each axis, or by
// the failed request when that is larger. This is the default policy, and
// guarantees the retried request fits.
func GrowDouble(current, failed Area) Area {
	return Area{
		Width:  max(current.Width, failed.Width),
		Height: max(current.Height, failed.Height),
	}
}

// GrowStep returns a policy that extends the bin by a fixed increment,
// raised as needed so the bin can contain the failed request. Useful when
// the backing storage is reallocated in coarse blocks.
func GrowStep(step Area) GrowFunc {
	return func(current, failed Area) Area {
		ext := step
		if current.Width+ext.Width < failed.Width {
			ext.Width = failed.Width - current.Width
		}
		if current.Height+ext.Height < failed.Height {
			ext.Height = failed.Height - current.Height
		}
		return ext
	}
}

// GrowNone refuses all growth, limiting the atlas to its initial dimensions.
func GrowNone(Area, Area) Area {
	return Area{}
}

// Placement records where a requested area was packed within an atlas.
type Placement struct {
	// ID is the user-defined identifier supplied with the request.
	ID int `json:"id"`
	// Rect is the location of the packed area within the atlas.
	Rect
	// Rotated indicates the area was rotated 90 degrees to achieve a better
	// fit.
	Rotated bool `json:"rotated,omitempty"`
}

type stagedArea struct {
	id   int
	area Area
}

// Atlas packs areas into a single growable bin on demand, remembering each
// placement by its identifier. It implements the retry loop expected of bin
// consumers: when a request does not fit, the bin is extended using the
// configured growth policy and the request is retried. Callers that maintain
// backing storage (e.g. a texture) should resize it to Size after insertions.
type Atlas struct {
	bin      Bin
	placed   []Placement
	staged   []stagedArea
	grow     GrowFunc
	sortFunc SortFunc
	sortRev  bool
}

// NewAtlas initializes a new Atlas with the specified initial dimensions and
// growth policy. A nil policy defaults to GrowDouble.
func NewAtlas(initial Area, grow GrowFunc) *Atlas {
	a := &Atlas{grow: grow, sortFunc: SortArea}
	if a.grow == nil {
		a.grow = GrowDouble
	}
	a.bin.ExtendDimensions(initial)
	return a
}

// Insert packs a single area immediately, growing the bin as necessary. The
// returned flag reports success; on failure the placement is the zero value.
// The bin retains any growth applied during a failed insertion.
func (a *Atlas) Insert(id int, area Area) (Placement, bool) {
	if area.Width <= 0 || area.Height <= 0 {
		return Placement{}, false
	}

	for retry := 0; ; retry++ {
		rect := a.bin.TryPackArea(area)
		if rect.IsValid() {
			p := Placement{ID: id, Rect: rect, Rotated: rect.Width() != area.Width}
			a.placed = append(a.placed, p)
			return p, true
		}

		if retry == growRetryLimit {
			return Placement{}, false
		}
		ext := a.grow(a.bin.GetDimensions(), area)
		if ext.Width <= 0 && ext.Height <= 0 {
			return Placement{}, false
		}
		a.bin.ExtendDimensions(ext)
	}
}

// InsertArea packs a single area immediately, growing the bin as necessary.
// The return value reports success.
func (a *Atlas) InsertArea(id, width, height int) bool {
	_, ok := a.Insert(id, NewArea(width, height))
	return ok
}

// Stage queues an area to be packed with the next call to PackAll.
func (a *Atlas) Stage(id int, area Area) {
	a.staged = append(a.staged, stagedArea{id: id, area: area})
}

// Sorter sets the comparer function used for pre-sorting staged areas before
// packing. Depending on the input data, this can provide a significant
// improvement on efficiency.
//
// Default: SortArea
func (a *Atlas) Sorter(compare SortFunc, reverse bool) {
	a.sortFunc = compare
	a.sortRev = reverse
}

// PackAll sorts and packs all areas that are currently staged, and returns
// the IDs of any that could not be packed.
func (a *Atlas) PackAll() []int {
	if a.sortFunc != nil {
		if a.sortRev {
			slices.SortStableFunc(a.staged, func(x, y stagedArea) int {
				return a.sortFunc(y.area, x.area)
			})
		} else {
			slices.SortStableFunc(a.staged, func(x, y stagedArea) int {
				return a.sortFunc(x.area, y.area)
			})
		}
	}

	var failed []int
	for _, s := range a.staged {
		if _, ok := a.Insert(s.id, s.area); !ok {
			failed = append(failed, s.id)
		}
	}
	a.staged = a.staged[:0]
	return failed
}

// Placements returns a slice of all placements made so far.
//
// The backing memory is owned by the atlas, and a copy should be made if
// modification or persistence is required.
func (a *Atlas) Placements() []Placement {
	return a.placed
}

// Map creates and returns a map where each key is an ID, and the value is
// the placement it pertains to.
func (a *Atlas) Map() map[int]Placement {
	mapping := make(map[int]Placement, len(a.placed))
	for _, p := range a.placed {
		mapping[p.ID] = p
	}
	return mapping
}

// Size returns the current dimensions of the atlas.
func (a *Atlas) Size() Area {
	return a.bin.GetDimensions()
}

// EmptyRegions returns the rectangles of available empty space within the
// atlas. See Bin.GetEmptyRegions.
func (a *Atlas) EmptyRegions() []Rect {
	return a.bin.GetEmptyRegions()
}

// Used computes the ratio of packed surface area to the total area of the
// atlas, in the range of 0.0 and 1.0.
func (a *Atlas) Used() float64 {
	size := a.bin.GetDimensions()
	if size.Width <= 0 || size.Height <= 0 {
		return 0
	}
	var used int
	for i := range a.placed {
		used += a.placed[i].Rect.Area()
	}
	return float64(used) / float64(size.Total())
}

// Clear removes all placed and staged areas without changing the current
// dimensions of the atlas or its configuration.
func (a *Atlas) Clear() {
	size := a.bin.GetDimensions()
	a.bin = Bin{}
	a.bin.ExtendDimensions(size)
	a.placed = a.placed[:0]
	a.staged = a.staged[:0]
}

// vim: ts=4
