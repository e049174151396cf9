package binpack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBin creates a bin extended to the given dimensions.
func testBin(width, height int) *Bin {
	var b Bin
	b.ExtendDimensions(NewArea(width, height))
	return &b
}

// totalEmptyArea sums the area of every empty region. Regions are pairwise
// disjoint, so the sum equals the area of the union.
func totalEmptyArea(b *Bin) int {
	var total int
	for _, r := range b.GetEmptyRegions() {
		total += r.Area()
	}
	return total
}

// requireDisjoint fails the test when any two empty regions overlap.
func requireDisjoint(t *testing.T, b *Bin) {
	t.Helper()
	regions := b.GetEmptyRegions()
	for i := 0; i < len(regions)-1; i++ {
		for j := i + 1; j < len(regions); j++ {
			if regions[i].Intersects(regions[j]) {
				t.Fatalf("empty regions %s and %s overlap", regions[i].String(), regions[j].String())
			}
		}
	}
}

func TestTryPackZeroAreaRejected(t *testing.T) {
	b := testBin(10, 10)
	before := append([]Rect(nil), b.GetEmptyRegions()...)

	for _, area := range []Area{{0, 5}, {5, 0}, {0, 0}} {
		rect := b.TryPackArea(area)
		assert.False(t, rect.IsValid(), "packing %s should fail", area.String())
		assert.Equal(t, InvalidRect, rect)
	}

	assert.Equal(t, NewArea(10, 10), b.GetDimensions())
	assert.Equal(t, before, b.GetEmptyRegions(), "failed packing must not disturb empty regions")
}

func TestTryPackOversizeRejected(t *testing.T) {
	b := testBin(10, 10)
	before := append([]Rect(nil), b.GetEmptyRegions()...)

	rect := b.TryPackArea(NewArea(20, 20))
	assert.Equal(t, InvalidRect, rect)
	assert.Equal(t, before, b.GetEmptyRegions())
}

func TestTryPackOversizeRotationNotTried(t *testing.T) {
	// The oversize check applies only to the unrotated orientation: a request
	// whose rotated form would fit is still rejected outright.
	b := testBin(30, 10)
	rect := b.TryPackArea(NewArea(5, 20))
	assert.Equal(t, InvalidRect, rect)
	assert.Equal(t, 300, totalEmptyArea(b))
}

func TestTryPackEmptyBin(t *testing.T) {
	var b Bin
	rect := b.TryPackArea(NewArea(1, 1))
	assert.Equal(t, InvalidRect, rect)
}

func TestExtendDimensionsEmptyBin(t *testing.T) {
	b := testBin(10, 10)
	require.Equal(t, NewArea(10, 10), b.GetDimensions())
	require.Equal(t, []Rect{NewRect(0, 0, 9, 9)}, b.GetEmptyRegions())
}

func TestExtendDimensionsZeroNoop(t *testing.T) {
	b := testBin(10, 10)
	b.ExtendDimensions(NewArea(0, 0))
	assert.Equal(t, NewArea(10, 10), b.GetDimensions())
	assert.Equal(t, []Rect{NewRect(0, 0, 9, 9)}, b.GetEmptyRegions())
}

func TestExtendDimensionsWidthThenHeight(t *testing.T) {
	var b Bin

	// A width-only extension of a zero-height bin updates dimensions without
	// any region bookkeeping; there is nothing to extend yet.
	b.ExtendDimensions(NewArea(10, 0))
	require.Equal(t, NewArea(10, 0), b.GetDimensions())
	require.Empty(t, b.GetEmptyRegions())

	b.ExtendDimensions(NewArea(0, 10))
	require.Equal(t, NewArea(10, 10), b.GetDimensions())
	require.Equal(t, []Rect{NewRect(0, 0, 9, 9)}, b.GetEmptyRegions())
}

func TestExtendDimensionsFullSpanWidens(t *testing.T) {
	b := testBin(10, 10)
	rect := b.TryPackArea(NewArea(4, 4))
	require.Equal(t, NewRect(0, 0, 3, 3), rect)
	require.Equal(t, []Rect{NewRect(4, 0, 9, 9), NewRect(0, 4, 3, 9)}, b.GetEmptyRegions())

	// One region spans the full height at the right edge, so the extension
	// widens it in place instead of creating a new region.
	b.ExtendDimensions(NewArea(5, 0))
	assert.Equal(t, NewArea(15, 10), b.GetDimensions())
	assert.Equal(t, []Rect{NewRect(4, 0, 14, 9), NewRect(0, 4, 3, 9)}, b.GetEmptyRegions())
	requireDisjoint(t, b)
}

func TestExtendDimensionsNoFullSpan(t *testing.T) {
	b := testBin(10, 10)
	rect := b.TryPackArea(NewArea(10, 4))
	require.Equal(t, NewRect(0, 0, 9, 3), rect)
	require.Equal(t, []Rect{NewRect(0, 4, 9, 9)}, b.GetEmptyRegions())

	// No region spans the full height at the right edge: regions touching the
	// edge widen, and a strip covers the remainder of the added columns.
	b.ExtendDimensions(NewArea(5, 0))
	assert.Equal(t, NewArea(15, 10), b.GetDimensions())
	assert.Equal(t, []Rect{NewRect(0, 4, 14, 9), NewRect(10, 0, 14, 3)}, b.GetEmptyRegions())
	requireDisjoint(t, b)
	assert.Equal(t, 150-40, totalEmptyArea(b))
}

func TestPackSmallArea(t *testing.T) {
	b := testBin(10, 10)
	rect := b.TryPackArea(NewArea(4, 4))

	require.True(t, rect.IsValid())
	assert.Equal(t, 4, rect.Width())
	assert.Equal(t, 4, rect.Height())
	outer := NewRect(0, 0, 9, 9)
	assert.True(t, outer.ContainsRect(rect))

	requireDisjoint(t, b)
	assert.Equal(t, 100-16, totalEmptyArea(b))
	for _, r := range b.GetEmptyRegions() {
		assert.False(t, r.Intersects(rect), "empty region %s overlaps placement", r.String())
	}
}

func TestPackPerfectFit(t *testing.T) {
	b := testBin(10, 10)
	rect := b.TryPackArea(NewArea(10, 10))
	assert.Equal(t, NewRect(0, 0, 9, 9), rect)
	assert.Empty(t, b.GetEmptyRegions(), "a perfect fit leaves no empty space")
}

func TestPackThreeExhaustsRegions(t *testing.T) {
	// Two 5x5 areas and a 10x1 strip in a 10x10 bin. The corner enumeration
	// order and first-seen tie-break fully determine each placement; the
	// third request only fits rotated.
	b := testBin(10, 10)

	first := b.TryPackArea(NewArea(5, 5))
	assert.Equal(t, NewRect(0, 0, 4, 4), first)

	second := b.TryPackArea(NewArea(5, 5))
	assert.Equal(t, NewRect(0, 5, 4, 9), second)

	third := b.TryPackArea(NewArea(10, 1))
	assert.Equal(t, NewRect(5, 0, 5, 9), third)
	assert.Equal(t, 1, third.Width())
	assert.Equal(t, 10, third.Height())

	requireDisjoint(t, b)
	assert.Equal(t, []Rect{NewRect(6, 0, 9, 9)}, b.GetEmptyRegions())
	assert.Equal(t, 40, totalEmptyArea(b))
}

func TestPackUntilFull(t *testing.T) {
	b := testBin(8, 8)
	var packed int
	for {
		rect := b.TryPackArea(NewArea(2, 2))
		if !rect.IsValid() {
			break
		}
		packed++
		require.Less(t, packed, 17, "cannot pack more than 16 2x2 areas into 8x8")
	}
	assert.Equal(t, 16, packed)
	assert.Empty(t, b.GetEmptyRegions())
}

// coverageGrid tracks which cells of the bin are occupied by returned
// placements, to verify that empty regions and placements together cover the
// bin exactly.
type coverageGrid struct {
	size  Area
	cells []bool
}

func newCoverageGrid(size Area) *coverageGrid {
	return &coverageGrid{size: size, cells: make([]bool, size.Total())}
}

func (g *coverageGrid) resize(size Area) {
	cells := make([]bool, size.Total())
	for y := 0; y < g.size.Height; y++ {
		copy(cells[y*size.Width:y*size.Width+g.size.Width], g.cells[y*g.size.Width:(y+1)*g.size.Width])
	}
	g.size = size
	g.cells = cells
}

func (g *coverageGrid) mark(t *testing.T, rect Rect) {
	t.Helper()
	for y := rect.Top; y <= rect.Bottom; y++ {
		for x := rect.Left; x <= rect.Right; x++ {
			if x < 0 || y < 0 || x >= g.size.Width || y >= g.size.Height {
				t.Fatalf("placement %s out of bounds %s", rect.String(), g.size.String())
			}
			if g.cells[y*g.size.Width+x] {
				t.Fatalf("placement %s overlaps a previous placement", rect.String())
			}
			g.cells[y*g.size.Width+x] = true
		}
	}
}

// verifyCoverage asserts that every cell of the bin is covered by exactly one
// empty region or one placement, never both, never neither.
func verifyCoverage(t *testing.T, b *Bin, g *coverageGrid) {
	t.Helper()
	require.Equal(t, b.GetDimensions(), g.size)

	counts := make([]int, g.size.Total())
	for _, r := range b.GetEmptyRegions() {
		for y := r.Top; y <= r.Bottom; y++ {
			for x := r.Left; x <= r.Right; x++ {
				counts[y*g.size.Width+x]++
			}
		}
	}
	for i, n := range counts {
		packed := g.cells[i]
		if packed && n > 0 {
			t.Fatalf("cell %d both packed and empty", i)
		}
		if !packed && n != 1 {
			t.Fatalf("cell %d covered by %d empty regions", i, n)
		}
	}
}

func TestCoverageAccumulation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := testBin(32, 32)
	grid := newCoverageGrid(b.GetDimensions())

	for i := 0; i < 200; i++ {
		area := NewArea(rng.Intn(12)+1, rng.Intn(12)+1)
		rect := b.TryPackArea(area)
		dims := b.GetDimensions()
		if rect.IsValid() {
			grid.mark(t, rect)
		} else if dims.MaxSide() < 160 {
			b.ExtendDimensions(NewArea(rng.Intn(16), rng.Intn(16)))
			grid.resize(b.GetDimensions())
		}
		requireDisjoint(t, b)
		verifyCoverage(t, b, grid)
	}
}

// vim: ts=4
