package layout

import (
	"bytes"
	"math"
	"testing"
)

func gridLayout(leds map[int]Coordinate) *Layout {
	return &Layout{Leds: leds, Boundaries: map[Coordinate]struct{}{}}
}

func TestWallMapperTwoByTwo(t *testing.T) {
	l := gridLayout(map[int]Coordinate{
		0: {Row: 0, Col: 0},
		1: {Row: 0, Col: 1},
		2: {Row: 1, Col: 0},
		3: {Row: 1, Col: 1},
	})

	m := &WallMapper{}
	regions, tally := m.Map(l)
	if tally != nil {
		t.Error("wall mapper should not produce an edge tally")
	}

	want := []Region{
		{HMax: 0.5, HMin: 0, VMax: 0.5, VMin: 0},
		{HMax: 1, HMin: 0.5, VMax: 0.5, VMin: 0},
		{HMax: 0.5, HMin: 0, VMax: 1, VMin: 0.5},
		{HMax: 1, HMin: 0.5, VMax: 1, VMin: 0.5},
	}
	if len(regions) != len(want) {
		t.Fatalf("got %d regions, want %d", len(regions), len(want))
	}
	for i := range want {
		if regions[i] != want[i] {
			t.Errorf("region %d = %+v, want %+v", i, regions[i], want[i])
		}
	}
	checkRegionBounds(t, regions)
}

func TestWallMapperTilesBoundingBox(t *testing.T) {
	// A full 3x4 grid: the union of cells must tile [0,1]x[0,1] exactly,
	// one cell per LED, no gaps or overlaps.
	leds := make(map[int]Coordinate)
	idx := 0
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			leds[idx] = Coordinate{Row: row, Col: col}
			idx++
		}
	}

	m := &WallMapper{}
	regions, _ := m.Map(gridLayout(leds))
	checkRegionBounds(t, regions)

	seen := make(map[Region]bool)
	for _, r := range regions {
		if !almostEqual(r.HMax-r.HMin, 0.25) {
			t.Errorf("cell width = %v, want 0.25", r.HMax-r.HMin)
		}
		// Bounds round independently, so a cell's extent can land one
		// rounding step away from 1/3 (0.6667-0.3333 = 0.3334).
		if height := r.VMax - r.VMin; math.Abs(height-1.0/3) > 0.0001 {
			t.Errorf("cell height = %v, want 1/3 within one rounding step", height)
		}
		if seen[r] {
			t.Errorf("duplicate cell %+v", r)
		}
		seen[r] = true
	}
	if len(seen) != 12 {
		t.Errorf("distinct cells = %d, want 12", len(seen))
	}
}

func TestWallMapperSingleRow(t *testing.T) {
	// Degenerate height: all LEDs on one row still produce full-height cells.
	l := gridLayout(map[int]Coordinate{
		0: {Row: 5, Col: 0},
		1: {Row: 5, Col: 1},
		2: {Row: 5, Col: 2},
	})

	m := &WallMapper{Group: 2}
	regions, _ := m.Map(l)
	for i, r := range regions {
		if r.VMin != 0 || r.VMax != 1 {
			t.Errorf("region %d vertical span = [%v, %v], want [0, 1]", i, r.VMin, r.VMax)
		}
		if r.Group != 2 {
			t.Errorf("region %d group = %d, want 2", i, r.Group)
		}
	}
}

func TestWallMapperBoundaryAware(t *testing.T) {
	// LEDs around a 2x2 boundary block; cells normalize against the
	// boundary box and clamp at the screen edges.
	l := &Layout{
		Leds: map[int]Coordinate{
			0: {Row: 1, Col: 1},
			1: {Row: 0, Col: 0}, // outside the boundary box, clamps to (0,0)
		},
		Boundaries: map[Coordinate]struct{}{
			{Row: 1, Col: 1}: {},
			{Row: 2, Col: 2}: {},
		},
	}

	m := &WallMapper{BoundaryAware: true}
	regions, _ := m.Map(l)
	checkRegionBounds(t, regions)

	// LED 0 occupies the boundary box's first cell.
	if regions[0] != (Region{HMax: 0.5, HMin: 0, VMax: 0.5, VMin: 0}) {
		t.Errorf("region 0 = %+v", regions[0])
	}
	// LED 1 sits above-left of the screen; its cell collapses at the corner.
	if regions[1] != (Region{HMax: 0, HMin: 0, VMax: 0, VMin: 0}) {
		t.Errorf("region 1 = %+v", regions[1])
	}
}

func TestWallMapperEmptyLayout(t *testing.T) {
	m := &WallMapper{}
	regions, tally := m.Map(gridLayout(map[int]Coordinate{}))
	if len(regions) != 0 {
		t.Errorf("expected no regions, got %d", len(regions))
	}
	if tally != nil {
		t.Error("expected nil tally")
	}
}

func TestWallMapperDeterministic(t *testing.T) {
	leds := map[int]Coordinate{
		10: {Row: 0, Col: 2},
		4:  {Row: 1, Col: 0},
		7:  {Row: 2, Col: 1},
	}

	m := &WallMapper{}
	first, _ := m.Map(gridLayout(leds))
	a, err := MarshalRegions(first, false)
	if err != nil {
		t.Fatal(err)
	}

	second, _ := m.Map(gridLayout(leds))
	b, err := MarshalRegions(second, false)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(a, b) {
		t.Error("repeated runs produced different bytes")
	}
}
