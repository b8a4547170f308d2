package layout

import "sort"

// LedBounds computes the bounding box of all LED coordinates.
// Returns the zero box when the layout has no LEDs.
func (l *Layout) LedBounds() BoundingBox {
	coords := make([]Coordinate, 0, len(l.Leds))
	for _, c := range l.Leds {
		coords = append(coords, c)
	}
	return Bounds(coords)
}

// BoundaryBounds computes the bounding box of the boundary markers.
// Returns the zero box when no cells are marked.
func (l *Layout) BoundaryBounds() BoundingBox {
	coords := make([]Coordinate, 0, len(l.Boundaries))
	for c := range l.Boundaries {
		coords = append(coords, c)
	}
	return Bounds(coords)
}

// Bounds computes the inclusive bounding box of a coordinate set.
// An empty set yields the zero box; callers treat that as undefined.
func Bounds(coords []Coordinate) BoundingBox {
	if len(coords) == 0 {
		return BoundingBox{}
	}

	box := BoundingBox{
		MinRow: coords[0].Row,
		MaxRow: coords[0].Row,
		MinCol: coords[0].Col,
		MaxCol: coords[0].Col,
	}
	for _, c := range coords[1:] {
		if c.Row < box.MinRow {
			box.MinRow = c.Row
		}
		if c.Row > box.MaxRow {
			box.MaxRow = c.Row
		}
		if c.Col < box.MinCol {
			box.MinCol = c.Col
		}
		if c.Col > box.MaxCol {
			box.MaxCol = c.Col
		}
	}
	return box
}

// SortedIndices returns the LED indices in ascending order. Output regions
// are emitted in this order, so it defines the wire ordering contract.
func (l *Layout) SortedIndices() []int {
	indices := make([]int, 0, len(l.Leds))
	for idx := range l.Leds {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices
}

// screenBox picks the reference box for normalization: the boundary markers'
// box when boundary-aware mode is on and markers exist, else the LED box.
func (l *Layout) screenBox(boundaryAware bool) (BoundingBox, bool) {
	if boundaryAware && len(l.Boundaries) > 0 {
		return l.BoundaryBounds(), true
	}
	return l.LedBounds(), false
}
