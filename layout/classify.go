package layout

// ClassifyEdge determines which edge of the reference box a coordinate is
// nearest to, using plain cell distances. Ties resolve in the fixed order
// top, bottom, left, right, so a corner cell equidistant from top and left
// always reports top. The interior result is unreachable with this distance
// formulation (one of the four distances is always the minimum) but the
// branch is kept so callers never see an invalid Edge.
func ClassifyEdge(c Coordinate, box BoundingBox) Edge {
	distTop := abs(c.Row - box.MinRow)
	distBottom := abs(c.Row - box.MaxRow)
	distLeft := abs(c.Col - box.MinCol)
	distRight := abs(c.Col - box.MaxCol)

	minDist := min4(distTop, distBottom, distLeft, distRight)

	switch minDist {
	case distTop:
		return EdgeTop
	case distBottom:
		return EdgeBottom
	case distLeft:
		return EdgeLeft
	case distRight:
		return EdgeRight
	}
	return EdgeInterior
}

// nearestScreenEdge is the ambient mapper's edge selection. It is a separate
// computation from ClassifyEdge on purpose: distances here are fractions of
// the LED grid's width and height rather than raw cell counts, which shifts
// which edge wins on non-square grids. Returns the edge and the minimum
// normalized distance. Same tie-break order as ClassifyEdge, with right as
// the fallthrough.
func nearestScreenEdge(c Coordinate, screen BoundingBox, gridWidth, gridHeight int) (Edge, float64) {
	distTop := absf(float64(c.Row-screen.MinRow)) / float64(gridHeight)
	distBottom := absf(float64(c.Row-screen.MaxRow)) / float64(gridHeight)
	distLeft := absf(float64(c.Col-screen.MinCol)) / float64(gridWidth)
	distRight := absf(float64(c.Col-screen.MaxCol)) / float64(gridWidth)

	minDist := distTop
	if distBottom < minDist {
		minDist = distBottom
	}
	if distLeft < minDist {
		minDist = distLeft
	}
	if distRight < minDist {
		minDist = distRight
	}

	switch minDist {
	case distTop:
		return EdgeTop, minDist
	case distBottom:
		return EdgeBottom, minDist
	case distLeft:
		return EdgeLeft, minDist
	}
	return EdgeRight, minDist
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func min4(a, b, c, d int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	if d < m {
		m = d
	}
	return m
}
