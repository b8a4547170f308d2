package layout

import "math"

// AmbientMapper blends wall-style position sampling with perimeter-style
// edge sampling. It exists for LED walls and shelves that surround a monitor:
// LEDs near the screen behave like a backlight, LEDs far from it light up by
// their own grid position.
type AmbientMapper struct {
	Group         int
	EdgeBias      float64 // 0 = pure position, 1 = pure edge projection
	BoundaryAware bool
}

// baseSampleSize is the half-extent of each LED's sampling window before
// dividing by the grid dimensions.
const baseSampleSize = 0.05

// Map emits a fixed-size rectangle per LED centered on a blend of the LED's
// grid position and its projection onto the nearest screen edge. The blend
// weight is EdgeBias scaled down by distance from the screen, so the bias
// decays to zero three grid-fractions away regardless of the requested value.
func (m *AmbientMapper) Map(l *Layout) ([]Region, *EdgeTally) {
	if len(l.Leds) == 0 {
		return []Region{}, nil
	}

	grid := l.LedBounds()
	screen, _ := l.screenBox(m.BoundaryAware)

	gridWidth := float64(grid.Width())
	gridHeight := float64(grid.Height())
	screenWidth := float64(screen.Width())
	screenHeight := float64(screen.Height())

	regions := make([]Region, 0, len(l.Leds))
	for _, idx := range l.SortedIndices() {
		c := l.Leds[idx]

		// Position within the overall LED grid.
		gridH := float64(c.Col-grid.MinCol) / gridWidth
		gridV := float64(c.Row-grid.MinRow) / gridHeight

		// Nearest screen edge, with distances measured as fractions of the
		// LED grid (not the screen box) so edge selection is stable however
		// the markers are placed.
		edge, minDist := nearestScreenEdge(c, screen, grid.Width(), grid.Height())

		// Projection of the LED onto that edge.
		var edgeH, edgeV float64
		switch edge {
		case EdgeTop:
			edgeH = clamp01(float64(c.Col-screen.MinCol) / screenWidth)
			edgeV = 0
		case EdgeBottom:
			edgeH = clamp01(float64(c.Col-screen.MinCol) / screenWidth)
			edgeV = 1
		case EdgeLeft:
			edgeH = 0
			edgeV = clamp01(float64(c.Row-screen.MinRow) / screenHeight)
		default:
			edgeH = 1
			edgeV = clamp01(float64(c.Row-screen.MinRow) / screenHeight)
		}

		distanceFactor := math.Min(1, minDist*3)
		effectiveBias := m.EdgeBias * (1 - distanceFactor)

		centerH := gridH*(1-effectiveBias) + edgeH*effectiveBias
		centerV := gridV*(1-effectiveBias) + edgeV*effectiveBias

		hSize := baseSampleSize / gridWidth
		vSize := baseSampleSize / gridHeight

		regions = append(regions, Region{
			HMax:  round4(clamp01(centerH + hSize)),
			HMin:  round4(clamp01(centerH - hSize)),
			VMax:  round4(clamp01(centerV + vSize)),
			VMin:  round4(clamp01(centerV - vSize)),
			Group: m.Group,
		})
	}
	return regions, nil
}
