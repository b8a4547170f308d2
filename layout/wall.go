package layout

// WallMapper tiles the reference box with one full grid cell per LED, for
// layouts where the LEDs themselves form the display surface.
type WallMapper struct {
	Group         int
	BoundaryAware bool
}

// Map produces one cell-sized rectangle per LED, normalized against the
// screen box (boundary markers' box in boundary-aware mode, else the LED
// box). With the LED box the cells exactly tile [0,1] x [0,1]; with a
// boundary box an LED outside the markers is clamped at the screen edge.
func (m *WallMapper) Map(l *Layout) ([]Region, *EdgeTally) {
	if len(l.Leds) == 0 {
		return []Region{}, nil
	}

	box, _ := l.screenBox(m.BoundaryAware)
	width := float64(box.Width())
	height := float64(box.Height())

	regions := make([]Region, 0, len(l.Leds))
	for _, idx := range l.SortedIndices() {
		c := l.Leds[idx]
		col := float64(c.Col - box.MinCol)
		row := float64(c.Row - box.MinRow)

		regions = append(regions, Region{
			HMax:  round4(clamp01((col + 1) / width)),
			HMin:  round4(clamp01(col / width)),
			VMax:  round4(clamp01((row + 1) / height)),
			VMin:  round4(clamp01(row / height)),
			Group: m.Group,
		})
	}
	return regions, nil
}
