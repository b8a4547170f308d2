package layout

// PerimeterMapper assigns each LED to its nearest screen edge and samples a
// thin strip of the image there, the classic monitor-backlight layout.
type PerimeterMapper struct {
	Group         int
	Depth         float64 // strip thickness as a fraction of the screen
	BoundaryAware bool
}

// Map classifies every LED against the screen box and emits an edge strip of
// thickness Depth spanning one grid cell along the edge. The returned tally
// counts LEDs per edge so the caller can warn about interior assignments.
func (m *PerimeterMapper) Map(l *Layout) ([]Region, *EdgeTally) {
	if len(l.Leds) == 0 {
		return []Region{}, nil
	}

	box, _ := l.screenBox(m.BoundaryAware)
	width := float64(box.Width())
	height := float64(box.Height())

	tally := &EdgeTally{}
	regions := make([]Region, 0, len(l.Leds))

	for _, idx := range l.SortedIndices() {
		c := l.Leds[idx]
		edge := ClassifyEdge(c, box)
		tally.Add(edge)

		var r Region
		switch edge {
		case EdgeTop:
			pos := clamp01(float64(c.Col-box.MinCol) / width)
			r = Region{
				HMax: round4(clamp01(pos + 1/width)),
				HMin: round4(pos),
				VMax: round4(m.Depth),
				VMin: 0,
			}
		case EdgeBottom:
			pos := clamp01(float64(c.Col-box.MinCol) / width)
			r = Region{
				HMax: round4(clamp01(pos + 1/width)),
				HMin: round4(pos),
				VMax: 1,
				VMin: round4(1 - m.Depth),
			}
		case EdgeLeft:
			pos := clamp01(float64(c.Row-box.MinRow) / height)
			r = Region{
				HMax: round4(m.Depth),
				HMin: 0,
				VMax: round4(clamp01(pos + 1/height)),
				VMin: round4(pos),
			}
		case EdgeRight:
			pos := clamp01(float64(c.Row-box.MinRow) / height)
			r = Region{
				HMax: 1,
				HMin: round4(1 - m.Depth),
				VMax: round4(clamp01(pos + 1/height)),
				VMin: round4(pos),
			}
		default:
			// Unreachable with the current classifier; fall back to a
			// full-cell region so the LED still gets a sane rectangle.
			hPos := float64(c.Col-box.MinCol) / width
			vPos := float64(c.Row-box.MinRow) / height
			r = Region{
				HMax: round4(clamp01(hPos + 1/width)),
				HMin: round4(clamp01(hPos)),
				VMax: round4(clamp01(vPos + 1/height)),
				VMin: round4(clamp01(vPos)),
			}
		}
		r.Group = m.Group
		regions = append(regions, r)
	}
	return regions, tally
}
