package layout

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// regionPolygon converts a sampling region to an orb polygon in normalized
// screen space. Vertical axis grows downward to match the sampling space.
func regionPolygon(r Region) orb.Polygon {
	ring := orb.Ring{
		{r.HMin, r.VMin},
		{r.HMax, r.VMin},
		{r.HMax, r.VMax},
		{r.HMin, r.VMax},
		{r.HMin, r.VMin},
	}
	return orb.Polygon{ring}
}

// RegionsToGeoJSON builds a FeatureCollection with one polygon per sampling
// region, in LED-index order. The coordinate plane is the normalized screen
// space itself, which makes the export easy to eyeball in any GeoJSON viewer.
func RegionsToGeoJSON(l *Layout, regions []Region) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	bounds := l.LedBounds()
	indices := l.SortedIndices()
	for i, r := range regions {
		poly := regionPolygon(r)
		f := geojson.NewFeature(poly)
		f.Properties["group"] = r.Group
		f.Properties["area"] = planar.Area(poly)
		if i < len(indices) {
			idx := indices[i]
			f.Properties["led"] = idx
			f.Properties["edge"] = ClassifyEdge(l.Leds[idx], bounds).String()
		}
		fc.Append(f)
	}

	// Include the screen outline so regions have a frame of reference.
	outline := geojson.NewFeature(orb.Polygon{orb.Ring{
		{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0},
	}})
	outline.Properties["kind"] = "screen"
	fc.Append(outline)

	return fc
}

// WriteGeoJSONFile writes the debug export for the given regions to path.
func WriteGeoJSONFile(path string, l *Layout, regions []Region) error {
	fc := RegionsToGeoJSON(l, regions)
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshaling GeoJSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing GeoJSON file: %w", err)
	}
	return nil
}
