package xodr

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"

	"github.com/paulmach/orb"
)

// GeoJSONLineString returns the GeoJSON LineString geometry object (not
// wrapped in a Feature) of a tessellated polyline. Coordinates are the road's local planar s/t/xy
// system, not geographic longitude/latitude: this repo never lifts an xodr
// document's geometry into a geodetic frame (see Non-goals).
func GeoJSONLineString(line orb.LineString) string {
	pts := make([][]float64, len(line))
	for i, pt := range line {
		pts[i] = []float64{pt.X(), pt.Y()}
	}
	b, err := geojson.NewLineStringGeometry(pts).MarshalJSON()
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(b)
}

// GeoJSONPoint returns the GeoJSON Point geometry object (not wrapped in a
// Feature) of a single vertex.
func GeoJSONPoint(pt orb.Point) string {
	b, err := geojson.NewPointGeometry([]float64{pt.X(), pt.Y()}).MarshalJSON()
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(b)
}
