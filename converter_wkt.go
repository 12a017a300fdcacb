package xodr

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
)

// WKTLineString returns the WKT LINESTRING representation of a tessellated
// polyline, eg. a BoundaryCurveTessellation's or CenterLineTessellation's
// Vertices, or the LineString of a ReferenceLine.Tessellate result.
func WKTLineString(line orb.LineString) string {
	ptsStr := make([]string, len(line))
	for i, pt := range line {
		ptsStr[i] = fmt.Sprintf("%f %f", pt.X(), pt.Y())
	}
	return fmt.Sprintf("LINESTRING(%s)", strings.Join(ptsStr, ","))
}

// WKTPoint returns the WKT POINT representation of a single vertex.
func WKTPoint(pt orb.Point) string {
	return fmt.Sprintf("POINT(%f %f)", pt.X(), pt.Y())
}
