package xodr

import "github.com/paulmach/orb"

// Vertex is a single point on a reference line or lane boundary: its
// s-coordinate along the curve, its world position, and the world heading of
// the curve's tangent at that point (radians).
type Vertex struct {
	SCoord   float64
	Position orb.Point
	Heading  float64
}

// Tessellation is a piecewise-linear approximation of a curve.
type Tessellation []Vertex

// LineString converts a Tessellation to an orb.LineString, for consumers
// (export, bounding-box computation, GeoJSON/WKT encoding) which only care
// about the point sequence.
func (t Tessellation) LineString() orb.LineString {
	ls := make(orb.LineString, len(t))
	for i, v := range t {
		ls[i] = v.Position
	}
	return ls
}

// PointAndTangentDir is the result of evaluating a curve at a given
// s-coordinate: the point, and the unit tangent direction of the curve there.
type PointAndTangentDir struct {
	Point     orb.Point
	TangentDir orb.Point
}

// SideDir returns the vector obtained by rotating TangentDir 90 degrees
// counter-clockwise -- the direction in which positive t-coordinates lie.
func (p PointAndTangentDir) SideDir() orb.Point {
	return orb.Point{-p.TangentDir[1], p.TangentDir[0]}
}

// PointWithTCoord returns the point offset from p.Point by t in the SideDir
// direction.
func (p PointAndTangentDir) PointWithTCoord(t float64) orb.Point {
	side := p.SideDir()
	return orb.Point{p.Point[0] + t*side[0], p.Point[1] + t*side[1]}
}
