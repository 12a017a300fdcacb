package xodr

// ReferenceLine is the 2D spine curve of a road: an ordered, contiguous
// sequence of Geometry pieces covering the s-range [0, EndVertex.SCoord].
type ReferenceLine struct {
	Geometries []Geometry
	endVertex  Vertex
}

// NewReferenceLine builds a ReferenceLine from an ordered slice of
// geometries. Geometries are taken as given: neither this constructor nor the
// parser checks that they are contiguous in s (geometries[i+1] starting where
// geometries[i] ends).
func NewReferenceLine(geometries []Geometry) ReferenceLine {
	rl := ReferenceLine{Geometries: geometries}
	if len(geometries) > 0 {
		rl.endVertex = geometries[len(geometries)-1].EndVertex()
	}
	return rl
}

// EndS returns the end s-coordinate of the reference line. The start is
// always 0.
func (rl ReferenceLine) EndS() float64 {
	return rl.endVertex.SCoord
}

// EndVertex returns the vertex at the end of the reference line.
func (rl ReferenceLine) EndVertex() Vertex {
	return rl.endVertex
}

// geometryContaining finds, via binary search, the geometry whose s-range
// contains s. The range check is closed-left, open-right except for the
// final geometry, which also owns the closing endpoint.
func (rl ReferenceLine) geometryContaining(s float64) Geometry {
	lo, hi := 0, len(rl.Geometries)
	for lo != hi-1 {
		mid := (lo + hi) / 2
		if s < rl.Geometries[mid].StartVertex.SCoord {
			hi = mid
		} else {
			lo = mid
		}
	}
	return rl.Geometries[lo]
}

// Eval evaluates the point and tangent direction of the reference line at s.
// s must lie in [0, EndS()].
func (rl ReferenceLine) Eval(s float64) PointAndTangentDir {
	return rl.geometryContaining(s).Eval(s)
}

// EvalCurvature evaluates the signed curvature of the reference line at s.
func (rl ReferenceLine) EvalCurvature(s float64) float64 {
	return rl.geometryContaining(s).EvalCurvature(s)
}

// Tessellate returns a piecewise-linear approximation of the section of the
// reference line with s in [startS, endS]. Each geometry is clipped to its
// own native s-range before being tessellated, and includeEndPt is only set
// on the last clipped range that reaches endS, so the boundary vertex
// between consecutive geometries is emitted exactly once.
func (rl ReferenceLine) Tessellate(startS, endS float64) Tessellation {
	var out Tessellation

	for i, geom := range rl.Geometries {
		geomStartS := geom.StartVertex.SCoord
		var geomEndS float64
		if i == len(rl.Geometries)-1 {
			geomEndS = geomStartS + geom.Length
		} else {
			geomEndS = rl.Geometries[i+1].StartVertex.SCoord
		}

		clampedStartS := max(startS, geomStartS)
		clampedEndS := min(endS, geomEndS)
		if clampedStartS < clampedEndS {
			out = geom.Tessellate(out, clampedStartS, clampedEndS, clampedEndS == endS)
		}
	}

	return out
}
