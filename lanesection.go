package xodr

import (
	"math"

	"github.com/paulmach/orb"
)

// LaneSection is a cross-section of a road over a sub-range of s where the
// lane topology is constant. Lanes are stored left-to-right, with the center
// lane (id 0, which never carries width) omitted.
type LaneSection struct {
	StartS, EndS float64
	SingleSided  bool
	NumLeftLanes int
	Lanes        []Lane
}

// NumRightLanes returns the number of right lanes in this section.
func (ls LaneSection) NumRightLanes() int {
	return len(ls.Lanes) - ls.NumLeftLanes
}

// Length returns EndS-StartS.
func (ls LaneSection) Length() float64 {
	return ls.EndS - ls.StartS
}

// LaneIndexToId maps a 0-based index into Lanes (left-to-right) to the
// corresponding xodr lane id, skipping over the implicit center lane.
func (ls LaneSection) LaneIndexToId(idx int) LaneID {
	id := ls.NumLeftLanes - idx
	if id <= 0 {
		id--
	}
	return LaneID(id)
}

// LaneIdToIndex is the inverse of LaneIndexToId. id must not be 0 and must lie
// in [-NumRightLanes(), NumLeftLanes()].
func (ls LaneSection) LaneIdToIndex(id LaneID) int {
	idx := ls.NumLeftLanes - int(id)
	if idx >= ls.NumLeftLanes {
		idx--
	}
	return idx
}

// LaneByID returns the lane with the given id and true, or the zero Lane and
// false if id is 0 or out of range.
func (ls LaneSection) LaneByID(id LaneID) (Lane, bool) {
	if id == 0 {
		return Lane{}, false
	}
	if int(id) > ls.NumLeftLanes || int(id) < -ls.NumRightLanes() {
		return Lane{}, false
	}
	return ls.Lanes[ls.LaneIdToIndex(id)], true
}

// BoundaryTessellation is a lane-boundary polyline expressed as lateral
// positions (t-coordinates) parallel to a reference-line Tessellation.
type BoundaryTessellation struct {
	LateralPositions []float64
}

// BoundaryCurveTessellation is a lane-boundary polyline lifted to world
// coordinates.
type BoundaryCurveTessellation struct {
	Vertices orb.LineString
}

// CenterLineTessellation is a lane's center-line polyline in world
// coordinates, with the signed half-width ("variance") at each vertex: half
// of the right boundary minus the left boundary, so its magnitude is half the
// lane width and it is negative for a lane of positive width.
type CenterLineTessellation struct {
	Vertices  orb.LineString
	Variances []float64
}

// TessellateLaneBoundaries computes, for every boundary between and around
// this section's lanes, the lateral position (t-coordinate) at each sample of
// refLineTess. Boundary index NumLeftLanes is the reference line itself;
// boundaries to its left (lower index) bound the left lanes, boundaries to
// its right (higher index) bound the right lanes. There are len(Lanes)+1
// boundaries in total.
func (ls LaneSection) TessellateLaneBoundaries(refLineTess Tessellation) []BoundaryTessellation {
	boundaries := make([]BoundaryTessellation, len(ls.Lanes)+1)
	center := make([]float64, len(refLineTess))
	boundaries[ls.NumLeftLanes] = BoundaryTessellation{LateralPositions: center}

	if ls.NumLeftLanes > 0 {
		ls.tessellateLaneBoundariesSide(refLineTess, boundaries, ls.NumLeftLanes-1, -1, -1)
	}
	if ls.NumLeftLanes < len(ls.Lanes) {
		ls.tessellateLaneBoundariesSide(refLineTess, boundaries, ls.NumLeftLanes, len(ls.Lanes), 1)
	}

	return boundaries
}

// tessellateLaneBoundariesSide walks one side's lanes outward from the
// reference line (lanesBegin towards, but excluding, lanesEnd, stepping by
// stepDir), building each lane's outer boundary from its inner boundary plus
// its width function. Left lanes grow in the +t direction (stepDir=-1, so the
// width is added); right lanes grow in the -t direction (stepDir=+1, so the
// width is subtracted).
func (ls LaneSection) tessellateLaneBoundariesSide(refLineTess Tessellation, boundaries []BoundaryTessellation, lanesBegin, lanesEnd, stepDir int) {
	boundaryIdx := ls.NumLeftLanes
	prevBoundaryIdx := boundaryIdx
	boundaryIdx += stepDir

	for i := lanesBegin; i != lanesEnd; i += stepDir {
		lane := ls.Lanes[i]
		inner := boundaries[prevBoundaryIdx].LateralPositions
		outer := make([]float64, len(refLineTess))

		curPoly := 0
		for j, rv := range refLineTess {
			param := rv.SCoord - ls.StartS
			for curPoly+1 < len(lane.WidthPoly3s) && param >= lane.WidthPoly3s[curPoly+1].SOffset {
				curPoly++
			}
			var width float64
			if len(lane.WidthPoly3s) > 0 {
				w := lane.WidthPoly3s[curPoly]
				width = w.Poly.Eval(param - w.SOffset)
			}
			outer[j] = inner[j] + width*float64(-stepDir)
		}

		boundaries[boundaryIdx] = BoundaryTessellation{LateralPositions: outer}
		prevBoundaryIdx = boundaryIdx
		boundaryIdx += stepDir
	}
}

// TessellateLaneBoundaryCurves lifts TessellateLaneBoundaries to world
// coordinates using the samples' positions and headings.
func (ls LaneSection) TessellateLaneBoundaryCurves(refLineTess Tessellation) []BoundaryCurveTessellation {
	boundaries := ls.TessellateLaneBoundaries(refLineTess)
	curves, _ := liftBoundariesAndCenterLines(refLineTess, boundaries, true, false)
	return curves
}

// TessellateLaneCenterLines computes, for every lane, its world-space
// center-line polyline and per-vertex half-width (variance).
func (ls LaneSection) TessellateLaneCenterLines(refLineTess Tessellation) []CenterLineTessellation {
	boundaries := ls.TessellateLaneBoundaries(refLineTess)
	_, centers := liftBoundariesAndCenterLines(refLineTess, boundaries, false, true)
	return centers
}

// TessellateLaneBoundaryCurvesAndCenterLines computes both the boundary
// curves and the center lines in a single pass over refLineTess, to avoid
// recomputing the per-sample side direction twice.
func (ls LaneSection) TessellateLaneBoundaryCurvesAndCenterLines(refLineTess Tessellation) ([]BoundaryCurveTessellation, []CenterLineTessellation) {
	boundaries := ls.TessellateLaneBoundaries(refLineTess)
	return liftBoundariesAndCenterLines(refLineTess, boundaries, true, true)
}

func liftBoundariesAndCenterLines(refLineTess Tessellation, boundaries []BoundaryTessellation, wantCurves, wantCenters bool) ([]BoundaryCurveTessellation, []CenterLineTessellation) {
	numPoints := len(refLineTess)
	numBoundaries := len(boundaries)
	numLanes := numBoundaries - 1

	var curves []BoundaryCurveTessellation
	if wantCurves {
		curves = make([]BoundaryCurveTessellation, numBoundaries)
		for i := range curves {
			curves[i].Vertices = make(orb.LineString, numPoints)
		}
	}

	var centers []CenterLineTessellation
	if wantCenters {
		centers = make([]CenterLineTessellation, numLanes)
		for i := range centers {
			centers[i].Vertices = make(orb.LineString, numPoints)
			centers[i].Variances = make([]float64, numPoints)
		}
	}

	for i, rv := range refLineTess {
		perp := orb.Point{-math.Sin(rv.Heading), math.Cos(rv.Heading)}

		if wantCurves {
			for j := 0; j < numBoundaries; j++ {
				lateral := boundaries[j].LateralPositions[i]
				curves[j].Vertices[i] = orb.Point{
					rv.Position[0] + perp[0]*lateral,
					rv.Position[1] + perp[1]*lateral,
				}
			}
		}

		if wantCenters {
			for j := 0; j < numLanes; j++ {
				variance := 0.5 * (boundaries[j+1].LateralPositions[i] - boundaries[j].LateralPositions[i])
				centerLineLateral := boundaries[j].LateralPositions[i] + variance
				centers[j].Vertices[i] = orb.Point{
					rv.Position[0] + perp[0]*centerLineLateral,
					rv.Position[1] + perp[1]*centerLineLateral,
				}
				centers[j].Variances[i] = variance
			}
		}
	}

	return curves, centers
}

// Validate checks, for every lane in this section, that each attribute
// vector's SOffsets strictly increase, with the first >= 0 and the last <
// ls.Length(). It returns the accumulated GEOMETRY-class errors.
func (ls LaneSection) Validate() Errors {
	var errs Errors
	maxS := ls.Length()
	for _, lane := range ls.Lanes {
		checkOffsets := func(offsets []float64) bool {
			prev := -1.0
			for _, off := range offsets {
				if off < 0 || off >= maxS || off <= prev {
					return false
				}
				prev = off
			}
			return true
		}

		widthOffsets := make([]float64, len(lane.WidthPoly3s))
		for i, w := range lane.WidthPoly3s {
			widthOffsets[i] = w.SOffset
		}
		if !checkOffsets(widthOffsets) {
			errs = append(errs, &Error{Kind: KindLaneAttributeSOffsetOutOfOrder, LaneID: lane.ID, Detail: "widths"})
		}

		collect := func(name string, n int, at func(int) float64) {
			offs := make([]float64, n)
			for i := 0; i < n; i++ {
				offs[i] = at(i)
			}
			if !checkOffsets(offs) {
				errs = append(errs, &Error{Kind: KindLaneAttributeSOffsetOutOfOrder, LaneID: lane.ID, Detail: name})
			}
		}
		collect("materials", len(lane.Materials), func(i int) float64 { return lane.Materials[i].SOffset })
		collect("visibilities", len(lane.Visibilities), func(i int) float64 { return lane.Visibilities[i].SOffset })
		collect("speedLimits", len(lane.SpeedLimits), func(i int) float64 { return lane.SpeedLimits[i].SOffset })
		collect("accesses", len(lane.Accesses), func(i int) float64 { return lane.Accesses[i].SOffset })
		collect("heights", len(lane.Heights), func(i int) float64 { return lane.Heights[i].SOffset })
		collect("rules", len(lane.Rules), func(i int) float64 { return lane.Rules[i].SOffset })
	}
	return errs
}
