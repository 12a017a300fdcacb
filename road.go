package xodr

// RoadLinkElementType distinguishes what a RoadLink points at.
type RoadLinkElementType int

const (
	// RoadLinkNotSpecified marks an absent link.
	RoadLinkNotSpecified RoadLinkElementType = iota
	RoadLinkToRoad
	RoadLinkToJunction
)

// RoadLink is a tagged union: a road's predecessor or successor link is
// either unspecified, a link to another road at a given contact point, or a
// link to a junction (which has no contact point of its own).
type RoadLink struct {
	ElementType RoadLinkElementType

	// Populated textual id, retained for error messages even after
	// resolution (resolution additionally populates RoadIdx/JunctionIdx).
	ElementID string

	// Valid once resolved.
	RoadIdx      int
	ContactPoint ContactPoint
	JunctionIdx  int
}

// NeighborSide identifies which side of the road a NeighborLink describes.
type NeighborSide int

const (
	NeighborLeft NeighborSide = iota
	NeighborRight
)

// NeighborDirection records whether a neighbor road runs in the same or
// opposite direction as this road.
type NeighborDirection int

const (
	NeighborSameDirection NeighborDirection = iota
	NeighborOppositeDirection
)

// NeighborLink is a <link><neighbor> entry.
type NeighborLink struct {
	Side      NeighborSide
	ElementID string
	RoadIdx   int
	Direction NeighborDirection
}

// RoadLinks holds a road's predecessor/successor/neighbor links.
type RoadLinks struct {
	Predecessor   RoadLink
	Successor     RoadLink
	LeftNeighbor  *NeighborLink
	RightNeighbor *NeighborLink
}

// RoadLink returns this road's link of the given kind.
func (rl RoadLinks) RoadLink(kind RoadLinkKind) RoadLink {
	if kind == RoadLinkPredecessor {
		return rl.Predecessor
	}
	return rl.Successor
}

// RoadObjectShape distinguishes the three ways a road object's outline can be
// specified.
type RoadObjectShape int

const (
	RoadObjectBox RoadObjectShape = iota
	RoadObjectCylinder
	RoadObjectOutline
)

// RoadObjectCorner is one corner of an extruded <outline>, expressed in
// either road s/t or local u/v coordinates (OutlineIsLocal distinguishes
// them).
type RoadObjectCorner struct {
	U, V       float64 // or S, T, aliased depending on OutlineIsLocal
	Height     float64
}

// RoadObject is a cosmetic road-side object (sign, pole, barrier, ...).
// Parsing validates that exactly one of the three shape descriptions is
// present and internally consistent; geometric use of RoadObjects (eg.
// drawing them) is out of scope.
type RoadObject struct {
	ID, Name string
	Type     string
	S, T     float64
	ZOffset  float64
	Heading  float64

	Shape RoadObjectShape

	// Box
	Length, Width, Height float64

	// Cylinder
	Radius float64

	// Outline
	OutlineIsLocal bool
	Corners        []RoadObjectCorner
}

// ElevationRecord is one cubic piece of a road's (optional) elevation
// profile: height above the x/y plane as a function of s, relative to the
// record's own SOffset.
type ElevationRecord struct {
	SOffset float64
	Poly    Poly3
}

// Road is a single road: a reference line, a contiguous sequence of lane
// sections, optional road-side objects and elevation profile, and links to
// neighboring roads/junctions.
type Road struct {
	Name   string
	ID     string
	Length float64

	// JunctionRef is non-nil if this road is a connecting road inside a
	// junction (resolved to the junction's index post-resolution).
	JunctionRef *int
	junctionID  string // raw id, "-1" sentinel means "not part of a junction"

	ReferenceLine    ReferenceLine
	ElevationProfile []ElevationRecord
	LaneSections     []LaneSection
	RoadObjects      []RoadObject
	Links            RoadLinks

	// GlobalLaneIndicesBegin/End delimit this road's lanes' contiguous range
	// of XodrMap global lane indices.
	GlobalLaneIndicesBegin, GlobalLaneIndicesEnd int
}

// IsConnectingRoad reports whether this road belongs to a junction.
func (r Road) IsConnectingRoad() bool {
	return r.JunctionRef != nil
}

// LaneSectionForContactPoint returns the first lane section (for
// ContactPointStart) or the last (for ContactPointEnd).
func (r Road) LaneSectionForContactPoint(cp ContactPoint) LaneSection {
	if cp == ContactPointStart {
		return r.LaneSections[0]
	}
	return r.LaneSections[len(r.LaneSections)-1]
}

// LaneSectionIndexForContactPoint is LaneSectionForContactPoint, returning
// the index instead of the section itself.
func (r Road) LaneSectionIndexForContactPoint(cp ContactPoint) int {
	if cp == ContactPointStart {
		return 0
	}
	return len(r.LaneSections) - 1
}
