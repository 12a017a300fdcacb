package xodr

import "fmt"

// InvalidationClass is the coarse-grained consequence tag attached to every
// parse or validation error. Downstream consumers use it to decide whether a
// partially built XodrMap is still safe to use for a given purpose.
type InvalidationClass int

const (
	// ClassNone marks a warning: the map stays fully usable.
	ClassNone InvalidationClass = iota
	// ClassGeometry marks an error which makes tessellation of the affected
	// road unsafe.
	ClassGeometry
	// ClassConnectivity marks an error which makes graph traversal (road
	// links, junction links, lane links) unsafe.
	ClassConnectivity
	// ClassAll marks a fatal, structural error. The map as a whole is unusable.
	ClassAll
)

func (c InvalidationClass) String() string {
	switch c {
	case ClassGeometry:
		return "geometry"
	case ClassConnectivity:
		return "connectivity"
	case ClassAll:
		return "all"
	default:
		return "warning"
	}
}

// ErrorKind identifies the specific rule an Error reports a violation of.
type ErrorKind string

// XML-structural error kinds, raised by the attribute/child-element parser
// framework in package xmlkit and wrapped here with xodr-specific context.
const (
	KindMissingAttribute     ErrorKind = "MissingAttribute"
	KindUnexpectedAttribute  ErrorKind = "UnexpectedAttribute"
	KindInvalidAttributeValue ErrorKind = "InvalidAttributeValue"
	KindMissingChildElement  ErrorKind = "MissingChildElement"
	KindUnexpectedChildElement ErrorKind = "UnexpectedChildElement"
	KindDuplicateChildElement  ErrorKind = "DuplicateChildElement"
	KindNotImplementedElement  ErrorKind = "NotImplementedElement"
)

// Semantic/parse error kinds.
const (
	KindNonPositiveLength          ErrorKind = "NonPositiveLength"
	KindNegativeSOffset            ErrorKind = "NegativeSOffset"
	KindNonConsecutiveLaneIds      ErrorKind = "NonConsecutiveLaneIds"
	KindLeftLaneNegativeId         ErrorKind = "LeftLaneNegativeId"
	KindRightLanePositiveId        ErrorKind = "RightLanePositiveId"
	KindSpiralZeroRateOfChange     ErrorKind = "SpiralZeroRateOfChange"
	KindArcZeroCurvature           ErrorKind = "ArcZeroCurvature"
	KindLaneAttributeSOffsetOutOfOrder ErrorKind = "LaneAttributeSOffsetOutOfOrder"
	KindRoadObjectGeometryInconsistent ErrorKind = "RoadObjectGeometryInconsistent"
)

// Resolution error kinds.
const (
	KindDuplicateId         ErrorKind = "DuplicateId"
	KindUnresolvedReference ErrorKind = "UnresolvedReference"
)

// Link-validation error kinds.
const (
	KindRoadBackLinkNotSpecified             ErrorKind = "RoadBackLinkNotSpecified"
	KindRoadBackLinkNotSpecifiedInJunction   ErrorKind = "RoadBackLinkNotSpecifiedInJunction"
	KindRoadLinkMisMatch                     ErrorKind = "RoadLinkMisMatch"
	KindDirectLinkToJunctionRoad             ErrorKind = "DirectLinkToJunctionRoad"
	KindInconsistentJunctionPathDirections   ErrorKind = "InconsistentJunctionPathDirections"
	KindLaneBackLinkNotSpecified             ErrorKind = "LaneBackLinkNotSpecified"
	KindLaneLinkMisMatch                     ErrorKind = "LaneLinkMisMatch"
	KindLaneLinkToCenterLane                 ErrorKind = "LaneLinkToCenterLane"
	KindLaneLinkTargetOutOfRange             ErrorKind = "LaneLinkTargetOutOfRange"
	KindLaneLinkOpposingDirections           ErrorKind = "LaneLinkOpposingDirections"
)

var classByKind = map[ErrorKind]InvalidationClass{
	KindUnexpectedAttribute:    ClassNone,
	KindUnexpectedChildElement: ClassNone,
	KindNotImplementedElement:  ClassNone,

	KindMissingAttribute:              ClassGeometry,
	KindInvalidAttributeValue:         ClassGeometry,
	KindMissingChildElement:           ClassGeometry,
	KindDuplicateChildElement:         ClassGeometry,
	KindNonPositiveLength:             ClassGeometry,
	KindNegativeSOffset:               ClassGeometry,
	KindSpiralZeroRateOfChange:        ClassGeometry,
	KindArcZeroCurvature:              ClassGeometry,
	KindLaneAttributeSOffsetOutOfOrder: ClassGeometry,
	KindRoadObjectGeometryInconsistent: ClassGeometry,

	KindNonConsecutiveLaneIds: ClassConnectivity,
	KindLeftLaneNegativeId:    ClassConnectivity,
	KindRightLanePositiveId:   ClassConnectivity,
	KindUnresolvedReference:   ClassConnectivity,

	KindRoadBackLinkNotSpecified:           ClassConnectivity,
	KindRoadBackLinkNotSpecifiedInJunction: ClassConnectivity,
	KindRoadLinkMisMatch:                   ClassConnectivity,
	KindDirectLinkToJunctionRoad:           ClassConnectivity,
	KindInconsistentJunctionPathDirections: ClassConnectivity,
	KindLaneBackLinkNotSpecified:           ClassConnectivity,
	KindLaneLinkMisMatch:                   ClassConnectivity,
	KindLaneLinkToCenterLane:               ClassConnectivity,
	KindLaneLinkTargetOutOfRange:           ClassConnectivity,
	KindLaneLinkOpposingDirections:         ClassConnectivity,

	KindDuplicateId: ClassAll,
}

// Class returns the invalidation class associated with an ErrorKind.
func (k ErrorKind) Class() InvalidationClass {
	if c, ok := classByKind[k]; ok {
		return c
	}
	return ClassGeometry
}

// Error is a single accumulated parse, resolution, or validation error.
//
// Errors are accumulated rather than thrown: a malformed document still
// produces a maximally useful map, with Errors describing what couldn't be
// trusted. Error() is always available, even deep inside a parser before the
// surrounding XodrMap exists. Description(m) is computed lazily from the
// stored keys against the fully resolved map, so it can render road/lane
// names instead of bare indices.
type Error struct {
	Kind ErrorKind

	// Context, populated depending on Kind. Not all fields are meaningful
	// for every Kind.
	Element   string
	Attribute string
	RoadIdx   int
	RoadIdx2  int // used for errors which reference 2 roads (B-side or C-side)
	SectionIdx int
	ContactPoint ContactPoint
	ContactPoint2 ContactPoint
	JunctionIdx int
	JunctionIdx2 int
	LaneID      LaneID
	LaneID2     LaneID
	Detail string
}

func (e *Error) Class() InvalidationClass {
	return e.Kind.Class()
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return string(e.Kind)
}

// roadDesc renders the road at idx by its xodr id, falling back to a bare
// index if m is nil or idx wasn't resolved against it.
func roadDesc(m *XodrMap, idx int) string {
	if m != nil && idx >= 0 && idx < len(m.Roads) {
		return fmt.Sprintf("road %q", m.Roads[idx].ID)
	}
	return fmt.Sprintf("road[%d]", idx)
}

// roadContactDesc renders a road's contact point, e.g. `road "1" (end)`.
func roadContactDesc(m *XodrMap, idx int, cp ContactPoint) string {
	return fmt.Sprintf("%s (%s)", roadDesc(m, idx), cp)
}

// junctionDesc renders the junction at idx by its xodr id.
func junctionDesc(m *XodrMap, idx int) string {
	if m != nil && idx >= 0 && idx < len(m.Junctions) {
		return fmt.Sprintf("junction %q", m.Junctions[idx].ID)
	}
	return fmt.Sprintf("junction[%d]", idx)
}

// laneSectionDesc renders a lane section by its road id and section index.
func laneSectionDesc(m *XodrMap, roadIdx, sectionIdx int) string {
	return fmt.Sprintf("%s section %d", roadDesc(m, roadIdx), sectionIdx)
}

// Description renders a human-readable explanation of e, resolving its
// stored road/junction/lane-section/contact-point keys against m. It falls
// back to Error()'s bare "Kind: Detail" form for kinds that carry no
// map-resolvable context (XML-structural errors, and the parse-time
// geometric checks that fire before a road index is assigned).
func (e *Error) Description(m *XodrMap) string {
	switch e.Kind {
	case KindUnresolvedReference:
		return fmt.Sprintf("%s: %s", roadDesc(m, e.RoadIdx), e.Detail)

	case KindLaneAttributeSOffsetOutOfOrder:
		return fmt.Sprintf("%s: %s", laneSectionDesc(m, e.RoadIdx, e.SectionIdx), e.Detail)

	case KindRoadBackLinkNotSpecified:
		a, b := roadContactDesc(m, e.RoadIdx, e.ContactPoint), roadContactDesc(m, e.RoadIdx2, e.ContactPoint2)
		if e.JunctionIdx == -1 {
			return fmt.Sprintf("road links aren't symmetric: %s is connected to %s, but no link back from %s is specified", a, b, b)
		}
		return fmt.Sprintf("road links aren't symmetric: %s is connected to %s via %s, but no link back from %s is specified", a, b, junctionDesc(m, e.JunctionIdx), b)

	case KindRoadBackLinkNotSpecifiedInJunction:
		a, b := roadContactDesc(m, e.RoadIdx, e.ContactPoint), roadContactDesc(m, e.RoadIdx2, e.ContactPoint2)
		return fmt.Sprintf("road links aren't symmetric: %s is connected to %s, but %s links to %s, which doesn't contain a connection back to %s", a, b, b, junctionDesc(m, e.JunctionIdx2), a)

	case KindRoadLinkMisMatch:
		a, b := roadContactDesc(m, e.RoadIdx, e.ContactPoint), roadContactDesc(m, e.RoadIdx2, e.ContactPoint2)
		return fmt.Sprintf("road links aren't symmetric: %s is connected to %s, but %s's back-link doesn't point to %s (%s)", a, b, b, a, e.Detail)

	case KindDirectLinkToJunctionRoad:
		a, b := roadContactDesc(m, e.RoadIdx, e.ContactPoint), roadContactDesc(m, e.RoadIdx2, e.ContactPoint2)
		return fmt.Sprintf("%s is part of a junction, so %s shouldn't link directly to %s", roadDesc(m, e.RoadIdx2), a, b)

	case KindInconsistentJunctionPathDirections:
		a, b := roadContactDesc(m, e.RoadIdx, e.ContactPoint), roadContactDesc(m, e.RoadIdx2, e.ContactPoint2)
		return fmt.Sprintf("inconsistent direction of adjacent junction paths: the connection from %s to %s in %s is incoming, so the connection from %s to %s in %s should be outgoing", a, b, junctionDesc(m, e.JunctionIdx), b, a, junctionDesc(m, e.JunctionIdx2))

	case KindLaneBackLinkNotSpecified:
		return fmt.Sprintf("%s lane %s links to %s lane %s, but no back-link is specified", laneSectionDesc(m, e.RoadIdx, e.SectionIdx), e.LaneID, roadDesc(m, e.RoadIdx2), e.LaneID2)

	case KindLaneLinkMisMatch:
		return fmt.Sprintf("%s lane %s links to %s lane %s, but its %s", laneSectionDesc(m, e.RoadIdx, e.SectionIdx), e.LaneID, roadDesc(m, e.RoadIdx2), e.LaneID2, e.Detail)

	case KindLaneLinkToCenterLane:
		return fmt.Sprintf("%s lane %s links to the center lane of %s", laneSectionDesc(m, e.RoadIdx, e.SectionIdx), e.LaneID, roadDesc(m, e.RoadIdx2))

	case KindLaneLinkTargetOutOfRange:
		return fmt.Sprintf("%s lane %s links to lane %s of %s, which is out of that section's lane range", laneSectionDesc(m, e.RoadIdx, e.SectionIdx), e.LaneID, e.LaneID2, roadDesc(m, e.RoadIdx2))

	case KindLaneLinkOpposingDirections:
		return fmt.Sprintf("%s lane %s links to lane %s of %s, but the roads run in opposing directions there", laneSectionDesc(m, e.RoadIdx, e.SectionIdx), e.LaneID, e.LaneID2, roadDesc(m, e.RoadIdx2))

	default:
		return e.Error()
	}
}

// Errors is a list of accumulated Error values plus helpers used by callers
// who need to decide how strict to be with a partially-valid result.
type Errors []*Error

// HasClass reports whether any error in the list carries exactly the given
// invalidation class.
func (errs Errors) HasClass(class InvalidationClass) bool {
	for _, e := range errs {
		if e.Class() == class {
			return true
		}
	}
	return false
}

// HasFatalErrors reports whether the list contains any GEOMETRY, CONNECTIVITY
// or ALL class error (ie. anything but a bare warning).
func (errs Errors) HasFatalErrors() bool {
	for _, e := range errs {
		if e.Class() != ClassNone {
			return true
		}
	}
	return false
}

// Filter returns the subset of errors with the given class.
func (errs Errors) Filter(class InvalidationClass) Errors {
	var out Errors
	for _, e := range errs {
		if e.Class() == class {
			out = append(out, e)
		}
	}
	return out
}
