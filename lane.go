package xodr

// WidthPoly3 is one piece of a lane's piecewise-cubic width function: poly is
// valid for local s-coordinates (relative to the lane section) in
// [sOffset, next WidthPoly3's sOffset), and gives the lane's width as
// poly.Eval(sLocal - sOffset).
type WidthPoly3 struct {
	SOffset float64
	Poly    Poly3
}

// LaneMaterial, LaneVisibility, LaneSpeedLimit, LaneAccess, LaneHeight and
// LaneRule are lane attribute records. Each carries an SOffset (from the
// start of the lane section) at which it becomes active, remaining so until
// the next record of the same kind.
type LaneMaterial struct {
	SOffset    float64
	Surface    string
	Friction   float64
	Roughness  float64
}

type LaneVisibility struct {
	SOffset                         float64
	Forward, Back, Left, Right      float64
}

type LaneSpeedLimit struct {
	SOffset float64
	Max     float64
	Unit    SpeedUnit
}

type LaneAccess struct {
	SOffset   float64
	Restriction string
}

type LaneHeight struct {
	SOffset    float64
	InnerHeight float64
	OuterHeight float64
}

type LaneRule struct {
	SOffset float64
	Value   string
}

// Lane is a single lane within a LaneSection.
type Lane struct {
	ID    LaneID
	Type  LaneType
	Level bool

	WidthPoly3s []WidthPoly3

	Materials    []LaneMaterial
	Visibilities []LaneVisibility
	SpeedLimits  []LaneSpeedLimit
	Accesses     []LaneAccess
	Heights      []LaneHeight
	Rules        []LaneRule

	Predecessor LaneIDOpt
	Successor   LaneIDOpt

	// GlobalIndex is this lane's 0-based position in file order across the
	// whole XodrMap; all lanes belonging to one Road occupy a contiguous
	// range of global indices.
	GlobalIndex int
}

// HasLink reports whether this lane has a link of the given kind.
func (l Lane) HasLink(kind RoadLinkKind) bool {
	return !l.linkOpt(kind).IsNull()
}

// Link returns the lane id linked via the given kind. It must not be called
// unless HasLink(kind) is true.
func (l Lane) Link(kind RoadLinkKind) LaneID {
	return l.linkOpt(kind).Get()
}

func (l Lane) linkOpt(kind RoadLinkKind) LaneIDOpt {
	if kind == RoadLinkPredecessor {
		return l.Predecessor
	}
	return l.Successor
}

// WidthAtSCoord returns this lane's width at the given s-coordinate, local to
// the enclosing lane section (ie. sLocal = s - section.StartS).
func (l Lane) WidthAtSCoord(sLocal float64) float64 {
	w := l.widthPoly3At(sLocal)
	if w == nil {
		return 0
	}
	return w.Poly.Eval(sLocal - w.SOffset)
}

// widthPoly3At finds the last WidthPoly3 whose SOffset <= sLocal.
func (l Lane) widthPoly3At(sLocal float64) *WidthPoly3 {
	var cur *WidthPoly3
	for i := range l.WidthPoly3s {
		if l.WidthPoly3s[i].SOffset <= sLocal {
			cur = &l.WidthPoly3s[i]
		} else {
			break
		}
	}
	return cur
}
