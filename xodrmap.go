package xodr

// XodrMap is the root object of a parsed road map: every Road and Junction
// defined by one xodr document, with all cross-references resolved to array
// indices and link validation already run.
type XodrMap struct {
	GeoReference string
	hasGeoRef    bool

	Roads     []Road
	Junctions []Junction

	roadIDToIndex     map[string]int
	junctionIDToIndex map[string]int

	totalNumLanes int
}

// HasGeoReference reports whether this map carries a <geoReference> proj
// string.
func (m *XodrMap) HasGeoReference() bool {
	return m.hasGeoRef
}

// RoadByID returns the road with the given id and true, or false if no such
// road exists.
func (m *XodrMap) RoadByID(id string) (*Road, bool) {
	idx, ok := m.roadIDToIndex[id]
	if !ok {
		return nil, false
	}
	return &m.Roads[idx], true
}

// RoadIndexByID returns the index of the road with the given id, or -1.
func (m *XodrMap) RoadIndexByID(id string) int {
	if idx, ok := m.roadIDToIndex[id]; ok {
		return idx
	}
	return -1
}

// JunctionByID returns the junction with the given id and true, or false if
// no such junction exists.
func (m *XodrMap) JunctionByID(id string) (*Junction, bool) {
	idx, ok := m.junctionIDToIndex[id]
	if !ok {
		return nil, false
	}
	return &m.Junctions[idx], true
}

// JunctionIndexByID returns the index of the junction with the given id, or
// -1.
func (m *XodrMap) JunctionIndexByID(id string) int {
	if idx, ok := m.junctionIDToIndex[id]; ok {
		return idx
	}
	return -1
}

// TotalNumLanes returns the number of lanes across the whole map. Use this to
// size an array indexed by Lane.GlobalIndex.
func (m *XodrMap) TotalNumLanes() int {
	return m.totalNumLanes
}

// HasRoadObjects reports whether any road in the map carries at least one
// road-side object.
func (m *XodrMap) HasRoadObjects() bool {
	for _, road := range m.Roads {
		if len(road.RoadObjects) > 0 {
			return true
		}
	}
	return false
}

// finalize builds the id lookup tables, resolves all cross-references,
// assigns global lane indices, runs per-road geometric validation and the
// map-wide link validator, and returns every accumulated error.
func (m *XodrMap) finalize() Errors {
	var errs Errors

	resolveErrs := m.resolveReferences()
	errs = append(errs, resolveErrs...)
	if resolveErrs.HasClass(ClassAll) {
		return errs
	}

	m.roadIDToIndex = make(map[string]int, len(m.Roads))
	for i, road := range m.Roads {
		m.roadIDToIndex[road.ID] = i
	}
	m.junctionIDToIndex = make(map[string]int, len(m.Junctions))
	for i, junction := range m.Junctions {
		m.junctionIDToIndex[junction.ID] = i
	}

	m.totalNumLanes = assignGlobalLaneIndices(m.Roads)

	for i := range m.Roads {
		errs = append(errs, laneSectionValidationErrors(&m.Roads[i], i)...)
	}

	errs = append(errs, validateLinks(m)...)

	return errs
}

// laneSectionValidationErrors runs LaneSection.Validate over every lane
// section of the given road, stamping each error with the road's index.
func laneSectionValidationErrors(r *Road, roadIdx int) Errors {
	var errs Errors
	for i, sec := range r.LaneSections {
		for _, e := range sec.Validate() {
			e.RoadIdx = roadIdx
			e.SectionIdx = i
			errs = append(errs, e)
		}
	}
	return errs
}
