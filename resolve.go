package xodr

import "fmt"

// idToIndexMaps holds the id-to-index tables built from a fully parsed
// XodrMap, used to resolve every textual XodrObjectReference into an array
// index.
type idToIndexMaps struct {
	roadIdToIndex     map[string]int
	junctionIdToIndex map[string]int
}

// resolveReferences converts every textual id reference in m into an index
// into m.Roads/m.Junctions, appending an error to the returned Errors for
// each reference that can't be resolved. Road and junction ids are assigned
// globally unique indices first; a duplicate id is a fatal (ClassAll) error,
// since it makes every subsequent resolution ambiguous.
func (m *XodrMap) resolveReferences() Errors {
	var errs Errors

	maps := idToIndexMaps{
		roadIdToIndex:     make(map[string]int, len(m.Roads)),
		junctionIdToIndex: make(map[string]int, len(m.Junctions)),
	}

	for i, road := range m.Roads {
		if _, dup := maps.roadIdToIndex[road.ID]; dup {
			return Errors{&Error{Kind: KindDuplicateId, Detail: fmt.Sprintf("multiple roads with id %q", road.ID)}}
		}
		maps.roadIdToIndex[road.ID] = i
	}
	for i, junction := range m.Junctions {
		if _, dup := maps.junctionIdToIndex[junction.ID]; dup {
			return Errors{&Error{Kind: KindDuplicateId, Detail: fmt.Sprintf("multiple junctions with id %q", junction.ID)}}
		}
		maps.junctionIdToIndex[junction.ID] = i
	}

	for i := range m.Roads {
		errs = append(errs, resolveRoadReferences(&m.Roads[i], i, maps)...)
	}
	for i := range m.Junctions {
		errs = append(errs, resolveJunctionReferences(&m.Junctions[i], i, maps)...)
	}

	return errs
}

func resolveRoadReferences(road *Road, roadIdx int, maps idToIndexMaps) Errors {
	var errs Errors

	if road.junctionID == "" || road.junctionID == "-1" {
		road.JunctionRef = nil
	} else if idx, ok := maps.junctionIdToIndex[road.junctionID]; ok {
		road.JunctionRef = &idx
	} else {
		errs = append(errs, &Error{Kind: KindUnresolvedReference, RoadIdx: roadIdx, Detail: fmt.Sprintf("no junction with id %q", road.junctionID)})
	}

	resolveRoadLink := func(link *RoadLink) {
		switch link.ElementType {
		case RoadLinkNotSpecified:
		case RoadLinkToRoad:
			if idx, ok := maps.roadIdToIndex[link.ElementID]; ok {
				link.RoadIdx = idx
			} else {
				errs = append(errs, &Error{Kind: KindUnresolvedReference, RoadIdx: roadIdx, Detail: fmt.Sprintf("no road with id %q", link.ElementID)})
			}
		case RoadLinkToJunction:
			if idx, ok := maps.junctionIdToIndex[link.ElementID]; ok {
				link.JunctionIdx = idx
			} else {
				errs = append(errs, &Error{Kind: KindUnresolvedReference, RoadIdx: roadIdx, Detail: fmt.Sprintf("no junction with id %q", link.ElementID)})
			}
		}
	}
	resolveRoadLink(&road.Links.Predecessor)
	resolveRoadLink(&road.Links.Successor)

	resolveNeighbor := func(n *NeighborLink) {
		if n == nil {
			return
		}
		if idx, ok := maps.roadIdToIndex[n.ElementID]; ok {
			n.RoadIdx = idx
		} else {
			errs = append(errs, &Error{Kind: KindUnresolvedReference, RoadIdx: roadIdx, Detail: fmt.Sprintf("no road with id %q", n.ElementID)})
		}
	}
	resolveNeighbor(road.Links.LeftNeighbor)
	resolveNeighbor(road.Links.RightNeighbor)

	return errs
}

func resolveJunctionReferences(junction *Junction, junctionIdx int, maps idToIndexMaps) Errors {
	var errs Errors

	for i := range junction.Connections {
		c := &junction.Connections[i]
		if idx, ok := maps.roadIdToIndex[c.IncomingRoadID]; ok {
			c.IncomingRoadIdx = idx
		} else {
			errs = append(errs, &Error{Kind: KindUnresolvedReference, JunctionIdx: junctionIdx, Detail: fmt.Sprintf("no road with id %q", c.IncomingRoadID)})
		}
		if idx, ok := maps.roadIdToIndex[c.ConnectingRoadID]; ok {
			c.ConnectingRoadIdx = idx
		} else {
			errs = append(errs, &Error{Kind: KindUnresolvedReference, JunctionIdx: junctionIdx, Detail: fmt.Sprintf("no road with id %q", c.ConnectingRoadID)})
		}
	}

	return errs
}

// assignGlobalLaneIndices walks every road's lane sections in file order,
// stamping each lane's GlobalIndex and each road's
// GlobalLaneIndicesBegin/End, and returns the total number of lanes across
// the whole map.
func assignGlobalLaneIndices(roads []Road) int {
	next := 0
	for ri := range roads {
		road := &roads[ri]
		road.GlobalLaneIndicesBegin = next
		for si := range road.LaneSections {
			sec := &road.LaneSections[si]
			for li := range sec.Lanes {
				sec.Lanes[li].GlobalIndex = next
				next++
			}
		}
		road.GlobalLaneIndicesEnd = next
	}
	return next
}
