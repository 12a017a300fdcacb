package xodr

// validateLinks runs every link-validation sweep across the whole map: each
// road's internal lane links, and the road/junction link symmetry (which in
// turn validates the lane links that cross a road or junction boundary). It
// returns every error found; it does not stop at the first one, so a
// single malformed link doesn't hide others.
func validateLinks(m *XodrMap) Errors {
	var errs Errors

	for i := range m.Roads {
		errs = append(errs, validateRoadInternalLaneLinks(m, i)...)
		errs = append(errs, validateLinksFromContactPoint(m, RoadContactPointKey{RoadIdx: i, ContactPoint: ContactPointStart})...)
		errs = append(errs, validateLinksFromContactPoint(m, RoadContactPointKey{RoadIdx: i, ContactPoint: ContactPointEnd})...)
	}

	return errs
}

func roadLinkForContactPoint(m *XodrMap, key RoadContactPointKey) RoadLink {
	return m.Roads[key.RoadIdx].Links.RoadLink(linkKindForContactPoint(key.ContactPoint))
}

// validateLinksFromContactPoint validates the link (and everything it
// implies transitively) originating at the given road contact point.
func validateLinksFromContactPoint(m *XodrMap, fromKey RoadContactPointKey) Errors {
	link := roadLinkForContactPoint(m, fromKey)

	switch link.ElementType {
	case RoadLinkNotSpecified:
		return nil

	case RoadLinkToRoad:
		toKey := RoadContactPointKey{RoadIdx: link.RoadIdx, ContactPoint: link.ContactPoint}
		toRoad := &m.Roads[link.RoadIdx]
		if toRoad.IsConnectingRoad() {
			return Errors{&Error{Kind: KindDirectLinkToJunctionRoad, RoadIdx: fromKey.RoadIdx, ContactPoint: fromKey.ContactPoint, RoadIdx2: toKey.RoadIdx, ContactPoint2: toKey.ContactPoint}}
		}
		return validateRoadRoadLink(m, fromKey, toKey)

	case RoadLinkToJunction:
		var errs Errors
		junctionIdx := link.JunctionIdx
		junction := &m.Junctions[junctionIdx]
		for i := range junction.Connections {
			conn := &junction.Connections[i]
			if conn.IncomingRoadIdx != fromKey.RoadIdx {
				continue
			}
			toKey := RoadContactPointKey{RoadIdx: conn.ConnectingRoadIdx, ContactPoint: conn.ContactPoint}
			connKey := JunctionConnectionKey{JunctionIdx: junctionIdx, ConnectionIdx: i}
			errs = append(errs, validateIncomingConnectingLink(m, fromKey, toKey, connKey)...)
		}
		return errs
	}

	return nil
}

// validateRoadRoadLink validates a link directly between two roads (no
// junction involved): the back-link must exist and point exactly back at
// fromKey.
func validateRoadRoadLink(m *XodrMap, fromKey, toKey RoadContactPointKey) Errors {
	backLink := roadLinkForContactPoint(m, toKey)

	switch backLink.ElementType {
	case RoadLinkNotSpecified:
		return Errors{&Error{Kind: KindRoadBackLinkNotSpecified, RoadIdx: fromKey.RoadIdx, ContactPoint: fromKey.ContactPoint, RoadIdx2: toKey.RoadIdx, ContactPoint2: toKey.ContactPoint, JunctionIdx: -1}}

	case RoadLinkToRoad:
		if backLink.RoadIdx != fromKey.RoadIdx || backLink.ContactPoint != fromKey.ContactPoint {
			return Errors{&Error{
				Kind: KindRoadLinkMisMatch, RoadIdx: fromKey.RoadIdx, ContactPoint: fromKey.ContactPoint,
				RoadIdx2: toKey.RoadIdx, ContactPoint2: toKey.ContactPoint, JunctionIdx: -1,
				Detail: "back-link points to a different road/contact-point",
			}}
		}
		return validateRoadRoadLaneLinks(m, fromKey, toKey)

	case RoadLinkToJunction:
		backLinkJunctionIdx := backLink.JunctionIdx
		backLinkJunction := &m.Junctions[backLinkJunctionIdx]
		if conn := backLinkJunction.FindConnection(toKey.RoadIdx, fromKey.RoadIdx, fromKey.ContactPoint); conn != nil {
			return validateConnectingIncomingLaneLinks(m, fromKey, toKey, conn)
		}
		if backLinkJunction.HasOutgoingConnection(fromKey.RoadIdx, fromKey.ContactPoint) {
			return validateConnectingOutgoingLaneLinks(m, fromKey, toKey)
		}
		return Errors{&Error{
			Kind: KindRoadBackLinkNotSpecifiedInJunction, RoadIdx: fromKey.RoadIdx, ContactPoint: fromKey.ContactPoint,
			RoadIdx2: toKey.RoadIdx, ContactPoint2: toKey.ContactPoint, JunctionIdx: -1, JunctionIdx2: backLinkJunctionIdx,
		}}
	}

	return nil
}

// validateIncomingConnectingLink validates a link from an incoming road
// through a junction connection to a connecting road.
func validateIncomingConnectingLink(m *XodrMap, fromKey, toKey RoadContactPointKey, connKey JunctionConnectionKey) Errors {
	backLink := roadLinkForContactPoint(m, toKey)
	conn := &m.Junctions[connKey.JunctionIdx].Connections[connKey.ConnectionIdx]

	switch backLink.ElementType {
	case RoadLinkNotSpecified:
		return Errors{&Error{Kind: KindRoadBackLinkNotSpecified, RoadIdx: fromKey.RoadIdx, ContactPoint: fromKey.ContactPoint, RoadIdx2: toKey.RoadIdx, ContactPoint2: toKey.ContactPoint, JunctionIdx: connKey.JunctionIdx}}

	case RoadLinkToRoad:
		if backLink.RoadIdx != fromKey.RoadIdx || backLink.ContactPoint != fromKey.ContactPoint {
			return Errors{&Error{
				Kind: KindRoadLinkMisMatch, RoadIdx: fromKey.RoadIdx, ContactPoint: fromKey.ContactPoint,
				RoadIdx2: toKey.RoadIdx, ContactPoint2: toKey.ContactPoint, JunctionIdx: connKey.JunctionIdx,
				Detail: "back-link points to a different road/contact-point",
			}}
		}
		return validateIncomingConnectingLaneLinks(m, fromKey, toKey, conn)

	case RoadLinkToJunction:
		backLinkJunctionIdx := backLink.JunctionIdx
		backLinkJunction := &m.Junctions[backLinkJunctionIdx]
		if backLinkJunction.HasConnection(toKey.RoadIdx, fromKey.RoadIdx, fromKey.ContactPoint) {
			return Errors{&Error{
				Kind: KindInconsistentJunctionPathDirections, RoadIdx: fromKey.RoadIdx, ContactPoint: fromKey.ContactPoint,
				RoadIdx2: toKey.RoadIdx, ContactPoint2: toKey.ContactPoint,
				JunctionIdx: connKey.JunctionIdx, JunctionIdx2: backLinkJunctionIdx,
			}}
		}
		if backLinkJunction.HasOutgoingConnection(fromKey.RoadIdx, fromKey.ContactPoint) {
			return validateConnectingConnectingLaneLinks(m, fromKey, toKey, conn)
		}
		return Errors{&Error{
			Kind: KindRoadBackLinkNotSpecifiedInJunction, RoadIdx: fromKey.RoadIdx, ContactPoint: fromKey.ContactPoint,
			RoadIdx2: toKey.RoadIdx, ContactPoint2: toKey.ContactPoint, JunctionIdx: connKey.JunctionIdx, JunctionIdx2: backLinkJunctionIdx,
		}}
	}

	return nil
}
