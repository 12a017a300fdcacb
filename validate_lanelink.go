package xodr

// fromRoadToLaneSectionContactPointKey converts a RoadContactPointKey to the
// key of the lane section at that contact point.
func fromRoadToLaneSectionContactPointKey(m *XodrMap, key RoadContactPointKey) LaneSectionContactPointKey {
	road := &m.Roads[key.RoadIdx]
	sectionIdx := road.LaneSectionIndexForContactPoint(key.ContactPoint)
	return LaneSectionContactPointKey{RoadIdx: key.RoadIdx, SectionIdx: sectionIdx, ContactPoint: key.ContactPoint}
}

func laneSectionByKey(m *XodrMap, key LaneSectionContactPointKey) *LaneSection {
	return &m.Roads[key.RoadIdx].LaneSections[key.SectionIdx]
}

// validateLaneLinkInRange checks the three conditions common to every lane
// link: the target isn't the center lane, the two lanes are on the expected
// side of their reference lines given the roads' relative direction, and the
// target id actually exists in the destination section.
func validateLaneLinkInRange(fromKey, toKey LaneSectionContactPointKey, fromLaneID, toLaneID LaneID, roadsOpposingDirections bool, toIDsMin, toIDsMax LaneID) Errors {
	var errs Errors

	if toLaneID == 0 {
		errs = append(errs, &Error{
			Kind: KindLaneLinkToCenterLane, RoadIdx: fromKey.RoadIdx, SectionIdx: fromKey.SectionIdx,
			RoadIdx2: toKey.RoadIdx, LaneID: fromLaneID,
		})
		return errs
	}

	if fromLaneID.SameSide(toLaneID) == roadsOpposingDirections {
		errs = append(errs, &Error{
			Kind: KindLaneLinkOpposingDirections, RoadIdx: fromKey.RoadIdx, SectionIdx: fromKey.SectionIdx,
			RoadIdx2: toKey.RoadIdx, LaneID: fromLaneID, LaneID2: toLaneID,
		})
		return errs
	}

	if toLaneID < toIDsMin || toLaneID > toIDsMax {
		errs = append(errs, &Error{
			Kind: KindLaneLinkTargetOutOfRange, RoadIdx: fromKey.RoadIdx, SectionIdx: fromKey.SectionIdx,
			RoadIdx2: toKey.RoadIdx, LaneID: fromLaneID, LaneID2: toLaneID,
		})
		return errs
	}

	return nil
}

// validateLaneLinks validates the lane links originating in fromSection
// against toSection, for two sections directly connected at the given
// contact points (either road-internal, or road-to-road with no junction in
// between). Callers
// must invoke it once per direction to fully validate a pair of sections.
func validateLaneLinks(fromSection, toSection *LaneSection, fromKey, toKey LaneSectionContactPointKey) Errors {
	var errs Errors

	toIDsMin := LaneID(-toSection.NumRightLanes())
	toIDsMax := LaneID(toSection.NumLeftLanes)

	roadsOpposingDirections := fromKey.ContactPoint == toKey.ContactPoint
	linkKind := linkKindForContactPoint(fromKey.ContactPoint)
	backLinkKind := linkKindForContactPoint(toKey.ContactPoint)

	for i, fromLane := range fromSection.Lanes {
		if !fromLane.HasLink(linkKind) {
			continue
		}
		fromLaneID := fromSection.LaneIndexToId(i)
		toLaneID := fromLane.Link(linkKind)

		if rangeErrs := validateLaneLinkInRange(fromKey, toKey, fromLaneID, toLaneID, roadsOpposingDirections, toIDsMin, toIDsMax); rangeErrs != nil {
			errs = append(errs, rangeErrs...)
			continue
		}

		bLane, _ := toSection.LaneByID(toLaneID)
		if bLane.HasLink(backLinkKind) {
			if backLinkID := bLane.Link(backLinkKind); backLinkID != fromLaneID {
				errs = append(errs, &Error{
					Kind: KindLaneLinkMisMatch, RoadIdx: fromKey.RoadIdx, SectionIdx: fromKey.SectionIdx,
					RoadIdx2: toKey.RoadIdx, LaneID: fromLaneID, LaneID2: toLaneID,
					Detail: "back-link points to " + backLinkID.String(),
				})
			}
		} else {
			errs = append(errs, &Error{
				Kind: KindLaneBackLinkNotSpecified, RoadIdx: fromKey.RoadIdx, SectionIdx: fromKey.SectionIdx,
				RoadIdx2: toKey.RoadIdx, LaneID: fromLaneID, LaneID2: toLaneID,
			})
		}
	}

	return errs
}

// validateRoadInternalLaneLinks checks lane-link symmetry between every pair
// of consecutive lane sections within a single road.
func validateRoadInternalLaneLinks(m *XodrMap, roadIdx int) Errors {
	var errs Errors
	sections := m.Roads[roadIdx].LaneSections
	for i := 0; i < len(sections)-1; i++ {
		key1 := LaneSectionContactPointKey{RoadIdx: roadIdx, SectionIdx: i, ContactPoint: ContactPointEnd}
		key2 := LaneSectionContactPointKey{RoadIdx: roadIdx, SectionIdx: i + 1, ContactPoint: ContactPointStart}
		errs = append(errs, validateLaneLinks(&sections[i], &sections[i+1], key1, key2)...)
		errs = append(errs, validateLaneLinks(&sections[i+1], &sections[i], key2, key1)...)
	}
	return errs
}

// validateRoadRoadLaneLinks validates lane links between two lane sections
// whose roads link directly (no intervening junction).
func validateRoadRoadLaneLinks(m *XodrMap, fromCP, toCP RoadContactPointKey) Errors {
	fromKey := fromRoadToLaneSectionContactPointKey(m, fromCP)
	toKey := fromRoadToLaneSectionContactPointKey(m, toCP)
	fromSection := laneSectionByKey(m, fromKey)
	toSection := laneSectionByKey(m, toKey)
	return validateLaneLinks(fromSection, toSection, fromKey, toKey)
}

// validateConnectingIncomingLaneLinks validates lane links from a connecting
// road's lane section back to the incoming road, checked against the
// junction connection's explicit laneLink table.
func validateConnectingIncomingLaneLinks(m *XodrMap, fromCP, toCP RoadContactPointKey, backLinkConnection *Connection) Errors {
	var errs Errors

	fromKey := fromRoadToLaneSectionContactPointKey(m, fromCP)
	toKey := fromRoadToLaneSectionContactPointKey(m, toCP)
	fromSection := laneSectionByKey(m, fromKey)
	toSection := laneSectionByKey(m, toKey)

	toIDsMin := LaneID(-toSection.NumRightLanes())
	toIDsMax := LaneID(toSection.NumLeftLanes)

	linkKind := linkKindForContactPoint(fromCP.ContactPoint)
	roadsOpposingDirections := fromCP.ContactPoint == toCP.ContactPoint

	for i, fromLane := range fromSection.Lanes {
		if !fromLane.HasLink(linkKind) {
			continue
		}
		fromLaneID := fromSection.LaneIndexToId(i)
		toLaneID := fromLane.Link(linkKind)

		if rangeErrs := validateLaneLinkInRange(fromKey, toKey, fromLaneID, toLaneID, roadsOpposingDirections, toIDsMin, toIDsMax); rangeErrs != nil {
			errs = append(errs, rangeErrs...)
			continue
		}

		backLinkOpt := backLinkConnection.FindLaneLinkTarget(toLaneID)
		if backLinkOpt.IsNull() {
			errs = append(errs, &Error{
				Kind: KindLaneBackLinkNotSpecified, RoadIdx: fromKey.RoadIdx, SectionIdx: fromKey.SectionIdx,
				RoadIdx2: toKey.RoadIdx, LaneID: fromLaneID, LaneID2: toLaneID,
			})
			continue
		}
		if backLinkID := backLinkOpt.Get(); backLinkID != fromLaneID {
			errs = append(errs, &Error{
				Kind: KindLaneLinkMisMatch, RoadIdx: fromKey.RoadIdx, SectionIdx: fromKey.SectionIdx,
				RoadIdx2: toKey.RoadIdx, LaneID: fromLaneID, LaneID2: toLaneID,
				Detail: "back-link points to " + backLinkID.String(),
			})
		}
	}

	return errs
}

// validateConnectingOutgoingLaneLinks validates the lane links of a
// connecting road's outgoing lane section (no back-link table to check
// against, since the outgoing direction isn't covered by a laneLink list).
func validateConnectingOutgoingLaneLinks(m *XodrMap, fromCP, toCP RoadContactPointKey) Errors {
	var errs Errors

	fromKey := fromRoadToLaneSectionContactPointKey(m, fromCP)
	toKey := fromRoadToLaneSectionContactPointKey(m, toCP)
	fromSection := laneSectionByKey(m, fromKey)
	toSection := laneSectionByKey(m, toKey)

	toIDsMin := LaneID(-toSection.NumRightLanes())
	toIDsMax := LaneID(toSection.NumLeftLanes)

	linkKind := linkKindForContactPoint(fromCP.ContactPoint)
	roadsOpposingDirections := fromCP.ContactPoint == toCP.ContactPoint

	for i, fromLane := range fromSection.Lanes {
		if !fromLane.HasLink(linkKind) {
			continue
		}
		fromLaneID := fromSection.LaneIndexToId(i)
		toLaneID := fromLane.Link(linkKind)
		errs = append(errs, validateLaneLinkInRange(fromKey, toKey, fromLaneID, toLaneID, roadsOpposingDirections, toIDsMin, toIDsMax)...)
	}

	return errs
}

// validateIncomingConnectingLaneLinks validates an explicit junction
// connection's laneLink table, checked against both sections' lane ranges
// and relative direction.
func validateIncomingConnectingLaneLinks(m *XodrMap, fromCP, toCP RoadContactPointKey, connection *Connection) Errors {
	var errs Errors

	fromKey := fromRoadToLaneSectionContactPointKey(m, fromCP)
	toKey := fromRoadToLaneSectionContactPointKey(m, toCP)
	fromSection := laneSectionByKey(m, fromKey)
	toSection := laneSectionByKey(m, toKey)

	fromIDsMin := LaneID(-fromSection.NumRightLanes())
	fromIDsMax := LaneID(fromSection.NumLeftLanes)
	toIDsMin := LaneID(-toSection.NumRightLanes())
	toIDsMax := LaneID(toSection.NumLeftLanes)

	backLinkKind := linkKindForContactPoint(toCP.ContactPoint)
	roadsOpposingDirections := fromCP.ContactPoint == toCP.ContactPoint

	for _, ll := range connection.LaneLinks {
		fromLaneID, toLaneID := ll.From, ll.To
		ok := true

		if fromLaneID != 0 && toLaneID == 0 {
			errs = append(errs, &Error{Kind: KindLaneLinkToCenterLane, RoadIdx: fromKey.RoadIdx, SectionIdx: fromKey.SectionIdx, RoadIdx2: toKey.RoadIdx, LaneID: fromLaneID})
			ok = false
		} else if fromLaneID == 0 && toLaneID != 0 {
			errs = append(errs, &Error{Kind: KindLaneLinkToCenterLane, RoadIdx: toKey.RoadIdx, SectionIdx: toKey.SectionIdx, RoadIdx2: fromKey.RoadIdx, LaneID: toLaneID})
			ok = false
		}

		if toLaneID < toIDsMin || toLaneID > toIDsMax {
			errs = append(errs, &Error{Kind: KindLaneLinkTargetOutOfRange, RoadIdx: fromKey.RoadIdx, SectionIdx: fromKey.SectionIdx, RoadIdx2: toKey.RoadIdx, LaneID: fromLaneID, LaneID2: toLaneID})
			ok = false
		}
		if fromLaneID < fromIDsMin || fromLaneID > fromIDsMax {
			errs = append(errs, &Error{Kind: KindLaneLinkTargetOutOfRange, RoadIdx: toKey.RoadIdx, SectionIdx: toKey.SectionIdx, RoadIdx2: fromKey.RoadIdx, LaneID: toLaneID, LaneID2: fromLaneID})
			ok = false
		}

		if !ok || fromLaneID == 0 || toLaneID == 0 {
			continue
		}

		if fromLaneID.SameSide(toLaneID) == roadsOpposingDirections {
			errs = append(errs, &Error{Kind: KindLaneLinkOpposingDirections, RoadIdx: fromKey.RoadIdx, SectionIdx: fromKey.SectionIdx, RoadIdx2: toKey.RoadIdx, LaneID: fromLaneID, LaneID2: toLaneID})
			continue
		}

		bLane, _ := toSection.LaneByID(toLaneID)
		if bLane.HasLink(backLinkKind) {
			if backLinkID := bLane.Link(backLinkKind); backLinkID != fromLaneID {
				errs = append(errs, &Error{Kind: KindLaneLinkMisMatch, RoadIdx: fromKey.RoadIdx, SectionIdx: fromKey.SectionIdx, RoadIdx2: toKey.RoadIdx, LaneID: fromLaneID, LaneID2: toLaneID, Detail: "back-link points to " + backLinkID.String()})
			}
		} else {
			errs = append(errs, &Error{Kind: KindLaneBackLinkNotSpecified, RoadIdx: fromKey.RoadIdx, SectionIdx: fromKey.SectionIdx, RoadIdx2: toKey.RoadIdx, LaneID: fromLaneID, LaneID2: toLaneID})
		}
	}

	return errs
}

// validateConnectingConnectingLaneLinks validates the laneLink table of a
// junction connection whose incoming road is itself a connecting road of
// another junction -- only range checks apply, since there's no separate
// back-link table to compare against (the adjacent junction's own connection
// covers that direction).
func validateConnectingConnectingLaneLinks(m *XodrMap, fromCP, toCP RoadContactPointKey, linkConnection *Connection) Errors {
	var errs Errors

	fromKey := fromRoadToLaneSectionContactPointKey(m, fromCP)
	toKey := fromRoadToLaneSectionContactPointKey(m, toCP)
	fromSection := laneSectionByKey(m, fromKey)
	toSection := laneSectionByKey(m, toKey)

	fromIDsMin := LaneID(-fromSection.NumRightLanes())
	fromIDsMax := LaneID(fromSection.NumLeftLanes)
	toIDsMin := LaneID(-toSection.NumRightLanes())
	toIDsMax := LaneID(toSection.NumLeftLanes)

	for _, ll := range linkConnection.LaneLinks {
		fromLaneID, toLaneID := ll.From, ll.To

		if fromLaneID != 0 && toLaneID == 0 {
			errs = append(errs, &Error{Kind: KindLaneLinkToCenterLane, RoadIdx: fromKey.RoadIdx, SectionIdx: fromKey.SectionIdx, RoadIdx2: toKey.RoadIdx, LaneID: fromLaneID})
		} else if fromLaneID == 0 && toLaneID != 0 {
			errs = append(errs, &Error{Kind: KindLaneLinkToCenterLane, RoadIdx: toKey.RoadIdx, SectionIdx: toKey.SectionIdx, RoadIdx2: fromKey.RoadIdx, LaneID: toLaneID})
		}

		if fromLaneID < fromIDsMin || fromLaneID > fromIDsMax {
			errs = append(errs, &Error{Kind: KindLaneLinkTargetOutOfRange, RoadIdx: toKey.RoadIdx, SectionIdx: toKey.SectionIdx, RoadIdx2: fromKey.RoadIdx, LaneID: toLaneID, LaneID2: fromLaneID})
		}
		if toLaneID < toIDsMin || toLaneID > toIDsMax {
			errs = append(errs, &Error{Kind: KindLaneLinkTargetOutOfRange, RoadIdx: fromKey.RoadIdx, SectionIdx: fromKey.SectionIdx, RoadIdx2: toKey.RoadIdx, LaneID: fromLaneID, LaneID2: toLaneID})
		}
	}

	return errs
}
