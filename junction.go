package xodr

// LaneLink specifies how one lane of a junction connection's incoming road
// maps to a lane of its connecting road.
type LaneLink struct {
	From, To LaneID
}

// Connection is a single incoming-road/connecting-road pairing within a
// Junction.
type Connection struct {
	ID string

	IncomingRoadID   string
	IncomingRoadIdx  int
	ConnectingRoadID string
	ConnectingRoadIdx int

	ContactPoint ContactPoint
	LaneLinks    []LaneLink
}

// FindLaneLinkTarget returns the 'to' lane linked from fromLane, or a null
// LaneIDOpt if this connection has no such lane link.
func (c Connection) FindLaneLinkTarget(fromLane LaneID) LaneIDOpt {
	for _, ll := range c.LaneLinks {
		if ll.From == fromLane {
			return SomeLaneID(ll.To)
		}
	}
	return NullLaneID()
}

// Junction describes a place where roads branch into more than one
// predecessor or successor, as a set of incoming/connecting road pairings.
type Junction struct {
	Name        string
	ID          string
	Connections []Connection
}

// HasConnection reports whether this junction has a connection from
// incomingRoadIdx to connectingRoadIdx at the given contact point on the
// connecting road.
func (j Junction) HasConnection(incomingRoadIdx, connectingRoadIdx int, cp ContactPoint) bool {
	return j.FindConnection(incomingRoadIdx, connectingRoadIdx, cp) != nil
}

// FindConnection returns the connection matching incomingRoadIdx,
// connectingRoadIdx and cp, or nil if none exists.
func (j Junction) FindConnection(incomingRoadIdx, connectingRoadIdx int, cp ContactPoint) *Connection {
	for i := range j.Connections {
		c := &j.Connections[i]
		if c.IncomingRoadIdx == incomingRoadIdx && c.ConnectingRoadIdx == connectingRoadIdx && c.ContactPoint == cp {
			return c
		}
	}
	return nil
}

// HasOutgoingConnection reports whether this junction has a connection whose
// connecting road is connectingRoadIdx and whose contact point is the
// opposite of cp — ie. whether cp is a valid point at which traffic can leave
// the junction onto connectingRoadIdx.
func (j Junction) HasOutgoingConnection(connectingRoadIdx int, cp ContactPoint) bool {
	incomingCP := cp.Opposite()
	for _, c := range j.Connections {
		if c.ConnectingRoadIdx == connectingRoadIdx && c.ContactPoint == incomingCP {
			return true
		}
	}
	return false
}
