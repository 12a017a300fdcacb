package xodr

import (
	"strconv"
)

// LaneID is a signed lane identifier. Left lanes have positive ids, right
// lanes negative, descending left-to-right; 0 is reserved for the center
// lane and is never a valid value for a Lane.ID field.
type LaneID int

// String formats a LaneID the way it appears in a xodr file.
func (id LaneID) String() string {
	return strconv.Itoa(int(id))
}

// SameSide reports whether id and other are both left lanes (positive) or
// both right lanes (negative). The center lane has no side; callers must not
// pass 0.
func (id LaneID) SameSide(other LaneID) bool {
	return (id > 0) == (other > 0)
}

// ParseLaneID parses the text of a lane id attribute.
func ParseLaneID(s string) (LaneID, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return LaneID(v), nil
}

// LaneIDOpt is a nullable LaneID, used for lane predecessor/successor links
// and junction lane-link targets, which may be absent. The zero value is
// None -- use NullLaneID() for clarity at call sites.
type LaneIDOpt struct {
	id    LaneID
	valid bool
}

// NullLaneID returns the "no lane id" value.
func NullLaneID() LaneIDOpt {
	return LaneIDOpt{}
}

// SomeLaneID wraps a concrete LaneID.
func SomeLaneID(id LaneID) LaneIDOpt {
	return LaneIDOpt{id: id, valid: true}
}

// IsNull reports whether this LaneIDOpt holds no value.
func (o LaneIDOpt) IsNull() bool {
	return !o.valid
}

// Get returns the wrapped LaneID. It must not be called when IsNull() is true.
func (o LaneIDOpt) Get() LaneID {
	return o.id
}
