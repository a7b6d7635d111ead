package component

import "github.com/milk9111/kickabout/common"

// Actor is a controllable player. Its position is owned by the physics body.
type Actor struct {
	Name  string
	Spawn common.Vec2

	// Facing is the last non-zero motion direction. Read it through
	// FacingDir; it is normalized on read.
	Facing      common.Vec2
	Speed       float64
	Destination *common.Vec2
	// DestinationDist is the distance to Destination seen on the previous
	// tick, 0 before the first measurement.
	DestinationDist float64
	BallOffset      float64

	IsAiming bool
	// ShotCooldown is true while the post-shot immunity window runs.
	ShotCooldown bool
	// Pointer is the last world point the cursor was seen at, nil when
	// unknown.
	Pointer *common.Vec2
}

// FacingDir returns the normalized facing direction.
func (a Actor) FacingDir() common.Vec2 {
	return a.Facing.Normalize()
}

// Navigating reports whether the actor has an active destination.
func (a Actor) Navigating() bool {
	return a.Destination != nil
}

// PointerSide returns -1 or +1 when the pointer sits left or right of pos,
// 0 when no pointer is known. A pointer straight above or below counts as
// right.
func (a Actor) PointerSide(pos common.Vec2) int {
	if a.Pointer == nil {
		return 0
	}
	if a.Pointer.X < pos.X {
		return -1
	}
	return 1
}

var ActorComponent = NewComponent[Actor]()
