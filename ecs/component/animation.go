package component

// AnimationID names a walk cycle.
type AnimationID string

const (
	AnimWalkRight AnimationID = "walk_right"
	AnimWalkLeft  AnimationID = "walk_left"
	AnimWalkUp    AnimationID = "walk_up"
	AnimWalkDown  AnimationID = "walk_down"
)

type AnimationDef struct {
	Name       AnimationID
	FrameCount int
	FPS        float64
	Loop       bool
}

// Animation is the playback state of an entity's current clip.
type Animation struct {
	Defs    map[AnimationID]AnimationDef
	Current AnimationID
	Frame   int
	// FrameTimer accumulates milliseconds toward the next frame.
	FrameTimer int64
	Playing    bool
	// ForceRestart asks the locomotion system to restart the current clip
	// even when it would not switch.
	ForceRestart bool
}

// Play switches to id and rewinds it.
func (a *Animation) Play(id AnimationID) {
	a.Current = id
	a.Frame = 0
	a.FrameTimer = 0
	a.Playing = true
}

// Stop freezes playback on the current clip.
func (a *Animation) Stop() {
	a.Playing = false
}

var AnimationComponent = NewComponent[Animation]()
