package component

import "github.com/milk9111/kickabout/common"

// ActionKind names a discrete, already-debounced action signal.
type ActionKind int

const (
	ActionMoveTo ActionKind = iota + 1
	ActionShootInstant
	ActionToggleAim
	ActionFireAimed
	ActionRecenter
	ActionFacePointer
)

var actionNames = map[ActionKind]string{
	ActionMoveTo:       "move_to",
	ActionShootInstant: "shoot",
	ActionToggleAim:    "toggle_aim",
	ActionFireAimed:    "fire",
	ActionRecenter:     "recenter",
	ActionFacePointer:  "face_pointer",
}

func (k ActionKind) String() string {
	if s, ok := actionNames[k]; ok {
		return s
	}
	return "unknown"
}

// Action is one signal. Point is only meaningful for MoveTo and FacePointer.
type Action struct {
	Kind  ActionKind
	Point common.Vec2
}

func MoveTo(p common.Vec2) Action      { return Action{Kind: ActionMoveTo, Point: p} }
func FacePointer(p common.Vec2) Action { return Action{Kind: ActionFacePointer, Point: p} }
func ShootInstant() Action             { return Action{Kind: ActionShootInstant} }
func ToggleAim() Action                { return Action{Kind: ActionToggleAim} }
func FireAimed() Action                { return Action{Kind: ActionFireAimed} }
func Recenter() Action                 { return Action{Kind: ActionRecenter} }

// Input stores the signals received for an entity since its consumers last
// ran. Each system clears the flags it handles.
type Input struct {
	MovePressed bool
	MoveTarget  common.Vec2

	PointerMoved bool
	Pointer      common.Vec2

	ShootPressed     bool
	AimTogglePressed bool
	FirePressed      bool
	RecenterPressed  bool
}

// Apply records a signal. A later MoveTo overwrites an earlier one.
func (in *Input) Apply(a Action) {
	switch a.Kind {
	case ActionMoveTo:
		in.MovePressed = true
		in.MoveTarget = a.Point
	case ActionFacePointer:
		in.PointerMoved = true
		in.Pointer = a.Point
	case ActionShootInstant:
		in.ShootPressed = true
	case ActionToggleAim:
		in.AimTogglePressed = !in.AimTogglePressed
	case ActionFireAimed:
		in.FirePressed = true
	case ActionRecenter:
		in.RecenterPressed = true
	}
}

var InputComponent = NewComponent[Input]()
