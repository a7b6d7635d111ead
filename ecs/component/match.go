package component

// Side names a half of the field.
type Side int

const (
	SideLeft Side = iota + 1
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return s
	}
}

// MatchState holds the score and round clock.
type MatchState struct {
	ScoreLeft   int
	ScoreRight  int
	RoundMs     int64
	RemainingMs int64
	Over        bool
}

// GoalZone is a region whose contact with the ball scores for the opponent.
// BallInside latches while the ball stays in the zone.
type GoalZone struct {
	Side       Side
	BallInside bool
}

var MatchStateComponent = NewComponent[MatchState]()

var GoalZoneComponent = NewComponent[GoalZone]()
