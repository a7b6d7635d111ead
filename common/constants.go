package common

// Defaults for the tunable gameplay constants. Prefab tuning overrides them
// at load time and on hot reload.
const (
	// ArrivalRadius is the distance below which a navigation destination
	// counts as reached.
	ArrivalRadius = 20.0
	// HorizontalDeflection is the minimum |x| of a normalized direction for
	// the horizontal walk animations to win over the vertical ones.
	HorizontalDeflection = 0.4
	// ImmunityWindowMs keeps a shooter from re-acquiring the ball right away.
	ImmunityWindowMs = 250

	ShotPower     = 600.0
	MoveSpeed     = 200.0
	BallOffset    = 24.0
	RoundLengthMs = 3 * 60 * 1000

	FieldWidth  = 2048.0
	FieldHeight = 1024.0
)

// Tuning is the live set of gameplay constants shared by the systems of one
// simulation.
type Tuning struct {
	MoveSpeed            float64
	BallOffset           float64
	ShotPower            float64
	ArrivalRadius        float64
	HorizontalDeflection float64
	ImmunityWindowMs     int64
	InstantShots         bool
	ChargeShots          bool
}

func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:            MoveSpeed,
		BallOffset:           BallOffset,
		ShotPower:            ShotPower,
		ArrivalRadius:        ArrivalRadius,
		HorizontalDeflection: HorizontalDeflection,
		ImmunityWindowMs:     ImmunityWindowMs,
		InstantShots:         true,
		ChargeShots:          true,
	}
}
