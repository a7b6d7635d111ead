package component

// Ball tracks possession. Owner is an entity handle, not a pointer: a zero
// or dead handle means the ball is free.
type Ball struct {
	Owner uint64
}

func (b Ball) Free() bool {
	return b.Owner == 0
}

var BallComponent = NewComponent[Ball]()
