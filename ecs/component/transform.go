package component

import "github.com/milk9111/kickabout/common"

// Transform is the world-space center of an entity, mirrored from its
// physics body every tick.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

func (t Transform) Position() common.Vec2 {
	return common.Vec2{X: t.X, Y: t.Y}
}

func (t *Transform) SetPosition(p common.Vec2) {
	t.X = p.X
	t.Y = p.Y
}

var TransformComponent = NewComponent[Transform]()
