package system

import (
	"math"

	"github.com/milk9111/kickabout/common"
	"github.com/milk9111/kickabout/ecs/component"
)

// AnimationFor maps a motion or facing vector to a walk animation using the
// default horizontal deflection threshold.
func AnimationFor(dir common.Vec2) component.AnimationID {
	return AnimationForThreshold(dir, common.HorizontalDeflection)
}

// AnimationForThreshold picks a horizontal walk when the normalized |x|
// reaches threshold and a vertical one otherwise. Zero components resolve to
// right/down, so the zero vector yields walk_down.
func AnimationForThreshold(dir common.Vec2, threshold float64) component.AnimationID {
	n := dir.Normalize()
	if !n.IsZero() && math.Abs(n.X) >= threshold {
		if n.X >= 0 {
			return component.AnimWalkRight
		}
		return component.AnimWalkLeft
	}
	if n.Y >= 0 {
		return component.AnimWalkDown
	}
	return component.AnimWalkUp
}
